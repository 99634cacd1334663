package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"innkeep/internal/lifecycle"
	"innkeep/internal/logger"
	"innkeep/internal/models"
	"innkeep/pkg/gateway"

	"github.com/shopspring/decimal"
)

var (
	baseURL  = flag.String("base-url", "http://localhost:8080", "API base URL")
	email    = flag.String("email", "admin@innkeep.local", "Admin email for basic auth")
	password = flag.String("password", "admin", "Admin password for basic auth")
	bookings = flag.Int("bookings", 20, "Number of bookings to create")
	events   = flag.Int("events", 8, "Number of events to create")
)

var guestNames = []string{
	"John Smith", "Maria Garcia", "Wei Chen", "Aisha Khan", "Liam O'Brien",
	"Sofia Rossi", "Yuki Tanaka", "Omar Hassan", "Emma Laurent", "Carlos Mendes",
}

var roomTypes = []string{"standard", "deluxe", "suite", "family"}

var venues = []string{"Grand Ballroom", "Garden Terrace", "Rooftop Lounge", "Cedar Hall"}

func main() {
	flag.Parse()

	logger.Init("info", "text")

	client := gateway.New(*baseURL, *email, *password)
	ctx := context.Background()

	slog.Info("Seeding sample data", "base_url", *baseURL)

	roomNumbers, err := seedRooms(ctx, client)
	if err != nil {
		logger.Fatal("Failed to seed rooms", "error", err)
	}

	if err := seedBookings(ctx, client, roomNumbers); err != nil {
		logger.Fatal("Failed to seed bookings", "error", err)
	}

	if err := seedEvents(ctx, client); err != nil {
		logger.Fatal("Failed to seed events", "error", err)
	}

	if err := seedInventory(ctx, client); err != nil {
		logger.Fatal("Failed to seed inventory", "error", err)
	}

	if err := seedMenu(ctx, client); err != nil {
		logger.Fatal("Failed to seed menu", "error", err)
	}

	slog.Info("Seeding complete")
}

func seedRooms(ctx context.Context, client *gateway.Client) ([]string, error) {
	var numbers []string

	for floor := 1; floor <= 3; floor++ {
		for n := 1; n <= 5; n++ {
			number := fmt.Sprintf("%d%02d", floor, n)
			roomType := roomTypes[rand.Intn(len(roomTypes))]

			room, err := client.Rooms.Create(ctx, models.CreateRoomRequest{
				Number:        number,
				Type:          roomType,
				Floor:         floor,
				Capacity:      2 + rand.Intn(3),
				PricePerNight: decimal.NewFromInt(int64(80 + rand.Intn(220))),
			})
			if err != nil {
				return nil, err
			}

			numbers = append(numbers, room.Number)
		}
	}

	slog.Info("Created rooms", "count", len(numbers))
	return numbers, nil
}

func seedBookings(ctx context.Context, client *gateway.Client, roomNumbers []string) error {
	now := time.Now().Truncate(24 * time.Hour)

	for i := 0; i < *bookings; i++ {
		checkIn := now.AddDate(0, 0, rand.Intn(45)-10)
		checkOut := checkIn.AddDate(0, 0, 1+rand.Intn(6))

		booking, err := client.Bookings.Create(ctx, models.CreateBookingRequest{
			GuestName:   guestNames[rand.Intn(len(guestNames))],
			RoomNumber:  roomNumbers[rand.Intn(len(roomNumbers))],
			CheckIn:     checkIn,
			CheckOut:    checkOut,
			Adults:      1 + rand.Intn(3),
			Children:    rand.Intn(3),
			TotalAmount: decimal.NewFromInt(int64(100 + rand.Intn(900))),
		})
		if err != nil {
			return err
		}

		// Walk a share of the bookings through the lifecycle so every
		// status shows up on the calendar.
		switch rand.Intn(4) {
		case 1:
			_, err = client.Bookings.SetStatus(ctx, booking.ID, lifecycle.BookingConfirmed)
		case 2:
			if _, err = client.Bookings.SetStatus(ctx, booking.ID, lifecycle.BookingConfirmed); err == nil {
				_, err = client.Bookings.SetStatus(ctx, booking.ID, lifecycle.BookingCheckedIn)
			}
		case 3:
			_, err = client.Bookings.SetStatus(ctx, booking.ID, lifecycle.BookingCancelled)
		}
		if err != nil {
			return err
		}
	}

	slog.Info("Created bookings", "count", *bookings)
	return nil
}

func seedEvents(ctx context.Context, client *gateway.Client) error {
	now := time.Now().Truncate(24 * time.Hour)

	for i := 0; i < *events; i++ {
		date := now.AddDate(0, 0, rand.Intn(60))
		start := date.Add(time.Duration(14+rand.Intn(4)) * time.Hour)
		end := start.Add(time.Duration(2+rand.Intn(4)) * time.Hour)

		event, err := client.Events.Create(ctx, models.CreateEventRequest{
			ClientName:  guestNames[rand.Intn(len(guestNames))],
			Venue:       venues[rand.Intn(len(venues))],
			Date:        date,
			StartTime:   start,
			EndTime:     end,
			GuestCount:  20 + rand.Intn(180),
			TotalAmount: decimal.NewFromInt(int64(500 + rand.Intn(4500))),
		})
		if err != nil {
			return err
		}

		if rand.Intn(2) == 0 {
			if _, err := client.Events.SetStatus(ctx, event.ID, lifecycle.EventConfirmed); err != nil {
				return err
			}
		}
	}

	slog.Info("Created events", "count", *events)
	return nil
}

func seedInventory(ctx context.Context, client *gateway.Client) error {
	items := []models.CreateInventoryItemRequest{
		{Name: "Bath towels", Category: "linen", Quantity: 120, Unit: "pcs", MinStockLevel: 40, UnitCost: decimal.NewFromFloat(6.50)},
		{Name: "Bed sheets", Category: "linen", Quantity: 35, Unit: "pcs", MinStockLevel: 50, UnitCost: decimal.NewFromFloat(12.00)},
		{Name: "Coffee beans", Category: "kitchen", Quantity: 0, Unit: "kg", MinStockLevel: 10, UnitCost: decimal.NewFromFloat(18.90)},
		{Name: "Olive oil", Category: "kitchen", Quantity: 24, Unit: "l", MinStockLevel: 8, UnitCost: decimal.NewFromFloat(9.20)},
		{Name: "Hand soap", Category: "amenities", Quantity: 300, Unit: "pcs", MinStockLevel: 100, UnitCost: decimal.NewFromFloat(1.10)},
	}

	for _, item := range items {
		if _, err := client.Inventory.Create(ctx, item); err != nil {
			return err
		}
	}

	slog.Info("Created inventory items", "count", len(items))
	return nil
}

func seedMenu(ctx context.Context, client *gateway.Client) error {
	items := []models.CreateMenuItemRequest{
		{Name: "Grilled salmon", Category: "mains", Price: decimal.NewFromFloat(24.50)},
		{Name: "Margherita pizza", Category: "mains", Price: decimal.NewFromFloat(14.00)},
		{Name: "Caesar salad", Category: "starters", Price: decimal.NewFromFloat(9.50)},
		{Name: "Tiramisu", Category: "desserts", Price: decimal.NewFromFloat(7.00)},
		{Name: "House lemonade", Category: "drinks", Price: decimal.NewFromFloat(4.50)},
	}

	for _, item := range items {
		if _, err := client.Menu.Create(ctx, item); err != nil {
			return err
		}
	}

	slog.Info("Created menu items", "count", len(items))
	return nil
}
