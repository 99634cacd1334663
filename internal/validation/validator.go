package validation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"innkeep/internal/lifecycle"
	"innkeep/internal/models"
	"innkeep/pkg/gateway"

	"github.com/shopspring/decimal"
)

// Checker smoke-checks a live deployment end to end through the gateway
// client: CRUD round trips, lifecycle enforcement and the calendar shape.
type Checker struct {
	client *gateway.Client
}

func NewChecker(client *gateway.Client) *Checker {
	return &Checker{client: client}
}

// CheckAll runs every check and stops at the first failure
func (c *Checker) CheckAll(ctx context.Context) error {
	slog.Info("Starting API smoke checks")

	if err := c.checkBookings(ctx); err != nil {
		return fmt.Errorf("bookings check failed: %w", err)
	}
	if err := c.checkLifecycleEnforcement(ctx); err != nil {
		return fmt.Errorf("lifecycle check failed: %w", err)
	}
	if err := c.checkCalendar(ctx); err != nil {
		return fmt.Errorf("calendar check failed: %w", err)
	}

	slog.Info("All smoke checks passed")
	return nil
}

func (c *Checker) checkBookings(ctx context.Context) error {
	slog.Info("Checking booking CRUD round trip")

	checkIn := time.Now().AddDate(0, 0, 30).Truncate(24 * time.Hour)

	created, err := c.client.Bookings.Create(ctx, models.CreateBookingRequest{
		GuestName:   "Smoke Check Guest",
		RoomNumber:  "999",
		CheckIn:     checkIn,
		CheckOut:    checkIn.AddDate(0, 0, 2),
		Adults:      1,
		TotalAmount: decimal.NewFromInt(200),
	})
	if err != nil {
		return err
	}
	if created.ID == 0 {
		return errors.New("POST /api/bookings: expected non-zero id")
	}
	if created.Status != lifecycle.BookingPending {
		return fmt.Errorf("POST /api/bookings: expected status %q, got %q", lifecycle.BookingPending, created.Status)
	}
	if created.Nights != 2 {
		return fmt.Errorf("POST /api/bookings: expected 2 nights, got %d", created.Nights)
	}

	fetched, err := c.client.Bookings.Get(ctx, created.ID)
	if err != nil {
		return err
	}
	if fetched.ReferenceCode != created.ReferenceCode {
		return errors.New("GET /api/bookings/:id: reference code mismatch")
	}

	newName := "Renamed Smoke Guest"
	updated, err := c.client.Bookings.Update(ctx, created.ID, models.UpdateBookingRequest{GuestName: &newName})
	if err != nil {
		return err
	}
	if updated.GuestName != newName {
		return errors.New("PUT via _method=PUT spoofing did not apply the update")
	}

	if err := c.client.Bookings.Remove(ctx, created.ID); err != nil {
		return err
	}

	if _, err := c.client.Bookings.Get(ctx, created.ID); !isStatus(err, http.StatusNotFound) {
		return errors.New("GET after DELETE: expected 404")
	}

	slog.Info("Booking CRUD round trip ok")
	return nil
}

func (c *Checker) checkLifecycleEnforcement(ctx context.Context) error {
	slog.Info("Checking server-side transition enforcement")

	checkIn := time.Now().AddDate(0, 0, 30).Truncate(24 * time.Hour)

	booking, err := c.client.Bookings.Create(ctx, models.CreateBookingRequest{
		GuestName:  "Lifecycle Smoke Guest",
		RoomNumber: "998",
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 1),
		Adults:     1,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = c.client.Bookings.Remove(ctx, booking.ID)
	}()

	// Skipping pending -> checked_out must be rejected
	if _, err := c.client.Bookings.SetStatus(ctx, booking.ID, lifecycle.BookingCheckedOut); !isStatus(err, http.StatusConflict) {
		return errors.New("skipping transition: expected 409")
	}

	confirmed, err := c.client.Bookings.SetStatus(ctx, booking.ID, lifecycle.BookingConfirmed)
	if err != nil {
		return err
	}
	if confirmed.Status != lifecycle.BookingConfirmed {
		return fmt.Errorf("expected status %q, got %q", lifecycle.BookingConfirmed, confirmed.Status)
	}

	slog.Info("Transition enforcement ok")
	return nil
}

func (c *Checker) checkCalendar(ctx context.Context) error {
	slog.Info("Checking calendar endpoint shape")

	now := time.Now()
	cal, err := c.client.CalendarBookings(ctx, int(now.Month()), now.Year(), gateway.ListParams{})
	if err != nil {
		return err
	}
	if !cal.Success {
		return errors.New("GET /api/calendar-bookings: expected success=true")
	}
	if cal.Bookings == nil {
		return errors.New("GET /api/calendar-bookings: bookings map missing")
	}

	slog.Info("Calendar shape ok")
	return nil
}

func isStatus(err error, code int) bool {
	var apiErr *gateway.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}
