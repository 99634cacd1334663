package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Booking represents a room reservation
type Booking struct {
	ID              int64           `json:"id" db:"id"`
	ReferenceCode   string          `json:"reference_code" db:"reference_code"`
	GuestName       string          `json:"guest_name" db:"guest_name"`
	RoomNumber      string          `json:"room_number" db:"room_number"`
	Status          string          `json:"status" db:"status"`
	PaymentStatus   string          `json:"payment_status" db:"payment_status"`
	CheckIn         time.Time       `json:"check_in" db:"check_in"`
	CheckOut        time.Time       `json:"check_out" db:"check_out"`
	Adults          int             `json:"adults" db:"adults"`
	Children        int             `json:"children" db:"children"`
	TotalAmount     decimal.Decimal `json:"total_amount" db:"total_amount"`
	SpecialRequests *string         `json:"special_requests,omitempty" db:"special_requests"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// GuestCount is adults plus children
func (b *Booking) GuestCount() int {
	return b.Adults + b.Children
}

// CalendarDate keys a booking by its check-in date
func (b *Booking) CalendarDate() time.Time { return b.CheckIn }

// SearchText is the haystack for calendar/list substring search
func (b *Booking) SearchText() string {
	return strings.Join([]string{b.GuestName, b.ReferenceCode, b.RoomNumber}, " ")
}

// StatusValue returns the lifecycle status
func (b *Booking) StatusValue() string { return b.Status }

// Event represents a venue reservation (banquet, conference, party)
type Event struct {
	ID            int64           `json:"id" db:"id"`
	ReferenceCode string          `json:"reference_code" db:"reference_code"`
	ClientName    string          `json:"client_name" db:"client_name"`
	Venue         string          `json:"venue" db:"venue"`
	Status        string          `json:"status" db:"status"`
	Date          time.Time       `json:"date" db:"event_date"`
	StartTime     time.Time       `json:"start_time" db:"start_time"`
	EndTime       time.Time       `json:"end_time" db:"end_time"`
	GuestCount    int             `json:"guest_count" db:"guest_count"`
	TotalAmount   decimal.Decimal `json:"total_amount" db:"total_amount"`
	Notes         *string         `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// CalendarDate keys an event by its scheduled date
func (e *Event) CalendarDate() time.Time { return e.Date }

// SearchText is the haystack for calendar/list substring search
func (e *Event) SearchText() string {
	return strings.Join([]string{e.ClientName, e.ReferenceCode, e.Venue}, " ")
}

// StatusValue returns the lifecycle status
func (e *Event) StatusValue() string { return e.Status }

// Room represents a hotel room
type Room struct {
	ID            int64           `json:"id" db:"id"`
	Number        string          `json:"number" db:"number"`
	Type          string          `json:"type" db:"type"`
	Floor         int             `json:"floor" db:"floor"`
	Capacity      int             `json:"capacity" db:"capacity"`
	PricePerNight decimal.Decimal `json:"price_per_night" db:"price_per_night"`
	Status        string          `json:"status" db:"status"`
	Description   *string         `json:"description,omitempty" db:"description"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// InventoryItem represents a stock-tracked supply item
type InventoryItem struct {
	ID            int64           `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	Category      string          `json:"category" db:"category"`
	Quantity      int             `json:"quantity" db:"quantity"`
	Unit          string          `json:"unit" db:"unit"`
	MinStockLevel int             `json:"min_stock_level" db:"min_stock_level"`
	UnitCost      decimal.Decimal `json:"unit_cost" db:"unit_cost"`
	// StockLevel is derived from Quantity and MinStockLevel, never stored
	StockLevel string    `json:"stock_level" db:"-"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// MenuItem represents a restaurant menu entry
type MenuItem struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Category    string          `json:"category" db:"category"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Status      string          `json:"status" db:"status"`
	Description *string         `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// Admin represents a back-office operator account
type Admin struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	Role         string    `json:"role" db:"role"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// BookingReference derives the human-readable code for a booking id
func BookingReference(id int64) string {
	return fmt.Sprintf("BK-%06d", id)
}

// EventReference derives the human-readable code for an event id
func EventReference(id int64) string {
	return fmt.Sprintf("EV-%06d", id)
}
