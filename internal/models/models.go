package models

import (
	"time"

	"github.com/shopspring/decimal"

	"innkeep/internal/lifecycle"
)

// CreateBookingRequest - payload for creating a booking
type CreateBookingRequest struct {
	GuestName       string          `json:"guest_name" binding:"required"`
	RoomNumber      string          `json:"room_number" binding:"required"`
	CheckIn         time.Time       `json:"check_in" binding:"required"`
	CheckOut        time.Time       `json:"check_out" binding:"required"`
	Adults          int             `json:"adults" binding:"required,min=1"`
	Children        int             `json:"children" binding:"min=0"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	SpecialRequests *string         `json:"special_requests,omitempty"`
}

// UpdateBookingRequest - payload for editing booking fields. Status changes
// go through the dedicated status endpoint, never through update.
type UpdateBookingRequest struct {
	GuestName       *string          `json:"guest_name,omitempty"`
	RoomNumber      *string          `json:"room_number,omitempty"`
	CheckIn         *time.Time       `json:"check_in,omitempty"`
	CheckOut        *time.Time       `json:"check_out,omitempty"`
	Adults          *int             `json:"adults,omitempty"`
	Children        *int             `json:"children,omitempty"`
	TotalAmount     *decimal.Decimal `json:"total_amount,omitempty"`
	PaymentStatus   *string          `json:"payment_status,omitempty"`
	SpecialRequests *string          `json:"special_requests,omitempty"`
}

// SetStatusRequest - payload for the status transition endpoints
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListBookingsParams - filters accepted by booking list and calendar queries
type ListBookingsParams struct {
	Search string
	Status string
	Month  int
	Year   int
}

// BookingResponse decorates a booking with derived presentation fields
type BookingResponse struct {
	Booking
	Nights      int                    `json:"nights"`
	StatusMeta  *lifecycle.Meta        `json:"status_meta,omitempty"`
	NextActions []lifecycle.Transition `json:"next_actions"`
	CanDelete   bool                   `json:"can_delete"`
}

// CreateEventRequest - payload for creating an event
type CreateEventRequest struct {
	ClientName  string          `json:"client_name" binding:"required"`
	Venue       string          `json:"venue" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	StartTime   time.Time       `json:"start_time" binding:"required"`
	EndTime     time.Time       `json:"end_time" binding:"required"`
	GuestCount  int             `json:"guest_count" binding:"required,min=1"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       *string         `json:"notes,omitempty"`
}

// UpdateEventRequest - payload for editing event fields
type UpdateEventRequest struct {
	ClientName  *string          `json:"client_name,omitempty"`
	Venue       *string          `json:"venue,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	StartTime   *time.Time       `json:"start_time,omitempty"`
	EndTime     *time.Time       `json:"end_time,omitempty"`
	GuestCount  *int             `json:"guest_count,omitempty"`
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

// EventResponse decorates an event with derived presentation fields
type EventResponse struct {
	Event
	StatusMeta  *lifecycle.Meta        `json:"status_meta,omitempty"`
	NextActions []lifecycle.Transition `json:"next_actions"`
	CanDelete   bool                   `json:"can_delete"`
}

// CreateRoomRequest - payload for creating a room
type CreateRoomRequest struct {
	Number        string          `json:"number" binding:"required"`
	Type          string          `json:"type" binding:"required"`
	Floor         int             `json:"floor"`
	Capacity      int             `json:"capacity" binding:"required,min=1"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	Description   *string         `json:"description,omitempty"`
}

// UpdateRoomRequest - payload for editing room fields
type UpdateRoomRequest struct {
	Number        *string          `json:"number,omitempty"`
	Type          *string          `json:"type,omitempty"`
	Floor         *int             `json:"floor,omitempty"`
	Capacity      *int             `json:"capacity,omitempty"`
	PricePerNight *decimal.Decimal `json:"price_per_night,omitempty"`
	Description   *string          `json:"description,omitempty"`
}

// CreateInventoryItemRequest - payload for creating an inventory item
type CreateInventoryItemRequest struct {
	Name          string          `json:"name" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	Quantity      int             `json:"quantity" binding:"min=0"`
	Unit          string          `json:"unit" binding:"required"`
	MinStockLevel int             `json:"min_stock_level" binding:"min=0"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
}

// UpdateInventoryItemRequest - payload for editing inventory fields
type UpdateInventoryItemRequest struct {
	Name          *string          `json:"name,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Quantity      *int             `json:"quantity,omitempty"`
	Unit          *string          `json:"unit,omitempty"`
	MinStockLevel *int             `json:"min_stock_level,omitempty"`
	UnitCost      *decimal.Decimal `json:"unit_cost,omitempty"`
}

// CreateMenuItemRequest - payload for creating a menu item
type CreateMenuItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Description *string         `json:"description,omitempty"`
}

// UpdateMenuItemRequest - payload for editing menu fields
type UpdateMenuItemRequest struct {
	Name        *string          `json:"name,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// CalendarBookingsResponse - shape of GET /api/calendar-bookings
type CalendarBookingsResponse struct {
	Success  bool                  `json:"success"`
	Bookings map[string][]*Booking `json:"bookings"`
}

// CalendarEventsResponse - shape of GET /api/calendar-events
type CalendarEventsResponse struct {
	Success bool                `json:"success"`
	Events  map[string][]*Event `json:"events"`
}

// ErrorResponse - error envelope returned on non-2xx responses
type ErrorResponse struct {
	Error string `json:"error"`
}
