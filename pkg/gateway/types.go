package gateway

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusMeta is the display metadata the server attaches to statuses.
type StatusMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Transition is an allowed next status together with its action label.
type Transition struct {
	To     string `json:"to"`
	Action string `json:"action"`
}

// Booking mirrors the server's booking resource, including the decorated
// fields list and get responses carry.
type Booking struct {
	ID              int64           `json:"id"`
	ReferenceCode   string          `json:"reference_code"`
	GuestName       string          `json:"guest_name"`
	RoomNumber      string          `json:"room_number"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"payment_status"`
	CheckIn         time.Time       `json:"check_in"`
	CheckOut        time.Time       `json:"check_out"`
	Adults          int             `json:"adults"`
	Children        int             `json:"children"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	SpecialRequests *string         `json:"special_requests,omitempty"`
	Nights          int             `json:"nights"`
	StatusMeta      *StatusMeta     `json:"status_meta,omitempty"`
	NextActions     []Transition    `json:"next_actions"`
	CanDelete       bool            `json:"can_delete"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type Event struct {
	ID            int64           `json:"id"`
	ReferenceCode string          `json:"reference_code"`
	ClientName    string          `json:"client_name"`
	Venue         string          `json:"venue"`
	Status        string          `json:"status"`
	Date          time.Time       `json:"date"`
	StartTime     time.Time       `json:"start_time"`
	EndTime       time.Time       `json:"end_time"`
	GuestCount    int             `json:"guest_count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Notes         *string         `json:"notes,omitempty"`
	StatusMeta    *StatusMeta     `json:"status_meta,omitempty"`
	NextActions   []Transition    `json:"next_actions"`
	CanDelete     bool            `json:"can_delete"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type Room struct {
	ID            int64           `json:"id"`
	Number        string          `json:"number"`
	Type          string          `json:"type"`
	Floor         int             `json:"floor"`
	Capacity      int             `json:"capacity"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	Status        string          `json:"status"`
	Description   *string         `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type InventoryItem struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	Unit          string          `json:"unit"`
	MinStockLevel int             `json:"min_stock_level"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	StockLevel    string          `json:"stock_level"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type MenuItem struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	Description *string         `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// The remaining entities live on collaborator services reached through the
// same REST conventions. Their shapes follow the back-office forms.

type Supplier struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Category      string    `json:"category"`
	Address       *string   `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Employee struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Position  string          `json:"position"`
	Salary    decimal.Decimal `json:"salary"`
	HireDate  time.Time       `json:"hire_date"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type Admin struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Discount struct {
	ID         int64           `json:"id"`
	Code       string          `json:"code"`
	Percentage decimal.Decimal `json:"percentage"`
	ValidFrom  time.Time       `json:"valid_from"`
	ValidUntil time.Time       `json:"valid_until"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type Order struct {
	ID          int64           `json:"id"`
	TableNumber string          `json:"table_number"`
	Status      string          `json:"status"`
	Total       decimal.Decimal `json:"total"`
	Items       []OrderItem     `json:"items"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type OrderItem struct {
	MenuItemID int64           `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

// ClientRecord is a guest profile. Named to avoid colliding with the
// gateway Client itself.
type ClientRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListParams narrows a List call. Zero values are omitted from the query.
type ListParams struct {
	Search string
	Status string
	Month  int
	Year   int
}

// CalendarBookings is the pre-grouped shape of GET /api/calendar-bookings.
type CalendarBookings struct {
	Success  bool                 `json:"success"`
	Bookings map[string][]Booking `json:"bookings"`
}

// CalendarEvents is the pre-grouped shape of GET /api/calendar-events.
type CalendarEvents struct {
	Success bool               `json:"success"`
	Events  map[string][]Event `json:"events"`
}
