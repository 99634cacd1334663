package models

import "time"

// NATS subjects for reservation lifecycle notifications
const (
	SubjectReservationCreated       = "reservation.created"
	SubjectReservationStatusChanged = "reservation.status_changed"
	SubjectReservationDeleted       = "reservation.deleted"
	SubjectInventoryLowStock        = "inventory.low_stock"
)

// ReservationCreatedEvent is published when a booking or event is created
type ReservationCreatedEvent struct {
	Entity        string    `json:"entity"`
	ID            int64     `json:"id"`
	ReferenceCode string    `json:"reference_code"`
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}

// ReservationStatusChangedEvent is published on every status transition
type ReservationStatusChangedEvent struct {
	Entity        string    `json:"entity"`
	ID            int64     `json:"id"`
	ReferenceCode string    `json:"reference_code"`
	FromStatus    string    `json:"from_status"`
	ToStatus      string    `json:"to_status"`
	Timestamp     time.Time `json:"timestamp"`
}

// ReservationDeletedEvent is published when a booking or event is deleted
type ReservationDeletedEvent struct {
	Entity        string    `json:"entity"`
	ID            int64     `json:"id"`
	ReferenceCode string    `json:"reference_code"`
	Timestamp     time.Time `json:"timestamp"`
}

// InventoryLowStockEvent is published when an update drops an item to
// low-stock or out-of-stock
type InventoryLowStockEvent struct {
	ItemID     int64     `json:"item_id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	StockLevel string    `json:"stock_level"`
	Timestamp  time.Time `json:"timestamp"`
}
