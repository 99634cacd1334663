package consumers

import (
	"encoding/json"
	"log/slog"

	"innkeep/internal/models"
	"innkeep/internal/repository"

	"github.com/nats-io/stan.go"
)

type Handlers struct {
	repos *repository.Repositories
}

func NewHandlers(repos *repository.Repositories) *Handlers {
	return &Handlers{
		repos: repos,
	}
}

func (h *Handlers) HandleReservationCreated(m *stan.Msg) {
	var event models.ReservationCreatedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal reservation created event", "error", err)
		return
	}

	slog.Info("Reservation created",
		"entity", event.Entity,
		"id", event.ID,
		"reference", event.ReferenceCode,
		"status", event.Status,
	)

	// Confirmation emails and channel-manager pushes would hang off this event.

	m.Ack()
}

func (h *Handlers) HandleReservationStatusChanged(m *stan.Msg) {
	var event models.ReservationStatusChangedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal reservation status changed event", "error", err)
		return
	}

	slog.Info("Reservation status changed",
		"entity", event.Entity,
		"id", event.ID,
		"reference", event.ReferenceCode,
		"from", event.FromStatus,
		"to", event.ToStatus,
	)

	m.Ack()
}

func (h *Handlers) HandleReservationDeleted(m *stan.Msg) {
	var event models.ReservationDeletedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal reservation deleted event", "error", err)
		return
	}

	slog.Info("Reservation deleted",
		"entity", event.Entity,
		"id", event.ID,
		"reference", event.ReferenceCode,
	)

	m.Ack()
}

func (h *Handlers) HandleInventoryLowStock(m *stan.Msg) {
	var event models.InventoryLowStockEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal low stock event", "error", err)
		return
	}

	slog.Warn("Inventory item running low",
		"item_id", event.ItemID,
		"name", event.Name,
		"quantity", event.Quantity,
		"level", event.StockLevel,
	)

	m.Ack()
}
