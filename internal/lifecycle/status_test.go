package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryStatusHasTransitionEntry(t *testing.T) {
	for _, entity := range []string{"booking", "event", "room", "menu"} {
		for _, status := range Statuses(entity) {
			_, ok := Next(entity, status)
			assert.True(t, ok, "entity %s status %s has no transition entry", entity, status)
		}
	}
}

func TestTerminalStatusesHaveNoTransitions(t *testing.T) {
	terminal := map[string]string{
		"booking": BookingCheckedOut,
		"event":   EventCompleted,
	}
	for entity, status := range terminal {
		assert.True(t, IsTerminal(entity, status))
		next, ok := Next(entity, status)
		assert.True(t, ok)
		assert.Empty(t, next)
	}

	assert.True(t, IsTerminal("booking", BookingCancelled))
	assert.True(t, IsTerminal("event", EventCancelled))
}

func TestBookingLifecycleWalk(t *testing.T) {
	walk := []string{BookingPending, BookingConfirmed, BookingCheckedIn, BookingCheckedOut}

	for i := 0; i < len(walk)-1; i++ {
		assert.True(t, CanTransition("booking", walk[i], walk[i+1]),
			"%s -> %s should be allowed", walk[i], walk[i+1])
	}

	// No skipping steps and no going back
	assert.False(t, CanTransition("booking", BookingPending, BookingCheckedIn))
	assert.False(t, CanTransition("booking", BookingPending, BookingCheckedOut))
	assert.False(t, CanTransition("booking", BookingConfirmed, BookingPending))
	assert.False(t, CanTransition("booking", BookingCheckedOut, BookingCheckedIn))

	// Cancellation only from pending
	assert.True(t, CanTransition("booking", BookingPending, BookingCancelled))
	assert.False(t, CanTransition("booking", BookingCheckedIn, BookingCancelled))
}

func TestRoomAndMenuTransitionsAreReversible(t *testing.T) {
	assert.True(t, CanTransition("room", RoomAvailable, RoomMaintenance))
	assert.True(t, CanTransition("room", RoomMaintenance, RoomAvailable))
	assert.True(t, CanTransition("menu", MenuAvailable, MenuSoldOut))
	assert.True(t, CanTransition("menu", MenuSoldOut, MenuAvailable))
}

func TestCanTransitionUnknownEntityOrStatus(t *testing.T) {
	assert.False(t, CanTransition("supplier", "pending", "confirmed"))
	assert.False(t, CanTransition("booking", "nonexistent", BookingConfirmed))

	_, ok := Next("booking", "nonexistent")
	assert.False(t, ok)
}

func TestCanDelete(t *testing.T) {
	assert.True(t, CanDelete("booking", BookingPending))
	assert.True(t, CanDelete("booking", BookingConfirmed))
	assert.False(t, CanDelete("booking", BookingCheckedIn))
	assert.False(t, CanDelete("booking", BookingCheckedOut))
	assert.False(t, CanDelete("booking", BookingCancelled))

	assert.True(t, CanDelete("event", EventPending))
	assert.True(t, CanDelete("event", EventConfirmed))
	assert.False(t, CanDelete("event", EventCompleted))
	assert.False(t, CanDelete("event", EventCancelled))

	// Entities without a delete rule are never deletable through it
	assert.False(t, CanDelete("room", RoomAvailable))
	assert.False(t, CanDelete("inventory", StockIn))
}

func TestStockLevel(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		min      int
		want     string
	}{
		{"zero quantity", 0, 10, StockOut},
		{"negative quantity", -3, 10, StockOut},
		{"below threshold", 5, 10, StockLow},
		{"at threshold", 10, 10, StockIn},
		{"above threshold", 50, 10, StockIn},
		{"zero threshold", 1, 0, StockIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StockLevel(tt.quantity, tt.min))
		})
	}
}

func TestMetaForCoversEveryStatus(t *testing.T) {
	for _, entity := range []string{"booking", "event", "room", "menu"} {
		for _, status := range Statuses(entity) {
			m, ok := MetaFor(status)
			assert.True(t, ok, "no display metadata for %s", status)
			assert.NotEmpty(t, m.Label)
		}
	}

	for _, level := range []string{StockIn, StockLow, StockOut} {
		_, ok := MetaFor(level)
		assert.True(t, ok)
	}
}
