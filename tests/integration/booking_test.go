package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"innkeep/internal/dateutil"
	"innkeep/internal/lifecycle"
	"innkeep/internal/models"
	"innkeep/pkg/gateway"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingFullLifecycle(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	room, err := client.Rooms.Create(ctx, models.CreateRoomRequest{
		Number:        uniqueRoomNumber(),
		Type:          "standard",
		Floor:         9,
		Capacity:      2,
		PricePerNight: decimal.NewFromInt(120),
	})
	require.NoError(t, err)

	checkIn := midnight(time.Now()).AddDate(0, 0, 14)
	checkOut := checkIn.AddDate(0, 0, 5)

	booking, err := client.Bookings.Create(ctx, models.CreateBookingRequest{
		GuestName:   "Integration Guest",
		RoomNumber:  room.Number,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Adults:      2,
		TotalAmount: decimal.NewFromInt(600),
	})
	require.NoError(t, err)

	assert.Equal(t, lifecycle.BookingPending, booking.Status)
	assert.Equal(t, lifecycle.PaymentUnpaid, booking.PaymentStatus)
	assert.Equal(t, 5, booking.Nights)
	assert.True(t, booking.CanDelete)
	assert.NotEmpty(t, booking.ReferenceCode)

	// Walk the whole lifecycle
	for _, status := range []string{
		lifecycle.BookingConfirmed,
		lifecycle.BookingCheckedIn,
		lifecycle.BookingCheckedOut,
	} {
		booking, err = client.Bookings.SetStatus(ctx, booking.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, booking.Status)
	}

	assert.Empty(t, booking.NextActions)
	assert.False(t, booking.CanDelete)

	// Checked-out is terminal, both for transitions and deletion
	_, err = client.Bookings.SetStatus(ctx, booking.ID, lifecycle.BookingCancelled)
	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)

	err = client.Bookings.Remove(ctx, booking.ID)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
}

func TestBookingSkippingTransitionRejected(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	checkIn := midnight(time.Now()).AddDate(0, 0, 7)

	booking, err := client.Bookings.Create(ctx, models.CreateBookingRequest{
		GuestName:  "Impatient Guest",
		RoomNumber: uniqueRoomNumber(),
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 2),
		Adults:     1,
	})
	require.NoError(t, err)

	_, err = client.Bookings.SetStatus(ctx, booking.ID, lifecycle.BookingCheckedOut)
	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)

	// Pending bookings may still be deleted
	require.NoError(t, client.Bookings.Remove(ctx, booking.ID))
}

func TestBookingReversedDatesRejected(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	checkIn := midnight(time.Now()).AddDate(0, 0, 7)

	_, err := client.Bookings.Create(ctx, models.CreateBookingRequest{
		GuestName:  "Backwards Guest",
		RoomNumber: uniqueRoomNumber(),
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, -3),
		Adults:     1,
	})

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestCalendarBookingsGroupsByCheckInDate(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	checkIn := midnight(time.Now()).AddDate(0, 1, 0)

	booking, err := client.Bookings.Create(ctx, models.CreateBookingRequest{
		GuestName:  "Calendar Guest",
		RoomNumber: uniqueRoomNumber(),
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 3),
		Adults:     2,
	})
	require.NoError(t, err)

	cal, err := client.CalendarBookings(ctx, int(checkIn.Month()), checkIn.Year(), gateway.ListParams{})
	require.NoError(t, err)
	require.True(t, cal.Success)

	day := cal.Bookings[dateutil.DayKey(checkIn)]
	found := false
	for _, b := range day {
		if b.ID == booking.ID {
			found = true
		}
	}
	assert.True(t, found, "booking missing from its check-in day")

	require.NoError(t, client.Bookings.Remove(ctx, booking.ID))
}
