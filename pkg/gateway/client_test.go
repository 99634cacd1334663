package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSendsFiltersAndCacheBust(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"guest_name":"John Smith","status":"pending"}]`))
	}))
	defer server.Close()

	client := New(server.URL, "admin@innkeep.local", "secret")

	items, err := client.Bookings.List(context.Background(), ListParams{
		Search: "smith",
		Status: "pending",
		Month:  3,
		Year:   2025,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "John Smith", items[0].GuestName)

	q := got.URL.Query()
	assert.Equal(t, "/api/bookings", got.URL.Path)
	assert.Equal(t, "smith", q.Get("search"))
	assert.Equal(t, "pending", q.Get("status"))
	assert.Equal(t, "3", q.Get("month"))
	assert.Equal(t, "2025", q.Get("year"))
	assert.NotEmpty(t, q.Get("_t"), "cache-bust timestamp missing")

	user, pass, ok := got.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "admin@innkeep.local", user)
	assert.Equal(t, "secret", pass)
}

func TestUpdateUsesMethodSpoofing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/rooms/7", r.URL.Path)
		assert.Equal(t, "PUT", r.URL.Query().Get("_method"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "deluxe", body["type"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"number":"101","type":"deluxe"}`))
	}))
	defer server.Close()

	client := New(server.URL, "", "")

	room, err := client.Rooms.Update(context.Background(), 7, map[string]string{"type": "deluxe"})
	require.NoError(t, err)
	assert.Equal(t, "deluxe", room.Type)
}

func TestServerErrorSurfacesAsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"something went wrong"}`))
	}))
	defer server.Close()

	client := New(server.URL, "", "")

	_, err := client.Bookings.List(context.Background(), ListParams{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "something went wrong", apiErr.Message)
}

func TestInvalidTransitionSurfacesConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings/3/status", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"invalid status transition"}`))
	}))
	defer server.Close()

	client := New(server.URL, "", "")

	_, err := client.Bookings.SetStatus(context.Background(), 3, "checked_out")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
}

func TestRemove(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/menu/12", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(server.URL, "", "")
	assert.NoError(t, client.Menu.Remove(context.Background(), 12))
}

func TestCommitDiscardsOutOfOrderResponses(t *testing.T) {
	client := New("http://example.invalid", "", "")

	first := client.nextSeq()
	second := client.nextSeq()

	assert.True(t, client.commit("list:bookings", second))
	assert.False(t, client.commit("list:bookings", first),
		"earlier request finishing late must be reported stale")

	// Other resources keep their own ordering
	assert.True(t, client.commit("list:events", first))
}

func TestSlowListResponseReturnsErrStale(t *testing.T) {
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search") == "slow" {
			close(firstArrived)
			<-releaseFirst
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL, "", "")

	errCh := make(chan error, 1)
	go func() {
		_, err := client.Bookings.List(context.Background(), ListParams{Search: "slow"})
		errCh <- err
	}()

	<-firstArrived

	_, err := client.Bookings.List(context.Background(), ListParams{Search: "fast"})
	require.NoError(t, err)

	close(releaseFirst)

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrStale)
	case <-time.After(5 * time.Second):
		t.Fatal("slow request never returned")
	}
}

func TestCalendarBookings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/calendar-bookings", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("month"))
		assert.Equal(t, "2025", r.URL.Query().Get("year"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"bookings":{"2025-03-14":[{"id":1,"guest_name":"John Smith"}]}}`))
	}))
	defer server.Close()

	client := New(server.URL, "", "")

	cal, err := client.CalendarBookings(context.Background(), 3, 2025, ListParams{})
	require.NoError(t, err)
	assert.True(t, cal.Success)
	require.Len(t, cal.Bookings["2025-03-14"], 1)
	assert.Equal(t, "John Smith", cal.Bookings["2025-03-14"][0].GuestName)
}
