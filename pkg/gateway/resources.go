package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Resource is the typed CRUD surface for one entity collection.
type Resource[T any] struct {
	c      *Client
	entity string
}

func newResource[T any](c *Client, entity string) *Resource[T] {
	return &Resource[T]{c: c, entity: entity}
}

func (r *Resource[T]) path() string {
	return "/api/" + r.entity
}

func (r *Resource[T]) itemPath(id int64) string {
	return fmt.Sprintf("/api/%s/%d", r.entity, id)
}

// List fetches the collection. Responses overtaken by a newer List on the
// same entity return ErrStale.
func (r *Resource[T]) List(ctx context.Context, params ListParams) ([]T, error) {
	q := url.Values{}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Month > 0 {
		q.Set("month", strconv.Itoa(params.Month))
	}
	if params.Year > 0 {
		q.Set("year", strconv.Itoa(params.Year))
	}
	q = cacheBust(q)

	seq := r.c.nextSeq()

	var items []T
	if err := r.c.doJSON(ctx, http.MethodGet, r.path(), q, nil, &items); err != nil {
		return nil, err
	}

	if !r.c.commit("list:"+r.entity, seq) {
		return nil, ErrStale
	}
	return items, nil
}

func (r *Resource[T]) Get(ctx context.Context, id int64) (*T, error) {
	var item T
	if err := r.c.doJSON(ctx, http.MethodGet, r.itemPath(id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Resource[T]) Create(ctx context.Context, payload any) (*T, error) {
	var item T
	if err := r.c.doJSON(ctx, http.MethodPost, r.path(), nil, payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update posts to the item path with _method=PUT, matching the form-era
// method spoofing the API still honors.
func (r *Resource[T]) Update(ctx context.Context, id int64, payload any) (*T, error) {
	q := url.Values{}
	q.Set("_method", "PUT")

	var item T
	if err := r.c.doJSON(ctx, http.MethodPost, r.itemPath(id), q, payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Resource[T]) Remove(ctx context.Context, id int64) error {
	return r.c.doJSON(ctx, http.MethodDelete, r.itemPath(id), nil, nil, nil)
}

// SetStatus drives a lifecycle transition. The server validates the
// transition and answers 409 for an illegal one.
func (r *Resource[T]) SetStatus(ctx context.Context, id int64, status string) (*T, error) {
	body := map[string]string{"status": status}

	var item T
	if err := r.c.doJSON(ctx, http.MethodPost, r.itemPath(id)+"/status", nil, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func calendarQuery(month, year int, params ListParams) url.Values {
	q := url.Values{}
	q.Set("month", strconv.Itoa(month))
	q.Set("year", strconv.Itoa(year))
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	return cacheBust(q)
}

// CalendarBookings fetches the month's bookings pre-grouped by check-in
// date. Stale responses are reported the same way List does.
func (c *Client) CalendarBookings(ctx context.Context, month, year int, params ListParams) (*CalendarBookings, error) {
	seq := c.nextSeq()

	var out CalendarBookings
	if err := c.doJSON(ctx, http.MethodGet, "/api/calendar-bookings", calendarQuery(month, year, params), nil, &out); err != nil {
		return nil, err
	}

	if !c.commit("calendar:bookings", seq) {
		return nil, ErrStale
	}
	return &out, nil
}

// CalendarEvents fetches the month's events pre-grouped by date.
func (c *Client) CalendarEvents(ctx context.Context, month, year int, params ListParams) (*CalendarEvents, error) {
	seq := c.nextSeq()

	var out CalendarEvents
	if err := c.doJSON(ctx, http.MethodGet, "/api/calendar-events", calendarQuery(month, year, params), nil, &out); err != nil {
		return nil, err
	}

	if !c.commit("calendar:events", seq) {
		return nil, ErrStale
	}
	return &out, nil
}
