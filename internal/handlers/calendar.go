package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CalendarBookings - GET /api/calendar-bookings
// Returns the month's bookings grouped by check-in day. With `view=grid`
// the response is the fixed 42-bucket month grid instead.
func (h *Handlers) CalendarBookings(c *gin.Context) {
	params, ok := calendarParams(c)
	if !ok {
		return
	}

	if c.Query("view") == "grid" {
		buckets, err := h.services.Bookings.CalendarGrid(c.Request.Context(), params)
		if err != nil {
			respondError(c, err, "Failed to build booking calendar")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "buckets": buckets})
		return
	}

	cacheable := h.shouldCacheCalendar(params.Search, params.Status)

	if cacheable && h.cacheClient != nil {
		if raw, err := h.cacheClient.GetCalendarRaw(c.Request.Context(), "bookings", params.Year, params.Month); err == nil {
			slog.Debug("Calendar cache hit", "entity", "bookings", "year", params.Year, "month", params.Month)
			c.Data(http.StatusOK, "application/json", raw)
			return
		}
	}

	response, err := h.services.Bookings.Calendar(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to build booking calendar")
		return
	}

	if cacheable && h.cacheClient != nil {
		h.cacheClient.SetCalendar(c.Request.Context(), "bookings", params.Year, params.Month, response)
	}

	c.JSON(http.StatusOK, response)
}

// CalendarEvents - GET /api/calendar-events
func (h *Handlers) CalendarEvents(c *gin.Context) {
	params, ok := calendarParams(c)
	if !ok {
		return
	}

	if c.Query("view") == "grid" {
		buckets, err := h.services.Events.CalendarGrid(c.Request.Context(), params)
		if err != nil {
			respondError(c, err, "Failed to build event calendar")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "buckets": buckets})
		return
	}

	cacheable := h.shouldCacheCalendar(params.Search, params.Status)

	if cacheable && h.cacheClient != nil {
		if raw, err := h.cacheClient.GetCalendarRaw(c.Request.Context(), "events", params.Year, params.Month); err == nil {
			slog.Debug("Calendar cache hit", "entity", "events", "year", params.Year, "month", params.Month)
			c.Data(http.StatusOK, "application/json", raw)
			return
		}
	}

	response, err := h.services.Events.Calendar(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to build event calendar")
		return
	}

	if cacheable && h.cacheClient != nil {
		h.cacheClient.SetCalendar(c.Request.Context(), "events", params.Year, params.Month, response)
	}

	c.JSON(http.StatusOK, response)
}

// shouldCacheCalendar limits caching to unfiltered month views, where hit
// rates are worth the invalidation traffic
func (h *Handlers) shouldCacheCalendar(search, status string) bool {
	if search != "" {
		return false
	}
	return status == "" || status == "all"
}
