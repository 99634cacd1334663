package handlers

import (
	"net/http"

	"innkeep/internal/metrics"
	"innkeep/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateBooking - POST /api/bookings
func (h *Handlers) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.services.Bookings.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListBookings - GET /api/bookings
func (h *Handlers) ListBookings(c *gin.Context) {
	response, err := h.services.Bookings.List(c.Request.Context(), listParams(c))
	if err != nil {
		respondError(c, err, "Failed to list bookings")
		return
	}

	if response == nil {
		response = []*models.BookingResponse{}
	}
	c.JSON(http.StatusOK, response)
}

// GetBooking - GET /api/bookings/:id
func (h *Handlers) GetBooking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	response, err := h.services.Bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get booking")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateBooking - PUT /api/bookings/:id (also reached via the
// POST + _method=PUT spoofing rewritten by MethodOverride)
func (h *Handlers) UpdateBooking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.services.Bookings.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, response)
}

// SetBookingStatus - POST /api/bookings/:id/status
func (h *Handlers) SetBookingStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.services.Bookings.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err, "Failed to update booking status")
		return
	}

	metrics.ObserveTransition("booking", req.Status)
	c.JSON(http.StatusOK, response)
}

// DeleteBooking - DELETE /api/bookings/:id
func (h *Handlers) DeleteBooking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.services.Bookings.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete booking")
		return
	}

	c.Status(http.StatusNoContent)
}
