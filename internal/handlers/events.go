package handlers

import (
	"net/http"

	"innkeep/internal/metrics"
	"innkeep/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateEvent - POST /api/events
func (h *Handlers) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.services.Events.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListEvents - GET /api/events
func (h *Handlers) ListEvents(c *gin.Context) {
	response, err := h.services.Events.List(c.Request.Context(), listParams(c))
	if err != nil {
		respondError(c, err, "Failed to list events")
		return
	}

	if response == nil {
		response = []*models.EventResponse{}
	}
	c.JSON(http.StatusOK, response)
}

// GetEvent - GET /api/events/:id
func (h *Handlers) GetEvent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	response, err := h.services.Events.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get event")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateEvent - PUT /api/events/:id
func (h *Handlers) UpdateEvent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.services.Events.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update event")
		return
	}

	c.JSON(http.StatusOK, response)
}

// SetEventStatus - POST /api/events/:id/status
func (h *Handlers) SetEventStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.services.Events.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err, "Failed to update event status")
		return
	}

	metrics.ObserveTransition("event", req.Status)
	c.JSON(http.StatusOK, response)
}

// DeleteEvent - DELETE /api/events/:id
func (h *Handlers) DeleteEvent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.services.Events.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete event")
		return
	}

	c.Status(http.StatusNoContent)
}
