package handlers

import (
	"net/http"

	"innkeep/internal/metrics"
	"innkeep/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateRoom - POST /api/rooms
func (h *Handlers) CreateRoom(c *gin.Context) {
	var req models.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.services.Rooms.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create room")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListRooms - GET /api/rooms
func (h *Handlers) ListRooms(c *gin.Context) {
	response, err := h.services.Rooms.List(c.Request.Context(), c.Query("search"), c.DefaultQuery("status", "all"))
	if err != nil {
		respondError(c, err, "Failed to list rooms")
		return
	}

	if response == nil {
		response = []*models.Room{}
	}
	c.JSON(http.StatusOK, response)
}

// GetRoom - GET /api/rooms/:id
func (h *Handlers) GetRoom(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	response, err := h.services.Rooms.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get room")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateRoom - PUT /api/rooms/:id
func (h *Handlers) UpdateRoom(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.services.Rooms.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update room")
		return
	}

	c.JSON(http.StatusOK, response)
}

// SetRoomStatus - POST /api/rooms/:id/status
func (h *Handlers) SetRoomStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.services.Rooms.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err, "Failed to update room status")
		return
	}

	metrics.ObserveTransition("room", req.Status)
	c.JSON(http.StatusOK, response)
}

// DeleteRoom - DELETE /api/rooms/:id
func (h *Handlers) DeleteRoom(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.services.Rooms.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete room")
		return
	}

	c.Status(http.StatusNoContent)
}
