package handlers

import (
	"net/http"

	"innkeep/internal/metrics"
	"innkeep/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateMenuItem - POST /api/menu
func (h *Handlers) CreateMenuItem(c *gin.Context) {
	var req models.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.services.Menu.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create menu item")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListMenuItems - GET /api/menu
func (h *Handlers) ListMenuItems(c *gin.Context) {
	response, err := h.services.Menu.List(c.Request.Context(), c.Query("search"), c.DefaultQuery("status", "all"))
	if err != nil {
		respondError(c, err, "Failed to list menu items")
		return
	}

	if response == nil {
		response = []*models.MenuItem{}
	}
	c.JSON(http.StatusOK, response)
}

// GetMenuItem - GET /api/menu/:id
func (h *Handlers) GetMenuItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	response, err := h.services.Menu.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get menu item")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateMenuItem - PUT /api/menu/:id
func (h *Handlers) UpdateMenuItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.services.Menu.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update menu item")
		return
	}

	c.JSON(http.StatusOK, response)
}

// SetMenuItemStatus - POST /api/menu/:id/status
func (h *Handlers) SetMenuItemStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.services.Menu.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err, "Failed to update menu item status")
		return
	}

	metrics.ObserveTransition("menu", req.Status)
	c.JSON(http.StatusOK, response)
}

// DeleteMenuItem - DELETE /api/menu/:id
func (h *Handlers) DeleteMenuItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.services.Menu.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete menu item")
		return
	}

	c.Status(http.StatusNoContent)
}
