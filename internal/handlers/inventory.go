package handlers

import (
	"net/http"

	"innkeep/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateInventoryItem - POST /api/inventory
func (h *Handlers) CreateInventoryItem(c *gin.Context) {
	var req models.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.services.Inventory.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create inventory item")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListInventoryItems - GET /api/inventory
func (h *Handlers) ListInventoryItems(c *gin.Context) {
	response, err := h.services.Inventory.List(c.Request.Context(), c.Query("search"), c.DefaultQuery("category", "all"))
	if err != nil {
		respondError(c, err, "Failed to list inventory items")
		return
	}

	if response == nil {
		response = []*models.InventoryItem{}
	}
	c.JSON(http.StatusOK, response)
}

// GetInventoryItem - GET /api/inventory/:id
func (h *Handlers) GetInventoryItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	response, err := h.services.Inventory.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get inventory item")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateInventoryItem - PUT /api/inventory/:id
func (h *Handlers) UpdateInventoryItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.services.Inventory.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update inventory item")
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteInventoryItem - DELETE /api/inventory/:id
func (h *Handlers) DeleteInventoryItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.services.Inventory.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete inventory item")
		return
	}

	c.Status(http.StatusNoContent)
}
