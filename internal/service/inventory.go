package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"innkeep/internal/apperrors"
	"innkeep/internal/lifecycle"
	"innkeep/internal/messaging"
	"innkeep/internal/models"
	"innkeep/internal/repository"
)

type InventoryService struct {
	inventoryRepo *repository.InventoryRepository
	natsClient    *messaging.NATSClient
}

func NewInventoryService(inventoryRepo *repository.InventoryRepository, natsClient *messaging.NATSClient) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo, natsClient: natsClient}
}

func (s *InventoryService) Create(ctx context.Context, req *models.CreateInventoryItemRequest) (*models.InventoryItem, error) {
	if req.UnitCost.IsNegative() {
		return nil, fmt.Errorf("%w: unit cost must not be negative", apperrors.ErrValidation)
	}

	item := &models.InventoryItem{
		Name:          req.Name,
		Category:      req.Category,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		MinStockLevel: req.MinStockLevel,
		UnitCost:      req.UnitCost,
	}

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}

	s.deriveLevel(item)
	return item, nil
}

func (s *InventoryService) GetByID(ctx context.Context, id int64) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.deriveLevel(item)
	return item, nil
}

func (s *InventoryService) List(ctx context.Context, search, category string) ([]*models.InventoryItem, error) {
	items, err := s.inventoryRepo.List(ctx, search, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	for _, item := range items {
		s.deriveLevel(item)
	}
	return items, nil
}

func (s *InventoryService) Update(ctx context.Context, id int64, req *models.UpdateInventoryItemRequest) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	prevLevel := lifecycle.StockLevel(item.Quantity, item.MinStockLevel)

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.MinStockLevel != nil {
		item.MinStockLevel = *req.MinStockLevel
	}
	if req.UnitCost != nil {
		item.UnitCost = *req.UnitCost
	}

	if item.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", apperrors.ErrValidation)
	}
	if item.UnitCost.IsNegative() {
		return nil, fmt.Errorf("%w: unit cost must not be negative", apperrors.ErrValidation)
	}

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}

	s.deriveLevel(item)

	// Alert once on the transition into a depleted level
	if item.StockLevel != lifecycle.StockIn && item.StockLevel != prevLevel && s.natsClient != nil {
		err := s.natsClient.Publish(models.SubjectInventoryLowStock, models.InventoryLowStockEvent{
			ItemID:     item.ID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			StockLevel: item.StockLevel,
			Timestamp:  time.Now().UTC(),
		})
		if err != nil {
			slog.Warn("Failed to publish low stock event", "item_id", item.ID, "error", err)
		}
	}

	return item, nil
}

func (s *InventoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.inventoryRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.inventoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return nil
}

func (s *InventoryService) deriveLevel(item *models.InventoryItem) {
	item.StockLevel = lifecycle.StockLevel(item.Quantity, item.MinStockLevel)
}
