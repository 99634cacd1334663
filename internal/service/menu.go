package service

import (
	"context"
	"fmt"

	"innkeep/internal/apperrors"
	"innkeep/internal/lifecycle"
	"innkeep/internal/models"
	"innkeep/internal/repository"
)

type MenuService struct {
	menuRepo *repository.MenuRepository
}

func NewMenuService(menuRepo *repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

func (s *MenuService) Create(ctx context.Context, req *models.CreateMenuItemRequest) (*models.MenuItem, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}

	item := &models.MenuItem{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Status:      lifecycle.MenuAvailable,
		Description: req.Description,
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return item, nil
}

func (s *MenuService) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	return s.menuRepo.GetByID(ctx, id)
}

func (s *MenuService) List(ctx context.Context, search, status string) ([]*models.MenuItem, error) {
	items, err := s.menuRepo.List(ctx, search, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

func (s *MenuService) Update(ctx context.Context, id int64, req *models.UpdateMenuItemRequest) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Description != nil {
		item.Description = req.Description
	}

	if item.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}

	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return item, nil
}

func (s *MenuService) SetStatus(ctx context.Context, id int64, status string) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !lifecycle.CanTransition("menu", item.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, item.Status, status)
	}

	if err := s.menuRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update menu item status: %w", err)
	}
	item.Status = status
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, id int64) error {
	if _, err := s.menuRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.menuRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}
