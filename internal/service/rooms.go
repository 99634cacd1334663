package service

import (
	"context"
	"fmt"

	"innkeep/internal/apperrors"
	"innkeep/internal/lifecycle"
	"innkeep/internal/models"
	"innkeep/internal/repository"
)

type RoomService struct {
	roomRepo *repository.RoomRepository
}

func NewRoomService(roomRepo *repository.RoomRepository) *RoomService {
	return &RoomService{roomRepo: roomRepo}
}

func (s *RoomService) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.Room, error) {
	if req.PricePerNight.IsNegative() {
		return nil, fmt.Errorf("%w: price per night must not be negative", apperrors.ErrValidation)
	}

	room := &models.Room{
		Number:        req.Number,
		Type:          req.Type,
		Floor:         req.Floor,
		Capacity:      req.Capacity,
		PricePerNight: req.PricePerNight,
		Status:        lifecycle.RoomAvailable,
		Description:   req.Description,
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return room, nil
}

func (s *RoomService) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	return s.roomRepo.GetByID(ctx, id)
}

func (s *RoomService) List(ctx context.Context, search, status string) ([]*models.Room, error) {
	rooms, err := s.roomRepo.List(ctx, search, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) Update(ctx context.Context, id int64, req *models.UpdateRoomRequest) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Number != nil {
		room.Number = *req.Number
	}
	if req.Type != nil {
		room.Type = *req.Type
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.PricePerNight != nil {
		room.PricePerNight = *req.PricePerNight
	}
	if req.Description != nil {
		room.Description = req.Description
	}

	if room.Capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be at least one", apperrors.ErrValidation)
	}
	if room.PricePerNight.IsNegative() {
		return nil, fmt.Errorf("%w: price per night must not be negative", apperrors.ErrValidation)
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return room, nil
}

func (s *RoomService) SetStatus(ctx context.Context, id int64, status string) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !lifecycle.CanTransition("room", room.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, room.Status, status)
	}

	if err := s.roomRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update room status: %w", err)
	}
	room.Status = status
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, id int64) error {
	if _, err := s.roomRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.roomRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}
