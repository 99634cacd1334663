package repository

import (
	"innkeep/internal/database"
)

type Repositories struct {
	Bookings  *BookingRepository
	Events    *EventRepository
	Rooms     *RoomRepository
	Inventory *InventoryRepository
	Menu      *MenuRepository
	Admins    *AdminRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Bookings:  NewBookingRepository(db),
		Events:    NewEventRepository(db),
		Rooms:     NewRoomRepository(db),
		Inventory: NewInventoryRepository(db),
		Menu:      NewMenuRepository(db),
		Admins:    NewAdminRepository(db),
	}
}
