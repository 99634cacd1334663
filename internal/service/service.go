package service

import (
	"innkeep/internal/cache"
	"innkeep/internal/messaging"
	"innkeep/internal/repository"
	"innkeep/internal/search"
)

type Services struct {
	Bookings  *BookingService
	Events    *EventService
	Rooms     *RoomService
	Inventory *InventoryService
	Menu      *MenuService
}

// NewServices wires the per-entity services. searchClient and cacheClient
// may be nil; every service treats them as optional accelerators.
func NewServices(repos *repository.Repositories, natsClient *messaging.NATSClient, searchClient *search.Client, cacheClient *cache.Client) *Services {
	return &Services{
		Bookings:  NewBookingService(repos.Bookings, natsClient, searchClient, cacheClient),
		Events:    NewEventService(repos.Events, natsClient, searchClient, cacheClient),
		Rooms:     NewRoomService(repos.Rooms),
		Inventory: NewInventoryService(repos.Inventory, natsClient),
		Menu:      NewMenuService(repos.Menu),
	}
}
