package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"innkeep/internal/apperrors"
	"innkeep/internal/cache"
	"innkeep/internal/calendar"
	"innkeep/internal/dateutil"
	"innkeep/internal/lifecycle"
	"innkeep/internal/messaging"
	"innkeep/internal/models"
	"innkeep/internal/repository"
	"innkeep/internal/search"
)

type EventService struct {
	eventRepo    *repository.EventRepository
	natsClient   *messaging.NATSClient
	searchClient *search.Client
	cacheClient  *cache.Client
}

func NewEventService(eventRepo *repository.EventRepository, natsClient *messaging.NATSClient, searchClient *search.Client, cacheClient *cache.Client) *EventService {
	return &EventService{
		eventRepo:    eventRepo,
		natsClient:   natsClient,
		searchClient: searchClient,
		cacheClient:  cacheClient,
	}
}

func validateEventTimes(start, end time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("%w: event end must be after start", apperrors.ErrValidation)
	}
	return nil
}

func (s *EventService) Create(ctx context.Context, req *models.CreateEventRequest) (*models.EventResponse, error) {
	if err := validateEventTimes(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if req.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: total amount must not be negative", apperrors.ErrValidation)
	}

	event := &models.Event{
		ClientName:  req.ClientName,
		Venue:       req.Venue,
		Status:      lifecycle.EventPending,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		GuestCount:  req.GuestCount,
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.afterWrite(ctx, event)
	s.publish(models.SubjectReservationCreated, models.ReservationCreatedEvent{
		Entity:        "event",
		ID:            event.ID,
		ReferenceCode: event.ReferenceCode,
		Status:        event.Status,
		Timestamp:     time.Now().UTC(),
	})

	return s.decorate(event), nil
}

func (s *EventService) GetByID(ctx context.Context, id int64) (*models.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.decorate(event), nil
}

func (s *EventService) List(ctx context.Context, params models.ListBookingsParams) ([]*models.EventResponse, error) {
	var events []*models.Event
	var err error

	if params.Search != "" && s.searchClient != nil {
		events, err = s.listViaIndex(ctx, params)
		if err != nil {
			slog.Warn("Search index lookup failed, falling back to SQL", "error", err)
			events, err = s.eventRepo.List(ctx, params)
		}
	} else {
		events, err = s.eventRepo.List(ctx, params)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	result := make([]*models.EventResponse, len(events))
	for i, e := range events {
		result[i] = s.decorate(e)
	}
	return result, nil
}

func (s *EventService) listViaIndex(ctx context.Context, params models.ListBookingsParams) ([]*models.Event, error) {
	ids, err := s.searchClient.SearchIDs(ctx, "event", params.Search)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	filtered := events[:0]
	for _, e := range events {
		if params.Status != "" && params.Status != "all" && e.Status != params.Status {
			continue
		}
		if params.Year != 0 && params.Month != 0 {
			if e.Date.Year() != params.Year || int(e.Date.Month()) != params.Month {
				continue
			}
		}
		filtered = append(filtered, e)
	}
	return filtered, nil
}

func (s *EventService) Update(ctx context.Context, id int64, req *models.UpdateEventRequest) (*models.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ClientName != nil {
		event.ClientName = *req.ClientName
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.GuestCount != nil {
		event.GuestCount = *req.GuestCount
	}
	if req.TotalAmount != nil {
		event.TotalAmount = *req.TotalAmount
	}
	if req.Notes != nil {
		event.Notes = req.Notes
	}

	if err := validateEventTimes(event.StartTime, event.EndTime); err != nil {
		return nil, err
	}
	if event.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: total amount must not be negative", apperrors.ErrValidation)
	}
	if event.GuestCount < 1 {
		return nil, fmt.Errorf("%w: guest count must be at least one", apperrors.ErrValidation)
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	s.afterWrite(ctx, event)
	return s.decorate(event), nil
}

func (s *EventService) SetStatus(ctx context.Context, id int64, status string) (*models.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !lifecycle.CanTransition("event", event.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, event.Status, status)
	}

	from := event.Status
	if err := s.eventRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update event status: %w", err)
	}
	event.Status = status

	s.afterWrite(ctx, event)
	s.publish(models.SubjectReservationStatusChanged, models.ReservationStatusChangedEvent{
		Entity:        "event",
		ID:            event.ID,
		ReferenceCode: event.ReferenceCode,
		FromStatus:    from,
		ToStatus:      status,
		Timestamp:     time.Now().UTC(),
	})

	return s.decorate(event), nil
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !lifecycle.CanDelete("event", event.Status) {
		return fmt.Errorf("%w: status is %s", apperrors.ErrDeleteForbidden, event.Status)
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	if s.searchClient != nil {
		if err := s.searchClient.Delete(ctx, "event", id); err != nil {
			slog.Warn("Failed to remove event from search index", "id", id, "error", err)
		}
	}
	if s.cacheClient != nil {
		s.cacheClient.InvalidateCalendar(ctx, "events")
	}

	s.publish(models.SubjectReservationDeleted, models.ReservationDeletedEvent{
		Entity:        "event",
		ID:            event.ID,
		ReferenceCode: event.ReferenceCode,
		Timestamp:     time.Now().UTC(),
	})
	return nil
}

// Calendar returns the month's events grouped by day
func (s *EventService) Calendar(ctx context.Context, params models.ListBookingsParams) (*models.CalendarEventsResponse, error) {
	events, err := s.eventRepo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar events: %w", err)
	}

	grouped := make(map[string][]*models.Event)
	for _, e := range events {
		key := dateutil.DayKey(e.Date)
		grouped[key] = append(grouped[key], e)
	}

	return &models.CalendarEventsResponse{Success: true, Events: grouped}, nil
}

// CalendarGrid returns the fixed 42-bucket month grid
func (s *EventService) CalendarGrid(ctx context.Context, params models.ListBookingsParams) ([]calendar.Bucket, error) {
	monthOnly := models.ListBookingsParams{Month: params.Month, Year: params.Year}
	events, err := s.eventRepo.List(ctx, monthOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar events: %w", err)
	}

	entries := make([]calendar.Entry, len(events))
	for i, e := range events {
		entries[i] = e
	}

	filters := calendar.Filters{Search: params.Search, Status: params.Status}
	return calendar.Aggregate(entries, params.Year, time.Month(params.Month), filters), nil
}

func (s *EventService) decorate(e *models.Event) *models.EventResponse {
	resp := &models.EventResponse{Event: *e, CanDelete: lifecycle.CanDelete("event", e.Status)}

	if meta, ok := lifecycle.MetaFor(e.Status); ok {
		resp.StatusMeta = &meta
	}
	if next, ok := lifecycle.Next("event", e.Status); ok {
		resp.NextActions = next
	} else {
		resp.NextActions = []lifecycle.Transition{}
	}
	return resp
}

func (s *EventService) afterWrite(ctx context.Context, e *models.Event) {
	if s.searchClient != nil {
		doc := search.Document{
			ID:        e.ID,
			Entity:    "event",
			Name:      e.ClientName,
			Reference: e.ReferenceCode,
			Location:  e.Venue,
			Status:    e.Status,
			Date:      e.Date,
		}
		if err := s.searchClient.Index(ctx, doc); err != nil {
			slog.Warn("Failed to index event", "id", e.ID, "error", err)
		}
	}
	if s.cacheClient != nil {
		s.cacheClient.InvalidateCalendar(ctx, "events")
	}
}

func (s *EventService) publish(subject string, payload interface{}) {
	if s.natsClient == nil {
		return
	}
	if err := s.natsClient.Publish(subject, payload); err != nil {
		slog.Warn("Failed to publish lifecycle event", "subject", subject, "error", err)
	}
}
