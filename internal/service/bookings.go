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

type BookingService struct {
	bookingRepo  *repository.BookingRepository
	natsClient   *messaging.NATSClient
	searchClient *search.Client
	cacheClient  *cache.Client
}

func NewBookingService(bookingRepo *repository.BookingRepository, natsClient *messaging.NATSClient, searchClient *search.Client, cacheClient *cache.Client) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		natsClient:   natsClient,
		searchClient: searchClient,
		cacheClient:  cacheClient,
	}
}

var validPaymentStatuses = map[string]bool{
	lifecycle.PaymentUnpaid:        true,
	lifecycle.PaymentPartiallyPaid: true,
	lifecycle.PaymentPaid:          true,
	lifecycle.PaymentRefunded:      true,
}

func validateBookingDates(checkIn, checkOut time.Time) error {
	if _, err := dateutil.NightsBetween(checkIn, checkOut); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if checkOut.Equal(checkIn) {
		return fmt.Errorf("%w: check-out must be after check-in", apperrors.ErrValidation)
	}
	return nil
}

func (s *BookingService) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	if err := validateBookingDates(req.CheckIn, req.CheckOut); err != nil {
		return nil, err
	}
	if req.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: total amount must not be negative", apperrors.ErrValidation)
	}

	booking := &models.Booking{
		GuestName:       req.GuestName,
		RoomNumber:      req.RoomNumber,
		Status:          lifecycle.BookingPending,
		PaymentStatus:   lifecycle.PaymentUnpaid,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Adults:          req.Adults,
		Children:        req.Children,
		TotalAmount:     req.TotalAmount,
		SpecialRequests: req.SpecialRequests,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.afterWrite(ctx, booking)
	s.publish(models.SubjectReservationCreated, models.ReservationCreatedEvent{
		Entity:        "booking",
		ID:            booking.ID,
		ReferenceCode: booking.ReferenceCode,
		Status:        booking.Status,
		Timestamp:     time.Now().UTC(),
	})

	return s.decorate(booking), nil
}

func (s *BookingService) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.decorate(booking), nil
}

// List returns bookings matching the filters. When a search query is
// present and the search index is available it resolves ids there first;
// any index failure falls back to the SQL ILIKE path.
func (s *BookingService) List(ctx context.Context, params models.ListBookingsParams) ([]*models.BookingResponse, error) {
	var bookings []*models.Booking
	var err error

	if params.Search != "" && s.searchClient != nil {
		bookings, err = s.listViaIndex(ctx, params)
		if err != nil {
			slog.Warn("Search index lookup failed, falling back to SQL", "error", err)
			bookings, err = s.bookingRepo.List(ctx, params)
		}
	} else {
		bookings, err = s.bookingRepo.List(ctx, params)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	result := make([]*models.BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = s.decorate(b)
	}
	return result, nil
}

func (s *BookingService) listViaIndex(ctx context.Context, params models.ListBookingsParams) ([]*models.Booking, error) {
	ids, err := s.searchClient.SearchIDs(ctx, "booking", params.Search)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Status and month constraints still apply to index hits
	filtered := bookings[:0]
	for _, b := range bookings {
		if params.Status != "" && params.Status != "all" && b.Status != params.Status {
			continue
		}
		if params.Year != 0 && params.Month != 0 {
			if b.CheckIn.Year() != params.Year || int(b.CheckIn.Month()) != params.Month {
				continue
			}
		}
		filtered = append(filtered, b)
	}
	return filtered, nil
}

func (s *BookingService) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.GuestName != nil {
		booking.GuestName = *req.GuestName
	}
	if req.RoomNumber != nil {
		booking.RoomNumber = *req.RoomNumber
	}
	if req.CheckIn != nil {
		booking.CheckIn = *req.CheckIn
	}
	if req.CheckOut != nil {
		booking.CheckOut = *req.CheckOut
	}
	if req.Adults != nil {
		booking.Adults = *req.Adults
	}
	if req.Children != nil {
		booking.Children = *req.Children
	}
	if req.TotalAmount != nil {
		booking.TotalAmount = *req.TotalAmount
	}
	if req.PaymentStatus != nil {
		if !validPaymentStatuses[*req.PaymentStatus] {
			return nil, fmt.Errorf("%w: unknown payment status %q", apperrors.ErrValidation, *req.PaymentStatus)
		}
		booking.PaymentStatus = *req.PaymentStatus
	}
	if req.SpecialRequests != nil {
		booking.SpecialRequests = req.SpecialRequests
	}

	if err := validateBookingDates(booking.CheckIn, booking.CheckOut); err != nil {
		return nil, err
	}
	if booking.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: total amount must not be negative", apperrors.ErrValidation)
	}
	if booking.Adults < 1 {
		return nil, fmt.Errorf("%w: at least one adult is required", apperrors.ErrValidation)
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	s.afterWrite(ctx, booking)
	return s.decorate(booking), nil
}

// SetStatus applies a lifecycle transition. The transition table is the
// authority here, not the caller's buttons: anything outside it is
// rejected even if a stale client offers the action.
func (s *BookingService) SetStatus(ctx context.Context, id int64, status string) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !lifecycle.CanTransition("booking", booking.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, booking.Status, status)
	}

	from := booking.Status
	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	booking.Status = status

	s.afterWrite(ctx, booking)
	s.publish(models.SubjectReservationStatusChanged, models.ReservationStatusChangedEvent{
		Entity:        "booking",
		ID:            booking.ID,
		ReferenceCode: booking.ReferenceCode,
		FromStatus:    from,
		ToStatus:      status,
		Timestamp:     time.Now().UTC(),
	})

	return s.decorate(booking), nil
}

func (s *BookingService) Delete(ctx context.Context, id int64) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !lifecycle.CanDelete("booking", booking.Status) {
		return fmt.Errorf("%w: status is %s", apperrors.ErrDeleteForbidden, booking.Status)
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if s.searchClient != nil {
		if err := s.searchClient.Delete(ctx, "booking", id); err != nil {
			slog.Warn("Failed to remove booking from search index", "id", id, "error", err)
		}
	}
	if s.cacheClient != nil {
		s.cacheClient.InvalidateCalendar(ctx, "bookings")
	}

	s.publish(models.SubjectReservationDeleted, models.ReservationDeletedEvent{
		Entity:        "booking",
		ID:            booking.ID,
		ReferenceCode: booking.ReferenceCode,
		Timestamp:     time.Now().UTC(),
	})
	return nil
}

// Calendar returns the month's bookings grouped by check-in day
func (s *BookingService) Calendar(ctx context.Context, params models.ListBookingsParams) (*models.CalendarBookingsResponse, error) {
	bookings, err := s.bookingRepo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar bookings: %w", err)
	}

	grouped := make(map[string][]*models.Booking)
	for _, b := range bookings {
		key := dateutil.DayKey(b.CheckIn)
		grouped[key] = append(grouped[key], b)
	}

	return &models.CalendarBookingsResponse{Success: true, Bookings: grouped}, nil
}

// CalendarGrid returns the fixed 42-bucket month grid
func (s *BookingService) CalendarGrid(ctx context.Context, params models.ListBookingsParams) ([]calendar.Bucket, error) {
	// Fetch the whole month unfiltered; search/status narrowing happens
	// inside the aggregator so the grid shape stays stable.
	monthOnly := models.ListBookingsParams{Month: params.Month, Year: params.Year}
	bookings, err := s.bookingRepo.List(ctx, monthOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar bookings: %w", err)
	}

	entries := make([]calendar.Entry, len(bookings))
	for i, b := range bookings {
		entries[i] = b
	}

	filters := calendar.Filters{Search: params.Search, Status: params.Status}
	return calendar.Aggregate(entries, params.Year, time.Month(params.Month), filters), nil
}

// CancelNoShows cancels pending bookings whose check-in passed before the
// cutoff. Used by the sweeper; returns the number cancelled.
func (s *BookingService) CancelNoShows(ctx context.Context, cutoff time.Time) (int, error) {
	stale, err := s.bookingRepo.ListStalePending(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale pending bookings: %w", err)
	}

	cancelled := 0
	for _, b := range stale {
		if _, err := s.SetStatus(ctx, b.ID, lifecycle.BookingCancelled); err != nil {
			slog.Error("Failed to cancel no-show booking", "id", b.ID, "error", err)
			continue
		}
		cancelled++
	}
	return cancelled, nil
}

func (s *BookingService) decorate(b *models.Booking) *models.BookingResponse {
	resp := &models.BookingResponse{Booking: *b, CanDelete: lifecycle.CanDelete("booking", b.Status)}

	if nights, err := dateutil.NightsBetween(b.CheckIn, b.CheckOut); err == nil {
		resp.Nights = nights
	}
	if meta, ok := lifecycle.MetaFor(b.Status); ok {
		resp.StatusMeta = &meta
	}
	if next, ok := lifecycle.Next("booking", b.Status); ok {
		resp.NextActions = next
	} else {
		resp.NextActions = []lifecycle.Transition{}
	}
	return resp
}

// afterWrite refreshes the search index and drops cached calendars
func (s *BookingService) afterWrite(ctx context.Context, b *models.Booking) {
	if s.searchClient != nil {
		doc := search.Document{
			ID:        b.ID,
			Entity:    "booking",
			Name:      b.GuestName,
			Reference: b.ReferenceCode,
			Location:  b.RoomNumber,
			Status:    b.Status,
			Date:      b.CheckIn,
		}
		if err := s.searchClient.Index(ctx, doc); err != nil {
			slog.Warn("Failed to index booking", "id", b.ID, "error", err)
		}
	}
	if s.cacheClient != nil {
		s.cacheClient.InvalidateCalendar(ctx, "bookings")
	}
}

func (s *BookingService) publish(subject string, payload interface{}) {
	if s.natsClient == nil {
		return
	}
	if err := s.natsClient.Publish(subject, payload); err != nil {
		slog.Warn("Failed to publish lifecycle event", "subject", subject, "error", err)
	}
}
