package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"innkeep/internal/apperrors"
	"innkeep/internal/database"
	"innkeep/internal/models"

	"github.com/lib/pq"
)

type BookingRepository struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `id, reference_code, guest_name, room_number, status, payment_status,
	check_in, check_out, adults, children, total_amount, special_requests, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (*models.Booking, error) {
	b := &models.Booking{}
	err := row.Scan(
		&b.ID,
		&b.ReferenceCode,
		&b.GuestName,
		&b.RoomNumber,
		&b.Status,
		&b.PaymentStatus,
		&b.CheckIn,
		&b.CheckOut,
		&b.Adults,
		&b.Children,
		&b.TotalAmount,
		&b.SpecialRequests,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Create inserts the booking and backfills the derived reference code in
// the same transaction, since the code depends on the assigned id.
func (r *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO bookings (reference_code, guest_name, room_number, status, payment_status,
		                      check_in, check_out, adults, children, total_amount, special_requests)
		VALUES ('', $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	err = tx.QueryRowContext(ctx, query,
		b.GuestName,
		b.RoomNumber,
		b.Status,
		b.PaymentStatus,
		b.CheckIn,
		b.CheckOut,
		b.Adults,
		b.Children,
		b.TotalAmount,
		b.SpecialRequests,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return err
	}

	b.ReferenceCode = models.BookingReference(b.ID)
	if _, err := tx.ExecContext(ctx,
		`UPDATE bookings SET reference_code = $1 WHERE id = $2`, b.ReferenceCode, b.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	return b, err
}

// List returns bookings matching the filters, newest check-in first.
// Search is a case-insensitive substring match over guest name, reference
// code and room number; month/year restrict by check-in date.
func (r *BookingRepository) List(ctx context.Context, params models.ListBookingsParams) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`
	var args []interface{}
	argIndex := 1

	if params.Search != "" {
		query += fmt.Sprintf(
			" AND (guest_name ILIKE $%d OR reference_code ILIKE $%d OR room_number ILIKE $%d)",
			argIndex, argIndex, argIndex)
		args = append(args, "%"+params.Search+"%")
		argIndex++
	}

	if params.Status != "" && params.Status != "all" {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, params.Status)
		argIndex++
	}

	if params.Year != 0 && params.Month != 0 {
		start := time.Date(params.Year, time.Month(params.Month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		query += fmt.Sprintf(" AND check_in >= $%d AND check_in < $%d", argIndex, argIndex+1)
		args = append(args, start, end)
		argIndex += 2
	}

	query += " ORDER BY check_in DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// ListByIDs returns bookings by id, preserving database order
func (r *BookingRepository) ListByIDs(ctx context.Context, ids []int64) ([]*models.Booking, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ANY($1) ORDER BY check_in DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *BookingRepository) Update(ctx context.Context, b *models.Booking) error {
	query := `
		UPDATE bookings
		SET guest_name = $1, room_number = $2, check_in = $3, check_out = $4,
		    adults = $5, children = $6, total_amount = $7, payment_status = $8,
		    special_requests = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		b.GuestName,
		b.RoomNumber,
		b.CheckIn,
		b.CheckOut,
		b.Adults,
		b.Children,
		b.TotalAmount,
		b.PaymentStatus,
		b.SpecialRequests,
		b.ID,
	).Scan(&b.UpdatedAt)

	if err == sql.ErrNoRows {
		return apperrors.ErrNotFound
	}
	return err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListStalePending returns pending bookings whose check-in passed before
// the cutoff; the sweeper cancels these as no-shows.
func (r *BookingRepository) ListStalePending(ctx context.Context, cutoff time.Time) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE status = 'pending' AND check_in < $1
		ORDER BY check_in ASC`

	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
