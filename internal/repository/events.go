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

type EventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, reference_code, client_name, venue, status, event_date,
	start_time, end_time, guest_count, total_amount, notes, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*models.Event, error) {
	e := &models.Event{}
	err := row.Scan(
		&e.ID,
		&e.ReferenceCode,
		&e.ClientName,
		&e.Venue,
		&e.Status,
		&e.Date,
		&e.StartTime,
		&e.EndTime,
		&e.GuestCount,
		&e.TotalAmount,
		&e.Notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *models.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO events (reference_code, client_name, venue, status, event_date,
		                    start_time, end_time, guest_count, total_amount, notes)
		VALUES ('', $1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	err = tx.QueryRowContext(ctx, query,
		e.ClientName,
		e.Venue,
		e.Status,
		e.Date,
		e.StartTime,
		e.EndTime,
		e.GuestCount,
		e.TotalAmount,
		e.Notes,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return err
	}

	e.ReferenceCode = models.EventReference(e.ID)
	if _, err := tx.ExecContext(ctx,
		`UPDATE events SET reference_code = $1 WHERE id = $2`, e.ReferenceCode, e.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	e, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	return e, err
}

func (r *EventRepository) List(ctx context.Context, params models.ListBookingsParams) ([]*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE 1=1`
	var args []interface{}
	argIndex := 1

	if params.Search != "" {
		query += fmt.Sprintf(
			" AND (client_name ILIKE $%d OR reference_code ILIKE $%d OR venue ILIKE $%d)",
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
		query += fmt.Sprintf(" AND event_date >= $%d AND event_date < $%d", argIndex, argIndex+1)
		args = append(args, start, end)
		argIndex += 2
	}

	query += " ORDER BY event_date DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *EventRepository) ListByIDs(ctx context.Context, ids []int64) ([]*models.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ANY($1) ORDER BY event_date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *models.Event) error {
	query := `
		UPDATE events
		SET client_name = $1, venue = $2, event_date = $3, start_time = $4,
		    end_time = $5, guest_count = $6, total_amount = $7, notes = $8,
		    updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		e.ClientName,
		e.Venue,
		e.Date,
		e.StartTime,
		e.EndTime,
		e.GuestCount,
		e.TotalAmount,
		e.Notes,
		e.ID,
	).Scan(&e.UpdatedAt)

	if err == sql.ErrNoRows {
		return apperrors.ErrNotFound
	}
	return err
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
