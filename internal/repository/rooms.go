package repository

import (
	"context"
	"database/sql"
	"fmt"

	"innkeep/internal/apperrors"
	"innkeep/internal/database"
	"innkeep/internal/models"
)

type RoomRepository struct {
	db *database.DB
}

func NewRoomRepository(db *database.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

const roomColumns = `id, number, type, floor, capacity, price_per_night, status, description, created_at, updated_at`

func scanRoom(row interface{ Scan(...any) error }) (*models.Room, error) {
	rm := &models.Room{}
	err := row.Scan(
		&rm.ID,
		&rm.Number,
		&rm.Type,
		&rm.Floor,
		&rm.Capacity,
		&rm.PricePerNight,
		&rm.Status,
		&rm.Description,
		&rm.CreatedAt,
		&rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rm, nil
}

func (r *RoomRepository) Create(ctx context.Context, rm *models.Room) error {
	query := `
		INSERT INTO rooms (number, type, floor, capacity, price_per_night, status, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		rm.Number,
		rm.Type,
		rm.Floor,
		rm.Capacity,
		rm.PricePerNight,
		rm.Status,
		rm.Description,
	).Scan(&rm.ID, &rm.CreatedAt, &rm.UpdatedAt)
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	rm, err := scanRoom(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	return rm, err
}

func (r *RoomRepository) List(ctx context.Context, search, status string) ([]*models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE 1=1`
	var args []interface{}
	argIndex := 1

	if search != "" {
		query += fmt.Sprintf(" AND (number ILIKE $%d OR type ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+search+"%")
		argIndex++
	}

	if status != "" && status != "all" {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, status)
		argIndex++
	}

	query += " ORDER BY number ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}

func (r *RoomRepository) Update(ctx context.Context, rm *models.Room) error {
	query := `
		UPDATE rooms
		SET number = $1, type = $2, floor = $3, capacity = $4,
		    price_per_night = $5, description = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		rm.Number,
		rm.Type,
		rm.Floor,
		rm.Capacity,
		rm.PricePerNight,
		rm.Description,
		rm.ID,
	).Scan(&rm.UpdatedAt)

	if err == sql.ErrNoRows {
		return apperrors.ErrNotFound
	}
	return err
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE rooms SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
