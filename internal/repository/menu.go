package repository

import (
	"context"
	"database/sql"
	"fmt"

	"innkeep/internal/apperrors"
	"innkeep/internal/database"
	"innkeep/internal/models"
)

type MenuRepository struct {
	db *database.DB
}

func NewMenuRepository(db *database.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

const menuColumns = `id, name, category, price, status, description, created_at, updated_at`

func scanMenuItem(row interface{ Scan(...any) error }) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Price,
		&item.Status,
		&item.Description,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *MenuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (name, category, price, status, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		item.Name,
		item.Category,
		item.Price,
		item.Status,
		item.Description,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *MenuRepository) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE id = $1`

	item, err := scanMenuItem(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	return item, err
}

func (r *MenuRepository) List(ctx context.Context, search, status string) ([]*models.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE 1=1`
	var args []interface{}
	argIndex := 1

	if search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR category ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+search+"%")
		argIndex++
	}

	if status != "" && status != "all" {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, status)
		argIndex++
	}

	query += " ORDER BY category ASC, name ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *MenuRepository) Update(ctx context.Context, item *models.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $1, category = $2, price = $3, description = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		item.Name,
		item.Category,
		item.Price,
		item.Description,
		item.ID,
	).Scan(&item.UpdatedAt)

	if err == sql.ErrNoRows {
		return apperrors.ErrNotFound
	}
	return err
}

func (r *MenuRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE menu_items SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
