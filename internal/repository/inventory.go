package repository

import (
	"context"
	"database/sql"
	"fmt"

	"innkeep/internal/apperrors"
	"innkeep/internal/database"
	"innkeep/internal/models"
)

type InventoryRepository struct {
	db *database.DB
}

func NewInventoryRepository(db *database.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

const inventoryColumns = `id, name, category, quantity, unit, min_stock_level, unit_cost, created_at, updated_at`

func scanInventoryItem(row interface{ Scan(...any) error }) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Quantity,
		&item.Unit,
		&item.MinStockLevel,
		&item.UnitCost,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *InventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (name, category, quantity, unit, min_stock_level, unit_cost)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		item.Name,
		item.Category,
		item.Quantity,
		item.Unit,
		item.MinStockLevel,
		item.UnitCost,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *InventoryRepository) GetByID(ctx context.Context, id int64) (*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1`

	item, err := scanInventoryItem(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	return item, err
}

func (r *InventoryRepository) List(ctx context.Context, search, category string) ([]*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE 1=1`
	var args []interface{}
	argIndex := 1

	if search != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argIndex)
		args = append(args, "%"+search+"%")
		argIndex++
	}

	if category != "" && category != "all" {
		query += fmt.Sprintf(" AND category = $%d", argIndex)
		args = append(args, category)
		argIndex++
	}

	query += " ORDER BY name ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.InventoryItem
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *InventoryRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $1, category = $2, quantity = $3, unit = $4,
		    min_stock_level = $5, unit_cost = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		item.Name,
		item.Category,
		item.Quantity,
		item.Unit,
		item.MinStockLevel,
		item.UnitCost,
		item.ID,
	).Scan(&item.UpdatedAt)

	if err == sql.ErrNoRows {
		return apperrors.ErrNotFound
	}
	return err
}

func (r *InventoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
