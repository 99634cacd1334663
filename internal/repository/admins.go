package repository

import (
	"context"
	"database/sql"

	"innkeep/internal/apperrors"
	"innkeep/internal/database"
	"innkeep/internal/models"
)

type AdminRepository struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	admin := &models.Admin{}
	query := `
		SELECT id, email, password_hash, name, role, is_active, created_at
		FROM admins
		WHERE email = $1`

	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Name,
		&admin.Role,
		&admin.IsActive,
		&admin.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	return admin, err
}

func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (email, password_hash, name, role, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		admin.Email,
		admin.PasswordHash,
		admin.Name,
		admin.Role,
		admin.IsActive,
	).Scan(&admin.ID, &admin.CreatedAt)
}
