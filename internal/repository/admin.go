package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository interface {
	Reset(ctx context.Context) error
}

type adminRepository struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) AdminRepository {
	return &adminRepository{db: db}
}

// Reset wipes every table and restarts the id sequences.
func (r *adminRepository) Reset(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		TRUNCATE TABLE reviews, watchlists, friends, movies, tv_shows, media, users
		RESTART IDENTITY CASCADE`,
	)
	if err != nil {
		return fmt.Errorf("failed to reset database: %w", err)
	}
	return nil
}
