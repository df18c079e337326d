package repository

import (
	"context"
	"fmt"

	"nextflix/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository interface {
	Upsert(ctx context.Context, userID, mediaID int64, rating float64, body string) error
	ListByMedia(ctx context.Context, mediaID int64) ([]models.Review, error)
}

type reviewRepository struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) ReviewRepository {
	return &reviewRepository{db: db}
}

// Upsert keeps at most one review per (user, media); a second review from
// the same user replaces the first.
func (r *reviewRepository) Upsert(ctx context.Context, userID, mediaID int64, rating float64, body string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reviews (user_id, media_id, rating, review)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, media_id)
		DO UPDATE SET rating = EXCLUDED.rating, review = EXCLUDED.review`,
		userID, mediaID, rating, body,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert review: %w", translateError(err))
	}
	return nil
}

func (r *reviewRepository) ListByMedia(ctx context.Context, mediaID int64) ([]models.Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.username, r.rating, r.review
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.media_id = $1
		ORDER BY u.username`,
		mediaID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var review models.Review
		if err := rows.Scan(&review.Username, &review.Rating, &review.Review); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read review rows: %w", err)
	}
	return reviews, nil
}
