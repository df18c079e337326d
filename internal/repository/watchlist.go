package repository

import (
	"context"
	"errors"
	"fmt"

	"nextflix/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WatchlistRepository interface {
	Add(ctx context.Context, userID, mediaID int64) error
	MarkWatched(ctx context.Context, userID, mediaID int64) error
	List(ctx context.Context, userID int64) ([]models.WatchlistItem, error)
	MediaIDs(ctx context.Context, userID int64) ([]int64, error)
	FirstEligible(ctx context.Context, ownerID int64, exclude []int64) (*models.MediaSummary, error)
}

type watchlistRepository struct {
	db *pgxpool.Pool
}

func NewWatchlistRepository(db *pgxpool.Pool) WatchlistRepository {
	return &watchlistRepository{db: db}
}

func (r *watchlistRepository) Add(ctx context.Context, userID, mediaID int64) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO watchlists (user_id, media_id, have_watched) VALUES ($1, $2, FALSE)",
		userID, mediaID,
	)
	if err != nil {
		return fmt.Errorf("failed to add to watchlist: %w", translateError(err))
	}
	return nil
}

// MarkWatched flips have_watched to true. The flag never goes back.
func (r *watchlistRepository) MarkWatched(ctx context.Context, userID, mediaID int64) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE watchlists SET have_watched = TRUE WHERE user_id = $1 AND media_id = $2",
		userID, mediaID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark watched: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to mark watched: %w", ErrRecordNotFound)
	}
	return nil
}

func (r *watchlistRepository) List(ctx context.Context, userID int64) ([]models.WatchlistItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.media_id, m.title, m.media_type, m.director, w.have_watched
		FROM watchlists w
		JOIN media m ON m.media_id = w.media_id
		WHERE w.user_id = $1
		ORDER BY m.media_id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get watchlist: %w", err)
	}
	defer rows.Close()

	items := []models.WatchlistItem{}
	for rows.Next() {
		var item models.WatchlistItem
		if err := rows.Scan(&item.Media.ID, &item.Media.Title, &item.Media.MediaType,
			&item.Media.Director, &item.HaveWatched); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read watchlist rows: %w", err)
	}
	return items, nil
}

func (r *watchlistRepository) MediaIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		"SELECT media_id FROM watchlists WHERE user_id = $1",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get watchlist media ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan media id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read media id rows: %w", err)
	}
	return ids, nil
}

// FirstEligible returns one item from the owner's watchlist whose media id
// is not in the exclusion set, or (nil, nil) when nothing qualifies.
func (r *watchlistRepository) FirstEligible(ctx context.Context, ownerID int64, exclude []int64) (*models.MediaSummary, error) {
	if exclude == nil {
		exclude = []int64{}
	}

	var media models.MediaSummary
	err := r.db.QueryRow(ctx, `
		SELECT m.media_id, m.title, m.media_type, m.director
		FROM watchlists w
		JOIN media m ON m.media_id = w.media_id
		WHERE w.user_id = $1 AND NOT (m.media_id = ANY($2))
		ORDER BY m.media_id
		LIMIT 1`,
		ownerID, exclude,
	).Scan(&media.ID, &media.Title, &media.MediaType, &media.Director)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to sample friend watchlist: %w", err)
	}
	return &media, nil
}
