package repository

import (
	"context"
	"fmt"

	"nextflix/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MediaRepository interface {
	CreateFilm(ctx context.Context, film *models.NewFilm) (int64, error)
	CreateShow(ctx context.Context, show *models.NewShow) (int64, error)
	GetByTitle(ctx context.Context, title, mediaType string) (*models.MediaInfo, error)
	IDByTitle(ctx context.Context, title string) (int64, error)
	Search(ctx context.Context, name, mediaType string) ([]string, error)
}

type mediaRepository struct {
	db *pgxpool.Pool
}

func NewMediaRepository(db *pgxpool.Pool) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) CreateFilm(ctx context.Context, film *models.NewFilm) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx,
		"INSERT INTO media (media_type, title, director) VALUES ($1, $2, $3) RETURNING media_id",
		models.MediaTypeMovie, film.Title, film.Director,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create film: %w", translateError(err))
	}

	_, err = tx.Exec(ctx,
		"INSERT INTO movies (media_id, length) VALUES ($1, $2)",
		id, film.Length,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to store film attributes: %w", translateError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit film: %w", err)
	}
	return id, nil
}

func (r *mediaRepository) CreateShow(ctx context.Context, show *models.NewShow) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx,
		"INSERT INTO media (media_type, title, director) VALUES ($1, $2, $3) RETURNING media_id",
		models.MediaTypeShow, show.Title, show.Director,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create show: %w", translateError(err))
	}

	_, err = tx.Exec(ctx,
		"INSERT INTO tv_shows (media_id, total_seasons, total_episodes) VALUES ($1, $2, $3)",
		id, show.TotalSeasons, show.TotalEpisodes,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to store show attributes: %w", translateError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit show: %w", err)
	}
	return id, nil
}

// GetByTitle returns the full detail view, averaged over all reviews.
// An unreviewed item has AverageRating 0.
//
// Titles are only unique per media type, so a movie and a show can share
// one. An empty mediaType matches either; the ORDER BY makes the movie win
// that collision deterministically.
func (r *mediaRepository) GetByTitle(ctx context.Context, title, mediaType string) (*models.MediaInfo, error) {
	var info models.MediaInfo
	err := r.db.QueryRow(ctx, `
		SELECT m.media_id, m.media_type, m.title, m.director,
		       COALESCE(AVG(r.rating), 0),
		       COALESCE(mo.length, 0),
		       COALESCE(tv.total_seasons, 0),
		       COALESCE(tv.total_episodes, 0)
		FROM media m
		LEFT JOIN reviews r ON r.media_id = m.media_id
		LEFT JOIN movies mo ON mo.media_id = m.media_id
		LEFT JOIN tv_shows tv ON tv.media_id = m.media_id
		WHERE m.title = $1 AND ($2 = '' OR m.media_type = $2)
		GROUP BY m.media_id, m.media_type, m.title, m.director,
		         mo.length, tv.total_seasons, tv.total_episodes
		ORDER BY m.media_type
		LIMIT 1`,
		title, mediaType,
	).Scan(&info.ID, &info.MediaType, &info.Title, &info.Director,
		&info.AverageRating, &info.Length, &info.TotalSeasons, &info.TotalEpisodes)
	if err != nil {
		return nil, fmt.Errorf("failed to get media by title: %w", translateError(err))
	}
	return &info, nil
}

func (r *mediaRepository) IDByTitle(ctx context.Context, title string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		"SELECT media_id FROM media WHERE title = $1",
		title,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve media title: %w", translateError(err))
	}
	return id, nil
}

// Search matches titles by case-insensitive prefix, leaning on the
// lower-pattern index.
func (r *mediaRepository) Search(ctx context.Context, name, mediaType string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT title FROM media
		WHERE media_type = $1 AND LOWER(title) LIKE LOWER($2 || '%')
		ORDER BY title`,
		mediaType, name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search media: %w", err)
	}
	defer rows.Close()

	titles := []string{}
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("failed to scan title: %w", err)
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read search rows: %w", err)
	}
	return titles, nil
}
