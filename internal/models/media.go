package models

const (
	MediaTypeMovie = "movie"
	MediaTypeShow  = "show"
)

// MediaSummary is the shape recommendations and watchlists carry around:
// just enough to render a row.
type MediaSummary struct {
	ID        int64  `json:"id" db:"media_id"`
	Title     string `json:"title" db:"title"`
	MediaType string `json:"media_type" db:"media_type"`
	Director  string `json:"director" db:"director"`
}

// MediaInfo is the full detail view. AverageRating is 0 when nobody has
// reviewed the item yet. Length is set for movies, the season/episode
// counts for shows.
type MediaInfo struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	MediaType     string  `json:"media_type"`
	Director      string  `json:"director"`
	AverageRating float64 `json:"average_rating"`
	Length        int     `json:"length,omitempty"`
	TotalSeasons  int     `json:"total_seasons,omitempty"`
	TotalEpisodes int     `json:"total_episodes,omitempty"`
}

type WatchlistItem struct {
	Media       MediaSummary `json:"media"`
	HaveWatched bool         `json:"have_watched"`
}

type Review struct {
	Username string  `json:"username"`
	Rating   float64 `json:"rating"`
	Review   string  `json:"review"`
}

// NewFilm is the payload for POST /media/films.
type NewFilm struct {
	Title    string `json:"title" validate:"required,max=255"`
	Director string `json:"director" validate:"required,max=255"`
	Length   int    `json:"length" validate:"required,gt=0"`
}

// NewShow is the payload for POST /media/shows.
type NewShow struct {
	Title         string `json:"title" validate:"required,max=255"`
	Director      string `json:"director" validate:"required,max=255"`
	TotalSeasons  int    `json:"total_seasons" validate:"required,gt=0"`
	TotalEpisodes int    `json:"total_episodes" validate:"required,gt=0"`
}

// NewReview is the payload for POST /media/{title}/reviews. Rating must sit
// between 1 and 5 inclusive.
type NewReview struct {
	Username string  `json:"username" validate:"required,username"`
	Rating   float64 `json:"rating" validate:"required,gt=0,lt=6"`
	Review   string  `json:"review" validate:"required,max=255"`
}
