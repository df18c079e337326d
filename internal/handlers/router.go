package handlers

import (
	"net/http"

	"nextflix/internal/container"
	"nextflix/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires every route and the global middleware stack.
func NewRouter(c *container.Container, corsOrigins []string, limiter *middleware.RateLimiter) http.Handler {
	h := New(c)

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogging(c.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	if limiter != nil {
		r.Use(limiter.Handler)
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"message": "Welcome to Nextflix!"})
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/{username}", h.CreateUser)
		r.Get("/{username}", h.GetUser)
		r.Post("/{username}/friends/{friend}", h.AddFriend)
		r.Get("/{username}/watchlist", h.GetWatchlist)
		r.Post("/{username}/watchlist/{mediaID}", h.AddToWatchlist)
		r.Put("/{username}/watchlist/{mediaID}/watched", h.MarkWatched)
		r.Get("/{username}/recommendations", h.GetRecommendations)
		r.Get("/{username}/suggested-friends", h.GetSuggestedFriends)
	})

	r.Route("/media", func(r chi.Router) {
		r.Get("/search", h.SearchMedia)
		r.Post("/films", h.PostFilm)
		r.Post("/shows", h.PostShow)
		r.Get("/{title}", h.GetMedia)
		r.Post("/{title}/reviews", h.PostReview)
		r.Get("/{title}/reviews", h.GetReviews)
	})

	r.Post("/admin/reset", h.ResetState)

	return r
}
