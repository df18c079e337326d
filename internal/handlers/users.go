package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"nextflix/internal/services"

	"github.com/go-chi/chi/v5"
)

// CreateUser handles POST /users/{username}
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if !validUsername(username) {
		respondError(w, http.StatusBadRequest, "Username must be alphanumeric, 3-20 characters, and start with a letter.")
		return
	}

	if err := h.users.Register(r.Context(), username); err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			respondError(w, http.StatusConflict, "Username already exists. Please try again.")
			return
		}
		h.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetUser handles GET /users/{username}
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	profile, err := h.users.Profile(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.serviceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// AddFriend handles POST /users/{username}/friends/{friend}
func (h *Handler) AddFriend(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	friend := chi.URLParam(r, "friend")

	if err := h.users.AddFriend(r.Context(), username, friend); err != nil {
		h.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetWatchlist handles GET /users/{username}/watchlist
func (h *Handler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	items, err := h.watchlists.List(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.serviceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func mediaIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "mediaID"), 10, 64)
}

// AddToWatchlist handles POST /users/{username}/watchlist/{mediaID}
func (h *Handler) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	mediaID, err := mediaIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid media id")
		return
	}

	if err := h.watchlists.Add(r.Context(), chi.URLParam(r, "username"), mediaID); err != nil {
		h.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MarkWatched handles PUT /users/{username}/watchlist/{mediaID}/watched
func (h *Handler) MarkWatched(w http.ResponseWriter, r *http.Request) {
	mediaID, err := mediaIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid media id")
		return
	}

	if err := h.watchlists.MarkWatched(r.Context(), chi.URLParam(r, "username"), mediaID); err != nil {
		h.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetRecommendations handles GET /users/{username}/recommendations
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.recommendations.Recommendations(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.serviceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, recs)
}

// GetSuggestedFriends handles GET /users/{username}/suggested-friends
func (h *Handler) GetSuggestedFriends(w http.ResponseWriter, r *http.Request) {
	names, err := h.recommendations.SuggestedFriends(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.serviceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, names)
}
