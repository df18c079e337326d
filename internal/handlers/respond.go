package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"nextflix/internal/services"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// serviceError maps the service error taxonomy onto HTTP status codes.
// Anything unrecognized is a storage failure and becomes a 500.
func (h *Handler) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrMediaNotFound),
		errors.Is(err, services.ErrNotInWatchlist),
		errors.Is(err, services.ErrNoSuggestions):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrAlreadyExists):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrSelfFriend):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.WithError(err).Error("Request failed")
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
