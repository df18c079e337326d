package handlers

import (
	"encoding/json"
	"net/http"

	"nextflix/internal/models"

	"github.com/go-chi/chi/v5"
)

// SearchMedia handles GET /media/search?media_name=&media_type=
func (h *Handler) SearchMedia(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("media_name")
	mediaType := r.URL.Query().Get("media_type")

	if mediaType != models.MediaTypeMovie && mediaType != models.MediaTypeShow {
		respondError(w, http.StatusBadRequest, "Media type must be either 'movie' or 'show'.")
		return
	}

	titles, err := h.media.Search(r.Context(), name, mediaType)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, titles)
}

// GetMedia handles GET /media/{title}. An optional media_type query
// parameter disambiguates a movie and a show sharing the title.
func (h *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	mediaType := r.URL.Query().Get("media_type")
	if mediaType != "" && mediaType != models.MediaTypeMovie && mediaType != models.MediaTypeShow {
		respondError(w, http.StatusBadRequest, "Media type must be either 'movie' or 'show'.")
		return
	}

	info, err := h.media.Get(r.Context(), chi.URLParam(r, "title"), mediaType)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}

// PostFilm handles POST /media/films
func (h *Handler) PostFilm(w http.ResponseWriter, r *http.Request) {
	var film models.NewFilm
	if err := json.NewDecoder(r.Body).Decode(&film); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&film); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.media.AddFilm(r.Context(), &film); err != nil {
		h.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PostShow handles POST /media/shows
func (h *Handler) PostShow(w http.ResponseWriter, r *http.Request) {
	var show models.NewShow
	if err := json.NewDecoder(r.Body).Decode(&show); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&show); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.media.AddShow(r.Context(), &show); err != nil {
		h.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PostReview handles POST /media/{title}/reviews
func (h *Handler) PostReview(w http.ResponseWriter, r *http.Request) {
	var review models.NewReview
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&review); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.reviews.Post(r.Context(), chi.URLParam(r, "title"), &review); err != nil {
		h.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetReviews handles GET /media/{title}/reviews
func (h *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.List(r.Context(), chi.URLParam(r, "title"))
	if err != nil {
		h.serviceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reviews)
}
