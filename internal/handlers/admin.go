package handlers

import "net/http"

// ResetState handles POST /admin/reset. Clears every table; meant for test
// environments, not production.
func (h *Handler) ResetState(w http.ResponseWriter, r *http.Request) {
	h.logger.Warn("Resetting state...")

	if err := h.admin.Reset(r.Context()); err != nil {
		h.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
