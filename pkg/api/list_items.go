package api

import (
	"net/http"

	"go.uber.org/zap"
)

// HandleListItems handles GET requests for every item in insertion order
func (h *Handler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	items := h.store.List()

	h.logger.Info("Listed items", zap.Int("count", len(items)))
	writeJSON(w, http.StatusOK, items)
}
