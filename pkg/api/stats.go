package api

import (
	"net/http"

	"github.com/adfharrison1/go-items/pkg/items"
)

// HandleStats handles GET requests for active/inactive counts
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, items.ComputeStats(h.store.List()))
}
