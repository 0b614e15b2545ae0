package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/adfharrison1/go-items/pkg/domain"
)

// HandleGetById handles GET requests to retrieve a specific item by ID
func (h *Handler) HandleGetById(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "item id must be an integer")
		return
	}

	item, err := h.store.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			h.logger.Info("Item not found", zap.Int64("id", id))
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("Get failed", zap.Int64("id", id), zap.Error(err))
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, item)
}
