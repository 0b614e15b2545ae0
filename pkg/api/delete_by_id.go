package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/adfharrison1/go-items/pkg/domain"
)

// HandleDeleteById handles DELETE requests to remove a specific item by ID
func (h *Handler) HandleDeleteById(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "item id must be an integer")
		return
	}

	if err := h.store.DeleteByID(id); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("Delete failed", zap.Int64("id", id), zap.Error(err))
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.saveAfterWrite("delete")

	h.logger.Info("Deleted item", zap.Int64("id", id))
	w.WriteHeader(http.StatusNoContent)
}
