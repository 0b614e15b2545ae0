package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/adfharrison1/go-items/pkg/domain"
	"github.com/adfharrison1/go-items/pkg/items"
)

// HandleUpdateById handles PUT requests replacing a specific item by ID
func (h *Handler) HandleUpdateById(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "item id must be an integer")
		return
	}

	var item domain.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		h.logger.Warn("Decoding body failed", zap.Int64("id", id), zap.Error(err))
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fields := items.ValidateItem(item); len(fields) > 0 {
		WriteValidationError(w, fields)
		return
	}

	updated, err := h.store.Replace(id, item)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("Update failed", zap.Int64("id", id), zap.Error(err))
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.saveAfterWrite("update")

	h.logger.Info("Updated item", zap.Int64("id", id))
	writeJSON(w, http.StatusOK, updated)
}
