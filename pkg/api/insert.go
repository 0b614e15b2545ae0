package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/adfharrison1/go-items/pkg/domain"
	"github.com/adfharrison1/go-items/pkg/items"
)

// HandleInsert handles POST requests to create an item
func (h *Handler) HandleInsert(w http.ResponseWriter, r *http.Request) {
	var item domain.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		h.logger.Warn("Decoding body failed", zap.Error(err))
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fields := items.ValidateItem(item); len(fields) > 0 {
		h.logger.Info("Rejected invalid item", zap.Any("fields", fields))
		WriteValidationError(w, fields)
		return
	}

	created, err := h.store.Insert(item)
	if err != nil {
		h.logger.Error("Insert failed", zap.Error(err))
		WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.saveAfterWrite("insert")

	h.logger.Info("Inserted item", zap.Int64("id", created.ID))
	writeJSON(w, http.StatusCreated, created)
}
