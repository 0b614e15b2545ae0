package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/adfharrison1/go-items/pkg/domain"
	"github.com/adfharrison1/go-items/pkg/logging"
	"github.com/adfharrison1/go-items/pkg/view"
)

// Handler provides HTTP handlers for the items API
type Handler struct {
	store       domain.ItemStore
	engine      *view.Engine[domain.Item]
	viewDefault domain.ViewConfig
	maxPageSize int
	logger      *zap.Logger
}

type HandlerOption func(*Handler)

// WithViewDefaults sets the view used for unset query parameters and the largest page size served
func WithViewDefaults(defaults domain.ViewConfig, maxPageSize int) HandlerOption {
	return func(h *Handler) {
		h.viewDefault = defaults
		h.maxPageSize = maxPageSize
	}
}

// NewHandler creates a new API handler with dependency injection
func NewHandler(store domain.ItemStore, logger *zap.Logger, options ...HandlerOption) *Handler {
	h := &Handler{
		store:       store,
		engine:      view.NewEngine(view.ItemSchema()),
		viewDefault: domain.DefaultViewConfig(),
		maxPageSize: 100,
		logger:      logging.OrNop(logger),
	}
	for _, option := range options {
		option(h)
	}
	return h
}

// itemID parses the {id} route variable
func itemID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// saveAfterWrite persists the store if transaction saves are on; failures only warn
func (h *Handler) saveAfterWrite(op string) {
	if err := h.store.SaveAfterTransaction(); err != nil {
		h.logger.Warn("Failed to save items after write", zap.String("op", op), zap.Error(err))
	}
}
