package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/adfharrison1/go-items/pkg/domain"
)

// HandleView handles GET requests for a filtered, sorted page of items.
// Query parameters: search, sort, order (asc|desc), page, size.
func (h *Handler) HandleView(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.parseViewConfig(r.URL.Query())
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.engine.Apply(h.store.List(), cfg)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Info("Served view",
		zap.String("search", cfg.SearchTerm),
		zap.String("sort", cfg.SortField),
		zap.String("order", string(cfg.SortOrder)),
		zap.Int("page", cfg.Page),
		zap.Int("size", cfg.PageSize),
		zap.Int("matching", result.TotalMatching))
	writeJSON(w, http.StatusOK, result)
}

// parseViewConfig overlays query parameters on the handler's default view.
// Sizes above the maximum are capped rather than rejected.
func (h *Handler) parseViewConfig(q url.Values) (domain.ViewConfig, error) {
	cfg := h.viewDefault
	cfg.SearchTerm = q.Get("search")

	if sort := q.Get("sort"); sort != "" {
		cfg.SortField = sort
	}

	if order := q.Get("order"); order != "" {
		parsed, err := domain.ParseSortOrder(order)
		if err != nil {
			return cfg, err
		}
		cfg.SortOrder = parsed
	}

	if page := q.Get("page"); page != "" {
		n, err := strconv.Atoi(page)
		if err != nil {
			return cfg, fmt.Errorf("page must be an integer: %q", page)
		}
		cfg.Page = n
	}

	if size := q.Get("size"); size != "" {
		n, err := strconv.Atoi(size)
		if err != nil {
			return cfg, fmt.Errorf("size must be an integer: %q", size)
		}
		cfg.PageSize = n
	}
	if h.maxPageSize > 0 && cfg.PageSize > h.maxPageSize {
		cfg.PageSize = h.maxPageSize
	}

	return cfg, cfg.Validate()
}
