package domain

import (
	"fmt"
	"strings"
)

// SortOrder is the direction of a view's sort
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// ParseSortOrder accepts "asc"/"desc" and their long forms, case-insensitively.
// An empty string means ascending.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return SortAscending, nil
	case "desc", "descending":
		return SortDescending, nil
	default:
		return "", fmt.Errorf("%w: unknown sort order %q", ErrInvalidViewConfig, s)
	}
}

// Reverse returns the opposite order
func (o SortOrder) Reverse() SortOrder {
	if o == SortDescending {
		return SortAscending
	}
	return SortDescending
}

// ViewConfig selects which slice of a collection is shown
type ViewConfig struct {
	SearchTerm string    `json:"search,omitempty" yaml:"search"`
	SortField  string    `json:"sort" yaml:"sort"`
	SortOrder  SortOrder `json:"order" yaml:"order"`
	Page       int       `json:"page" yaml:"page"`
	PageSize   int       `json:"size" yaml:"size"`
}

// DefaultViewConfig returns the initial view: no search, name ascending, first page of 10
func DefaultViewConfig() ViewConfig {
	return ViewConfig{
		SortField: "name",
		SortOrder: SortAscending,
		Page:      1,
		PageSize:  10,
	}
}

// Validate checks the page bounds and sort order
func (vc ViewConfig) Validate() error {
	if vc.Page < 1 {
		return fmt.Errorf("%w: page must be at least 1, got %d", ErrInvalidViewConfig, vc.Page)
	}
	if vc.PageSize < 1 {
		return fmt.Errorf("%w: page size must be at least 1, got %d", ErrInvalidViewConfig, vc.PageSize)
	}
	if vc.SortOrder != SortAscending && vc.SortOrder != SortDescending {
		return fmt.Errorf("%w: unknown sort order %q", ErrInvalidViewConfig, vc.SortOrder)
	}
	return nil
}

// ViewResult is one page of a filtered, sorted collection plus its metadata
type ViewResult[T any] struct {
	Items         []T  `json:"items"`
	TotalMatching int  `json:"total_matching"`
	TotalPages    int  `json:"total_pages"`
	CurrentPage   int  `json:"current_page"`
	PageSize      int  `json:"page_size"`
	HasPrev       bool `json:"has_prev"`
	HasNext       bool `json:"has_next"`
}
