// Package view filters, sorts and paginates in-memory collections.
//
// Every call recomputes from the collection it is given; nothing is cached between
// calls and inputs are never modified.
package view

import (
	"fmt"
	"slices"
	"strings"

	"github.com/adfharrison1/go-items/pkg/domain"
)

// Engine runs views over records described by a Schema
type Engine[T any] struct {
	schema Schema[T]
}

// NewEngine creates an engine bound to schema
func NewEngine[T any](schema Schema[T]) *Engine[T] {
	return &Engine[T]{schema: schema}
}

// Filter returns the records whose primary or secondary text contains term, ignoring case.
// An empty term returns records as given.
func (e *Engine[T]) Filter(records []T, term string) []T {
	if term == "" {
		return records
	}

	needle := strings.ToLower(term)
	matches := make([]T, 0, len(records))
	for _, rec := range records {
		if e.matches(rec, needle) {
			matches = append(matches, rec)
		}
	}
	return matches
}

func (e *Engine[T]) matches(rec T, needle string) bool {
	if e.schema.Primary != nil {
		if s, ok := e.schema.Primary(rec); ok && strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	if e.schema.Secondary != nil {
		if s, ok := e.schema.Secondary(rec); ok && strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

// Sort returns a stably sorted copy of records ordered by field.
// Records missing the field sort first ascending and last descending.
func (e *Engine[T]) Sort(records []T, field string, order domain.SortOrder) []T {
	sorted := make([]T, len(records))
	copy(sorted, records)

	if e.schema.Field == nil {
		return sorted
	}

	slices.SortStableFunc(sorted, func(a, b T) int {
		av, aok := e.schema.Field(a, field)
		bv, bok := e.schema.Field(b, field)
		c := CompareValues(av, aok, bv, bok)
		if order == domain.SortDescending {
			return -c
		}
		return c
	})
	return sorted
}

// Apply runs filter, sort and paginate for cfg and returns the visible page with its metadata
func (e *Engine[T]) Apply(records []T, cfg domain.ViewConfig) (domain.ViewResult[T], error) {
	if err := cfg.Validate(); err != nil {
		return domain.ViewResult[T]{}, fmt.Errorf("apply view: %w", err)
	}

	filtered := e.Filter(records, cfg.SearchTerm)
	sorted := e.Sort(filtered, cfg.SortField, cfg.SortOrder)
	totalPages := TotalPages(len(sorted), cfg.PageSize)

	return domain.ViewResult[T]{
		Items:         Paginate(sorted, cfg.Page, cfg.PageSize),
		TotalMatching: len(sorted),
		TotalPages:    totalPages,
		CurrentPage:   cfg.Page,
		PageSize:      cfg.PageSize,
		HasPrev:       cfg.Page > 1,
		HasNext:       cfg.Page < totalPages,
	}, nil
}
