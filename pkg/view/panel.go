package view

import (
	"fmt"

	"github.com/adfharrison1/go-items/pkg/domain"
)

// Panel holds the view configuration a caller keeps between renders and applies the
// usual list-control transitions to it.
type Panel struct {
	config domain.ViewConfig
}

// NewPanel starts at the default view
func NewPanel() *Panel {
	return &Panel{config: domain.DefaultViewConfig()}
}

// Config returns the current configuration
func (p *Panel) Config() domain.ViewConfig {
	return p.config
}

// Search sets the search term and returns to the first page
func (p *Panel) Search(term string) {
	p.config.SearchTerm = term
	p.config.Page = 1
}

// SortBy flips the order when field is already the sort field, otherwise sorts field ascending
func (p *Panel) SortBy(field string) {
	if p.config.SortField == field {
		p.config.SortOrder = p.config.SortOrder.Reverse()
		return
	}
	p.config.SortField = field
	p.config.SortOrder = domain.SortAscending
}

// SetPageSize changes the page size and returns to the first page
func (p *Panel) SetPageSize(size int) error {
	if size < 1 {
		return fmt.Errorf("%w: page size must be at least 1, got %d", domain.ErrInvalidViewConfig, size)
	}
	p.config.PageSize = size
	p.config.Page = 1
	return nil
}

// Prev moves one page back; it stays on page 1
func (p *Panel) Prev() {
	if p.config.Page > 1 {
		p.config.Page--
	}
}

// Next moves one page forward unless already on or past the last page
func (p *Panel) Next(totalPages int) {
	if p.config.Page < totalPages {
		p.config.Page++
	}
}
