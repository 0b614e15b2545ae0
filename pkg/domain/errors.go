package domain

import "errors"

var (
	// ErrItemNotFound is returned when no item has the requested ID
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidViewConfig is returned for page numbers, page sizes or sort orders out of range
	ErrInvalidViewConfig = errors.New("invalid view config")
)
