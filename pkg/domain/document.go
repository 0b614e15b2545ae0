package domain

// Document is a schema-less record keyed by field name
type Document map[string]interface{}

// Item is the typed record managed by the items service
type Item struct {
	ID          int64  `json:"id" msgpack:"id"`
	Name        string `json:"name" msgpack:"name" validate:"required,min=3,max=100,notblank"`
	Description string `json:"description,omitempty" msgpack:"description,omitempty" validate:"required,notblank"`
	Active      bool   `json:"active" msgpack:"active"`
}

// HasDescription reports whether the optional description field is set
func (i Item) HasDescription() bool {
	return i.Description != ""
}
