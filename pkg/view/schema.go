package view

import "github.com/adfharrison1/go-items/pkg/domain"

// Schema declares how the engine reads a record type.
// A false second return means the field is absent on that record.
type Schema[T any] struct {
	Primary   func(T) (string, bool)
	Secondary func(T) (string, bool)
	Field     func(record T, name string) (interface{}, bool)
}

// ItemSchema searches name and description and sorts on id, name, description and active
func ItemSchema() Schema[domain.Item] {
	return Schema[domain.Item]{
		Primary: func(it domain.Item) (string, bool) {
			return it.Name, true
		},
		Secondary: func(it domain.Item) (string, bool) {
			return it.Description, it.HasDescription()
		},
		Field: func(it domain.Item, name string) (interface{}, bool) {
			switch name {
			case "id":
				return it.ID, true
			case "name":
				return it.Name, true
			case "description":
				return it.Description, it.HasDescription()
			case "active":
				return it.Active, true
			default:
				return nil, false
			}
		},
	}
}

// DocumentSchema reads schema-less documents; primary and secondary name the text fields
// used for search. Non-string text values are treated as absent.
func DocumentSchema(primary, secondary string) Schema[domain.Document] {
	text := func(field string) func(domain.Document) (string, bool) {
		return func(doc domain.Document) (string, bool) {
			s, ok := doc[field].(string)
			return s, ok
		}
	}
	return Schema[domain.Document]{
		Primary:   text(primary),
		Secondary: text(secondary),
		Field: func(doc domain.Document, name string) (interface{}, bool) {
			v, ok := doc[name]
			if !ok || v == nil {
				return nil, false
			}
			return v, true
		},
	}
}
