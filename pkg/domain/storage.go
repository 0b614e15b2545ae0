package domain

// ItemStore defines the data source the items API and views read from.
// List returns items in insertion order.
type ItemStore interface {
	List() []Item
	GetByID(id int64) (Item, error)
	Insert(item Item) (Item, error)
	Replace(id int64, item Item) (Item, error)
	DeleteByID(id int64) error
	SaveAfterTransaction() error
	Count() int
}
