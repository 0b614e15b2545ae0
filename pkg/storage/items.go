package storage

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/adfharrison1/go-items/pkg/domain"
)

// List returns a copy of all items in insertion order
func (se *StorageEngine) List() []domain.Item {
	se.mu.RLock()
	defer se.mu.RUnlock()

	items := make([]domain.Item, len(se.items))
	copy(items, se.items)
	return items
}

// Count returns the number of stored items
func (se *StorageEngine) Count() int {
	se.mu.RLock()
	defer se.mu.RUnlock()
	return len(se.items)
}

// GetByID retrieves a specific item by its ID
func (se *StorageEngine) GetByID(id int64) (domain.Item, error) {
	se.mu.RLock()
	defer se.mu.RUnlock()

	pos, exists := se.index[id]
	if !exists {
		return domain.Item{}, fmt.Errorf("item with id %d: %w", id, domain.ErrItemNotFound)
	}
	return se.items[pos], nil
}

// Insert appends item under the next free ID and returns the stored item.
// Any ID on the input is ignored.
func (se *StorageEngine) Insert(item domain.Item) (domain.Item, error) {
	se.mu.Lock()
	defer se.mu.Unlock()

	se.nextID++
	item.ID = se.nextID

	se.items = append(se.items, item)
	se.index[item.ID] = len(se.items) - 1
	se.markDirtyLocked()

	se.logger.Debug("Inserted item", zap.Int64("id", item.ID), zap.Int("count", len(se.items)))
	return item, nil
}

// Replace overwrites the item with the given ID, keeping its ID and position
func (se *StorageEngine) Replace(id int64, item domain.Item) (domain.Item, error) {
	se.mu.Lock()
	defer se.mu.Unlock()

	pos, exists := se.index[id]
	if !exists {
		return domain.Item{}, fmt.Errorf("item with id %d: %w", id, domain.ErrItemNotFound)
	}

	item.ID = id
	se.items[pos] = item
	se.markDirtyLocked()

	se.logger.Debug("Replaced item", zap.Int64("id", id))
	return item, nil
}

// DeleteByID removes the item with the given ID
func (se *StorageEngine) DeleteByID(id int64) error {
	se.mu.Lock()
	defer se.mu.Unlock()

	pos, exists := se.index[id]
	if !exists {
		return fmt.Errorf("item with id %d: %w", id, domain.ErrItemNotFound)
	}

	se.items = slices.Delete(se.items, pos, pos+1)
	delete(se.index, id)
	for i := pos; i < len(se.items); i++ {
		se.index[se.items[i].ID] = i
	}
	se.markDirtyLocked()

	se.logger.Debug("Deleted item", zap.Int64("id", id), zap.Int("count", len(se.items)))
	return nil
}
