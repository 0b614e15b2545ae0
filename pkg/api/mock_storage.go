package api

import (
	"errors"
	"fmt"
	"sync"

	"github.com/adfharrison1/go-items/pkg/domain"
)

// MockItemStore provides a mock implementation of domain.ItemStore for testing
type MockItemStore struct {
	mu          sync.RWMutex
	items       []domain.Item
	nextID      int64
	insertCalls int
	saveCalls   int
	saveErr     error
	failWrites  error
}

var _ domain.ItemStore = (*MockItemStore)(nil)

// NewMockItemStore creates a mock store holding items, which keep their IDs
func NewMockItemStore(items ...domain.Item) *MockItemStore {
	m := &MockItemStore{}
	for _, it := range items {
		m.items = append(m.items, it)
		if it.ID > m.nextID {
			m.nextID = it.ID
		}
	}
	return m
}

// SetSaveError makes SaveAfterTransaction fail with err
func (m *MockItemStore) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// SetWriteError makes Insert, Replace and DeleteByID fail with err
func (m *MockItemStore) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrites = err
}

func (m *MockItemStore) List() []domain.Item {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Item, len(m.items))
	copy(out, m.items)
	return out
}

func (m *MockItemStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func (m *MockItemStore) GetByID(id int64) (domain.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, it := range m.items {
		if it.ID == id {
			return it, nil
		}
	}
	return domain.Item{}, notFound(id)
}

func (m *MockItemStore) Insert(item domain.Item) (domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertCalls++
	if m.failWrites != nil {
		return domain.Item{}, m.failWrites
	}
	m.nextID++
	item.ID = m.nextID
	m.items = append(m.items, item)
	return item, nil
}

func (m *MockItemStore) Replace(id int64, item domain.Item) (domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites != nil {
		return domain.Item{}, m.failWrites
	}
	for i, it := range m.items {
		if it.ID == id {
			item.ID = id
			m.items[i] = item
			return item, nil
		}
	}
	return domain.Item{}, notFound(id)
}

func (m *MockItemStore) DeleteByID(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites != nil {
		return m.failWrites
	}
	for i, it := range m.items {
		if it.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return notFound(id)
}

func (m *MockItemStore) SaveAfterTransaction() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCalls++
	return m.saveErr
}

func (m *MockItemStore) GetInsertCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.insertCalls
}

func (m *MockItemStore) GetSaveCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saveCalls
}

func notFound(id int64) error {
	return fmt.Errorf("item with id %d: %w", id, domain.ErrItemNotFound)
}

// ErrMockWrite is a convenience error for SetWriteError
var ErrMockWrite = errors.New("mock write failure")
