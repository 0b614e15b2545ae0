// Package storage is the in-memory item store backing the API, with optional
// snapshot persistence.
package storage

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/adfharrison1/go-items/pkg/domain"
)

type StoreState int

const (
	StoreStateClean StoreState = iota
	StoreStateDirty
)

// StorageEngine keeps items in insertion order and implements domain.ItemStore
type StorageEngine struct {
	mu           sync.RWMutex
	items        []domain.Item
	index        map[int64]int // item ID -> position in items
	nextID       int64
	state        StoreState
	version      uint64 // bumped on every write; lets a save tell whether it is still current
	lastModified time.Time

	// Serialises snapshot writes within the process; the file lock covers other processes
	saveMu sync.Mutex

	// Configuration
	dataFile        string
	backgroundSave  bool
	transactionSave bool
	saveInterval    time.Duration
	lockTimeout     time.Duration
	logger          *zap.Logger

	// Background workers
	backgroundWg sync.WaitGroup
	stopChan     chan struct{}
}

var _ domain.ItemStore = (*StorageEngine)(nil)

// NewStorageEngine creates a new, empty storage engine
func NewStorageEngine(options ...StorageOption) *StorageEngine {
	engine := &StorageEngine{
		index:           make(map[int64]int),
		state:           StoreStateClean,
		backgroundSave:  false,
		transactionSave: true, // Default to transaction-based saves
		saveInterval:    5 * time.Minute,
		lockTimeout:     5 * time.Second,
		logger:          zap.NewNop(),
		stopChan:        make(chan struct{}),
	}

	for _, option := range options {
		option(engine)
	}

	return engine
}

// markDirtyLocked records a write; caller holds se.mu
func (se *StorageEngine) markDirtyLocked() {
	se.state = StoreStateDirty
	se.version++
	se.lastModified = time.Now()
}

// IsDirty reports whether there are writes not yet saved
func (se *StorageEngine) IsDirty() bool {
	se.mu.RLock()
	defer se.mu.RUnlock()
	return se.state == StoreStateDirty
}

// IsTransactionSaveEnabled returns whether transaction-based saves are enabled
func (se *StorageEngine) IsTransactionSaveEnabled() bool {
	return se.transactionSave
}

// SaveAfterTransaction writes the snapshot if transaction saves are enabled and there are unsaved writes
func (se *StorageEngine) SaveAfterTransaction() error {
	if !se.transactionSave || se.dataFile == "" {
		return nil
	}
	if !se.IsDirty() {
		return nil
	}
	return se.SaveToFile(se.dataFile)
}
