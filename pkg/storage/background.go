package storage

import (
	"runtime"
	"time"

	"go.uber.org/zap"
)

// GetMemoryStats returns current memory usage statistics
func (se *StorageEngine) GetMemoryStats() map[string]interface{} {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	se.mu.RLock()
	defer se.mu.RUnlock()

	return map[string]interface{}{
		"alloc_mb":       m.Alloc / 1024 / 1024,
		"sys_mb":         m.Sys / 1024 / 1024,
		"num_goroutines": runtime.NumGoroutine(),
		"items":          len(se.items),
		"dirty":          se.state == StoreStateDirty,
	}
}

// StartBackgroundWorkers starts the periodic saver when background saves are enabled
func (se *StorageEngine) StartBackgroundWorkers() {
	if !se.backgroundSave || se.dataFile == "" {
		return
	}

	se.backgroundWg.Add(1)
	go func() {
		defer se.backgroundWg.Done()
		ticker := time.NewTicker(se.saveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				se.saveIfDirty()
			case <-se.stopChan:
				return
			}
		}
	}()
}

// StopBackgroundWorkers stops background workers
func (se *StorageEngine) StopBackgroundWorkers() {
	select {
	case <-se.stopChan:
		// Channel already closed, do nothing
	default:
		close(se.stopChan)
	}
	se.backgroundWg.Wait()
}

func (se *StorageEngine) saveIfDirty() {
	if !se.IsDirty() {
		return
	}

	start := time.Now()
	if err := se.SaveToFile(se.dataFile); err != nil {
		se.logger.Error("Background save failed", zap.String("file", se.dataFile), zap.Error(err))
		return
	}
	se.logger.Info("Background save completed", zap.String("file", se.dataFile), zap.Duration("took", time.Since(start)))
}
