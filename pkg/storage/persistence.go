package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/pierrec/lz4/v4"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	"github.com/adfharrison1/go-items/pkg/domain"
)

// SaveToFile writes a snapshot of all items to filename.
// The write goes to a temporary file that is renamed into place under a file lock.
func (se *StorageEngine) SaveToFile(filename string) error {
	se.saveMu.Lock()
	defer se.saveMu.Unlock()

	se.mu.RLock()
	storageData := NewStorageData()
	storageData.Items = append(storageData.Items, se.items...)
	storageData.NextID = se.nextID
	snapshotVersion := se.version
	se.mu.RUnlock()

	storageData.Metadata["saved_at"] = time.Now().UTC().Format(time.RFC3339)
	storageData.Metadata["item_count"] = len(storageData.Items)

	encoded, err := EncodeSnapshot(storageData)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), se.lockTimeout)
	defer cancel()
	unlock, err := lockSnapshot(ctx, filename)
	if err != nil {
		return err
	}
	defer unlock()

	// Write to temporary file first, then rename (atomic operation)
	tempFile := filename + ".tmp"
	if err := os.WriteFile(tempFile, encoded, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tempFile, filename); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename snapshot: %w", err)
	}

	se.mu.Lock()
	if se.version == snapshotVersion {
		se.state = StoreStateClean
	}
	se.mu.Unlock()

	se.logger.Debug("Saved snapshot",
		zap.String("file", filename),
		zap.Int("items", len(storageData.Items)),
		zap.Int("bytes", len(encoded)))
	return nil
}

// LoadFromFile replaces the store contents with the snapshot in filename.
// A missing file leaves the store empty and is not an error.
func (se *StorageEngine) LoadFromFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	storageData, err := DecodeSnapshot(file)
	if err != nil {
		return err
	}

	index := make(map[int64]int, len(storageData.Items))
	maxID := storageData.NextID
	for i, item := range storageData.Items {
		if _, dup := index[item.ID]; dup {
			return fmt.Errorf("snapshot %s contains duplicate item id %d", filename, item.ID)
		}
		index[item.ID] = i
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	se.mu.Lock()
	se.items = storageData.Items
	se.index = index
	se.nextID = maxID
	se.state = StoreStateClean
	se.version++
	se.mu.Unlock()

	se.logger.Info("Loaded snapshot",
		zap.String("file", filename),
		zap.Int("items", len(storageData.Items)),
		zap.Int64("next_id", maxID))
	return nil
}

// EncodeSnapshot renders data as header + lz4-compressed msgpack
func EncodeSnapshot(data *StorageData) ([]byte, error) {
	msgpackData, err := msgpack.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode MessagePack: %w", err)
	}
	if uint64(len(msgpackData)) > math.MaxUint32 {
		return nil, fmt.Errorf("snapshot too large: %d bytes", len(msgpackData))
	}

	payload := make([]byte, lz4.CompressBlockBound(len(msgpackData)))
	n, err := lz4.CompressBlock(msgpackData, payload, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to compress data: %w", err)
	}

	var flags uint8
	if n == 0 || n >= len(msgpackData) {
		// lz4 reports incompressible input with n == 0
		flags |= FlagUncompressed
		payload = msgpackData
	} else {
		payload = payload[:n]
	}

	var buf bytes.Buffer
	buf.Grow(HeaderSize + len(payload))
	if err := WriteHeader(&buf, flags, uint32(len(msgpackData))); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	buf.Write(payload)
	return buf.Bytes(), nil
}

// DecodeSnapshot reads a snapshot written by EncodeSnapshot
func DecodeSnapshot(r io.Reader) (*StorageData, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid file header: %w", err)
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot payload: %w", err)
	}

	raw := payload
	if header.Flags&FlagUncompressed == 0 {
		raw = make([]byte, header.RawSize)
		n, err := lz4.UncompressBlock(payload, raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress data: %w", err)
		}
		if n != int(header.RawSize) {
			return nil, fmt.Errorf("decompressed %d bytes, header says %d", n, header.RawSize)
		}
	} else if len(raw) != int(header.RawSize) {
		return nil, fmt.Errorf("payload is %d bytes, header says %d", len(raw), header.RawSize)
	}

	var storageData StorageData
	if err := msgpack.Unmarshal(raw, &storageData); err != nil {
		return nil, fmt.Errorf("failed to decode MessagePack: %w", err)
	}
	if storageData.Items == nil {
		storageData.Items = []domain.Item{}
	}
	return &storageData, nil
}
