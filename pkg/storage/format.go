package storage

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/adfharrison1/go-items/pkg/domain"
)

const (
	// Magic bytes to identify our file format
	MagicBytes = "ITMS"
	// Current version
	FormatVersion = 1
	// File extension for snapshots
	FileExtension = ".itms"

	// FlagUncompressed marks a payload stored as plain msgpack
	FlagUncompressed uint8 = 1 << 0
)

// FileHeader represents the header of a snapshot file
type FileHeader struct {
	Magic    [4]byte // "ITMS"
	Version  uint8   // Format version
	Flags    uint8
	Reserved [2]byte // Reserved for future use
	RawSize  uint32  // Length of the msgpack payload before compression
}

// HeaderSize is the encoded length of FileHeader
const HeaderSize = 12

// WriteHeader writes the file header to the given writer
func WriteHeader(w io.Writer, flags uint8, rawSize uint32) error {
	header := FileHeader{
		Magic:   [4]byte{'I', 'T', 'M', 'S'},
		Version: FormatVersion,
		Flags:   flags,
		RawSize: rawSize,
	}

	return binary.Write(w, binary.LittleEndian, header)
}

// ReadHeader reads and validates the file header
func ReadHeader(r io.Reader) (*FileHeader, error) {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicBytes {
		return nil, fmt.Errorf("invalid file format: expected %s, got %s", MagicBytes, string(header.Magic[:]))
	}

	if header.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported file version: %d", header.Version)
	}

	return &header, nil
}

// StorageData represents the actual data structure we store
type StorageData struct {
	Items    []domain.Item          `msgpack:"items"`
	NextID   int64                  `msgpack:"next_id"`
	Metadata map[string]interface{} `msgpack:"metadata,omitempty"`
}

// NewStorageData creates a new empty storage data structure
func NewStorageData() *StorageData {
	return &StorageData{
		Items:    []domain.Item{},
		Metadata: make(map[string]interface{}),
	}
}
