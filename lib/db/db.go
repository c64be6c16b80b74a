package db

import (
	"errors"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/book"
)

// --------------------------------------------------------------------------
// Helper Types
// --------------------------------------------------------------------------

type Implementation string

const (
	ImplFile   Implementation = "file"
	ImplMemory Implementation = "memory"
)

// ErrCorrupt is wrapped by Load when persisted data exists but cannot be decoded.
var ErrCorrupt = errors.New("persisted collection is corrupt")

type DatabaseInfo struct {
	SizeBytes int            `json:"size_bytes"`
	DbType    Implementation `json:"db_type"`
	Location  string         `json:"location,omitempty"`
	Format    string         `json:"format,omitempty"`
	Records   int            `json:"records"`
	Metadata  interface{}    `json:"metadata,omitempty"`
}

// --------------------------------------------------------------------------
// Database Interface
// --------------------------------------------------------------------------

// BookDB persists a whole book collection. There are no partial writes: every
// Save replaces the previously persisted collection, and Load returns the
// collection exactly as it was last saved, in the same order.
type BookDB interface {
	// Load returns the persisted collection. A missing collection is not an
	// error: the result is then empty. If persisted data exists but cannot be
	// decoded, the returned error wraps ErrCorrupt.
	Load() (books []book.Book, err error)

	// Save replaces the persisted collection with books. Implementations must not
	// leave a previously valid collection unreadable if Save fails half-way.
	Save(books []book.Book) (err error)

	// GetInfo returns information about the database.
	// Size and record count reflect the last successful Load or Save.
	GetInfo() (info DatabaseInfo)

	// Close releases resources held by the database.
	Close() (err error)
}
