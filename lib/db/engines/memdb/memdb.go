package memdb

import (
	"errors"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/book"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/db"
	"sync"
)

// ErrClosed is returned by Load and Save after Close.
var ErrClosed = errors.New("memdb: database is closed")

type memImpl struct {
	mu     sync.Mutex
	books  []book.Book
	closed bool

	// when set, every Save fails with this error
	failSave error
}

// NewMemDB creates an empty in-memory database, optionally pre-populated with seed.
func NewMemDB(seed ...book.Book) db.BookDB {
	return &memImpl{books: clone(seed)}
}

// NewFailingMemDB creates an in-memory database whose Save always returns err.
// Load works normally. It exists to exercise persistence failure handling.
func NewFailingMemDB(err error, seed ...book.Book) db.BookDB {
	return &memImpl{books: clone(seed), failSave: err}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see db.BookDB)
// --------------------------------------------------------------------------

func (m *memImpl) Load() ([]book.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrClosed
	}
	return clone(m.books), nil
}

func (m *memImpl) Save(books []book.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if m.failSave != nil {
		return m.failSave
	}
	m.books = clone(books)
	return nil
}

func (m *memImpl) GetInfo() db.DatabaseInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return db.DatabaseInfo{
		DbType:  db.ImplMemory,
		Records: len(m.books),
	}
}

func (m *memImpl) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// clone copies books; Book holds no references so a shallow element copy is deep
func clone(books []book.Book) []book.Book {
	out := make([]book.Book, len(books))
	copy(out, books)
	return out
}
