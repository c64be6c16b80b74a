package lstore

import (
	"errors"
	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/book"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/db"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/store"
	"slices"
	"time"
)

var log = logger.GetLogger("store")

type storeImpl struct {
	db      db.BookDB
	mu      *xsync.RBMutex
	books   []book.Book
	now     func() time.Time
	metrics *storeMetrics
}

// Option configures optional behaviour of the local store.
type Option func(*storeImpl)

// WithClock replaces time.Now as the source of Book.AddedAt and of the
// current calendar year used to validate publication years.
func WithClock(now func() time.Time) Option {
	return func(s *storeImpl) {
		s.now = now
	}
}

// WithMetrics registers the store's metrics in set instead of a private one,
// so the caller can export them.
func WithMetrics(set *metrics.Set) Option {
	return func(s *storeImpl) {
		s.metrics = newStoreMetrics(set, s.Len)
	}
}

// NewLocalStore creates a new local store instance on top of the db created by
// factory. The store starts empty; call Load to read the persisted collection.
func NewLocalStore(factory store.DBFactory, opts ...Option) store.IStore {
	s := &storeImpl{
		db:    factory(),
		mu:    xsync.NewRBMutex(),
		books: []book.Book{},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = newStoreMetrics(metrics.NewSet(), s.Len)
	}
	return s
}

// persist writes the whole collection to the db.
//
// Thread-safety: the caller must hold the write lock.
func (s *storeImpl) persist() error {
	start := time.Now()
	err := s.db.Save(s.books)
	s.metrics.saves.Inc()
	s.metrics.saveDuration.UpdateDuration(start)

	if err != nil {
		s.metrics.saveErrors.Inc()
		log.Errorf("failed to persist %d books: %v", len(s.books), err)
		return store.WrapError(store.RetCIO, "failed to persist collection, changes may be lost on restart", err)
	}
	return nil
}

// inRange reports whether index addresses a book.
//
// Thread-safety: the caller must hold a lock.
func (s *storeImpl) inRange(index int) bool {
	return index >= 0 && index < len(s.books)
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Load() ([]book.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books, err := s.db.Load()
	if err != nil {
		s.books = []book.Book{}
		if errors.Is(err, db.ErrCorrupt) {
			s.metrics.loadCorrupt.Inc()
			log.Infof("persisted collection is corrupt, continuing with an empty collection: %v", err)
			return []book.Book{}, store.WrapError(store.RetCCorruptState, "persisted collection is unreadable, continuing with an empty collection", err)
		}
		s.metrics.loadIO.Inc()
		log.Errorf("failed to load collection: %v", err)
		return []book.Book{}, store.WrapError(store.RetCIO, "failed to load collection", err)
	}

	s.books = books
	log.Debugf("loaded %d books", len(books))
	return slices.Clone(s.books), nil
}

func (s *storeImpl) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist()
}

func (s *storeImpl) Add(draft book.Draft) (book.Book, error) {
	created, err := book.New(draft, s.now())
	if err != nil {
		var violations book.ValidationErrors
		if errors.As(err, &violations) {
			s.metrics.validationErrors.Inc()
			return book.Book{}, &store.Error{
				Code:       store.RetCValidation,
				Msg:        "invalid book",
				Violations: violations.Messages(),
				Err:        err,
			}
		}
		return book.Book{}, store.WrapError(store.RetCInternalError, "failed to validate book", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = append(s.books, created)
	s.metrics.added.Inc()
	log.Debugf("added %q by %s at position %d", created.Title, created.Author, len(s.books)-1)

	return created, s.persist()
}

func (s *storeImpl) Remove(index int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inRange(index) {
		return false, nil
	}

	removed := s.books[index]
	s.books = slices.Delete(s.books, index, index+1)
	s.metrics.removed.Inc()
	log.Debugf("removed %q from position %d", removed.Title, index)

	return true, s.persist()
}

func (s *storeImpl) SetReadStatus(index int, read bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inRange(index) {
		return false, nil
	}

	s.books[index].ReadStatus = read
	s.metrics.readStatusUpdates.Inc()

	return true, s.persist()
}

func (s *storeImpl) All() []book.Book {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)
	return slices.Clone(s.books)
}

func (s *storeImpl) Len() int {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)
	return len(s.books)
}

func (s *storeImpl) GetDBInfo() (db.DatabaseInfo, error) {
	return s.db.GetInfo(), nil
}
