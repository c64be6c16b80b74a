// Package lstore implements the record store (store.IStore) for a single
// process. The ordered collection lives in memory; every mutation rewrites the
// whole collection through the db.BookDB injected by a store.DBFactory.
//
// Key Features:
//   - Insertion order preserved; positional remove with array-delete semantics
//   - Validation before anything is stored (book.New)
//   - Injected clock, no package-level mutable state
//   - Snapshot reads: All returns a copy
//   - Metrics in a VictoriaMetrics set
//
// Implementation Details:
//
//   - Locking: the collection is guarded by an xsync.RBMutex. Mutations hold the
//     write lock until the collection is persisted, so the file never falls
//     behind a later mutation. Snapshot reads take the reader-biased read lock.
//
//   - Failure Semantics: a failed save is reported as store.RetCIO but the
//     in-memory change is not rolled back; the caller decides whether to retry
//     Save or warn the user. A corrupt file on Load resets the collection to
//     empty and is reported as store.RetCCorruptState.
//
//   - Composition Architecture: the store follows a composition pattern where
//     the store.DBFactory injects the persistence engine, so the same store runs
//     against engines/filedb or engines/memdb without modification.
//
// Usage Example:
//
//	factory := func() db.BookDB { return filedb.NewFileDB(&filedb.Options{Path: "library.json"}) }
//	s := lstore.NewLocalStore(factory)
//	if _, err := s.Load(); err != nil { ... }
//
//	created, err := s.Add(book.Draft{Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "Science Fiction"})
//	removed, err := s.Remove(0)
package lstore
