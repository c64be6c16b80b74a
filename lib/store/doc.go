// Package store provides the record store: the single owner of a personal book
// collection, with positional add/remove/update operations on top of a
// pluggable persistence backend (db.BookDB).
//
// The package focuses on:
//   - A unified interface (IStore) for collection operations
//   - Pluggable persistence through the DBFactory pattern
//   - Typed errors that tell caller mistakes apart from storage failures
//
// Key Components:
//
//   - IStore Interface: Load, Save, Add, Remove, SetReadStatus, All, Len and
//     GetDBInfo. Every mutation persists the whole collection before returning.
//     Books are addressed by their current zero-based position; there is no
//     other identity.
//
//   - Error System: every error returned by a store is an *Error carrying a
//     RetCode. The exported sentinels (ErrValidation, ErrCorruptState, ErrIO,
//     ErrInvalidField) match by code with errors.Is:
//
//     RetCValidation: Add was given invalid input; Violations lists every
//     broken constraint. Never retried.
//
//     RetCCorruptState: persisted data is unreadable. The store falls back to an
//     empty collection but still reports the error so the caller can warn the
//     user before anything overwrites the file.
//
//     RetCIO: persisting failed. The in-memory collection already reflects the
//     attempted change, but it may be lost on restart.
//
//     RetCInvalidField: returned by the query package for unsupported search
//     fields.
//
//   - DBFactory: A function type that abstracts the creation of the underlying
//     db.BookDB, so the same store runs against a file (engines/filedb) or
//     purely in memory (engines/memdb).
//
// Implementations:
//
//   - Local Store (lstore): an in-process implementation guarding the collection
//     with a reader-biased lock. Available in the
//     "github.com/uzaira123/Uzaira-Library-lsm/lib/store/lstore" package.
package store
