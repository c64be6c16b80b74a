package store

import (
	"fmt"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/book"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/db"
	"strings"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// DBFactory is a function type that creates a new db used by the store.
// This is used to abstract the creation of the db from the store implementation.
type DBFactory func() db.BookDB

// IStore is the record store: the single owner of the ordered book collection.
// Positions are zero-based and only valid until the next mutation, since Remove
// shifts every later book down by one.
// Errors returned by the store are of type *Error.
type IStore interface {
	// Load replaces the in-memory collection with the persisted one and returns a
	// snapshot of it. If the persisted data is corrupt, the collection is reset to
	// empty and an error with code RetCCorruptState is returned.
	Load() (books []book.Book, err error)
	// Save persists the whole in-memory collection.
	Save() (err error)
	// Add validates draft, appends the new book to the tail and persists the
	// collection. Nothing is stored when validation fails (RetCValidation). If
	// only persisting fails (RetCIO), the book is kept in memory and returned.
	Add(draft book.Draft) (created book.Book, err error)
	// Remove deletes the book at index and persists. An index out of range is a
	// normal outcome: removed is false and err is nil.
	Remove(index int) (removed bool, err error)
	// SetReadStatus updates the read flag of the book at index and persists.
	// found is false (and err nil) for an index out of range.
	SetReadStatus(index int, read bool) (found bool, err error)
	// All returns a snapshot of the collection. Changes to the returned slice do
	// not affect the store.
	All() (books []book.Book)
	// Len returns the number of books in the collection.
	Len() int
	// GetDBInfo returns metadata about the database underlying the store.
	GetDBInfo() (info db.DatabaseInfo, err error)
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode),
// an error message and, where available, the underlying cause.
type Error struct {
	Code       RetCode  // The return code
	Msg        string   // The error message.
	Violations []string // Violated constraints (RetCValidation only)
	Err        error    // Underlying cause, may be nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("StoreError (code %s): %s", e.Code, e.Msg)
	if len(e.Violations) > 0 {
		msg += ": " + strings.Join(e.Violations, "; ")
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code, so that
// errors.Is(err, store.ErrIO) matches every IO failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// NewError creates a new store error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// WrapError creates a new store error with the given code, message and cause.
func WrapError(code RetCode, msg string, err error) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
		Err:  err,
	}
}

// Sentinels for errors.Is; only the code is compared.
var (
	ErrValidation   = NewError(RetCValidation, "validation failed")
	ErrCorruptState = NewError(RetCCorruptState, "persisted state is corrupt")
	ErrIO           = NewError(RetCIO, "persistence failed")
	ErrInvalidField = NewError(RetCInvalidField, "invalid field")
)

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess       RetCode = iota // 0: Operation executed successfully.
	RetCInternalError                // 1: Operation failed due to an internal error.
	RetCValidation                   // 2: Input to Add violates a constraint.
	RetCCorruptState                 // 3: Persisted data exists but cannot be decoded.
	RetCIO                           // 4: Reading or writing persisted data failed.
	RetCInvalidField                 // 5: Search was asked for an unsupported field.
)

func (c RetCode) String() string {
	switch c {
	case RetCSuccess:
		return "Success"
	case RetCInternalError:
		return "InternalError"
	case RetCValidation:
		return "Validation"
	case RetCCorruptState:
		return "CorruptState"
	case RetCIO:
		return "IO"
	case RetCInvalidField:
		return "InvalidField"
	default:
		return "Unknown"
	}
}
