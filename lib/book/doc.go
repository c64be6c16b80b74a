// Package book defines the single entity managed by lsm: a book record in a
// personal reading list.
//
// A Book is created exclusively through New, which trims and validates the raw
// user input carried by a Draft. Validation is declarative (struct tags evaluated by
// go-playground/validator) and reports every violated constraint at once, so a
// presentation layer can show all problems of a form in one pass.
//
// Key Components:
//
//   - Book: the persisted record. Only ReadStatus may change after creation,
//     AddedAt is stamped once by New and never touched again.
//
//   - Draft: unvalidated input for New. Year is checked against the calendar year
//     of the creation clock, not of the machine, so tests can pin it.
//
//   - Genre: a closed set of categories. ParseGenre accepts any casing and
//     returns the canonical spelling.
//
//   - Timestamp: a time.Time that serialises as "2006-01-02 15:04:05" in local time.
package book
