// Package db defines the persistence layer underneath the record store. A BookDB
// stores and restores an entire ordered book collection; it knows nothing about
// positions, validation or aggregation, which belong to the store and query
// packages.
//
// Key Components:
//
//   - BookDB Interface: Load and Save of the whole collection plus metadata
//     reporting (GetInfo). Persistence is whole-collection rewrite only.
//
//   - ErrCorrupt: wrapped by Load when persisted data is present but not
//     well-formed, so callers can tell "nothing saved yet" apart from "saved data
//     is unreadable" with errors.Is.
//
//   - Implementation Identifiers: "file" (engines/filedb) and "memory"
//     (engines/memdb).
//
// Encoding of the persisted data is delegated to the codec subpackage, and
// every engine is checked against the shared conformance suite in the testing
// subpackage.
package db
