// Package query implements the read side of lsm: substring search and grouped
// statistics over a snapshot of the collection. Every function is pure. None of
// them mutates its input, and all of them return results in a deterministic
// order.
//
// Ordering rules:
//
//   - Search results keep the order of the source collection.
//   - Genre and author groupings are ordered by descending count. Ties keep the
//     order in which the key first appears in the collection.
//   - Decade groupings are ordered by ascending decade.
//
// Unsupported search fields are reported as a *store.Error with code
// store.RetCInvalidField.
package query
