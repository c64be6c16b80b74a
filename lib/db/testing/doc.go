// Package testing provides a standardised conformance suite for implementations
// of the db.BookDB interface.
//
// Example usage:
//
//	factory := func(t *testing.T) db.BookDB {
//		return NewMyDatabase(t.TempDir())
//	}
//
//	dbtesting.RunBookDBTests(t, "MyDatabase", factory)
package testing
