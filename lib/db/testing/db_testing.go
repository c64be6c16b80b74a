package testing

import (
	"github.com/uzaira123/Uzaira-Library-lsm/lib/book"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/db"
	"testing"
	"time"
)

// DBFactory is a function that creates a new, empty instance of a BookDB implementation
type DBFactory func(t *testing.T) db.BookDB

// RunBookDBTests runs the conformance suite for a BookDB implementation.
func RunBookDBTests(t *testing.T, name string, factory DBFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("LoadEmpty", func(t *testing.T) {
			testLoadEmpty(t, factory(t))
		})

		t.Run("SaveLoad", func(t *testing.T) {
			testSaveLoad(t, factory(t))
		})

		t.Run("Overwrite", func(t *testing.T) {
			testOverwrite(t, factory(t))
		})

		t.Run("SaveEmpty", func(t *testing.T) {
			testSaveEmpty(t, factory(t))
		})

		t.Run("Isolation", func(t *testing.T) {
			testIsolation(t, factory(t))
		})

		t.Run("Info", func(t *testing.T) {
			testInfo(t, factory(t))
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// SampleBooks returns n distinct, valid books in a deterministic order
func SampleBooks(n int) []book.Book {
	genres := book.Genres()
	added := book.NewTimestamp(time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local))

	books := make([]book.Book, n)
	for i := range books {
		books[i] = book.Book{
			Title:           "Title " + string(rune('A'+i%26)),
			Author:          "Author " + string(rune('a'+i%7)),
			PublicationYear: 1900 + i*7%120,
			Genre:           genres[i%len(genres)],
			ReadStatus:      i%3 == 0,
			AddedAt:         book.NewTimestamp(added.Add(time.Duration(i) * time.Minute)),
		}
	}
	return books
}

// RequireSameBooks fails the test if a and b differ in length, order or any field
func RequireSameBooks(t testing.TB, want, got []book.Book) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("expected %d books, got %d", len(want), len(got))
	}
	for i := range want {
		w, g := want[i], got[i]
		if w.Title != g.Title || w.Author != g.Author || w.PublicationYear != g.PublicationYear ||
			w.Genre != g.Genre || w.ReadStatus != g.ReadStatus || !w.AddedAt.Equal(g.AddedAt.Time) {
			t.Fatalf("book %d differs:\nwant: %+v\ngot:  %+v", i, w, g)
		}
	}
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testLoadEmpty(t *testing.T, database db.BookDB) {
	books, err := database.Load()
	if err != nil {
		t.Fatalf("Load on a fresh database failed: %v", err)
	}
	if books == nil || len(books) != 0 {
		t.Errorf("Load on a fresh database should return an empty, non-nil slice, got %v", books)
	}
}

func testSaveLoad(t *testing.T, database db.BookDB) {
	books := SampleBooks(25)
	if err := database.Save(books); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := database.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	RequireSameBooks(t, books, loaded)
}

func testOverwrite(t *testing.T, database db.BookDB) {
	if err := database.Save(SampleBooks(10)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	smaller := SampleBooks(3)
	if err := database.Save(smaller); err != nil {
		t.Fatalf("Second Save failed: %v", err)
	}

	loaded, err := database.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	RequireSameBooks(t, smaller, loaded)
}

func testSaveEmpty(t *testing.T, database db.BookDB) {
	if err := database.Save(SampleBooks(4)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := database.Save(nil); err != nil {
		t.Fatalf("Save of nil collection failed: %v", err)
	}

	loaded, err := database.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty collection after saving nil, got %d books", len(loaded))
	}
}

func testIsolation(t *testing.T, database db.BookDB) {
	books := SampleBooks(2)
	if err := database.Save(books); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// changes to the caller's slices must not reach the database
	books[0].Title = "changed after save"

	loaded, err := database.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	loaded[1].Title = "changed after load"

	again, err := database.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	RequireSameBooks(t, SampleBooks(2), again)
}

func testInfo(t *testing.T, database db.BookDB) {
	if err := database.Save(SampleBooks(7)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info := database.GetInfo()
	if info.Records != 7 {
		t.Errorf("expected 7 records in info, got %d", info.Records)
	}
	if info.DbType == "" {
		t.Error("info should name the implementation")
	}
}
