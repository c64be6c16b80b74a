package filedb

import (
	"bytes"
	"errors"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/book"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/db"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/db/codec"
	dbtesting "github.com/uzaira123/Uzaira-Library-lsm/lib/db/testing"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test(t *testing.T) {
	dbtesting.RunBookDBTests(t, "FileDB(json)", func(t *testing.T) db.BookDB {
		return NewFileDB(&Options{Path: filepath.Join(t.TempDir(), "library.json")})
	})

	dbtesting.RunBookDBTests(t, "FileDB(gob)", func(t *testing.T) db.BookDB {
		return NewFileDB(&Options{Path: filepath.Join(t.TempDir(), "library.gob"), Codec: codec.NewGOBCodec()})
	})
}

func TestPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "library.json")
	books := dbtesting.SampleBooks(5)

	if err := NewFileDB(&Options{Path: path}).Save(books); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := NewFileDB(&Options{Path: path}).Load()
	if err != nil {
		t.Fatalf("Load from a new instance failed: %v", err)
	}
	dbtesting.RequireSameBooks(t, books, loaded)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	garbage := []byte(`[{"title": "Dune", "author": `)
	if err := os.WriteFile(path, garbage, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileDB(&Options{Path: path}).Load()
	if !errors.Is(err, db.ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}

	// the corrupt file must be left for the user to inspect
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(garbage) {
		t.Errorf("corrupt file was modified by Load")
	}
}

func TestLoadWhitespaceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	if err := os.WriteFile(path, []byte("  \n\t"), 0o644); err != nil {
		t.Fatal(err)
	}

	books, err := NewFileDB(&Options{Path: path}).Load()
	if err != nil {
		t.Fatalf("whitespace-only file should load as empty, got %v", err)
	}
	if len(books) != 0 {
		t.Errorf("expected no books, got %d", len(books))
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	database := NewFileDB(&Options{Path: filepath.Join(dir, "library.json")})

	for i := 0; i < 3; i++ {
		if err := database.Save(dbtesting.SampleBooks(i + 1)); err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file %s left behind", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly one file in %s, got %d", dir, len(entries))
	}
}

func TestSaveReplacesFileAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	database := NewFileDB(&Options{Path: path})

	if err := database.Save(dbtesting.SampleBooks(2)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	previous, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	before, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	// a reader holding the old file open must never see a partial write
	reader, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()

	if err := database.Save(dbtesting.SampleBooks(6)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	seen, err := io.ReadAll(reader)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(seen, previous) {
		t.Errorf("open reader saw the file change in place:\nwant: %s\ngot: %s", previous, seen)
	}

	after, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if os.SameFile(before, after) {
		t.Errorf("Save rewrote %s in place instead of replacing it", path)
	}

	loaded, err := database.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	dbtesting.RequireSameBooks(t, dbtesting.SampleBooks(6), loaded)
}

func TestSaveFailureKeepsPreviousFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "library.json")
	database := NewFileDB(&Options{Path: path})

	books := dbtesting.SampleBooks(2)
	if err := database.Save(books); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	previous, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// a read-only directory makes every further save to the same path fail
	if err := os.Chmod(dir, 0o500); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	if err := database.Save(dbtesting.SampleBooks(4)); err == nil {
		t.Fatal("Save into a read-only directory should fail")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, previous) {
		t.Errorf("failed Save modified %s", path)
	}

	loaded, err := database.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	dbtesting.RequireSameBooks(t, books, loaded)
}

// failingCodec encodes nothing and always fails
type failingCodec struct {
	codec.ICodec
}

func (failingCodec) Encode([]book.Book) ([]byte, error) {
	return nil, errors.New("encode failed")
}

func TestEncodeFailureKeepsPreviousFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "library.json")

	books := dbtesting.SampleBooks(3)
	if err := NewFileDB(&Options{Path: path}).Save(books); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	previous, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	broken := NewFileDB(&Options{Path: path, Codec: failingCodec{codec.NewJSONCodec()}})
	if err := broken.Save(dbtesting.SampleBooks(1)); err == nil {
		t.Fatal("Save with a failing codec should fail")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, previous) {
		t.Errorf("failed Save modified %s", path)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only %s in %s, got %d entries", filepath.Base(path), dir, len(entries))
	}
}

func TestInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	database := NewFileDB(&Options{Path: path})
	if err := database.Save(dbtesting.SampleBooks(3)); err != nil {
		t.Fatal(err)
	}

	info := database.GetInfo()
	stat, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.SizeBytes != int(stat.Size()) {
		t.Errorf("SizeBytes = %d, file has %d bytes", info.SizeBytes, stat.Size())
	}
	if info.Location != path || info.Format != "json" || info.DbType != db.ImplFile {
		t.Errorf("unexpected info: %+v", info)
	}
}

func TestDefaultOptions(t *testing.T) {
	info := NewFileDB(nil).GetInfo()
	if info.Location != DefaultPath || info.Format != "json" {
		t.Errorf("unexpected defaults: %+v", info)
	}
}
