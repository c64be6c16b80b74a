package filedb

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/book"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/db"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/db/codec"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const (
	// DefaultPath is used when Options.Path is empty
	DefaultPath = "library.json"

	filePerm = 0o644
	dirPerm  = 0o755
)

var log = logger.GetLogger("db")

// Options configures a file database
type Options struct {
	Path  string       // Location of the collection file (empty = DefaultPath)
	Codec codec.ICodec // Encoding of the file (nil = json)
}

type fileImpl struct {
	path  string
	codec codec.ICodec

	mu      sync.Mutex
	size    int
	records int
}

// NewFileDB creates a db.BookDB backed by the file described in opts (optional).
// Nothing is read or written until Load or Save is called.
func NewFileDB(opts *Options) db.BookDB {
	if opts == nil {
		opts = &Options{}
	}

	path := opts.Path
	if path == "" {
		path = DefaultPath
	}

	c := opts.Codec
	if c == nil {
		c = codec.NewJSONCodec()
	}

	return &fileImpl{
		path:  path,
		codec: c,
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see db.BookDB)
// --------------------------------------------------------------------------

func (f *fileImpl) Load() ([]book.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("no collection at %s, starting empty", f.path)
		f.size, f.records = 0, 0
		return []book.Book{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		f.size, f.records = len(data), 0
		return []book.Book{}, nil
	}

	books, err := f.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s as %s: %v", db.ErrCorrupt, f.path, f.codec.Name(), err)
	}

	f.size, f.records = len(data), len(books)
	log.Debugf("loaded %d books from %s", len(books), f.path)
	return books, nil
}

func (f *fileImpl) Save(books []book.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.codec.Encode(books)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	if err := writeAtomic(f.path, data); err != nil {
		return err
	}

	f.size, f.records = len(data), len(books)
	log.Debugf("saved %d books to %s (%d bytes)", len(books), f.path, len(data))
	return nil
}

func (f *fileImpl) GetInfo() db.DatabaseInfo {
	f.mu.Lock()
	defer f.mu.Unlock()

	return db.DatabaseInfo{
		SizeBytes: f.size,
		DbType:    db.ImplFile,
		Location:  f.path,
		Format:    f.codec.Name(),
		Records:   f.records,
	}
}

func (f *fileImpl) Close() error {
	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// writeAtomic replaces path with data. The content is written to a temporary
// sibling first and renamed into place once it is on disk.
func writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	// remove the temp file on every failure path
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
