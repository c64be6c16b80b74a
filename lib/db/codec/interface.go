package codec

import (
	"fmt"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/book"
	"sort"
)

// ICodec encodes and decodes an ordered book collection.
type ICodec interface {
	// Name returns the identifier used to select the codec (e.g. "json").
	Name() string
	// Encode serializes books, preserving their order.
	Encode(books []book.Book) ([]byte, error)
	// Decode restores a collection produced by Encode. It never returns a nil
	// slice on success.
	Decode(b []byte) ([]book.Book, error)
}

var codecs = map[string]func() ICodec{
	"json": NewJSONCodec,
	"gob":  NewGOBCodec,
}

// ByName returns the codec registered under name.
func ByName(name string) (ICodec, error) {
	factory, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("invalid format %s (expected one of: %v)", name, Names())
	}
	return factory(), nil
}

// Names returns the names of all available codecs, sorted.
func Names() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func nonNil(books []book.Book) []book.Book {
	if books == nil {
		return []book.Book{}
	}
	return books
}
