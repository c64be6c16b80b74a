package query

import (
	"fmt"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/book"
	"github.com/uzaira123/Uzaira-Library-lsm/lib/store"
	"strings"
)

// Field selects the book attribute a search term is matched against.
type Field string

const (
	FieldTitle  Field = "title"
	FieldAuthor Field = "author"
	FieldGenre  Field = "genre"
)

// Fields returns all searchable fields.
func Fields() []Field {
	return []Field{FieldTitle, FieldAuthor, FieldGenre}
}

// ParseField converts s (case-insensitive) to a Field.
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	if err := f.validate(); err != nil {
		return "", err
	}
	return f, nil
}

func (f Field) validate() error {
	switch f {
	case FieldTitle, FieldAuthor, FieldGenre:
		return nil
	default:
		return store.NewError(store.RetCInvalidField, fmt.Sprintf("cannot search by %q (expected one of: title, author, genre)", string(f)))
	}
}

func (f Field) value(b book.Book) string {
	switch f {
	case FieldAuthor:
		return b.Author
	case FieldGenre:
		return string(b.Genre)
	default:
		return b.Title
	}
}

// Hit is a search match together with its position in the searched collection.
type Hit struct {
	Index int       `json:"index"`
	Book  book.Book `json:"book"`
}

// SearchHits matches term case-insensitively as a substring of field and
// returns the matches with their positions, in collection order. The term is
// trimmed first; an empty term matches nothing. The field is checked before
// the term, so an unsupported field is an error even for an empty term.
func SearchHits(books []book.Book, term string, field Field) ([]Hit, error) {
	if err := field.validate(); err != nil {
		return nil, err
	}

	hits := []Hit{}
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return hits, nil
	}

	for i, b := range books {
		if strings.Contains(strings.ToLower(field.value(b)), needle) {
			hits = append(hits, Hit{Index: i, Book: b})
		}
	}
	return hits, nil
}

// Search is SearchHits without positions.
func Search(books []book.Book, term string, field Field) ([]book.Book, error) {
	hits, err := SearchHits(books, term, field)
	if err != nil {
		return nil, err
	}

	matches := make([]book.Book, len(hits))
	for i, hit := range hits {
		matches[i] = hit.Book
	}
	return matches, nil
}
