package book

import "strings"

// Genre is one of a fixed set of book categories.
type Genre string

const (
	GenreFiction        Genre = "Fiction"
	GenreNonFiction     Genre = "Non-Fiction"
	GenreScienceFiction Genre = "Science Fiction"
	GenreScience        Genre = "Science"
	GenreTechnology     Genre = "Technology"
	GenreFantasy        Genre = "Fantasy"
	GenreRomance        Genre = "Romance"
	GenrePoetry         Genre = "Poetry"
	GenreHistory        Genre = "History"
	GenreOther          Genre = "Other"
)

var genres = []Genre{
	GenreFiction,
	GenreNonFiction,
	GenreScienceFiction,
	GenreScience,
	GenreTechnology,
	GenreFantasy,
	GenreRomance,
	GenrePoetry,
	GenreHistory,
	GenreOther,
}

// Genres returns all supported genres in display order.
func Genres() []Genre {
	out := make([]Genre, len(genres))
	copy(out, genres)
	return out
}

// ParseGenre returns the canonical Genre for s, ignoring case and surrounding
// whitespace. The boolean is false if s names no known genre.
func ParseGenre(s string) (Genre, bool) {
	s = strings.TrimSpace(s)
	for _, g := range genres {
		if strings.EqualFold(string(g), s) {
			return g, true
		}
	}
	return "", false
}

// String implements fmt.Stringer.
func (g Genre) String() string {
	return string(g)
}

// Valid reports whether g is a member of the closed genre set (exact spelling).
func (g Genre) Valid() bool {
	for _, known := range genres {
		if g == known {
			return true
		}
	}
	return false
}
