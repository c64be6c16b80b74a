package query

import (
	"github.com/uzaira123/Uzaira-Library-lsm/lib/book"
	"math"
	"slices"
)

// DefaultTopAuthors is used by TopAuthors when n is not positive.
const DefaultTopAuthors = 5

// Count is the number of books sharing a key (a genre or an author).
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// DecadeCount is the number of books published in the decade starting at Decade.
type DecadeCount struct {
	Decade int `json:"decade"`
	Count  int `json:"count"`
}

// Stats summarises a collection.
type Stats struct {
	Total       int           `json:"total"`
	ReadCount   int           `json:"read_count"`
	UnreadCount int           `json:"unread_count"`
	PercentRead float64       `json:"percent_read"`
	ByGenre     []Count       `json:"by_genre"`
	ByDecade    []DecadeCount `json:"by_decade"`
	ByAuthor    []Count       `json:"by_author"`
	Years       YearSummary   `json:"years"`
}

// Compute builds the statistics of books. PercentRead is rounded to two
// decimals and is 0 for an empty collection.
func Compute(books []book.Book) Stats {
	s := Stats{
		Total:    len(books),
		ByGenre:  countByDesc(books, func(b book.Book) string { return string(b.Genre) }),
		ByAuthor: countByDesc(books, func(b book.Book) string { return b.Author }),
		ByDecade: countByDecade(books),
		Years:    summarizeYears(books),
	}

	for _, b := range books {
		if b.ReadStatus {
			s.ReadCount++
		}
	}
	s.UnreadCount = s.Total - s.ReadCount
	s.PercentRead = percent(s.ReadCount, s.Total)

	return s
}

// TopAuthors returns the n most frequent authors (DefaultTopAuthors if n <= 0),
// following the ordering of ByAuthor.
func (s Stats) TopAuthors(n int) []Count {
	if n <= 0 {
		n = DefaultTopAuthors
	}
	if n > len(s.ByAuthor) {
		n = len(s.ByAuthor)
	}
	return slices.Clone(s.ByAuthor[:n])
}

// TopAuthors is Compute(books).TopAuthors(n) without the other groupings.
func TopAuthors(books []book.Book, n int) []Count {
	s := Stats{ByAuthor: countByDesc(books, func(b book.Book) string { return b.Author })}
	return s.TopAuthors(n)
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// percent returns part/total*100 rounded to two decimals, 0 if total is 0
func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*100*100) / 100
}

// countByDesc counts books per key. Keys are ordered by descending count, ties
// by first appearance (stable sort over first-appearance order).
func countByDesc(books []book.Book, key func(book.Book) string) []Count {
	counts := make([]Count, 0)
	position := make(map[string]int)

	for _, b := range books {
		k := key(b)
		if i, ok := position[k]; ok {
			counts[i].Count++
			continue
		}
		position[k] = len(counts)
		counts = append(counts, Count{Key: k, Count: 1})
	}

	slices.SortStableFunc(counts, func(a, b Count) int {
		return b.Count - a.Count
	})
	return counts
}

// countByDecade counts books per decade, ascending
func countByDecade(books []book.Book) []DecadeCount {
	perDecade := make(map[int]int)
	for _, b := range books {
		perDecade[b.Decade()]++
	}

	decades := make([]DecadeCount, 0, len(perDecade))
	for decade, n := range perDecade {
		decades = append(decades, DecadeCount{Decade: decade, Count: n})
	}
	slices.SortFunc(decades, func(a, b DecadeCount) int {
		return a.Decade - b.Decade
	})
	return decades
}
