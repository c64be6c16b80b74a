package book_test

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzaira123/Uzaira-Library-lsm/lib/book"
)

var fixedNow = time.Date(2025, time.January, 1, 12, 0, 0, 500, time.UTC)

func validDraft() book.Draft {
	return book.Draft{
		Title:  "  Dune ",
		Author: "Frank Herbert",
		Year:   1965,
		Genre:  "science fiction",
		Read:   true,
	}
}

func Test_New_TrimsAndCanonicalises(t *testing.T) {
	b, err := book.New(validDraft(), fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "Dune", b.Title)
	assert.Equal(t, "Frank Herbert", b.Author)
	assert.Equal(t, 1965, b.PublicationYear)
	assert.Equal(t, book.GenreScienceFiction, b.Genre)
	assert.True(t, b.ReadStatus)
	assert.True(t, b.AddedAt.Equal(fixedNow.Truncate(time.Second)))
	assert.Zero(t, b.AddedAt.Nanosecond())
}

func Test_New_ReportsEveryViolation(t *testing.T) {
	_, err := book.New(book.Draft{Title: "   ", Author: "", Year: 1799, Genre: "Cookbooks"}, fixedNow)
	require.Error(t, err)

	var violations book.ValidationErrors
	require.ErrorAs(t, err, &violations)
	require.Len(t, violations, 4)

	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"Title", "Author", "Year", "Genre"}, fields)
}

func Test_New_YearBounds(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		valid bool
	}{
		{name: "lower bound", year: book.MinYear, valid: true},
		{name: "below lower bound", year: book.MinYear - 1, valid: false},
		{name: "current year", year: fixedNow.Year(), valid: true},
		{name: "next year", year: fixedNow.Year() + 1, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			d.Year = tt.year
			_, err := book.New(d, fixedNow)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var violations book.ValidationErrors
			require.ErrorAs(t, err, &violations)
			require.Len(t, violations, 1)
			assert.Equal(t, "Year", violations[0].Field)
		})
	}
}

func Test_ParseGenre(t *testing.T) {
	g, ok := book.ParseGenre(" non-fiction ")
	assert.True(t, ok)
	assert.Equal(t, book.GenreNonFiction, g)

	_, ok = book.ParseGenre("Cookbooks")
	assert.False(t, ok)

	assert.True(t, book.GenreHistory.Valid())
	assert.False(t, book.Genre("history").Valid())
	assert.Len(t, book.Genres(), 10)
}

func Test_Book_Decade(t *testing.T) {
	assert.Equal(t, 1990, book.Book{PublicationYear: 1995}.Decade())
	assert.Equal(t, 2000, book.Book{PublicationYear: 2000}.Decade())
	assert.Equal(t, 2000, book.Book{PublicationYear: 2009}.Decade())
}

func Test_Timestamp_JSON(t *testing.T) {
	ts := book.NewTimestamp(time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local))

	data, err := jsoniter.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-01 12:00:00"`, string(data))

	var decoded book.Timestamp
	require.NoError(t, jsoniter.Unmarshal(data, &decoded))
	assert.True(t, ts.Equal(decoded.Time))

	require.NoError(t, jsoniter.Unmarshal([]byte(`"2025-01-01T12:00:00Z"`), &decoded))
	assert.True(t, decoded.Equal(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)))

	assert.Error(t, jsoniter.Unmarshal([]byte(`"yesterday"`), &decoded))
}
