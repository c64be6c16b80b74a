package book

import (
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the wire format of Book.AddedAt.
const TimestampLayout = "2006-01-02 15:04:05"

// MinYear is the earliest accepted publication year.
const MinYear = 1800

// Book is a single entry of the collection.
type Book struct {
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	PublicationYear int       `json:"publication_year"`
	Genre           Genre     `json:"genre"`
	ReadStatus      bool      `json:"read_status"`
	AddedAt         Timestamp `json:"added_at"`
}

// Decade returns the publication year rounded down to the nearest multiple of ten.
func (b Book) Decade() int {
	y := b.PublicationYear
	if y < 0 {
		return -((-y + 9) / 10 * 10)
	}
	return y / 10 * 10
}

// Draft holds raw user input for a new Book.
type Draft struct {
	Title  string `validate:"required"`
	Author string `validate:"required"`
	Year   int    `validate:"gte=1800,notfuture"`
	Genre  string `validate:"required,genre"`
	Read   bool
}

// New validates d and builds a Book stamped with now. Title, author and genre are
// trimmed before validation. On failure the returned error is a ValidationErrors
// listing every violated constraint.
func New(d Draft, now time.Time) (Book, error) {
	d.Title = strings.TrimSpace(d.Title)
	d.Author = strings.TrimSpace(d.Author)
	d.Genre = strings.TrimSpace(d.Genre)

	if err := validateDraft(d, now); err != nil {
		return Book{}, err
	}

	// validated above
	genre, _ := ParseGenre(d.Genre)

	return Book{
		Title:           d.Title,
		Author:          d.Author,
		PublicationYear: d.Year,
		Genre:           genre,
		ReadStatus:      d.Read,
		AddedAt:         NewTimestamp(now),
	}, nil
}

// --------------------------------------------------------------------------
// Timestamp
// --------------------------------------------------------------------------

// Timestamp is a second-precision local time.
type Timestamp struct {
	time.Time
}

// NewTimestamp converts t to local time and drops sub-second precision so the
// value survives a round trip through TimestampLayout unchanged.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Local().Truncate(time.Second)}
}

// String formats the timestamp with TimestampLayout.
func (t Timestamp) String() string {
	return t.Format(TimestampLayout)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.Format(TimestampLayout))), nil
}

// UnmarshalJSON implements json.Unmarshaler. Besides TimestampLayout it accepts
// RFC 3339 so files edited by hand or written by other tools still load.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		t.Time = time.Time{}
		return nil
	}
	s, err := strconv.Unquote(s)
	if err != nil {
		return err
	}
	parsed, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		rfc, rfcErr := time.Parse(time.RFC3339, s)
		if rfcErr != nil {
			return err
		}
		parsed = rfc.Local()
	}
	t.Time = parsed
	return nil
}
