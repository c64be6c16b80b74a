package query

import (
	"github.com/uzaira123/Uzaira-Library-lsm/lib/book"
	"math"
)

// YearSummary describes the distribution of publication years.
// All fields are zero for an empty collection.
type YearSummary struct {
	Oldest       int     `json:"oldest"`
	Newest       int     `json:"newest"`
	Mean         float64 `json:"mean"`
	StdDeviation float64 `json:"std_deviation"`
}

// summarizeYears computes oldest, newest, mean and (population) standard
// deviation of the publication years.
func summarizeYears(books []book.Book) YearSummary {
	if len(books) == 0 {
		return YearSummary{}
	}

	// initialize min and max with the first value
	oldest := books[0].PublicationYear
	newest := books[0].PublicationYear

	var sum float64
	for _, b := range books {
		y := b.PublicationYear
		sum += float64(y)
		if y < oldest {
			oldest = y
		}
		if y > newest {
			newest = y
		}
	}
	mean := sum / float64(len(books))

	var sumSquaredDiffs float64
	for _, b := range books {
		diff := float64(b.PublicationYear) - mean
		sumSquaredDiffs += diff * diff
	}

	return YearSummary{
		Oldest:       oldest,
		Newest:       newest,
		Mean:         math.Round(mean*100) / 100,
		StdDeviation: math.Round(math.Sqrt(sumSquaredDiffs/float64(len(books)))*100) / 100,
	}
}
