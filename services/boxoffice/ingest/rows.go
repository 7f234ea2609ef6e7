// Package ingest turns listing pages and metadata lookups into the rows of
// the box-office store.
//
// The pipeline is synchronous: rows are built interval by interval in a fixed
// order, then every row is enriched with its movie details, then both are
// written to the store in a single transaction. Every external fetch goes
// through the response cache so a rerun with a warm cache is fully offline.
package ingest

import (
	"fmt"

	"boxoffice/lib/scrapers/omdb"
)

var tracerName = "boxoffice/services/boxoffice/ingest"

type BoxOfficeRow struct {
	// 1-based, dense and strictly increasing in production order
	ID              int64
	Year            string
	TimeInterval    string
	MovieName       string
	Gross           string
	Release         string
	CumulativeGross string
	AverageGross    string
}

// MovieDetail shares its ID with the BoxOfficeRow it was looked up for.
type MovieDetail struct {
	ID int64
	omdb.Detail
}

// ExternalFetchError is a failed network or api call, Key is the cache key
// (interval label or movie title) that was being fetched.
type ExternalFetchError struct {
	Key string
	Err error
}

func (e *ExternalFetchError) Error() string {
	return fmt.Sprintf("fetch '%s': %s", e.Key, e.Err.Error())
}

func (e *ExternalFetchError) Unwrap() error {
	return e.Err
}

type IntervalCount struct {
	Interval string
	Rows     int
}

// Summarize counts rows per interval in the order the intervals first appear.
func Summarize(rows []BoxOfficeRow) []IntervalCount {
	var out []IntervalCount
	index := map[string]int{}
	for _, r := range rows {
		i, ok := index[r.TimeInterval]
		if !ok {
			i = len(out)
			index[r.TimeInterval] = i
			out = append(out, IntervalCount{Interval: r.TimeInterval})
		}
		out[i].Rows++
	}
	return out
}
