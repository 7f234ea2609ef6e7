package web

import (
	"database/sql"
	"strconv"
	"strings"

	"boxoffice/lib/scrapers/omdb"
	"boxoffice/services/boxoffice/db"
)

const (
	KindAllMovies = "AllMovies"
	KindChampions = "Champions"
)

// Metric is a comparable column of the store, `value` returns the stored
// text of the column and whether it was present.
type Metric struct {
	Name  string
	value func(row db.ListComparisonRowsRow) (string, bool)
	score func(text string) (float64, bool)
}

// Value returns the chart value of a row, absent or unparsable values are
// reported with ok = false.
func (m Metric) Value(row db.ListComparisonRowsRow) (text string, value float64, ok bool) {
	text, present := m.value(row)
	if !present {
		return "", 0, false
	}
	value, ok = m.score(text)
	return text, value, ok
}

func column(get func(row db.ListComparisonRowsRow) string) func(db.ListComparisonRowsRow) (string, bool) {
	return func(row db.ListComparisonRowsRow) (string, bool) {
		return get(row), true
	}
}

func nullable(get func(row db.ListComparisonRowsRow) sql.NullString) func(db.ListComparisonRowsRow) (string, bool) {
	return func(row db.ListComparisonRowsRow) (string, bool) {
		value := get(row)
		return value.String, value.Valid
	}
}

func rating(position int) func(string) (float64, bool) {
	return func(text string) (float64, bool) {
		return omdb.Score(position, text)
	}
}

// ParseMoney converts "$1,234,567" to 1234567.
func ParseMoney(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "$")
	text = strings.ReplaceAll(text, ",", "")
	if text == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

var metricsByKind = map[string][]Metric{
	// interval wide totals cover every movie released in it
	KindAllMovies: {
		{
			Name:  "cumulative gross",
			value: column(func(row db.ListComparisonRowsRow) string { return row.CumulativeGross }),
			score: ParseMoney,
		},
		{
			Name:  "average gross",
			value: column(func(row db.ListComparisonRowsRow) string { return row.AverageGross }),
			score: ParseMoney,
		},
	},
	KindChampions: {
		{
			Name:  "gross",
			value: column(func(row db.ListComparisonRowsRow) string { return row.Gross }),
			score: ParseMoney,
		},
		{
			Name:  "IMDB rating",
			value: nullable(func(row db.ListComparisonRowsRow) sql.NullString { return row.InternetMovieRating }),
			score: rating(0),
		},
		{
			Name:  "Rotten Tomatoes rating",
			value: nullable(func(row db.ListComparisonRowsRow) sql.NullString { return row.RottenTomatoesRating }),
			score: rating(1),
		},
		{
			Name:  "Metacritic rating",
			value: nullable(func(row db.ListComparisonRowsRow) sql.NullString { return row.MetacriticRating }),
			score: rating(2),
		},
	},
}

// KindMetrics lists the metric names offered for a movie kind.
func KindMetrics(kind string) []string {
	var names []string
	for _, m := range metricsByKind[kind] {
		names = append(names, m.Name)
	}
	return names
}

// LookupMetric finds a metric by name within a kind, an empty kind
// searches every kind.
func LookupMetric(kind, name string) (Metric, bool) {
	for k, metrics := range metricsByKind {
		if kind != "" && k != kind {
			continue
		}
		for _, m := range metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return Metric{}, false
}
