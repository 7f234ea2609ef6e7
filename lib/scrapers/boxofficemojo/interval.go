package boxofficemojo

import "boxoffice/lib/textutil"

type IntervalKind string

const (
	Quarter IntervalKind = "quarter"
	Month   IntervalKind = "month"
)

// Interval is one of the 16 time intervals box office listings are
// partitioned by.
type Interval struct {
	Kind IntervalKind
	// Key is the path segment used by the site ("q1", "january").
	Key string
	// Label is the display label stored in the database and used as the
	// cache key ("first quarter", "january").
	Label string
}

// Path is the listing page path relative to the site root.
func (i Interval) Path() string {
	return "/" + string(i.Kind) + "/" + i.Key + "/"
}

var quarters = []Interval{
	{Kind: Quarter, Key: "q1", Label: "first quarter"},
	{Kind: Quarter, Key: "q2", Label: "second quarter"},
	{Kind: Quarter, Key: "q3", Label: "third quarter"},
	{Kind: Quarter, Key: "q4", Label: "fourth quarter"},
}

var months = func() []Interval {
	names := []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}
	out := make([]Interval, len(names))
	for i, name := range names {
		out[i] = Interval{Kind: Month, Key: name, Label: name}
	}
	return out
}()

// Quarters returns the four quarters in calendar order.
func Quarters() []Interval {
	return append([]Interval(nil), quarters...)
}

// Months returns the twelve months in calendar order.
func Months() []Interval {
	return append([]Interval(nil), months...)
}

// Intervals returns all quarters followed by all months, this is the order
// listings are ingested in.
func Intervals() []Interval {
	return append(Quarters(), months...)
}

// LookupInterval finds an interval by its key or label, ignoring case and
// whitespace.
func LookupInterval(name string) (Interval, bool) {
	name = textutil.NormalizeName(name)
	for _, i := range Intervals() {
		if textutil.NormalizeName(i.Key) == name || textutil.NormalizeName(i.Label) == name {
			return i, true
		}
	}
	return Interval{}, false
}
