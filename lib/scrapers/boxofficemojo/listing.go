package boxofficemojo

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"boxoffice/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

const (
	containerSelector = "div.a-section.imdb-scroll-table-inner"
	yearSelector      = "td.mojo-field-type-year"
	nameSelector      = "td.mojo-field-type-release"
	moneySelector     = "td.a-text-right.mojo-field-type-money"
	releaseSelector   = "td.a-text-right.mojo-field-type-positive_integer"
)

var ErrListingNotFound = errors.New("listing table not found")

// Listing is the parsed content of one listing page. All six sequences are
// addressed by the same row index.
type Listing struct {
	Years      []string
	Names      []string
	Gross      []string
	Releases   []string
	Cumulative []string
	Average    []string
}

// ListingRow is one row of a Listing.
type ListingRow struct {
	Year       string
	Name       string
	Gross      string
	Release    string
	Cumulative string
	Average    string
}

func (l Listing) Len() int {
	return len(l.Years)
}

func (l Listing) Row(i int) ListingRow {
	return ListingRow{
		Year:       l.Years[i],
		Name:       l.Names[i],
		Gross:      l.Gross[i],
		Release:    l.Releases[i],
		Cumulative: l.Cumulative[i],
		Average:    l.Average[i],
	}
}

// DataShapeError means the page did not have the expected column layout,
// usually because the site changed.
type DataShapeError struct {
	// MoneyCells is the number of monetary cells found.
	MoneyCells int
	// Counts maps each column to the number of values extracted for it.
	Counts map[string]int
}

func (e *DataShapeError) Error() string {
	names := make([]string, 0, len(e.Counts))
	for name := range e.Counts {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, e.Counts[name])
	}
	return fmt.Sprintf(
		"listing columns have unequal lengths (money cells=%d, %s)",
		e.MoneyCells, strings.Join(parts, ", "),
	)
}

// deinterleaveMoney splits the monetary cells, which repeat as
// (cumulative gross, average gross, gross) for every row.
func deinterleaveMoney(cells []string) (cumulative, average, gross []string) {
	cumulative = []string{}
	average = []string{}
	gross = []string{}
	for i, cell := range cells {
		switch i % 3 {
		case 0:
			cumulative = append(cumulative, cell)
		case 1:
			average = append(average, cell)
		case 2:
			gross = append(gross, cell)
		}
	}
	return cumulative, average, gross
}

// ParseListing extracts the rows of a quarter or month listing page.
func ParseListing(page []byte) (Listing, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return Listing{}, err
	}

	table := doc.Find(containerSelector).First()
	if table.Length() == 0 {
		return Listing{}, ErrListingNotFound
	}

	money := htmlutil.Texts(table.Find(moneySelector))
	cumulative, average, gross := deinterleaveMoney(money)

	listing := Listing{
		Years:      htmlutil.Texts(table.Find(yearSelector)),
		Names:      htmlutil.Texts(table.Find(nameSelector)),
		Gross:      gross,
		Releases:   htmlutil.Texts(table.Find(releaseSelector)),
		Cumulative: cumulative,
		Average:    average,
	}

	counts := map[string]int{
		"year":             len(listing.Years),
		"name":             len(listing.Names),
		"gross":            len(listing.Gross),
		"release":          len(listing.Releases),
		"cumulative_gross": len(listing.Cumulative),
		"average_gross":    len(listing.Average),
	}
	if len(money)%3 != 0 {
		return Listing{}, &DataShapeError{MoneyCells: len(money), Counts: counts}
	}
	for _, n := range counts {
		if n != len(listing.Years) {
			return Listing{}, &DataShapeError{MoneyCells: len(money), Counts: counts}
		}
	}

	return listing, nil
}
