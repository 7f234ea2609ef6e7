package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"boxoffice/lib/respcache"
	"boxoffice/lib/scraper"
	"boxoffice/lib/scrapers/boxofficemojo"
	"boxoffice/lib/scrapers/boxofficemojo/bomtest"
	"boxoffice/lib/scrapers/omdb"
	"boxoffice/lib/testutil"
	"boxoffice/services/boxoffice/db"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type fakeListings struct {
	mu    sync.Mutex
	pages map[string]string
	calls map[string]int
	err   error
}

func (f *fakeListings) FetchListing(ctx context.Context, interval boxofficemojo.Interval) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[interval.Key]++
	if f.err != nil {
		return "", f.err
	}
	page, ok := f.pages[interval.Key]
	if !ok {
		return bomtest.Page(), nil
	}
	return page, nil
}

type fakeDetails struct {
	responses map[string]string
	calls     map[string]int
	err       error
}

func (f *fakeDetails) Lookup(ctx context.Context, title string) (json.RawMessage, error) {
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[title]++
	if f.err != nil {
		return nil, f.err
	}
	res, ok := f.responses[title]
	if !ok {
		return json.RawMessage(`{"Response":"False","Error":"Movie not found!"}`), nil
	}
	return json.RawMessage(res), nil
}

func strptr(s string) *string {
	return &s
}

func testContext(t testing.TB) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	t.Cleanup(cancel)
	return ctx
}

var rowA = bomtest.Row{Year: "2020", Name: "Movie A", Gross: "$10", Release: "100", Cumulative: "$10", Average: "$10"}
var rowB = bomtest.Row{Year: "2019", Name: "Movie B", Gross: "$5", Release: "50", Cumulative: "$5", Average: "$5"}

func TestBuildRowsSingleQuarter(t *testing.T) {
	listings := &fakeListings{pages: map[string]string{
		"q1": bomtest.Page(rowA, rowB),
	}}
	builder := Builder{Cache: respcache.Load(""), Listings: listings}

	q1, ok := boxofficemojo.LookupInterval("q1")
	require.True(t, ok)

	rows, err := builder.BuildRowsFor(testContext(t), q1)
	if err != nil {
		t.Fatal(err)
	}

	expected := []BoxOfficeRow{
		{ID: 1, Year: "2020", TimeInterval: "first quarter", MovieName: "Movie A", Gross: "$10", Release: "100", CumulativeGross: "$10", AverageGross: "$10"},
		{ID: 2, Year: "2019", TimeInterval: "first quarter", MovieName: "Movie B", Gross: "$5", Release: "50", CumulativeGross: "$5", AverageGross: "$5"},
	}
	diff := cmp.Diff(expected, rows)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestBuildRowsMonotonicIds(t *testing.T) {
	pages := map[string]string{}
	expectedLabels := []string{}
	for i, interval := range boxofficemojo.Intervals() {
		var rows []bomtest.Row
		// vary the row count, including an empty interval
		for j := 0; j < i%4; j++ {
			rows = append(rows, bomtest.Row{
				Year:       fmt.Sprint(2020 - j),
				Name:       fmt.Sprintf("%s %d", interval.Key, j),
				Gross:      "$1",
				Release:    "1",
				Cumulative: "$1",
				Average:    "$1",
			})
			expectedLabels = append(expectedLabels, interval.Label)
		}
		pages[interval.Key] = bomtest.Page(rows...)
	}

	listings := &fakeListings{pages: pages}
	builder := Builder{Cache: respcache.Load(""), Listings: listings}

	rows, err := builder.BuildRows(testContext(t))
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, listings.calls, 16)
	require.Len(t, rows, len(expectedLabels))
	for i, row := range rows {
		require.Equal(t, int64(i+1), row.ID)
		require.Equal(t, expectedLabels[i], row.TimeInterval)
	}
	require.Equal(t, "december", rows[len(rows)-1].TimeInterval)
}

func TestBuildRowsUsesCache(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "cache.json")
	listings := &fakeListings{pages: map[string]string{"q2": bomtest.Page(rowA)}}
	q2, _ := boxofficemojo.LookupInterval("second quarter")

	first, err := Builder{Cache: respcache.Load(cachePath), Listings: listings}.BuildRowsFor(testContext(t), q2)
	if err != nil {
		t.Fatal(err)
	}

	// a fresh cache loaded from disk must not hit the network
	offline := &fakeListings{err: errors.New("offline")}
	second, err := Builder{Cache: respcache.Load(cachePath), Listings: offline}.BuildRowsFor(testContext(t), q2)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 1, listings.calls["q2"])
	require.Len(t, offline.calls, 0)
	require.Equal(t, first, second)
}

func TestBuildRowsFetchError(t *testing.T) {
	upstream := errors.New("connection refused")
	listings := &fakeListings{err: upstream}
	cache := respcache.Load("")
	builder := Builder{Cache: cache, Listings: listings}

	jan, _ := boxofficemojo.LookupInterval("january")
	_, err := builder.BuildRowsFor(testContext(t), jan)
	require.Error(t, err)

	var fetchErr *ExternalFetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, "january", fetchErr.Key)
	require.ErrorIs(t, err, upstream)
	require.Equal(t, 0, cache.Len())
}

func TestBuildRowsShapeError(t *testing.T) {
	broken := strings.Replace(
		bomtest.Page(rowA, rowB),
		"mojo-field-type-year mojo-sort-column",
		"mojo-sort-column",
		1,
	)
	listings := &fakeListings{pages: map[string]string{"q3": broken}}
	builder := Builder{Cache: respcache.Load(""), Listings: listings}

	q3, _ := boxofficemojo.LookupInterval("q3")
	_, err := builder.BuildRowsFor(testContext(t), q3)
	require.Error(t, err)

	var shapeErr *boxofficemojo.DataShapeError
	require.ErrorAs(t, err, &shapeErr)
	require.Contains(t, err.Error(), "third quarter")
}

func TestEnrichRatingOnly(t *testing.T) {
	details := &fakeDetails{responses: map[string]string{
		"Movie A": `{"Ratings":[{"Value":"7.0/10"}]}`,
	}}
	enricher := Enricher{Cache: respcache.Load(""), Details: details}

	result, err := enricher.Enrich(testContext(t), []BoxOfficeRow{{ID: 1, MovieName: "Movie A"}})
	if err != nil {
		t.Fatal(err)
	}

	expected := []MovieDetail{{
		ID: 1,
		Detail: omdb.Detail{
			Ratings: [omdb.RatingCount]*string{strptr("7.0/10"), nil, nil},
		},
	}}
	diff := cmp.Diff(expected, result)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestEnrichSharedTitle(t *testing.T) {
	details := &fakeDetails{responses: map[string]string{
		"Frozen": `{"Title":"Frozen","Director":"Chris Buck, Jennifer Lee"}`,
	}}
	enricher := Enricher{Cache: respcache.Load(""), Details: details}

	rows := []BoxOfficeRow{
		{ID: 1, MovieName: "Frozen"},
		{ID: 2, MovieName: "Unknown"},
		{ID: 3, MovieName: "Frozen"},
	}
	result, err := enricher.Enrich(testContext(t), rows)
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, result, 3)
	require.Equal(t, 1, details.calls["Frozen"])
	require.Equal(t, int64(3), result[2].ID)
	require.Equal(t, "Chris Buck, Jennifer Lee", *result[2].Director)

	// a "not found" answer is a valid, fully absent detail
	require.Equal(t, omdb.Detail{}, result[1].Detail)
}

func TestEnrichFetchError(t *testing.T) {
	details := &fakeDetails{err: errors.New("timeout")}
	enricher := Enricher{Cache: respcache.Load(""), Details: details}

	_, err := enricher.Enrich(testContext(t), []BoxOfficeRow{{ID: 1, MovieName: "Tenet"}})
	var fetchErr *ExternalFetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, "Tenet", fetchErr.Key)
}

func TestPipelineOverHttp(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/quarter/q1/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "calendarGrosses", r.URL.Query().Get("grossesOption"))
		fmt.Fprint(w, bomtest.Page(rowA, rowB))
	})
	mux.HandleFunc("/omdb/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		w.Header().Set("content-type", "application/json")
		switch r.URL.Query().Get("t") {
		case "Movie A":
			fmt.Fprint(w, `{"Title":"Movie A","Released":"01 Jan 2020","Genre":"Drama","Ratings":[{"Source":"Internet Movie Database","Value":"7.0/10"},{"Source":"Rotten Tomatoes","Value":"80%"}]}`)
		default:
			fmt.Fprint(w, `{"Response":"False","Error":"Movie not found!"}`)
		}
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/boxoffice/ingest",
		DbSchema: db.Schema,
	})
	defer cleanup()

	ctx := testContext(t)
	cache := respcache.Load(filepath.Join(t.TempDir(), "cache.json"))

	builder := Builder{
		Cache: cache,
		Listings: boxofficemojo.NewClient(boxofficemojo.ClientOptions{
			BaseUrl: server.URL,
			Retries: -1,
		}),
	}
	enricher := Enricher{
		Cache: cache,
		Details: omdb.NewClient(omdb.ClientOptions{
			BaseUrl: server.URL + "/omdb/",
			ApiKey:  "test-key",
			Retries: -1,
		}),
	}

	q1, _ := boxofficemojo.LookupInterval("q1")
	rows, err := builder.BuildRowsFor(ctx, q1)
	if err != nil {
		t.Fatal(err)
	}
	details, err := enricher.Enrich(ctx, rows)
	if err != nil {
		t.Fatal(err)
	}
	err = Persist(ctx, setup.DB, rows, details)
	if err != nil {
		t.Fatal(err)
	}

	// interval labels and titles share the cache
	require.Equal(t, 3, cache.Len())

	qry := db.New(setup.DB)
	stored, err := qry.ListBoxOfficeByInterval(ctx, "first quarter")
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, stored, 2)
	require.Equal(t, int64(1), stored[0].ID)
	require.Equal(t, int64(2020), stored[0].MovieYear)
	require.Equal(t, "Movie B", stored[1].MovieName)

	detail, err := qry.GetMovieDetailedInformation(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "01 Jan 2020", detail.ReleaseDate.String)
	require.Equal(t, "80%", detail.RottenTomatoesRating.String)
	require.False(t, detail.Runtime.Valid)
	require.False(t, detail.MetacriticRating.Valid)

	missing, err := qry.GetMovieDetailedInformation(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	require.False(t, missing.Title.Valid)

	require.Equal(t, []IntervalCount{{Interval: "first quarter", Rows: 2}}, Summarize(rows))
}

func TestPipelineHttpStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	builder := Builder{
		Cache: respcache.Load(""),
		Listings: boxofficemojo.NewClient(boxofficemojo.ClientOptions{
			BaseUrl: server.URL,
			Retries: -1,
		}),
	}
	may, _ := boxofficemojo.LookupInterval("may")
	_, err := builder.BuildRowsFor(testContext(t), may)

	var fetchErr *ExternalFetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, "may", fetchErr.Key)
	var statusErr *scraper.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
}

func TestPersistInvalidYear(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/boxoffice/ingest",
		DbSchema: db.Schema,
	})
	defer cleanup()

	err := Persist(testContext(t), setup.DB, []BoxOfficeRow{{ID: 1, Year: "n/a"}}, nil)
	require.Error(t, err)
}
