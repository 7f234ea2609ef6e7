package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"boxoffice/lib/respcache"
	"boxoffice/lib/scrapers/boxofficemojo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer(tracerName)

type ListingSource interface {
	FetchListing(ctx context.Context, interval boxofficemojo.Interval) (string, error)
}

type Builder struct {
	Cache    *respcache.Cache
	Listings ListingSource
}

// BuildRows walks all 16 intervals, quarters first.
func (b Builder) BuildRows(ctx context.Context) ([]BoxOfficeRow, error) {
	return b.BuildRowsFor(ctx, boxofficemojo.Intervals()...)
}

// BuildRowsFor builds the rows of the given intervals in order, ids start
// at 1 and continue across interval boundaries.
func (b Builder) BuildRowsFor(ctx context.Context, intervals ...boxofficemojo.Interval) ([]BoxOfficeRow, error) {
	ctx, span := tracer.Start(ctx, "BuildRows")
	defer span.End()

	var rows []BoxOfficeRow
	nextId := int64(1)
	for _, interval := range intervals {
		listing, err := b.listing(ctx, interval)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		for i := 0; i < listing.Len(); i++ {
			r := listing.Row(i)
			rows = append(rows, BoxOfficeRow{
				ID:              nextId,
				Year:            r.Year,
				TimeInterval:    interval.Label,
				MovieName:       r.Name,
				Gross:           r.Gross,
				Release:         r.Release,
				CumulativeGross: r.Cumulative,
				AverageGross:    r.Average,
			})
			nextId++
		}
		slog.InfoContext(ctx, "built interval", "interval", interval.Label, "rows", listing.Len())
	}

	span.SetAttributes(attribute.Int("rows", len(rows)))
	return rows, nil
}

func (b Builder) listing(ctx context.Context, interval boxofficemojo.Interval) (boxofficemojo.Listing, error) {
	page, err := b.Cache.GetOrFetchString(ctx, interval.Label, func(ctx context.Context) (string, error) {
		page, err := b.Listings.FetchListing(ctx, interval)
		if err != nil {
			return "", &ExternalFetchError{Key: interval.Label, Err: err}
		}
		return page, nil
	})
	if err != nil {
		return boxofficemojo.Listing{}, err
	}

	listing, err := boxofficemojo.ParseListing([]byte(page))
	if err != nil {
		return boxofficemojo.Listing{}, fmt.Errorf("parse listing of '%s': %w", interval.Label, err)
	}
	return listing, nil
}
