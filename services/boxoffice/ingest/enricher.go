package ingest

import (
	"context"
	"encoding/json"
	"log/slog"

	"boxoffice/lib/respcache"
	"boxoffice/lib/scrapers/omdb"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type DetailSource interface {
	Lookup(ctx context.Context, title string) (json.RawMessage, error)
}

type Enricher struct {
	Cache   *respcache.Cache
	Details DetailSource
}

// Enrich looks up one detail per row, keyed by the movie title. Fields
// missing from a response are absent in the detail, only a failed fetch
// aborts.
func (e Enricher) Enrich(ctx context.Context, rows []BoxOfficeRow) ([]MovieDetail, error) {
	ctx, span := tracer.Start(ctx, "Enrich")
	defer span.End()
	span.SetAttributes(attribute.Int("rows", len(rows)))

	details := make([]MovieDetail, 0, len(rows))
	for _, row := range rows {
		title := row.MovieName
		payload, err := e.Cache.GetOrFetch(ctx, title, func(ctx context.Context) (json.RawMessage, error) {
			payload, err := e.Details.Lookup(ctx, title)
			if err != nil {
				return nil, &ExternalFetchError{Key: title, Err: err}
			}
			return payload, nil
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to enrich row", "id", row.ID, "key", title, "err", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		details = append(details, MovieDetail{
			ID:     row.ID,
			Detail: omdb.ParseDetail(payload),
		})
	}
	return details, nil
}
