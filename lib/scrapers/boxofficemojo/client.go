package boxofficemojo

import (
	"context"
	"time"

	"boxoffice/lib/restyutil"
	"boxoffice/lib/scraper"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const DefaultBaseUrl = "https://www.boxofficemojo.com"

var tracer = otel.Tracer("boxoffice/lib/scrapers/boxofficemojo")

type ClientOptions struct {
	// if unspecified, DefaultBaseUrl is used
	BaseUrl    string
	Timeout    time.Duration
	Retries    int
	Instrument restyutil.InstrumentOutput
}

type Client struct {
	http *resty.Client
}

func NewClient(opts ClientOptions) Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	return Client{
		http: scraper.NewClient(scraper.ClientOptions{
			BaseUrl:    baseUrl,
			Timeout:    opts.Timeout,
			Retries:    opts.Retries,
			TracerName: "boxoffice/lib/scrapers/boxofficemojo/http",
			Instrument: opts.Instrument,
		}),
	}
}

// FetchListing downloads the calendar-grosses listing page of an interval.
func (c Client) FetchListing(ctx context.Context, interval Interval) (string, error) {
	ctx, span := tracer.Start(ctx, "FetchListing", trace.WithAttributes(
		attribute.String("interval", interval.Label),
	))
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("grossesOption", "calendarGrosses").
		Get(interval.Path())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch listing")
		return "", err
	}
	err = scraper.CheckResponse(res)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return "", err
	}

	return res.String(), nil
}
