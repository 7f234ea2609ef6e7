package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"boxoffice/lib/restyutil"
	"boxoffice/lib/scraper"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const DefaultBaseUrl = "http://www.omdbapi.com/"

var tracer = otel.Tracer("boxoffice/lib/scrapers/omdb")

type ClientOptions struct {
	// if unspecified, DefaultBaseUrl is used
	BaseUrl    string
	ApiKey     string
	Timeout    time.Duration
	Retries    int
	Instrument restyutil.InstrumentOutput
}

type Client struct {
	http    *resty.Client
	baseUrl string
	apiKey  string
}

func NewClient(opts ClientOptions) Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	return Client{
		http: scraper.NewClient(scraper.ClientOptions{
			Timeout:    opts.Timeout,
			Retries:    opts.Retries,
			TracerName: "boxoffice/lib/scrapers/omdb/http",
			Instrument: opts.Instrument,
		}),
		baseUrl: baseUrl,
		apiKey:  opts.ApiKey,
	}
}

// Lookup searches a movie by title and returns the raw json response.
// "not found" answers from the api are returned as-is, they are valid
// responses with every field absent.
func (c Client) Lookup(ctx context.Context, title string) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "Lookup", trace.WithAttributes(
		attribute.String("title", title),
	))
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"apikey": c.apiKey,
			"t":      title,
		}).
		Get(c.baseUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch title")
		return nil, err
	}
	err = scraper.CheckResponse(res)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return nil, err
	}

	body := res.Body()
	if !json.Valid(body) {
		err = fmt.Errorf("response for '%s' is not valid json", title)
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid json")
		return nil, err
	}
	return json.RawMessage(body), nil
}
