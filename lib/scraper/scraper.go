// Package scraper holds what the site scrapers have in common.
//
// each scraping method generally has this structure:
// 1. transform input into an HTTP request (path, query).
// 2. make request through a shared resty client (timeouts, bounded retry).
// 3. make assertions on response validity (status).
// 4. hand the raw body to a pure parse function.
//
// parse functions never touch the network so they can be tested against
// fixture documents, and fetch functions never parse so their results can
// be cached verbatim.
package scraper

import (
	"fmt"
	"net/http"
	"time"

	"boxoffice/lib/restyutil"
	"boxoffice/lib/telemetry"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultRetries   = 2
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)

type ClientOptions struct {
	BaseUrl string
	// zero means DefaultTimeout
	Timeout time.Duration
	// retries after the first attempt, negative disables retrying
	Retries    int
	UserAgent  string
	TracerName string
	// if set, every request/response pair is dumped to it at debug level
	Instrument restyutil.InstrumentOutput
}

// NewClient creates a resty client with the retry and instrumentation
// policy shared by all scrapers.
func NewClient(opts ClientOptions) *resty.Client {
	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client.SetTimeout(timeout)

	retries := opts.Retries
	if retries < 0 {
		retries = 0
	}
	client.SetRetryCount(retries)
	client.SetRetryWaitTime(500 * time.Millisecond)
	client.SetRetryMaxWaitTime(5 * time.Second)
	client.AddRetryCondition(func(res *resty.Response, err error) bool {
		if err != nil || res == nil {
			return true
		}
		code := res.StatusCode()
		return code == http.StatusTooManyRequests || code >= 500
	})

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	client.SetHeader("user-agent", userAgent)

	if opts.TracerName != "" {
		telemetry.InstrumentResty(client, opts.TracerName)
	}
	restyutil.InstrumentClient(client, opts.Instrument)

	return client
}

// HTTPStatusError means the site answered with a non-2xx status.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// CheckResponse turns a non-2xx response into an *HTTPStatusError.
func CheckResponse(res *resty.Response) error {
	if res.IsSuccess() {
		return nil
	}
	return &HTTPStatusError{
		URL:        res.Request.URL,
		StatusCode: res.StatusCode(),
	}
}
