package restyutil

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

func formatHeaders(headers http.Header) string {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var lines []string
	for _, k := range keys {
		for _, v := range headers[k] {
			lines = append(lines, fmt.Sprintf("%s: %s", k, v))
		}
	}
	return strings.Join(lines, "\n")
}

// 1: request method
// 2: request url
// 3: request headers in ("Key: Value" format)
// 4: response status
// 5: response headers in ("Key: Value" format)
// 6: response body
const messageInfoTemplate = `---- REQUEST ----

%s %s

%s

---- RESPONSE ----

%s

%s

%s`

func redactURL(raw string) string {
	idx := strings.Index(raw, "apikey=")
	if idx < 0 {
		return raw
	}
	end := strings.IndexByte(raw[idx:], '&')
	if end < 0 {
		return raw[:idx] + "apikey=REDACTED"
	}
	return raw[:idx] + "apikey=REDACTED" + raw[idx+end:]
}

func formatHttpMessage(res *resty.Response) string {
	var requestHeaders string
	requestUrl := res.Request.URL
	if res.Request.RawRequest != nil {
		requestHeaders = formatHeaders(res.Request.RawRequest.Header)
		requestUrl = res.Request.RawRequest.URL.String()
	}

	return fmt.Sprintf(
		messageInfoTemplate,

		res.Request.Method, redactURL(requestUrl),
		requestHeaders,

		strconv.Itoa(res.StatusCode()),
		formatHeaders(res.Header()),
		res.String(),
	)
}
