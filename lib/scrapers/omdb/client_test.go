package omdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"boxoffice/lib/scraper"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apikey") != "key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"Response":"False","Error":"Invalid API key!"}`))
			return
		}
		w.Header().Set("content-type", "application/json")
		w.Write([]byte(`{"Title":"` + r.URL.Query().Get("t") + `"}`))
	}))
	defer srv.Close()

	client := NewClient(ClientOptions{BaseUrl: srv.URL + "/", ApiKey: "key", Retries: -1})
	payload, err := client.Lookup(context.Background(), "Up")
	require.NoError(t, err)
	require.JSONEq(t, `{"Title":"Up"}`, string(payload))

	unauthorized := NewClient(ClientOptions{BaseUrl: srv.URL + "/", ApiKey: "wrong", Retries: -1})
	_, err = unauthorized.Lookup(context.Background(), "Up")
	var statusErr *scraper.HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}

func TestLookupInvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	client := NewClient(ClientOptions{BaseUrl: srv.URL, ApiKey: "key", Retries: -1})
	_, err := client.Lookup(context.Background(), "Up")
	require.Error(t, err)
}
