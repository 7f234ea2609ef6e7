// Package respcache is a persistent key -> raw response store backed by a
// single JSON object on disk.
//
// Values are kept as raw JSON: listing pages are stored as JSON strings and
// API responses as the decoded JSON document. Entries never expire, the only
// way to invalidate them is to delete the file.
package respcache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("boxoffice/lib/respcache")

// FetchFunc obtains the payload for a key on a cache miss.
type FetchFunc func(ctx context.Context) (json.RawMessage, error)

type Cache struct {
	path string

	mu      sync.Mutex
	entries map[string]json.RawMessage
}

// Load reads the cache file at `path`. A missing or unparsable file yields an
// empty cache, this is not an error. An empty `path` gives a cache that is
// never written to disk.
func Load(path string) *Cache {
	c := &Cache{
		path:    path,
		entries: map[string]json.RawMessage{},
	}
	if path == "" {
		return c
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Debug("failed to read cache file, starting empty", "path", path, "err", err)
		}
		return c
	}

	var entries map[string]json.RawMessage
	err = json.Unmarshal(contents, &entries)
	if err != nil {
		slog.Debug("failed to parse cache file, starting empty", "path", path, "err", err)
		return c
	}
	if entries != nil {
		c.entries = entries
	}
	return c
}

func (c *Cache) Path() string {
	return c.path
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) Get(key string) (json.RawMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	payload, ok := c.entries[key]
	return payload, ok
}

// Put stores the payload and rewrites the whole backing file.
func (c *Cache) Put(key string, payload json.RawMessage) error {
	if !json.Valid(payload) {
		return fmt.Errorf("cache payload for '%s' is not valid json", key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	stored := make(json.RawMessage, len(payload))
	copy(stored, payload)
	c.entries[key] = stored

	return c.save()
}

// PutString stores `value` as a JSON string.
func (c *Cache) PutString(key, value string) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Put(key, payload)
}

// GetOrFetch returns the cached payload for `key`, calling `fetch` and
// storing its result on a miss. A failing fetch stores nothing.
func (c *Cache) GetOrFetch(ctx context.Context, key string, fetch FetchFunc) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "GetOrFetch", trace.WithAttributes(
		attribute.String("cache_key", key),
	))
	defer span.End()

	if payload, ok := c.Get(key); ok {
		slog.DebugContext(ctx, "using cache", "key", key)
		span.SetAttributes(attribute.Bool("hit", true))
		return payload, nil
	}

	slog.DebugContext(ctx, "fetching", "key", key)
	span.SetAttributes(attribute.Bool("hit", false))

	payload, err := fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return nil, err
	}
	err = c.Put(key, payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to persist cache")
		return nil, err
	}
	return payload, nil
}

// GetOrFetchString is GetOrFetch for payloads that are plain text, such as
// html pages.
func (c *Cache) GetOrFetchString(ctx context.Context, key string, fetch func(ctx context.Context) (string, error)) (string, error) {
	payload, err := c.GetOrFetch(ctx, key, func(ctx context.Context) (json.RawMessage, error) {
		text, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(text)
	})
	if err != nil {
		return "", err
	}

	var text string
	err = json.Unmarshal(payload, &text)
	if err != nil {
		return "", fmt.Errorf("cached payload for '%s' is not text: %w", key, err)
	}
	return text, nil
}

// save must be called with c.mu held.
func (c *Cache) save() error {
	if c.path == "" {
		return nil
	}

	serialized, err := json.Marshal(c.entries)
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.path)
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(serialized)
	if err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	err = tmp.Close()
	if err != nil {
		os.Remove(tmpName)
		return err
	}
	err = os.Rename(tmpName, c.path)
	if err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
