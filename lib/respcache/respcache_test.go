package respcache

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingOrCorrupt(t *testing.T) {
	dir := t.TempDir()

	missing := Load(filepath.Join(dir, "cache.json"))
	require.Equal(t, 0, missing.Len())

	corruptPath := filepath.Join(dir, "corrupt.json")
	err := os.WriteFile(corruptPath, []byte("{not json"), 0600)
	if err != nil {
		t.Fatal(err)
	}
	corrupt := Load(corruptPath)
	require.Equal(t, 0, corrupt.Len())

	// a corrupt file is replaced on the next write
	err = corrupt.PutString("january", "<html></html>")
	require.NoError(t, err)
	require.Equal(t, 1, Load(corruptPath).Len())
}

func TestPutPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	c := Load(path)
	err := c.PutString("first quarter", "<html>q1</html>")
	require.NoError(t, err)
	err = c.Put("Avatar", json.RawMessage(`{"Title":"Avatar"}`))
	require.NoError(t, err)

	var onDisk map[string]any
	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	err = json.Unmarshal(contents, &onDisk)
	require.NoError(t, err)
	require.Equal(t, "<html>q1</html>", onDisk["first quarter"])
	require.Equal(t, map[string]any{"Title": "Avatar"}, onDisk["Avatar"])

	reloaded := Load(path)
	payload, ok := reloaded.Get("Avatar")
	require.True(t, ok)
	require.JSONEq(t, `{"Title":"Avatar"}`, string(payload))

	_, ok = reloaded.Get("Titanic")
	require.False(t, ok)
}

func TestPutInvalidJSON(t *testing.T) {
	c := Load("")
	err := c.Put("k", json.RawMessage(`{`))
	require.Error(t, err)
	require.Equal(t, 0, c.Len())
}

func TestGetOrFetchIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	c := Load(path)

	calls := 0
	fetch := func(ctx context.Context) (json.RawMessage, error) {
		calls++
		return json.RawMessage(`{"Title":"Up"}`), nil
	}

	first, err := c.GetOrFetch(context.Background(), "Up", fetch)
	require.NoError(t, err)
	second, err := c.GetOrFetch(context.Background(), "Up", fetch)
	require.NoError(t, err)

	require.Equal(t, 1, calls)
	require.JSONEq(t, string(first), string(second))

	// a fresh process reading the same file does not fetch either
	third, err := Load(path).GetOrFetch(context.Background(), "Up", fetch)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.JSONEq(t, string(first), string(third))
}

func TestGetOrFetchError(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "cache.json"))

	fetchErr := errors.New("connection refused")
	_, err := c.GetOrFetch(context.Background(), "march", func(ctx context.Context) (json.RawMessage, error) {
		return nil, fetchErr
	})
	require.ErrorIs(t, err, fetchErr)

	_, ok := c.Get("march")
	require.False(t, ok)
}

func TestGetOrFetchString(t *testing.T) {
	c := Load("")

	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		return `<div class="a">"quoted"</div>`, nil
	}

	for i := 0; i < 2; i++ {
		text, err := c.GetOrFetchString(context.Background(), "may", fetch)
		require.NoError(t, err)
		require.Equal(t, `<div class="a">"quoted"</div>`, text)
	}
	require.Equal(t, 1, calls)

	err := c.Put("june", json.RawMessage(`{"Title":"June"}`))
	require.NoError(t, err)
	_, err = c.GetOrFetchString(context.Background(), "june", fetch)
	require.Error(t, err)
}
