package commands

import (
	"os"
	"path/filepath"
	"testing"

	"boxoffice/lib/scrapers/boxofficemojo"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	err := os.WriteFile(path, []byte(`{
		database: "libsql://movies.turso.io",
		omdb: { api_key: "from-file" },
		compare: { port: 8081 },
	}`), 0600)
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("OMDB_API_KEY", "")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "libsql://movies.turso.io", cfg.Database)
	require.Equal(t, "cache.json", cfg.CacheFile)
	require.Equal(t, "from-file", cfg.Omdb.ApiKey)
	require.Equal(t, 5000, cfg.Recommend.Port)
	require.Equal(t, 8081, cfg.Compare.Port)
	require.Equal(t, 2, cfg.Http.Retries)
	require.Nil(t, cfg.Http.Instrument("omdb"))

	t.Setenv("OMDB_API_KEY", "from-env")
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "from-env", cfg.Omdb.ApiKey)
}

func TestSelectedIntervals(t *testing.T) {
	all, err := selectedIntervals(nil)
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, all, 16)

	some, err := selectedIntervals([]string{"q4", "March"})
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []boxofficemojo.Interval{
		boxofficemojo.Quarters()[3],
		boxofficemojo.Months()[2],
	}, some)

	_, err = selectedIntervals([]string{"q5"})
	require.Error(t, err)
}
