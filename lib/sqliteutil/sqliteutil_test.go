package sqliteutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsRemote(t *testing.T) {
	require.True(t, IsRemote("libsql://movies.turso.io"))
	require.True(t, IsRemote("https://movies.turso.io"))
	require.False(t, IsRemote("Movies.sqlite"))
	require.False(t, IsRemote(":memory:"))
}

func TestOpenDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "Movies.sqlite")
	db, err := OpenDB(`CREATE TABLE IF NOT EXISTS t (id integer PRIMARY KEY)`, path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	_, err = db.Exec(`INSERT INTO t VALUES (1)`)
	require.NoError(t, err)

	var n int
	err = db.QueryRow(`SELECT count(*) FROM t`).Scan(&n)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestOpenDBEmptyPath(t *testing.T) {
	_, err := OpenDB("", "")
	require.Error(t, err)
}

func TestWithAuthToken(t *testing.T) {
	testCases := []struct {
		dsn      string
		token    string
		expected string
	}{
		{dsn: "libsql://movies.turso.io", token: "abc", expected: "libsql://movies.turso.io?authToken=abc"},
		{dsn: "https://movies.turso.io?tls=1", token: "a+b", expected: "https://movies.turso.io?tls=1&authToken=a%2Bb"},
		{dsn: "libsql://movies.turso.io", token: "", expected: "libsql://movies.turso.io"},
		{dsn: "Movies.sqlite", token: "abc", expected: "Movies.sqlite"},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, WithAuthToken(test.dsn, test.token))
	}
}
