package sqliteutil

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

func wrapOpenDB(err error) error {
	return fmt.Errorf("open db: %w", err)
}

// IsRemote reports whether `dsn` points at a libsql server rather than
// a local sqlite file.
func IsRemote(dsn string) bool {
	return strings.HasPrefix(dsn, "libsql://") ||
		strings.HasPrefix(dsn, "http://") ||
		strings.HasPrefix(dsn, "https://")
}

// OpenDB opens a local sqlite file (or `:memory:`) or a remote libsql
// database and executes `schema` against it if it is non-empty.
func OpenDB(schema, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, wrapOpenDB(fmt.Errorf("a path was not specified"))
	}

	var db *sql.DB
	var err error
	if IsRemote(dsn) {
		db, err = sql.Open("libsql", dsn)
		if err != nil {
			return nil, wrapOpenDB(err)
		}
	} else {
		if dsn != ":memory:" {
			err = os.MkdirAll(filepath.Dir(dsn), 0777)
			if err != nil {
				return nil, wrapOpenDB(err)
			}
		}
		db, err = sql.Open("sqlite", dsn)
		if err != nil {
			return nil, wrapOpenDB(err)
		}
		// see this stackoverflow post for information on why the following
		// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
		db.SetMaxOpenConns(1)
		if dsn != ":memory:" {
			_, err = db.Exec("PRAGMA journal_mode=WAL")
			if err != nil {
				db.Close()
				return nil, wrapOpenDB(err)
			}
		}
	}

	err = applySchema(db, schema, IsRemote(dsn))
	if err != nil {
		db.Close()
		return nil, wrapOpenDB(fmt.Errorf("apply schema: %w", err))
	}

	return db, nil
}

// remote connections run one statement per request.
func applySchema(db *sql.DB, schema string, remote bool) error {
	if strings.TrimSpace(schema) == "" {
		return nil
	}
	if !remote {
		_, err := db.Exec(schema)
		return err
	}
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		_, err := db.Exec(stmt)
		if err != nil {
			return err
		}
	}
	return nil
}

// WithAuthToken attaches a libsql auth token to a remote dsn, local paths
// and empty tokens are returned unchanged.
func WithAuthToken(dsn, token string) string {
	if token == "" || !IsRemote(dsn) {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "authToken=" + url.QueryEscape(token)
}
