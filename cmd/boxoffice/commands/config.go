package commands

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"boxoffice/lib/configutil"
	"boxoffice/lib/restyutil"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port int `json:"port"`
}

type HttpConfig struct {
	TimeoutSeconds int `json:"timeout_seconds"`
	// negative disables retries
	Retries int `json:"retries"`
	// when set, every request and response is dumped here at debug level
	DebugDir string `json:"debug_dir"`
}

type BoxOfficeMojoConfig struct {
	BaseUrl string `json:"base_url"`
}

type OmdbConfig struct {
	BaseUrl string `json:"base_url"`
	ApiKey  string `json:"api_key"`
}

type Config struct {
	// a sqlite path or a libsql:// url
	Database string `json:"database"`
	// only used with a remote database
	DatabaseAuthToken string              `json:"database_auth_token"`
	CacheFile         string              `json:"cache_file"`
	BoxOfficeMojo     BoxOfficeMojoConfig `json:"boxofficemojo"`
	Omdb              OmdbConfig          `json:"omdb"`
	Recommend         ServerConfig        `json:"recommend"`
	Compare           ServerConfig        `json:"compare"`
	Http              HttpConfig          `json:"http"`
}

var defaultConfig = Config{
	Database:  "Movies.sqlite",
	CacheFile: "cache.json",
	Recommend: ServerConfig{Port: 5000},
	Compare:   ServerConfig{Port: 5001},
	Http: HttpConfig{
		TimeoutSeconds: 30,
		Retries:        2,
	},
}

func (c HttpConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Instrument returns the debug dump output, nil when no directory is
// configured.
func (c HttpConfig) Instrument(name string) restyutil.InstrumentOutput {
	if c.DebugDir == "" {
		return nil
	}
	output, err := restyutil.NewFilesystemOutput(c.DebugDir + "/" + name)
	if err != nil {
		slog.Warn("failed to create http debug output", "dir", c.DebugDir, "err", err)
		return nil
	}
	return output
}

// LoadConfig reads `path` (missing is fine) over the defaults, then applies
// the environment: a .env file in the cwd is loaded first, then OMDB_API_KEY
// and LIBSQL_AUTH_TOKEN override their configured values.
func LoadConfig(path string) (Config, error) {
	cfg, err := configutil.ReadConfigWithDefaults(path, defaultConfig)
	if err != nil {
		return Config{}, err
	}

	err = godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "err", err)
	}
	if key := os.Getenv("OMDB_API_KEY"); key != "" {
		cfg.Omdb.ApiKey = key
	}
	if token := os.Getenv("LIBSQL_AUTH_TOKEN"); token != "" {
		cfg.DatabaseAuthToken = token
	}
	return cfg, nil
}
