package commands

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"boxoffice/lib/serviceutil"
	"boxoffice/lib/sqliteutil"
	"boxoffice/lib/telemetry"
	"boxoffice/services/boxoffice/db"

	"github.com/spf13/cobra"
)

var configPath *string
var dbOverride *string
var cacheOverride *string
var verbose *bool

var cfg Config

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "config.json5", "The config file, a config.local.json5 next to it takes precedence.")
	dbOverride = rootCmd.PersistentFlags().String("db", "", "The database to use instead of the configured one.")
	cacheOverride = rootCmd.PersistentFlags().String("cache", "", "The response cache file to use instead of the configured one.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level.")
}

var rootCmd = &cobra.Command{
	Use:   "boxoffice",
	Short: "boxoffice scrapes US box office champions and lets you browse and compare them.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)

		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		if *dbOverride != "" {
			cfg.Database = *dbOverride
		}
		if *cacheOverride != "" {
			cfg.CacheFile = *cacheOverride
		}
	},
}

func openStore() *sql.DB {
	database, err := sqliteutil.OpenDB(db.Schema, sqliteutil.WithAuthToken(cfg.Database, cfg.DatabaseAuthToken))
	if err != nil {
		serviceutil.Fatal("failed to open database", err)
	}
	return database
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
