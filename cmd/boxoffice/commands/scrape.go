package commands

import (
	"fmt"
	"log/slog"
	"os"

	"boxoffice/lib/respcache"
	"boxoffice/lib/scrapers/boxofficemojo"
	"boxoffice/lib/scrapers/omdb"
	"boxoffice/lib/serviceutil"
	"boxoffice/services/boxoffice/ingest"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var scrapeIntervals *[]string

func init() {
	scrapeIntervals = scrapeCmd.Flags().StringSlice("interval", nil, "Only scrape these intervals (q1, first quarter, january, ...), all 16 by default.")
	rootCmd.AddCommand(scrapeCmd)
}

func selectedIntervals(names []string) ([]boxofficemojo.Interval, error) {
	if len(names) == 0 {
		return boxofficemojo.Intervals(), nil
	}
	var intervals []boxofficemojo.Interval
	for _, name := range names {
		interval, ok := boxofficemojo.LookupInterval(name)
		if !ok {
			return nil, fmt.Errorf("unknown interval '%s'", name)
		}
		intervals = append(intervals, interval)
	}
	return intervals, nil
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--interval <name>]...",
	Short: "Scrapes listings and movie details through the cache and rebuilds the database.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		intervals, err := selectedIntervals(*scrapeIntervals)
		if err != nil {
			serviceutil.Fatal("invalid --interval", err)
		}

		database := openStore()
		defer database.Close()

		cache := respcache.Load(cfg.CacheFile)
		slog.Info("loaded response cache", "path", cache.Path(), "entries", cache.Len())

		if cfg.Omdb.ApiKey == "" {
			slog.Warn("no omdb api key configured, uncached titles will fail to fetch")
		}

		builder := ingest.Builder{
			Cache: cache,
			Listings: boxofficemojo.NewClient(boxofficemojo.ClientOptions{
				BaseUrl:    cfg.BoxOfficeMojo.BaseUrl,
				Timeout:    cfg.Http.Timeout(),
				Retries:    cfg.Http.Retries,
				Instrument: cfg.Http.Instrument("boxofficemojo"),
			}),
		}
		enricher := ingest.Enricher{
			Cache: cache,
			Details: omdb.NewClient(omdb.ClientOptions{
				BaseUrl:    cfg.Omdb.BaseUrl,
				ApiKey:     cfg.Omdb.ApiKey,
				Timeout:    cfg.Http.Timeout(),
				Retries:    cfg.Http.Retries,
				Instrument: cfg.Http.Instrument("omdb"),
			}),
		}

		rows, err := builder.BuildRowsFor(ctx, intervals...)
		if err != nil {
			serviceutil.Fatal("failed to build box office rows", err)
		}
		details, err := enricher.Enrich(ctx, rows)
		if err != nil {
			serviceutil.Fatal("failed to enrich box office rows", err)
		}
		err = ingest.Persist(ctx, database, rows, details)
		if err != nil {
			serviceutil.Fatal("failed to write database", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Interval", "Movies"})
		for _, count := range ingest.Summarize(rows) {
			t.AppendRow(table.Row{count.Interval, count.Rows})
		}
		t.AppendFooter(table.Row{"Total", len(rows)})
		t.Render()
	},
}
