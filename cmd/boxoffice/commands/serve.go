package commands

import (
	"database/sql"
	"net/http"
	"time"

	"boxoffice/lib/serviceutil"
	"boxoffice/lib/telemetry"
	"boxoffice/services/boxoffice/web"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var servePort *int

func init() {
	servePort = serveCmd.PersistentFlags().Int("port", 0, "The port to listen on instead of the configured one.")
	serveCmd.AddCommand(recommendCmd)
	serveCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves one of the web pages.",
}

func serve(cmd *cobra.Command, port int, newHandler func(*sql.DB) http.Handler) {
	ctx := cmd.Context()
	if *servePort != 0 {
		port = *servePort
	}

	database := openStore()
	defer database.Close()

	if !*verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	telemetry.InstrumentPerfStats(ctx, 5*time.Second)

	err := serviceutil.StartHttpServer(ctx, port, newHandler(database))
	if err != nil {
		serviceutil.Fatal("http server stopped", err)
	}
}

var recommendCmd = &cobra.Command{
	Use:   "recommend [--port <port>]",
	Short: "Serves the details and ratings chart of a movie at /?id=<id>.",
	Run: func(cmd *cobra.Command, args []string) {
		serve(cmd, cfg.Recommend.Port, web.NewRecommendHandler)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [--port <port>]",
	Short: "Serves the comparison form and its results.",
	Run: func(cmd *cobra.Command, args []string) {
		serve(cmd, cfg.Compare.Port, web.NewCompareHandler)
	},
}
