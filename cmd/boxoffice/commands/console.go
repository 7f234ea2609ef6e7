package commands

import (
	"os"

	"boxoffice/lib/serviceutil"
	"boxoffice/services/boxoffice/console"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(consoleCmd)
}

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Browses the scraped box office champions interactively.",
	Run: func(cmd *cobra.Command, args []string) {
		database := openStore()
		defer database.Close()

		c := console.NewConsole(database, console.Options{
			In:            os.Stdin,
			Out:           os.Stdout,
			RecommendPort: cfg.Recommend.Port,
			ComparePort:   cfg.Compare.Port,
		})
		err := c.Run(cmd.Context())
		if err != nil {
			serviceutil.Fatal("console failed", err)
		}
	},
}
