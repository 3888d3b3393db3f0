package cli

import (
	"github.com/spf13/cobra"

	"github.com/campusconnect/campus-events/internal/config"
)

// NewRootCmd creates the root command with cfg supplying flag defaults.
func NewRootCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campus-events",
		Short: "Scrape campus calendars, enrich them with forecasts, and serve the results",
		Long: `campus-events collects events from the public campus calendars, fetches
daily weather forecasts for their dates, stores everything in a SQLite
database, and serves the stored rows as simple web pages.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("db", cfg.DBPath, "Path to the SQLite database")

	cmd.AddCommand(newScrapeCmd(cfg))
	cmd.AddCommand(newWeatherCmd(cfg))
	cmd.AddCommand(newServeCmd(cfg))
	return cmd
}

// dbPath returns the --db flag value.
func dbPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("db")
	return path
}
