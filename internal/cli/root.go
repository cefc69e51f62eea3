// Package cli provides the command-line interface for the application.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"stockscout/internal/config"
	"stockscout/internal/market"
	"stockscout/internal/watchlist"
)

// Version information
const Version = "0.1.0"

// App holds the application dependencies shared by all commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Client market.Client
	Store  *watchlist.Store
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
		Client: market.NewPolygon(market.PolygonConfig{
			APIKey:  cfg.Provider.APIKey,
			BaseURL: cfg.Provider.BaseURL,
			Timeout: cfg.Provider.Timeout,
			Logger:  logger,
		}),
		Store: watchlist.Open(cfg.Watchlist.Path, logger),
	}

	rootCmd := &cobra.Command{
		Use:   "stockscout",
		Short: "Track a watchlist of stocks with daily changes and fundamentals",
		Long: `stockscout keeps a persisted watchlist of ticker symbols and shows
daily price changes, fundamentals and a 50-day moving average per symbol,
backed by Polygon.io market data.`,
		Version: Version,
		// Bare invocation shows the watchlist summary.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, app)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newWatchCmd(app))
	rootCmd.AddCommand(newStocksCmd(app))
	rootCmd.AddCommand(newSearchCmd(app))
	rootCmd.AddCommand(newDetailsCmd(app))

	return rootCmd
}
