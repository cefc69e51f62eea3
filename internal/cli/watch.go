package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"stockscout/internal/screen"
	"stockscout/pkg/utils"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Show the watchlist with daily price changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, app)
		},
	}
}

func runWatch(cmd *cobra.Command, app *App) error {
	summary := screen.NewSummary(screen.SummaryConfig{
		Store:    app.Store,
		Client:   app.Client,
		Debounce: app.Config.Debounce(),
		Logger:   app.Logger,
	})

	summary.Refresh(cmd.Context())
	summary.Wait()

	state := summary.State()
	if len(state.Stocks) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), `No stocks tracked yet. Add one with "stockscout stocks add <query>".`)
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"TICKER", "NAME", "CHANGE"})

	for _, stock := range state.Stocks {
		change := "…"
		if daily, ok := state.Daily(stock.Ticker); ok {
			if c, okc := daily.Change(); okc {
				change = utils.FormatChange(c)
			} else {
				change = "—"
			}
		}
		tw.AppendRow(table.Row{stock.Ticker, stock.Name, change})
	}
	tw.Render()

	if state.Alert != "" {
		fmt.Fprintln(cmd.OutOrStdout(), text.FgRed.Sprint(state.Alert))
	}
	return nil
}
