package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"stockscout/internal/screen"
)

func newSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "Search active tickers by free text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			search := screen.NewSearch(screen.SearchConfig{
				Client:   app.Client,
				Debounce: app.Config.Debounce(),
				Logger:   app.Logger,
			})

			search.SetQuery(args[0])
			search.Wait()

			state := search.State()
			if state.Err != "" {
				return fmt.Errorf("search failed: %s", state.Err)
			}
			if len(state.Results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No active tickers match %q.\n", args[0])
				return nil
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.SetStyle(table.StyleLight)
			tw.AppendHeader(table.Row{"TICKER", "NAME"})
			for _, stock := range state.Results {
				tw.AppendRow(table.Row{stock.Ticker, stock.Name})
			}
			tw.Render()
			return nil
		},
	}
}
