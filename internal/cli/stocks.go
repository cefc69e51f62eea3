package cli

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"stockscout/internal/screen"
)

func newStocksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stocks",
		Short: "Edit the tracked stock list",
	}

	cmd.AddCommand(newStocksListCmd(app))
	cmd.AddCommand(newStocksAddCmd(app))
	cmd.AddCommand(newStocksRemoveCmd(app))
	return cmd
}

func newEditor(app *App) *screen.StockList {
	return screen.NewStockList(screen.StockListConfig{
		Store:    app.Store,
		Client:   app.Client,
		Debounce: app.Config.Debounce(),
		Logger:   app.Logger,
	})
}

func newStocksListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracked stocks in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stocks := newEditor(app).Stocks()
			if len(stocks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No stocks tracked.")
				return nil
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.SetStyle(table.StyleLight)
			tw.AppendHeader(table.Row{"#", "TICKER", "NAME"})
			for i, stock := range stocks {
				tw.AppendRow(table.Row{i, stock.Ticker, stock.Name})
			}
			tw.Render()
			return nil
		},
	}
}

func newStocksAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <query>",
		Short: "Search for a ticker and track the best match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor := newEditor(app)
			search := editor.OpenAddStock()

			search.SetQuery(args[0])
			search.Wait()

			state := search.State()
			if state.Err != "" {
				return fmt.Errorf("search failed: %s", state.Err)
			}
			if len(state.Results) == 0 {
				return fmt.Errorf("no active tickers match %q", args[0])
			}

			// Exact ticker match wins over the provider's relevance order.
			pick := state.Results[0]
			for _, stock := range state.Results {
				if stock.Ticker == args[0] {
					pick = stock
					break
				}
			}

			already := app.Store.Contains(pick.Ticker)
			search.Select(pick)

			if already {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is already tracked.\n", pick.Ticker)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Tracking %s (%s).\n", pick.Ticker, pick.Name)
			}
			return nil
		},
	}
}

func newStocksRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>...",
		Short: "Stop tracking the stocks at the given list positions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			indices := make([]int, 0, len(args))
			for _, arg := range args {
				i, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid index %q", arg)
				}
				indices = append(indices, i)
			}

			editor := newEditor(app)
			before := len(editor.Stocks())
			if err := editor.DeleteAt(indices...); err != nil {
				return err
			}
			removed := before - len(editor.Stocks())
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d stock(s).\n", removed)
			return nil
		},
	}
}
