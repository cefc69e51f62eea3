package cli

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"stockscout/internal/models"
	"stockscout/internal/screen"
	"stockscout/pkg/utils"
)

func newDetailsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "details <ticker>",
		Short: "Show fundamentals, daily snapshot and moving average for one stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stock := models.Stock{Name: args[0], Ticker: args[0]}
			for _, tracked := range app.Store.Read() {
				if tracked.Ticker == args[0] {
					stock = tracked
					break
				}
			}

			details := screen.NewDetails(screen.DetailsConfig{
				Stock:  stock,
				Client: app.Client,
				Logger: app.Logger,
			})
			details.Load(cmd.Context())
			details.Wait()

			renderDetails(cmd, details.State())
			return nil
		},
	}
}

func renderDetails(cmd *cobra.Command, state screen.DetailsState) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s\n%s\n", text.Bold.Sprint(state.Stock.Ticker), state.Stock.Name)

	if state.Daily != nil {
		tw := table.NewWriter()
		tw.SetOutputMirror(out)
		tw.SetStyle(table.StyleLight)
		appendPrice := func(label string, v *float64) {
			if v != nil {
				tw.AppendRow(table.Row{label, utils.FormatUSD(*v)})
			}
		}
		appendPrice("Open", state.Daily.Open)
		appendPrice("Close", state.Daily.Close)
		appendPrice("High", state.Daily.High)
		appendPrice("Low", state.Daily.Low)
		if state.Daily.Volume != nil {
			tw.AppendRow(table.Row{"Volume", utils.FormatVolume(*state.Daily.Volume)})
		}
		tw.Render()
	}

	if state.Ticker != nil {
		fmt.Fprintf(out, "\n%s\n", state.Ticker.Description)
		fmt.Fprintf(out, "Market Cap: %s\n", utils.FormatMarketCap(state.Ticker.MarketCap))
	}

	if len(state.MovingAverages) > 0 {
		// State keeps delivery order; charting wants oldest first.
		samples := append([]models.MovingAverage(nil), state.MovingAverages...)
		sort.Slice(samples, func(i, j int) bool {
			return samples[i].Timestamp < samples[j].Timestamp
		})

		fmt.Fprintln(out, "\n50-day moving average:")
		tw := table.NewWriter()
		tw.SetOutputMirror(out)
		tw.SetStyle(table.StyleLight)
		tw.AppendHeader(table.Row{"DATE", "SMA"})
		for _, sample := range samples {
			tw.AppendRow(table.Row{
				sample.Date().Format("2006-01-02"),
				utils.FormatUSD(sample.Value),
			})
		}
		tw.Render()
	}

	if state.Alert != "" {
		fmt.Fprintln(out, text.FgRed.Sprint(state.Alert))
	}
}
