package commands

import (
	"fmt"
	"os"

	"stocksync/lib/util/serviceutil"
	"stocksync/services/stocksync"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Runs a full catalog scrape-and-update pass and prints a report.",
	Run: func(cmd *cobra.Command, args []string) {
		service, err := buildService()
		if err != nil {
			serviceutil.Fatal("failed to initialize stock sync", err)
		}

		report, err := service.Run(cmd.Context())
		if err != nil {
			serviceutil.Fatal("stock sync aborted", err)
		}

		renderReport(report)
	},
}

func outcomeLabel(outcome stocksync.ItemOutcome) string {
	switch outcome {
	case stocksync.OutcomeUpdated:
		return "updated"
	case stocksync.OutcomeSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

func renderReport(report stocksync.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Id", "Product", "Outcome", "Quantity", "Detail"})

	for _, result := range report.Results {
		quantity := ""
		if result.Quantity != nil {
			quantity = fmt.Sprintf("%d", *result.Quantity)
		}
		t.AppendRow(table.Row{
			result.Product.Id,
			result.Product.Name,
			outcomeLabel(result.Outcome),
			quantity,
			result.Reason,
		})
	}

	t.AppendFooter(table.Row{
		"", "",
		fmt.Sprintf(
			"%d updated / %d skipped / %d failed",
			report.Count(stocksync.OutcomeUpdated),
			report.Count(stocksync.OutcomeSkipped),
			report.Count(stocksync.OutcomeFailed),
		),
		"", "",
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
