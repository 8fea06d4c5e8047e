package commands

import (
	"log/slog"
	"os"

	"stocksync/lib/util/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(productsCmd)
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Lists the store products carrying a supplier url, without scraping or writing.",
	Run: func(cmd *cobra.Command, args []string) {
		service, err := buildService()
		if err != nil {
			serviceutil.Fatal("failed to initialize stock sync", err)
		}

		targets, err := service.Targets(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to list products", err)
		}
		if len(targets) == 0 {
			slog.Info("no products carry a supplier url")
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Id", "Product", "Supplier url"})
		for _, target := range targets {
			t.AppendRow(table.Row{target.Id, target.Name, target.SourceUrl})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
