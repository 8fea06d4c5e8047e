package commands

import (
	"errors"
	"fmt"

	"stocksync/lib/scrapers/supplier"
	"stocksync/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

var probeLabel *string

func init() {
	probeLabel = probeCmd.Flags().String("label", supplier.DefaultLabel, "The label phrase to look for on the page.")
	rootCmd.AddCommand(probeCmd)
}

var probeCmd = &cobra.Command{
	Use:   "probe <url>",
	Short: "Scrapes a single supplier page and prints the extracted quantity.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scraper, err := supplier.NewClient(supplier.ClientOptions{
			Extractor: supplier.NewLabelExtractor(*probeLabel),
		})
		if err != nil {
			serviceutil.Fatal("failed to initialize scraper", err)
		}

		quantity, err := scraper.FetchQuantity(cmd.Context(), args[0])
		switch {
		case errors.Is(err, supplier.ErrStockNotFound):
			fmt.Println("stock label not found")
		case errors.Is(err, supplier.ErrStockUnparsable):
			fmt.Println("stock label found but no quantity follows it")
		case err != nil:
			serviceutil.Fatal("failed to scrape page", err)
		default:
			fmt.Println(quantity)
		}
	},
}
