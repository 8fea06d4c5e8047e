package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"stocksync/lib/scrapers/supplier"
	"stocksync/lib/telemetry"
	"stocksync/lib/woocommerce"
	"stocksync/services/stocksync"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "stocksync",
	Short: "stocksync synchronizes WooCommerce stock quantities from supplier product pages.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)

		err := godotenv.Load()
		if err == nil {
			slog.Debug("loaded environment from .env")
		}

		_, err = telemetry.SetupFromEnv(cmd.Context(), "stocksync")
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Warn("failed to setup telemetry", "err", err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildService() (stocksync.Service, error) {
	config, err := stocksync.LoadConfig()
	if err != nil {
		return stocksync.Service{}, err
	}

	store, err := woocommerce.NewClient(woocommerce.ClientOptions{
		BaseUrl:        config.ApiUrl,
		ConsumerKey:    config.ConsumerKey,
		ConsumerSecret: config.ConsumerSecret,
	})
	if err != nil {
		return stocksync.Service{}, err
	}

	scraper, err := supplier.NewClient(supplier.ClientOptions{})
	if err != nil {
		return stocksync.Service{}, err
	}

	return stocksync.NewService(config, store, scraper), nil
}
