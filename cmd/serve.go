package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"kidcost/internal/server"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagServeAddr string
	flagLogLevel  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the estimate HTTP API",
	Long:  "Serve the reference table and estimator as a JSON API for web front ends.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "127.0.0.1:8689", "Listen address")
	serveCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}

	table, cfg, err := loadTable()
	if err != nil {
		return err
	}

	svc := server.New(server.Config{
		Addr:  flagServeAddr,
		Rates: cfg.SavingsRates(),
	}, table, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return svc.Run(ctx)
}
