package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"pocketbank/internal/config"
	"pocketbank/internal/repository/memory"
	"pocketbank/internal/service"
	"pocketbank/pkg/crypto"
	"pocketbank/pkg/logging"
	"pocketbank/pkg/metrics"
)

const (
	appName = "pocketbank"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting application", zap.String("name", appName))

	collector := metrics.NewPrometheusCollector(logger)
	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		metricsServer = collector.StartMetricsServer(cfg.MetricsAddr)
	}

	signer := crypto.NewSigner(cfg.SigningKey, logger)
	accountRepo := memory.NewAccountRepository()
	accounts := service.NewInstrumented(service.NewOperations(), collector, logger)

	if err := runDemo(context.Background(), os.Stdout, accounts, accountRepo, signer); err != nil {
		logger.Error("Demo failed", zap.Error(err))
		return err
	}

	if metricsServer != nil {
		waitForShutdown(logger, collector, metricsServer)
	}
	logger.Info("Application shutdown complete")
	return nil
}

func waitForShutdown(logger *logging.Logger, collector *metrics.PrometheusCollector, metricsServer *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	logger.Info("Serving metrics until interrupted", zap.String("addr", metricsServer.Addr))
	<-stop
	logger.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := collector.Shutdown(ctx, metricsServer); err != nil {
		logger.Error("Metrics server shutdown failed", zap.Error(err))
	}
}
