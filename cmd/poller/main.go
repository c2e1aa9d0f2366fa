// cmd/poller/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tamzrod/isg-poller/internal/config"
	"github.com/tamzrod/isg-poller/internal/coordinator"
	"github.com/tamzrod/isg-poller/internal/export"
	"github.com/tamzrod/isg-poller/internal/modbus"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: poller <config.yaml>")
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger setup failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(os.Args[1])
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}
	if err := config.Validate(cfg); err != nil {
		logger.Fatal("config validation failed", zap.Error(err))
	}
	config.Normalize(cfg)

	// --------------------
	// Build the pipeline
	// --------------------

	client, err := modbus.NewClient(modbus.Config{
		Endpoint: fmt.Sprintf("%s:%d", cfg.ISG.Host, cfg.ISG.Port),
		Timeout:  time.Duration(cfg.ISG.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		logger.Fatal("modbus client setup failed", zap.Error(err))
	}
	defer client.Close()

	coord := coordinator.New(client, logger.Named(cfg.ISG.Name))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// First cycle must succeed so the device identity is known before
	// anything is published.
	if _, err := coord.Refresh(); err != nil {
		logger.Fatal("initial refresh failed", zap.Error(err))
	}
	logger.Info("connected",
		zap.String("name", cfg.ISG.Name),
		zap.String("model", coord.ModelName()),
		zap.Bool("extended", coord.IsExtendedFamily()))

	// --------------------
	// Metrics endpoint (optional)
	// --------------------

	if cfg.ISG.Metrics.Listen != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(export.NewCollector(coord.Snapshot, coord.ModelName))

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

		srv := &http.Server{Addr: cfg.ISG.Metrics.Listen, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics endpoint failed", zap.Error(err))
			}
		}()
		defer srv.Close()

		logger.Info("metrics endpoint up", zap.String("listen", cfg.ISG.Metrics.Listen))
	}

	// --------------------
	// Poll until shutdown
	// --------------------

	coord.Run(ctx, time.Duration(cfg.ISG.ScanIntervalS)*time.Second)
	logger.Info("shutting down")
}
