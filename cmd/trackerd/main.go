package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rakapradita/go-storefront/internal/config"
	"github.com/rakapradita/go-storefront/internal/logx"
	"github.com/rakapradita/go-storefront/internal/order"
	"github.com/rakapradita/go-storefront/internal/storage"
	"github.com/rakapradita/go-storefront/internal/tracking"
)

// trackerd keeps order item statuses current while it runs: a periodic
// sweep derives each item's stage from the clock and arms archival timers
// for delivered items.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logx.New(cfg.ServiceName+"-tracker", cfg.LogLevel)

	backend, err := storage.Open(cfg.StorageBackend, cfg.DataDir, cfg.RedisAddr)
	if err != nil {
		log.Fatal().Err(err).Msg("storage open failed")
	}
	if closer, ok := backend.(io.Closer); ok {
		defer closer.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orders := order.NewStore(backend, log)
	mon := tracking.NewMonitor(orders, cfg.RecheckInterval, log)
	mon.Start(ctx)
	log.Info().Dur("interval", cfg.RecheckInterval).Msg("tracker started")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down...")

	mon.Close()
	mon.WaitClosed()
}
