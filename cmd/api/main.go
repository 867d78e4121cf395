package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"notecards/internal/config"
	"notecards/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err == nil {
		err = server.Run(ctx, cfg)
	}
	if err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
