package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/alexis/glassbudget/internal/clientconfig"
	"github.com/alexis/glassbudget/internal/config"
	"github.com/alexis/glassbudget/internal/server"
)

var version = "dev"

func main() {
	_ = clientconfig.LoadDotenv() // .env is optional

	cfg := config.Load()

	slog.Info("starting glassbudget", "version", version, "addr", cfg.Addr, "dir", cfg.Dir)

	if err := server.Run(context.Background(), cfg, os.Stdout); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
