// Package main запускает консольный магазин аркадных автоматов.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mmeshcher/arcade-system/internal/catalog"
	"github.com/mmeshcher/arcade-system/internal/config"
	"github.com/mmeshcher/arcade-system/internal/handler"
	"github.com/mmeshcher/arcade-system/internal/service"
	"github.com/mmeshcher/arcade-system/internal/storage"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	store, err := catalog.New(cfg.CatalogPath)
	if err != nil {
		sugar.Fatalw("catalog initialization error", "error", err.Error(), "path", cfg.CatalogPath)
	}

	repo, err := storage.New(cfg.StoragePath)
	if err != nil {
		sugar.Fatalw("storage initialization error", "error", err.Error(), "path", cfg.StoragePath)
	}

	svc := service.NewService(store, repo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sugar.Infow("starting arcade store", "catalog", cfg.CatalogPath, "games", store.Len())

	cli := handler.NewCLI(svc, logger, os.Stdin, os.Stdout)
	if err := cli.Run(ctx); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}

	sugar.Info("arcade store stopped")
}
