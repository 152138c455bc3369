package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ogurasousui/codex-employee-list/internal/core/employee"
	"github.com/ogurasousui/codex-employee-list/internal/platform/config"
	"github.com/ogurasousui/codex-employee-list/internal/platform/logger"
	"github.com/ogurasousui/codex-employee-list/internal/platform/otel"
	"github.com/ogurasousui/codex-employee-list/internal/platform/server"
	"github.com/ogurasousui/codex-employee-list/internal/platform/storage"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Must(logger.New(config.Default().Log)).Fatal("failed to load config", zap.String("path", cfgPath), zap.Error(err))
	}

	log := logger.Must(logger.New(cfg.Log))
	defer func() { _ = log.Sync() }()

	shutdownTracing, err := otel.Setup(ctx, cfg.Tracing)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	backend, err := storage.Open(ctx, cfg.Storage, cfg.Database)
	if err != nil {
		log.Fatal("failed to open storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer func() { _ = backend.Close() }()

	store := employee.NewStore(backend.Slot, cfg.Storage.Key, backend.Tx, logger.Named(log, "store"))
	if err := store.Restore(ctx); err != nil {
		log.Fatal("failed to restore employees", zap.Error(err))
	}
	log.Info("employees restored",
		zap.String("driver", backend.Driver),
		zap.String("key", store.Key()),
		zap.Int("count", len(store.ListEmployees())),
	)

	grpcServer := server.New(cfg.Server.ListenAddr, store, logger.Named(log, "server"))
	if err := grpcServer.Run(ctx); err != nil {
		log.Fatal("server stopped with error", zap.Error(err))
	}
}
