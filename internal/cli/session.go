package cli

import (
	"context"

	"github.com/ogurasousui/codex-employee-list/internal/core/employee"
	"github.com/ogurasousui/codex-employee-list/internal/platform/config"
	"github.com/ogurasousui/codex-employee-list/internal/platform/logger"
	"github.com/ogurasousui/codex-employee-list/internal/platform/storage"
	"go.uber.org/zap"
)

// session はコマンド 1 回分のストアと後始末です。
type session struct {
	store   *employee.Store
	backend *storage.Backend
	logger  *zap.Logger
}

func (s *session) Close() {
	_ = s.backend.Close()
	_ = s.logger.Sync()
}

// resolveConfig は設定ファイルを読み込み、フラグで上書きします。
func resolveConfig(opts *RootOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.Driver != "" {
		cfg.Storage.Driver = opts.Driver
	}
	if opts.Dir != "" {
		cfg.Storage.Dir = opts.Dir
	}
	if opts.DBPath != "" {
		cfg.Storage.SQLitePath = opts.DBPath
	}
	if opts.Key != "" {
		cfg.Storage.Key = opts.Key
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = config.Default().Storage.Dir
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = config.Default().Storage.SQLitePath
	}

	cfg.Log.Level = "warn"
	if opts.Verbose {
		cfg.Log.Level = "debug"
	}

	return cfg, nil
}

// openSession はストレージを開き、保存済みの一覧を復元します。
func openSession(ctx context.Context, opts *RootOptions) (*session, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	backend, err := storage.Open(ctx, cfg.Storage, cfg.Database)
	if err != nil {
		return nil, err
	}

	store := employee.NewStore(backend.Slot, cfg.Storage.Key, backend.Tx, logger.Named(log, "store"))
	if err := store.Restore(ctx); err != nil {
		_ = backend.Close()
		return nil, err
	}
	log.Debug("session opened",
		zap.String("driver", backend.Driver),
		zap.String("key", store.Key()),
	)

	return &session{store: store, backend: backend, logger: log}, nil
}
