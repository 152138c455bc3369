// Package storage は設定に応じた永続化スロットとトランザクション制御を組み立てます。
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/codex-employee-list/internal/adapters/repository/postgres"
	"github.com/ogurasousui/codex-employee-list/internal/adapters/repository/sqlite"
	"github.com/ogurasousui/codex-employee-list/internal/adapters/slot/file"
	"github.com/ogurasousui/codex-employee-list/internal/adapters/slot/memory"
	"github.com/ogurasousui/codex-employee-list/internal/core/employee"
	"github.com/ogurasousui/codex-employee-list/internal/platform/config"
	pg "github.com/ogurasousui/codex-employee-list/internal/platform/db/postgres"
)

// Backend は Store に渡すスロットとトランザクション制御の組です。
type Backend struct {
	Driver string
	Slot   employee.Slot
	Tx     employee.TransactionManager
	closer func() error
}

// Close は下位の接続を閉じます。
func (b *Backend) Close() error {
	if b == nil || b.closer == nil {
		return nil
	}
	return b.closer()
}

// Open は storage.driver に応じた Backend を返します。
func Open(ctx context.Context, cfg config.StorageConfig, db config.DatabaseConfig) (*Backend, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return &Backend{Driver: cfg.Driver, Slot: memory.NewSlot()}, nil

	case config.DriverFile, "":
		slot, err := file.NewSlot(cfg.Dir)
		if err != nil {
			return nil, err
		}
		return &Backend{Driver: config.DriverFile, Slot: slot}, nil

	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("storage: create sqlite dir: %w", err)
			}
		}
		repo, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Backend{Driver: cfg.Driver, Slot: repo, closer: repo.Close}, nil

	case config.DriverPostgres:
		pool, err := pg.NewPool(ctx, db)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Driver: cfg.Driver,
			Slot:   postgres.NewSlotRepository(pool),
			Tx:     pg.NewTransactionManager(pool, transactionOptions(db)...),
			closer: func() error {
				pool.Close()
				return nil
			},
		}, nil

	default:
		return nil, fmt.Errorf("storage: unsupported driver %q", cfg.Driver)
	}
}

// transactionOptions は database 設定から TransactionManager のオプションを組み立てます。
func transactionOptions(db config.DatabaseConfig) []pg.Option {
	var opts []pg.Option
	if db.TxIsolation != "" {
		opts = append(opts, pg.WithIsolation(pgx.TxIsoLevel(db.TxIsolation)))
	}
	if db.TxMaxRetries != nil {
		opts = append(opts, pg.WithMaxRetries(*db.TxMaxRetries))
	}
	return opts
}
