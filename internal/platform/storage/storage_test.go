package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"github.com/ogurasousui/codex-employee-list/internal/adapters/repository/sqlite"
	"github.com/ogurasousui/codex-employee-list/internal/adapters/slot/file"
	"github.com/ogurasousui/codex-employee-list/internal/adapters/slot/memory"
	"github.com/ogurasousui/codex-employee-list/internal/platform/config"
	pg "github.com/ogurasousui/codex-employee-list/internal/platform/db/postgres"
)

func TestOpen_Drivers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	mem, err := Open(ctx, config.StorageConfig{Driver: config.DriverMemory}, config.DatabaseConfig{})
	if err != nil {
		t.Fatalf("Open(memory) returned error: %v", err)
	}
	if _, ok := mem.Slot.(*memory.Slot); !ok {
		t.Fatalf("expected memory slot, got %T", mem.Slot)
	}

	fs, err := Open(ctx, config.StorageConfig{Driver: config.DriverFile, Dir: filepath.Join(dir, "files")}, config.DatabaseConfig{})
	if err != nil {
		t.Fatalf("Open(file) returned error: %v", err)
	}
	if _, ok := fs.Slot.(*file.Slot); !ok {
		t.Fatalf("expected file slot, got %T", fs.Slot)
	}

	lite, err := Open(ctx, config.StorageConfig{Driver: config.DriverSQLite, SQLitePath: filepath.Join(dir, "db", "e.db")}, config.DatabaseConfig{})
	if err != nil {
		t.Fatalf("Open(sqlite) returned error: %v", err)
	}
	t.Cleanup(func() { _ = lite.Close() })
	if _, ok := lite.Slot.(*sqlite.SlotRepository); !ok {
		t.Fatalf("expected sqlite slot, got %T", lite.Slot)
	}
	if mem.Tx != nil || fs.Tx != nil || lite.Tx != nil {
		t.Fatalf("expected no transaction manager for local drivers")
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), config.StorageConfig{Driver: "redis"}, config.DatabaseConfig{}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestBackend_CloseNil(t *testing.T) {
	t.Parallel()

	var b *Backend
	if err := b.Close(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestTransactionOptions_AppliesDatabaseSettings(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	noRetry := 0
	tm := pg.NewTransactionManager(mock, transactionOptions(config.DatabaseConfig{
		TxIsolation:  "serializable",
		TxMaxRetries: &noRetry,
	})...)

	// 再試行しないので BeginTx は一度だけ
	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite, IsoLevel: pgx.Serializable})
	mock.ExpectRollback()

	conflict := &pgconn.PgError{Code: "40001"}
	err = tm.WithinReadWrite(context.Background(), func(context.Context) error { return conflict })
	if err != conflict {
		t.Fatalf("expected serialization failure to surface, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTransactionOptions_DefaultsWhenUnset(t *testing.T) {
	t.Parallel()

	if opts := transactionOptions(config.DatabaseConfig{}); len(opts) != 0 {
		t.Fatalf("expected no options, got %d", len(opts))
	}
}
