// Package sqlite は SQLite ファイルを使った永続化スロットを提供します。
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ogurasousui/codex-employee-list/internal/core/employee"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// SlotRepository は storage_slots テーブルに値を保存する employee.Slot の実装です。
type SlotRepository struct {
	db  *sql.DB
	now func() time.Time
}

// Open は SQLite データベースを開き、スキーマを適用します。
func Open(path string) (*SlotRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// SQLite は書き込みが 1 本なので接続も 1 本に絞る
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}

	return &SlotRepository{db: db, now: time.Now}, nil
}

// Close はデータベースを閉じます。
func (r *SlotRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Load はキーに対応するペイロードを返します。
func (r *SlotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM storage_slots WHERE key = ?`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, employee.ErrSlotEmpty
		}
		return nil, fmt.Errorf("sqlite: load %s: %w", key, err)
	}
	return []byte(payload), nil
}

// Save はペイロード全体で上書きします。
func (r *SlotRepository) Save(ctx context.Context, key string, payload []byte) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("sqlite: slot key is required")
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO storage_slots (key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, string(payload), r.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save %s: %w", key, err)
	}
	return nil
}
