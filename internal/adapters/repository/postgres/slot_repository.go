package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-employee-list/internal/core/employee"
	pgdb "github.com/ogurasousui/codex-employee-list/internal/platform/db/postgres"
)

const undefinedTableCode = "42P01"

// ErrSlotTableMissing は storage_slots テーブルが存在しない（マイグレーション未適用）ことを表します。
var ErrSlotTableMissing = errors.New("postgres: storage_slots table is missing, run migrations")

// SlotRepository は PostgreSQL の storage_slots テーブルを使った永続化スロットの実装です。
type SlotRepository struct {
	pool pgdb.Queryer
}

// NewSlotRepository は SlotRepository を生成します。
func NewSlotRepository(pool pgdb.Queryer) *SlotRepository {
	return &SlotRepository{pool: pool}
}

// Load はキーに対応するペイロードを取得します。
func (r *SlotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT payload
          FROM storage_slots
         WHERE key = $1
         LIMIT 1
    `, key)

	payload, err := scanPayload(row)
	if err != nil {
		return nil, translateSlotPgError(err)
	}
	return payload, nil
}

// Save はペイロード全体で上書き（存在しなければ挿入）します。
func (r *SlotRepository) Save(ctx context.Context, key string, payload []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("postgres: slot key is required")
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	_, err := exec.Exec(ctx, `
        INSERT INTO storage_slots (key, payload, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE
           SET payload = EXCLUDED.payload,
               updated_at = EXCLUDED.updated_at
    `, key, string(payload))
	if err != nil {
		return translateSlotPgError(err)
	}
	return nil
}

func scanPayload(row pgx.Row) ([]byte, error) {
	var payload string
	if err := row.Scan(&payload); err != nil {
		return nil, err
	}
	return []byte(payload), nil
}

func translateSlotPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrSlotEmpty
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedTableCode {
		return errors.Join(ErrSlotTableMissing, err)
	}

	return err
}
