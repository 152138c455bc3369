package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-employee-list/internal/core/employee"
	pgdb "github.com/ogurasousui/codex-employee-list/internal/platform/db/postgres"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

var (
	loadQuery = regexp.QuoteMeta(`
        SELECT payload
          FROM storage_slots
         WHERE key = $1
         LIMIT 1
    `)
	saveQuery = regexp.QuoteMeta(`
        INSERT INTO storage_slots (key, payload, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE
           SET payload = EXCLUDED.payload,
               updated_at = EXCLUDED.updated_at
    `)
)

type stubRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

func TestScanPayload_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanPayload(row)
	if !errors.Is(translateSlotPgError(err), employee.ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty, got %v", err)
	}
}

func TestTranslateSlotPgError(t *testing.T) {
	t.Parallel()

	missing := &pgconn.PgError{Code: undefinedTableCode}
	if !errors.Is(translateSlotPgError(missing), ErrSlotTableMissing) {
		t.Fatalf("expected undefined table to map to ErrSlotTableMissing")
	}

	other := errors.New("other")
	if translateSlotPgError(other) != other {
		t.Fatalf("unexpected translation for generic error")
	}

	if translateSlotPgError(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}

func TestSlotRepository_Load(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewSlotRepository(mock)

	rows := pgxmock.NewRows([]string{"payload"}).AddRow(`[{"name":"Ada"}]`)
	mock.ExpectQuery(loadQuery).WithArgs("emsEmployees").WillReturnRows(rows)

	payload, err := repo.Load(context.Background(), "emsEmployees")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if string(payload) != `[{"name":"Ada"}]` {
		t.Fatalf("unexpected payload %q", payload)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSlotRepository_Load_Missing(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewSlotRepository(mock)
	mock.ExpectQuery(loadQuery).WithArgs("emsEmployees").WillReturnError(pgx.ErrNoRows)

	if _, err := repo.Load(context.Background(), "emsEmployees"); !errors.Is(err, employee.ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSlotRepository_Save(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewSlotRepository(mock)
	mock.ExpectExec(saveQuery).WithArgs("emsEmployees", `[]`).WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := repo.Save(context.Background(), "emsEmployees", []byte(`[]`)); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSlotRepository_Save_RequiresKey(t *testing.T) {
	t.Parallel()

	repo := NewSlotRepository(nil)
	if err := repo.Save(context.Background(), " ", []byte(`[]`)); err == nil {
		t.Fatal("expected error for blank key")
	}
}

func TestSlotRepository_StoreUsesTransaction(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewSlotRepository(mock)
	tm := pgdb.NewTransactionManager(mock)
	store := employee.NewStore(repo, "", tm, nil)

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadOnly})
	mock.ExpectQuery(loadQuery).WithArgs(employee.DefaultSlotKey).WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	if err := store.Restore(context.Background()); err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite})
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO storage_slots`)).
		WithArgs(employee.DefaultSlotKey, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	if _, err := store.AddEmployee(context.Background(), employee.AddEmployeeInput{Name: "Ada", Income: "90000", BusinessID: "E1"}); err != nil {
		t.Fatalf("AddEmployee returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSlotRepository_Save_FailureRollsBackStore(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	store := employee.NewStore(NewSlotRepository(mock), "", pgdb.NewTransactionManager(mock), nil)

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite})
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO storage_slots`)).
		WithArgs(employee.DefaultSlotKey, pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: undefinedTableCode})
	mock.ExpectRollback()

	_, err = store.AddEmployee(context.Background(), employee.AddEmployeeInput{Name: "Ada", Income: "90000", BusinessID: "E1"})
	if !errors.Is(err, employee.ErrPersistence) || !errors.Is(err, ErrSlotTableMissing) {
		t.Fatalf("expected persistence error wrapping ErrSlotTableMissing, got %v", err)
	}
	if len(store.ListEmployees()) != 0 {
		t.Fatalf("expected store to roll back")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
