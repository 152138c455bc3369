package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSlotKey は永続化スロットの既定キーです。
const DefaultSlotKey = "emsEmployees"

// MaxIncome は受け付ける収入の上限です。合計や表示用の整数変換が溢れない範囲に抑えます。
const MaxIncome = 1e12

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// UseCase は社員一覧ストアの公開インターフェースです。
type UseCase interface {
	AddEmployee(ctx context.Context, in AddEmployeeInput) (*Employee, error)
	RemoveEmployee(ctx context.Context, in RemoveEmployeeInput) (*Employee, error)
	UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error)
	ListEmployees() []*Employee
}

// Store は社員レコードの一覧を保持し、変更のたびにスロットへ全件を書き出します。
type Store struct {
	mu      sync.Mutex
	slot    Slot
	key     string
	tx      TransactionManager
	logger  *zap.Logger
	newID   func() string
	records []*Employee
}

// NewStore は Store を生成します。key が空なら DefaultSlotKey を使います。
func NewStore(slot Slot, key string, tx TransactionManager, logger *zap.Logger) *Store {
	if strings.TrimSpace(key) == "" {
		key = DefaultSlotKey
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		slot:   slot,
		key:    key,
		tx:     tx,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Key はスロットキーを返します。
func (s *Store) Key() string {
	return s.key
}

// AddEmployeeInput は社員追加時の入力です。
//
// Income はフォーム入力のままの文字列で、0 以上 MaxIncome 以下の数値である必要があります（0 は有効）。
type AddEmployeeInput struct {
	Name       string
	Income     string
	BusinessID string
}

// UpdateEmployeeInput は社員更新時の入力です。nil のフィールドは変更しません。
type UpdateEmployeeInput struct {
	ID         string
	Name       *string
	Income     *string
	BusinessID *string
}

// RemoveEmployeeInput は社員削除時の入力です。
type RemoveEmployeeInput struct {
	ID string
}

// AddEmployee は検証後に社員を末尾へ追加し、スロットへ保存します。
func (s *Store) AddEmployee(ctx context.Context, in AddEmployeeInput) (*Employee, error) {
	verr := &ValidationError{}

	name, err := normalizeText(in.Name, ErrInvalidName)
	if err != nil {
		verr.add(FieldName, "is required", err)
	}

	income, err := parseIncome(in.Income)
	if err != nil {
		verr.add(FieldIncome, "must be a number between 0 and 1,000,000,000,000", err)
	}

	businessID, err := normalizeText(in.BusinessID, ErrInvalidBusinessID)
	if err != nil {
		verr.add(FieldBusinessID, "is required", err)
	}

	if err := verr.orNil(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	emp := &Employee{
		ID:         s.newID(),
		Name:       name,
		Income:     income,
		BusinessID: businessID,
	}

	prev := s.records
	next := make([]*Employee, 0, len(prev)+1)
	next = append(next, prev...)
	s.records = append(next, emp)
	if err := s.persist(ctx); err != nil {
		s.records = prev
		return nil, err
	}

	s.logger.Debug("employee added", zap.String("record_id", emp.ID))
	return cloneEmployee(emp), nil
}

// RemoveEmployee は ID が一致する社員を削除します。存在しない場合は nil, nil を返します。
func (s *Store) RemoveEmployee(ctx context.Context, in RemoveEmployeeInput) (*Employee, error) {
	id := strings.TrimSpace(in.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, nil
	}

	prev := s.records
	removed := prev[idx]
	next := make([]*Employee, 0, len(prev)-1)
	next = append(next, prev[:idx]...)
	next = append(next, prev[idx+1:]...)

	s.records = next
	if err := s.persist(ctx); err != nil {
		s.records = prev
		return nil, err
	}

	s.logger.Debug("employee removed", zap.String("record_id", removed.ID))
	return cloneEmployee(removed), nil
}

// UpdateEmployee は指定されたフィールドだけを更新します。
//
// 不正な収入や空の名前・社員 ID は無視され、既存の値が残ります。
// ID が存在しない場合は nil, nil を返します。
func (s *Store) UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error) {
	id := strings.TrimSpace(in.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, nil
	}

	existing := s.records[idx]
	updated := cloneEmployee(existing)

	if in.Name != nil {
		if name, err := normalizeText(*in.Name, ErrInvalidName); err == nil {
			updated.Name = name
		}
	}

	if in.Income != nil {
		if income, err := parseIncome(*in.Income); err == nil {
			updated.Income = income
		} else {
			s.logger.Debug("ignoring invalid income update", zap.String("record_id", id))
		}
	}

	if in.BusinessID != nil {
		if businessID, err := normalizeText(*in.BusinessID, ErrInvalidBusinessID); err == nil {
			updated.BusinessID = businessID
		}
	}

	if *updated == *existing {
		return cloneEmployee(existing), nil
	}

	prev := s.records
	next := append([]*Employee(nil), prev...)
	next[idx] = updated

	s.records = next
	if err := s.persist(ctx); err != nil {
		s.records = prev
		return nil, err
	}

	s.logger.Debug("employee updated", zap.String("record_id", id))
	return cloneEmployee(updated), nil
}

// ListEmployees は挿入順の社員一覧のコピーを返します。
func (s *Store) ListEmployees() []*Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneEmployees(s.records)
}

// Restore はスロットから一覧を読み込みます。
//
// 値が無い・壊れている場合は空の一覧になり、エラーは返しません。
// スロット自体にアクセスできなかった場合のみ ErrPersistence を返します。
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil

	var payload []byte
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		b, err := s.slot.Load(txCtx, s.key)
		if err != nil {
			return err
		}
		payload = b
		return nil
	}); err != nil {
		if errors.Is(err, ErrSlotEmpty) {
			return nil
		}
		return fmt.Errorf("%w: load %s: %w", ErrPersistence, s.key, err)
	}

	records, assigned, err := s.decode(payload)
	if err != nil {
		s.logger.Warn("discarding unreadable employee list", zap.String("key", s.key), zap.Error(err))
		return nil
	}

	s.records = records
	if assigned {
		// 採番した ID を書き戻し、次回の復元でも同じ ID になるようにする
		if err := s.persist(ctx); err != nil {
			s.logger.Warn("failed to store assigned record ids", zap.String("key", s.key), zap.Error(err))
		}
	}
	s.logger.Info("employee list restored", zap.String("key", s.key), zap.Int("count", len(records)))
	return nil
}

// persist は一覧全体をスロットへ上書き保存します。呼び出し側がロックを保持している必要があります。
func (s *Store) persist(ctx context.Context) error {
	records := s.records
	if records == nil {
		records = []*Employee{}
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrPersistence, err)
	}

	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.slot.Save(txCtx, s.key, payload)
	}); err != nil {
		return fmt.Errorf("%w: save %s: %w", ErrPersistence, s.key, err)
	}
	return nil
}

// decode はペイロードを検証して復元します。recordId が無いレコードに ID を振った場合 assigned は true です。
func (s *Store) decode(payload []byte) (records []*Employee, assigned bool, err error) {
	if len(strings.TrimSpace(string(payload))) == 0 {
		return nil, false, nil
	}

	var decoded []*Employee
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, false, err
	}

	seen := make(map[string]struct{}, len(decoded))
	records = make([]*Employee, 0, len(decoded))
	for i, emp := range decoded {
		if emp == nil {
			return nil, false, fmt.Errorf("record %d: null entry", i)
		}

		name, err := normalizeText(emp.Name, ErrInvalidName)
		if err != nil {
			return nil, false, fmt.Errorf("record %d: %w", i, err)
		}
		businessID, err := normalizeText(emp.BusinessID, ErrInvalidBusinessID)
		if err != nil {
			return nil, false, fmt.Errorf("record %d: %w", i, err)
		}
		if !validIncome(emp.Income) {
			return nil, false, fmt.Errorf("record %d: %w", i, ErrInvalidIncome)
		}

		id := strings.TrimSpace(emp.ID)
		if id == "" {
			id = s.newID()
			assigned = true
		}
		if _, dup := seen[id]; dup {
			return nil, false, fmt.Errorf("record %d: duplicate record id %q", i, id)
		}
		seen[id] = struct{}{}

		records = append(records, &Employee{
			ID:         id,
			Name:       name,
			Income:     normalizeIncome(emp.Income),
			BusinessID: businessID,
		})
	}

	return records, assigned, nil
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, emp := range s.records {
		if emp.ID == id {
			return i
		}
	}
	return -1
}

func normalizeText(raw string, sentinel error) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", sentinel
	}
	return trimmed, nil
}

func parseIncome(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, ErrInvalidIncome
	}

	income, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || !validIncome(income) {
		return 0, ErrInvalidIncome
	}
	return normalizeIncome(income), nil
}

// normalizeIncome は -0 を 0 に揃えます。
func normalizeIncome(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

func validIncome(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= MaxIncome
}
