// Package memory はプロセス内だけで値を保持する永続化スロットです。
package memory

import (
	"context"
	"sync"

	"github.com/ogurasousui/codex-employee-list/internal/core/employee"
)

// Slot は map を使った employee.Slot の実装です。
type Slot struct {
	mu       sync.RWMutex
	payloads map[string][]byte
}

// NewSlot は空の Slot を生成します。
func NewSlot() *Slot {
	return &Slot{payloads: make(map[string][]byte)}
}

// Load はキーの値のコピーを返します。
func (s *Slot) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.payloads[key]
	if !ok {
		return nil, employee.ErrSlotEmpty
	}
	return append([]byte(nil), payload...), nil
}

// Save はキーの値を上書きします。
func (s *Slot) Save(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payloads[key] = append([]byte(nil), payload...)
	return nil
}
