// Package file はディレクトリ配下の JSON ファイルを永続化スロットとして使います。
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ogurasousui/codex-employee-list/internal/core/employee"
)

// Slot は <dir>/<key>.json に値を保存する employee.Slot の実装です。
type Slot struct {
	dir string
}

// NewSlot はディレクトリを作成して Slot を返します。
func NewSlot(dir string) (*Slot, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("file slot: directory is required")
	}
	clean := filepath.Clean(dir)
	if err := os.MkdirAll(clean, 0o755); err != nil {
		return nil, fmt.Errorf("file slot: create dir %s: %w", clean, err)
	}
	return &Slot{dir: clean}, nil
}

// Path はキーに対応するファイルパスを返します。
func (s *Slot) Path(key string) string {
	return filepath.Join(s.dir, filepath.Base(key)+".json")
}

// Load はファイルの内容を返します。ファイルが無ければ employee.ErrSlotEmpty です。
func (s *Slot) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, employee.ErrSlotEmpty
		}
		return nil, fmt.Errorf("file slot: read %s: %w", key, err)
	}
	return b, nil
}

// Save は一時ファイルに書いてから rename し、途中状態のファイルを残さないようにします。
func (s *Slot) Save(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(key)+".*.tmp")
	if err != nil {
		return fmt.Errorf("file slot: create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("file slot: write %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("file slot: sync %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file slot: close %s: %w", key, err)
	}
	if err := os.Rename(tmpName, s.Path(key)); err != nil {
		return fmt.Errorf("file slot: rename %s: %w", key, err)
	}
	return nil
}
