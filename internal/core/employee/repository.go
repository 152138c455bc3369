package employee

import "context"

// Slot は社員一覧をまとめて保存する永続化スロットの抽象です。
//
// Load はキーに値が無い場合 ErrSlotEmpty を返します。
// Save は常にペイロード全体で上書きします。
type Slot interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
}
