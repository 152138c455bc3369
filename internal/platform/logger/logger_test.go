package logger

import (
	"testing"

	"github.com/ogurasousui/codex-employee-list/internal/platform/config"
	"go.uber.org/zap/zapcore"
)

func TestNew_Level(t *testing.T) {
	t.Parallel()

	log, err := New(config.LogConfig{Level: "warn"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected info to be disabled at warn level")
	}
	if !log.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("expected error to be enabled at warn level")
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	if _, err := New(config.LogConfig{Level: "chatty"}); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestNamed_NilBase(t *testing.T) {
	t.Parallel()

	if Named(nil, "store") == nil {
		t.Fatal("expected nop logger")
	}
}
