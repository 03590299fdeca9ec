package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	for _, lvl := range []string{"", "debug", "info", "warn", "error"} {
		log, err := New(lvl)
		if err != nil {
			t.Fatalf("level %q: unexpected error %v", lvl, err)
		}
		if log == nil {
			t.Fatalf("level %q: nil logger", lvl)
		}
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New("loud"); err == nil {
		t.Errorf("expected error for unknown level")
	}
}

func TestNewRespectsLevel(t *testing.T) {
	log, err := New("warn")
	if err != nil {
		t.Fatal(err)
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Errorf("debug should be disabled at warn level")
	}
	if !log.Core().Enabled(zapcore.WarnLevel) {
		t.Errorf("warn should be enabled at warn level")
	}
}
