package logger

import (
	"errors"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected *zapcore.Level
	}{
		{"debug", levelPtr(zapcore.DebugLevel)},
		{"info", levelPtr(zapcore.InfoLevel)},
		{"warn", levelPtr(zapcore.WarnLevel)},
		{"error", levelPtr(zapcore.ErrorLevel)},
		{"verbose", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := parseLevel(tt.input)
		switch {
		case tt.expected == nil && got != nil:
			t.Errorf("parseLevel(%q) = %v, want nil", tt.input, *got)
		case tt.expected != nil && (got == nil || *got != *tt.expected):
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, *tt.expected)
		}
	}
}

func TestNopLoggerAcceptsFields(t *testing.T) {
	log := NewNop()
	log.Warn("malformed line skipped",
		String("file", "Configurations.yaml"),
		Int("line", 3),
		Error(errors.New("missing ':'")))
	log.Debugf("loaded %d shortcuts", 4)

	if err := log.Sync(); err != nil {
		t.Errorf("Sync() error = %v", err)
	}
}

func levelPtr(l zapcore.Level) *zapcore.Level { return &l }
