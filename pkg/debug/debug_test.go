package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewDisabledIsNop(t *testing.T) {
	logger, err := New(false, "")
	if err != nil {
		t.Fatalf("New(false): %v", err)
	}
	if logger.Core().Enabled(zap.DebugLevel) {
		t.Error("disabled logger should not accept debug entries")
	}
}

func TestNewEnabledWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	logger, err := New(true, path)
	if err != nil {
		t.Fatalf("New(true): %v", err)
	}
	logger.Debug("advance", zap.Int("target", 3), zap.Bool("accepted", false))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	line := string(data)
	for _, want := range []string{`"msg":"advance"`, `"target":3`, `"accepted":false`, `"logger":"wt"`} {
		if !strings.Contains(line, want) {
			t.Errorf("log line missing %s: %s", want, line)
		}
	}
}

func TestNewEnabledNeedsPath(t *testing.T) {
	if _, err := New(true, ""); err == nil {
		t.Error("expected an error for an empty path")
	}
}

func TestEnvEnabled(t *testing.T) {
	tests := map[string]bool{
		"":      false,
		"0":     false,
		"false": false,
		"FALSE": false,
		"1":     true,
		"yes":   true,
	}
	for v, want := range tests {
		t.Setenv("WT_DEBUG", v)
		if got := EnvEnabled(); got != want {
			t.Errorf("WT_DEBUG=%q: EnvEnabled() = %v, want %v", v, got, want)
		}
	}
}
