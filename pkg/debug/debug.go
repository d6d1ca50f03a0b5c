// Package debug provides the wt debug logger.
//
// Debug logging is enabled by setting the WT_DEBUG environment variable or
// passing --debug:
//
//	WT_DEBUG=1 wt
//
// The TUI owns the terminal, so entries are written as JSON lines to a file
// (see config.Config.DebugLogPath). When disabled, the logger is a no-op.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvEnabled reports whether WT_DEBUG asks for debug logging.
func EnvEnabled() bool {
	v := strings.TrimSpace(os.Getenv("WT_DEBUG"))
	return v != "" && v != "0" && !strings.EqualFold(v, "false")
}

// New returns a logger writing to path at debug level, or a no-op logger when
// enabled is false. The caller should Sync the logger before exiting.
func New(enabled bool, path string) (*zap.Logger, error) {
	if !enabled {
		return zap.NewNop(), nil
	}
	if path == "" {
		return nil, fmt.Errorf("debug log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating debug log directory: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building debug logger: %w", err)
	}
	return logger.Named("wt"), nil
}
