// Package logger holds the process-wide structured logger used by every engine package.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the shared logger. It is a no-op logger until Init is called so that
// library code and tests can log unconditionally.
var Log = zap.NewNop()

// Init replaces Log with a configured zap logger.
// Debug mode uses the human-readable development encoder at debug level;
// otherwise a production JSON logger at info level is built.
//
// Parameters:
//   - debug: whether to enable debug-level development logging
//
// Returns:
//   - error: error if the logger could not be built
func Init(debug bool) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	Log = l
	return nil
}

// Named returns a child of Log scoped to a subsystem name.
//
// Parameters:
//   - name: the subsystem name added to every entry
//
// Returns:
//   - *zap.Logger: the scoped logger
func Named(name string) *zap.Logger {
	return Log.Named(name)
}

// Sync flushes any buffered entries. Errors from syncing stdout/stderr are ignored.
func Sync() {
	_ = Log.Sync()
}
