package bridge

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the logger conversions emit their fast-path/fallback debug
// events to. It is a no-op logger unless SetLogger was called first.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package logger. Call it during setup, before the
// first conversion; conversions read the logger without synchronization.
func SetLogger(l *zap.Logger) {
	logger = l
}
