package glpp

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the logger that receives shader and program info logs.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package logger.
// This must be called before any objects are created.
func SetLogger(l *zap.Logger) {
	logger = l
}

// reportLog emits a non-empty driver info log: as a warning when the
// operation succeeded, as an error otherwise.
func reportLog(msg, log string, ok bool, fields ...zap.Field) {
	if log == "" {
		return
	}
	fields = append(fields, zap.String("log", log))
	if ok {
		Logger().Warn(msg, fields...)
	} else {
		Logger().Error(msg, fields...)
	}
}
