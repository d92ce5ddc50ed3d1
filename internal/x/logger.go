package x

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a *zap.Logger with the AuditI/AuditE field-pair convention
// the CLI uses to attach a request UUID and per-file metadata to its log
// lines. A nil *Logger is valid and silently discards every call, so
// call sites never need a separate "is logging enabled" check.
type Logger struct {
	logger *zap.Logger
}

// NewLogger builds a Logger that writes leveled, human-readable lines to
// stderr. debug enables debug-level output; otherwise only info and above
// are emitted.
func NewLogger(debug bool) *Logger {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(os.Stderr), level)
	return &Logger{logger: zap.New(core)}
}

// AuditI logs msg at info level with args interpreted as alternating
// key/value pairs.
func (l *Logger) AuditI(msg string, args ...interface{}) {
	if l == nil {
		return
	}
	l.logger.Info(msg, fieldsOf(args)...)
}

// AuditE logs msg at error level with args interpreted as alternating
// key/value pairs.
func (l *Logger) AuditE(msg string, args ...interface{}) {
	if l == nil {
		return
	}
	l.logger.Error(msg, fieldsOf(args)...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() {
	if l == nil {
		return
	}
	_ = l.logger.Sync()
}

func fieldsOf(args []interface{}) []zap.Field {
	flds := make([]zap.Field, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		flds = append(flds, zap.Any(key, args[i+1]))
	}
	return flds
}
