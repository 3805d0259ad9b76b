package logx

import "go.uber.org/zap"

// Logger is the logging surface loaders depend on. Keeping it to structured
// level calls lets callers plug in their own zap setup or discard output.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewZapLogger(nil)
}

// OrNop returns l, or a discarding Logger when l is nil. Loaders call this
// once up front so a nil logger is always safe to pass.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop()
	}
	return l
}
