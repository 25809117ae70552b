package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures a zap-backed logger
type Options struct {
	Level  Level
	Format string    // "json" (default) or "console"
	Writer io.Writer // defaults to os.Stderr
}

// ZapLogger implements Logger on top of a zap core
type ZapLogger struct {
	zl    *zap.Logger
	level zap.AtomicLevel
}

// New builds a logger from options
func New(opts Options) *ZapLogger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.MessageKey = "msg"
	encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	var enc zapcore.Encoder
	if opts.Format == "console" {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	level := zap.NewAtomicLevelAt(opts.Level.zap())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return &ZapLogger{zl: zap.New(core), level: level}
}

// FromZap wraps an existing zap logger. SetLevel on the result only
// raises the threshold above what the zap core already enforces.
func FromZap(zl *zap.Logger) *ZapLogger {
	level := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	filtered := zl.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return &levelFilterCore{Core: c, level: level}
	}))
	return &ZapLogger{zl: filtered, level: level}
}

func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		switch v := f.Value.(type) {
		case error:
			out[i] = zap.NamedError(f.Key, v)
		case time.Duration:
			out[i] = zap.Duration(f.Key, v)
		default:
			out[i] = zap.Any(f.Key, v)
		}
	}
	return out
}

// Debug logs a debug-level message
func (l *ZapLogger) Debug(msg string, fields ...Field) {
	l.zl.Debug(msg, toZapFields(fields)...)
}

// Info logs an info-level message
func (l *ZapLogger) Info(msg string, fields ...Field) {
	l.zl.Info(msg, toZapFields(fields)...)
}

// Warn logs a warning-level message
func (l *ZapLogger) Warn(msg string, fields ...Field) {
	l.zl.Warn(msg, toZapFields(fields)...)
}

// Error logs an error-level message
func (l *ZapLogger) Error(msg string, fields ...Field) {
	l.zl.Error(msg, toZapFields(fields)...)
}

// With creates a child logger sharing the parent's level
func (l *ZapLogger) With(fields ...Field) Logger {
	return &ZapLogger{zl: l.zl.With(toZapFields(fields)...), level: l.level}
}

// SetLevel sets the minimum log level
func (l *ZapLogger) SetLevel(level Level) {
	l.level.SetLevel(level.zap())
}

// GetLevel returns the current log level
func (l *ZapLogger) GetLevel() Level {
	return fromZap(l.level.Level())
}

// Sync flushes buffered output
func (l *ZapLogger) Sync() error {
	return l.zl.Sync()
}

// Zap exposes the underlying zap logger
func (l *ZapLogger) Zap() *zap.Logger {
	return l.zl
}

// levelFilterCore adds an adjustable threshold in front of a zap core
type levelFilterCore struct {
	zapcore.Core
	level zap.AtomicLevel
}

func (c *levelFilterCore) Enabled(lvl zapcore.Level) bool {
	return c.level.Enabled(lvl) && c.Core.Enabled(lvl)
}

func (c *levelFilterCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelFilterCore{Core: c.Core.With(fields), level: c.level}
}

func (c *levelFilterCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.level.Enabled(ent.Level) {
		return ce
	}
	return c.Core.Check(ent, ce)
}

// Global default logger
var (
	defaultLogger Logger
	defaultMu     sync.RWMutex
	once          sync.Once
)

// DefaultLogger returns the global default logger. Its level comes from
// NETONTO_LOG_LEVEL when set.
func DefaultLogger() Logger {
	once.Do(func() {
		defaultMu.Lock()
		defer defaultMu.Unlock()
		if defaultLogger == nil {
			defaultLogger = New(Options{Level: ParseLevel(os.Getenv("NETONTO_LOG_LEVEL"))})
		}
	})
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefaultLogger sets the global default logger
func SetDefaultLogger(logger Logger) {
	once.Do(func() {})
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// StartTimer begins timing an operation
func StartTimer(logger Logger, msg string, fields ...Field) *TimedOperation {
	return &TimedOperation{
		logger: logger,
		msg:    msg,
		start:  time.Now(),
		fields: fields,
	}
}

// Elapsed returns the time since the timer started
func (t *TimedOperation) Elapsed() time.Duration {
	return time.Since(t.start)
}

// End logs the operation at debug level with its duration
func (t *TimedOperation) End(extra ...Field) time.Duration {
	elapsed := t.Elapsed()
	fields := append(append([]Field(nil), t.fields...), extra...)
	t.logger.Debug(t.msg, append(fields, Latency(elapsed))...)
	return elapsed
}

// EndError logs the operation as an error with its duration
func (t *TimedOperation) EndError(err error) time.Duration {
	elapsed := t.Elapsed()
	fields := append([]Field(nil), t.fields...)
	t.logger.Error(t.msg, append(fields, Latency(elapsed), Error(err))...)
	return elapsed
}
