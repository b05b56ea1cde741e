// Package logger provides a process-wide sugared zap logger writing JSON to
// stdout. Every helper takes a context: fields attached with Derive travel with
// it, and an active OpenTelemetry span adds trace_id and span_id. When
// telemetry is initialized first, records are also forwarded to the
// OpenTelemetry LoggerProvider through the otelzap bridge.
//
// Until Init is called every helper logs to a no-op logger.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pysyun/etherscan-transfers/internal/pkg/telemetry"
)

const instrumentationName = "github.com/pysyun/etherscan-transfers"

var (
	baseLogger         *zap.SugaredLogger
	initBaseLoggerOnce sync.Once

	nopLogger = zap.NewNop().Sugar()
)

type ctxKeyType struct{}

var ctxKey ctxKeyType

// Init configures the global logger at the given level ("debug", "info",
// "warn", "error"). Only the first successful call has any effect.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				lvl,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore(instrumentationName, otelzap.WithLoggerProvider(lp)))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

func base() *zap.SugaredLogger {
	if baseLogger == nil {
		return nopLogger
	}

	return baseLogger
}

// Sync flushes buffered log entries.
func Sync() error {
	return base().Sync()
}

// Derive returns a copy of ctx whose logger carries the given fields on
// every subsequent record.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	return context.WithValue(ctx, ctxKey, deriveFromCtx(ctx, keysAndValues...))
}

// Into returns a copy of ctx whose records go to l instead of the global
// logger.
func Into(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey, l.Sugar())
}

func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		l = base()
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		keysAndValues = append(keysAndValues,
			"trace_id", sc.TraceID().String(),
			"span_id", sc.SpanID().String(),
		)
	}

	if len(keysAndValues) == 0 {
		return l
	}

	return l.With(keysAndValues...)
}

func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs at debug level.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs at info level.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs at warn level.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs at error level.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Panic logs at panic level and then panics.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.PanicLevel, msg, keysAndValues...)
}

// Fatal logs at fatal level and then exits with status 1.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.FatalLevel, msg, keysAndValues...)
}

// leveled adapts the global logger to retryablehttp.LeveledLogger.
type leveled struct {
	ctx context.Context
}

var _ retryablehttp.LeveledLogger = leveled{}

// Leveled exposes the logger to libraries that expect a
// retryablehttp.LeveledLogger. Records carry the fields derived into ctx.
func Leveled(ctx context.Context) retryablehttp.LeveledLogger {
	return leveled{ctx: ctx}
}

func (l leveled) Error(msg string, keysAndValues ...any) { Error(l.ctx, msg, keysAndValues...) }
func (l leveled) Info(msg string, keysAndValues ...any)  { Info(l.ctx, msg, keysAndValues...) }
func (l leveled) Debug(msg string, keysAndValues ...any) { Debug(l.ctx, msg, keysAndValues...) }
func (l leveled) Warn(msg string, keysAndValues ...any)  { Warn(l.ctx, msg, keysAndValues...) }
