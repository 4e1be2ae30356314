package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func observedGormLogger(level gormlogger.LogLevel) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level), logs
}

func traceQuery(l *GormLogger, ctx context.Context, begin time.Time, err error) {
	l.Trace(ctx, begin, func() (string, int64) {
		return "UPDATE safes SET balance = balance + $1 WHERE id = $2", 1
	}, err)
}

func TestGormLoggerTraceError(t *testing.T) {
	l, logs := observedGormLogger(gormlogger.Error)

	traceQuery(l, context.Background(), time.Now(), errors.New("connection reset"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "sql failed", entries[0].Message)
	assert.Contains(t, entries[0].ContextMap()["sql"], "UPDATE safes")
}

func TestGormLoggerIgnoresRecordNotFound(t *testing.T) {
	l, logs := observedGormLogger(gormlogger.Error)

	traceQuery(l, context.Background(), time.Now(), gormlogger.ErrRecordNotFound)

	assert.Zero(t, logs.Len())
}

func TestGormLoggerSlowQuery(t *testing.T) {
	l, logs := observedGormLogger(gormlogger.Warn)

	traceQuery(l, context.Background(), time.Now().Add(-slowQueryThreshold-time.Millisecond), nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "slow sql", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestGormLoggerSilentDropsEverything(t *testing.T) {
	l, logs := observedGormLogger(gormlogger.Silent)

	traceQuery(l, context.Background(), time.Now(), errors.New("ignored"))

	assert.Zero(t, logs.Len())
}

func TestGormLoggerTraceCarriesRequestID(t *testing.T) {
	l, logs := observedGormLogger(gormlogger.Info)
	ctx := context.WithValue(context.Background(), RequestIDKey, "req-42")

	traceQuery(l, ctx, time.Now(), nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "sql executed", entries[0].Message)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
}

func TestGormLoggerLogMode(t *testing.T) {
	l, _ := observedGormLogger(gormlogger.Warn)

	quieter := l.LogMode(gormlogger.Silent)

	// LogMode clones, the original keeps its level.
	assert.Equal(t, gormlogger.Warn, l.logLevel)
	assert.Equal(t, gormlogger.Silent, quieter.(*GormLogger).logLevel)
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("info"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("anything-else"))
}
