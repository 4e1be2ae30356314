package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	base := zap.NewNop()
	ctx := WithContext(context.Background(), base)

	assert.Same(t, base, FromContext(ctx))

	// A bare context yields a usable no-op logger instead of nil.
	assert.NotNil(t, FromContext(context.Background()))
}

func TestWithRequestIDEnrichesLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx, enriched := WithRequestID(context.Background(), zap.New(core), "req-9")

	enriched.Info("balance adjusted")

	assert.Equal(t, "req-9", GetRequestID(ctx))
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-9", entries[0].ContextMap()["request_id"])

	// The enriched logger rides along in the context.
	assert.Same(t, enriched, FromContext(ctx))
}

func TestIdentityAccessors(t *testing.T) {
	log := zap.NewNop()
	ctx := context.Background()

	ctx, log = WithTenantID(ctx, log, "tenant-1")
	ctx, _ = WithUserID(ctx, log, "user-1")

	assert.Equal(t, "tenant-1", GetTenantID(ctx))
	assert.Equal(t, "user-1", GetUserID(ctx))
	assert.Empty(t, GetRequestID(ctx))
}

func TestAccessorsIgnoreForeignValues(t *testing.T) {
	// A string key from another package must not alias the typed key.
	type foreignKey string
	ctx := context.WithValue(context.Background(), foreignKey("tenant_id"), "spoofed")

	assert.Empty(t, GetTenantID(ctx))
}
