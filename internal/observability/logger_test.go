package observability

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestContext(t *testing.T) {
	rc := NewRequestContext(slog.Default(), "convert")

	assert.NotEmpty(t, rc.RequestID)
	assert.Equal(t, "convert", rc.Operation)
	assert.GreaterOrEqual(t, rc.DurationMs(), int64(0))

	other := NewRequestContext(slog.Default(), "convert")
	assert.NotEqual(t, rc.RequestID, other.RequestID)
}

func TestRequestContextRoundTrip(t *testing.T) {
	rc := NewRequestContext(slog.Default(), "parse")
	ctx := WithRequestContext(context.Background(), rc)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, rc, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}
