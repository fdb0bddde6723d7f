package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/logger"
)

func TestWithPassAttrs(t *testing.T) {
	t.Run("accumulates", func(t *testing.T) {
		ctx := logger.WithPassAttrs(context.Background(), slog.String("form", "signup"))
		ctx = logger.WithPassAttrs(ctx, slog.String("request_id", "r-1"))

		attrs := logger.PassAttrs(ctx)
		require.Len(t, attrs, 2)
		assert.Equal(t, "form", attrs[0].Key)
		assert.Equal(t, "request_id", attrs[1].Key)
	})

	t.Run("no attrs keeps the context", func(t *testing.T) {
		ctx := context.Background()
		assert.Equal(t, ctx, logger.WithPassAttrs(ctx))
		assert.Empty(t, logger.PassAttrs(ctx))
	})

	t.Run("records carry pass attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithJSONFormatter())

		ctx := logger.WithPassAttrs(context.Background(), slog.String("form", "signup"))
		log.InfoContext(ctx, "validation finished", logger.Count("errors", 2))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "signup", entry["form"])
		assert.Equal(t, float64(2), entry["errors"])
	})
}

func TestContextHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	base := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	h := logger.NewContextHandler(base, nil, func(context.Context) (slog.Attr, bool) {
		return slog.String("component", "validator"), true
	})

	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))

	log := slog.New(h).With(logger.Field("email"))
	log.DebugContext(context.Background(), "rule violated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "email", entry["field"])
	assert.Equal(t, "validator", entry["component"])
}
