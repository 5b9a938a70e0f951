package log

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := Wrap(core, LevelDebug)

	l.Info("pair tested",
		String("a", "circle"),
		Int("contacts", 7),
		Float64("fraction", 0.25),
		Bool("overlap", true),
		Duration("took", time.Millisecond),
		Strings("ids", []string{"x", "y"}),
		Error(errors.New("boom")),
		Any("axis", [2]float64{1, 0}),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "pair tested", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "circle", fields["a"])
	assert.Equal(t, int64(7), fields["contacts"])
	assert.Equal(t, 0.25, fields["fraction"])
	assert.Equal(t, true, fields["overlap"])
	assert.Equal(t, "boom", fields["error"])
}

func TestLoggerLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := Wrap(core, LevelWarn)

	l.Info("dropped")
	l.Warn("kept")
	l.Log(LevelDebug, "dropped")
	assert.Equal(t, 1, logs.Len())

	l.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, l.GetLevel())
	l.Debug("kept")
	l.Log(LevelInfo, "kept")
	assert.Equal(t, 3, logs.Len())
}

func TestLoggerWith(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := Wrap(core, LevelInfo)

	ctx := ContextWithRequestID(context.Background(), "req-1")
	l.With(String("scene", "demo")).WithContext(ctx).Info("loaded")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "demo", fields["scene"])
	assert.Equal(t, "req-1", fields["request_id"])

	assert.Same(t, l, l.WithContext(context.Background()))
}

func TestParseLevel(t *testing.T) {
	for _, lvl := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal} {
		got, err := ParseLevel(lvl.String())
		require.NoError(t, err)
		assert.Equal(t, lvl, got)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestProvide(t *testing.T) {
	assert.NotNil(t, Provide())
	assert.Same(t, Provide(), Provide())
}
