package config

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.CameraDevice)
	assert.Equal(t, 33*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, "data/haarcascade_frontalface_default.xml", cfg.CascadePath)
	assert.Equal(t, "data/emotion_fer2013.onnx", cfg.EmotionModelPath)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CAMERA_DEVICE", "2")
	t.Setenv("TICK_INTERVAL", "50ms")
	t.Setenv("CASCADE_PATH", "/opt/models/cascade.xml")
	t.Setenv("ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.CameraDevice)
	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, "/opt/models/cascade.xml", cfg.CascadePath)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("CAMERA_DEVICE", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	ctx := context.Background()

	dev := NewLogger("development")
	require.NotNil(t, dev)
	assert.True(t, dev.Enabled(ctx, slog.LevelDebug))

	prod := NewLogger("production")
	require.NotNil(t, prod)
	assert.False(t, prod.Enabled(ctx, slog.LevelDebug))
	assert.True(t, prod.Enabled(ctx, slog.LevelInfo))
}
