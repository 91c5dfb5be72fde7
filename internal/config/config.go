package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Capture
	CameraDevice int           `envconfig:"CAMERA_DEVICE" default:"0"`
	TickInterval time.Duration `envconfig:"TICK_INTERVAL" default:"33ms"`

	// Models
	CascadePath      string `envconfig:"CASCADE_PATH" default:"data/haarcascade_frontalface_default.xml"`
	EmotionModelPath string `envconfig:"EMOTION_MODEL" default:"data/emotion_fer2013.onnx"`

	Environment string `envconfig:"ENV" default:"development"`
}

func Load() (*Config, error) {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
