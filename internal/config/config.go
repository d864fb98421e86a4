package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ankogit/sfxgen/internal/audio"
)

// Config holds all configuration for the generator
type Config struct {
	OutputDir  string
	SampleRate int
	FadeOut    bool
	LogLevel   logrus.Level
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		OutputDir:  "assets",
		SampleRate: audio.DefaultSampleRate,
		FadeOut:    true,
		LogLevel:   logrus.InfoLevel,
	}

	if dir := os.Getenv("SFX_OUTPUT_DIR"); dir != "" {
		cfg.OutputDir = dir
	}

	if v := os.Getenv("SFX_SAMPLE_RATE"); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil || rate <= 0 {
			return nil, fmt.Errorf("SFX_SAMPLE_RATE must be a positive integer, got %q", v)
		}
		cfg.SampleRate = rate
	}

	if v := os.Getenv("SFX_FADE_OUT"); v != "" {
		fade, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("SFX_FADE_OUT must be a boolean, got %q", v)
		}
		cfg.FadeOut = fade
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}
