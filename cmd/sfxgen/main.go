// Command sfxgen synthesizes the placeholder game sound effects.
//
// Usage:
//
//	sfxgen [flags]             generate assets/{jump,collect,death}.wav
//	sfxgen list                show the sound catalog
//	sfxgen inspect <file>...   print WAV header fields
//
// Configuration is read from the environment (and an optional .env file):
//
//	SFX_OUTPUT_DIR   output directory (default "assets")
//	SFX_SAMPLE_RATE  sample rate in Hz (default 44100)
//	SFX_FADE_OUT     apply the linear fade-out (default true)
//	LOG_LEVEL        logrus level (default "info")
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/ankogit/sfxgen/cmd/sfxgen/commands"
)

func main() {
	// Setup logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(logrus.InfoLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx, logger); err != nil {
		logger.WithError(err).Error("sfxgen failed")
		stop()
		os.Exit(1)
	}
}
