package sfx

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ankogit/sfxgen/internal/audio"
)

// Generator renders sounds into an output directory
type Generator struct {
	outputDir  string
	sampleRate int
	fadeOut    bool
	logger     *logrus.Logger
}

// NewGenerator creates a new generator
func NewGenerator(outputDir string, sampleRate int, fadeOut bool, logger *logrus.Logger) *Generator {
	return &Generator{
		outputDir:  outputDir,
		sampleRate: sampleRate,
		fadeOut:    fadeOut,
		logger:     logger,
	}
}

// Run generates each sound in order and returns the written paths.
// It stops at the first failure; files already written are kept.
func (g *Generator) Run(ctx context.Context, sounds []Sound) ([]string, error) {
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create output directory: %v", audio.ErrIO, err)
	}

	paths := make([]string, 0, len(sounds))
	for _, s := range sounds {
		select {
		case <-ctx.Done():
			return paths, ctx.Err()
		default:
		}

		path, err := g.Generate(s)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Generate synthesizes a single sound and writes it to the output directory
func (g *Generator) Generate(s Sound) (string, error) {
	req := s.Request(g.sampleRate, g.fadeOut)
	samples, err := audio.Synthesize(req)
	if err != nil {
		return "", fmt.Errorf("failed to synthesize %s: %w", s.Name, err)
	}

	path := s.Path(g.outputDir)
	if err := audio.WriteWav(path, samples, req.SampleRate); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", s.Name, err)
	}

	g.logger.WithFields(logrus.Fields{
		"sound":     s.Name,
		"frequency": s.Frequency,
		"duration":  s.Duration,
		"frames":    len(samples),
		"path":      path,
	}).Debug("Generated sound")
	return path, nil
}
