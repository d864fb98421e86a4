package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ankogit/sfxgen/internal/config"
	"github.com/ankogit/sfxgen/internal/sfx"
)

type options struct {
	outputDir  string
	sampleRate int
	noFade     bool
	verbose    bool
}

// NewRootCommand builds the sfxgen command tree
func NewRootCommand(logger *logrus.Logger) *cobra.Command {
	var opts options
	var cfg *config.Config

	cmd := &cobra.Command{
		Use:   "sfxgen",
		Short: "Generate placeholder game sound effects as WAV files",
		Long: `sfxgen - synthesize sine-wave sound effects.

With no arguments, writes jump.wav (440Hz, 0.2s), collect.wav (880Hz, 0.3s)
and death.wav (220Hz, 0.5s) into the output directory as mono 16-bit PCM.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Runs for every subcommand so -v and LOG_LEVEL apply everywhere
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = loadConfig(cmd, &opts, logger)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd.Context(), cmd.OutOrStdout(), cfg, logger)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "out", "o", "", "output directory (overrides SFX_OUTPUT_DIR)")
	cmd.Flags().IntVar(&opts.sampleRate, "sample-rate", 0, "sample rate in Hz (overrides SFX_SAMPLE_RATE)")
	cmd.Flags().BoolVar(&opts.noFade, "no-fade", false, "disable the linear fade-out")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newInspectCommand(logger))
	return cmd
}

// Execute runs the root command
func Execute(ctx context.Context, logger *logrus.Logger) error {
	return NewRootCommand(logger).ExecuteContext(ctx)
}

func loadConfig(cmd *cobra.Command, opts *options, logger *logrus.Logger) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("out") {
		cfg.OutputDir = opts.outputDir
	}
	if cmd.Flags().Changed("sample-rate") {
		if opts.sampleRate <= 0 {
			return nil, fmt.Errorf("--sample-rate must be positive, got %d", opts.sampleRate)
		}
		cfg.SampleRate = opts.sampleRate
	}
	if opts.noFade {
		cfg.FadeOut = false
	}
	if opts.verbose {
		cfg.LogLevel = logrus.DebugLevel
	}

	logger.SetLevel(cfg.LogLevel)
	return cfg, nil
}

func generate(ctx context.Context, out io.Writer, cfg *config.Config, logger *logrus.Logger) error {
	logger.WithFields(logrus.Fields{
		"dir":         cfg.OutputDir,
		"sample_rate": cfg.SampleRate,
		"fade_out":    cfg.FadeOut,
	}).Info("Generating sound files")

	gen := sfx.NewGenerator(cfg.OutputDir, cfg.SampleRate, cfg.FadeOut, logger)
	paths, err := gen.Run(ctx, sfx.Catalog)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Generated sound files:")
	for _, p := range paths {
		fmt.Fprintf(out, "- %s\n", p)
	}
	return nil
}
