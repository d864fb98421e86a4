package commands

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ankogit/sfxgen/internal/audio"
)

func newInspectCommand(logger *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.wav>...",
		Short: "Print the header of WAV files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, path := range args {
				h, err := audio.ReadHeader(path)
				if err != nil {
					return fmt.Errorf("failed to inspect %s: %w", path, err)
				}
				logger.WithField("header", fmt.Sprintf("%+v", h)).Debug("Read WAV header")

				var length time.Duration
				if h.SampleRate > 0 {
					length = time.Duration(h.Frames()) * time.Second / time.Duration(h.SampleRate)
				}
				fmt.Fprintf(out, "%s: format=%d channels=%d rate=%dHz bits=%d data=%d bytes frames=%d length=%s\n",
					path, h.AudioFormat, h.NumChannels, h.SampleRate, h.BitsPerSample,
					h.DataSize, h.Frames(), length)
			}
			return nil
		},
	}
}
