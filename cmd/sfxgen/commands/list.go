package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ankogit/sfxgen/internal/sfx"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the sound effects that are generated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, s := range sfx.Catalog {
				fmt.Fprintf(out, "%-8s %6.0f Hz  %.1fs\n", s.Name, s.Frequency, s.Duration)
			}
			return nil
		},
	}
}
