package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the inscribe CLI and returns an error if any command fails.
//
// Logging defaults to info level on stderr; --verbose (-v) switches to debug
// level. The logger is attached to the command context and accessible to all
// commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "inscribe",
		Short:        "Find the largest rectangle inscribed in a polygon",
		Long:         `inscribe searches for the axis-unaligned rectangle of maximum area that fits entirely inside a simple polygon, subject to optional aspect-ratio, minimum-size, and fixed-center constraints.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())

	return root.ExecuteContext(ctx)
}
