package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hashvatar/pkg/buildinfo"
)

// Execute runs the hashvatar CLI with a background context.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the hashvatar CLI and returns an error if any
// command fails. The root command wires up the render, serve, and
// preview subcommands, and configures logging from the --verbose flag;
// the logger is attached to the context and accessible to all commands
// via loggerFromContext.
func ExecuteContext(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "hashvatar",
		Short:        "hashvatar renders deterministic avatars from strings",
		Long:         `hashvatar derives a visually distinct, fully deterministic avatar image from any input string (wallet address, username, identifier). The same input always renders the same image.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newPreviewCmd())

	return root.ExecuteContext(ctx)
}
