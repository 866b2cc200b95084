// Package commands implements the CLI commands for the glot catalog tool.
package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/openlocale/glot/pkg/logger"
)

// Version is the tool version, overridable at link time.
var Version = "dev"

// CLI represents the command line interface for glot.
type CLI struct {
	log     *slog.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance. A nil log disables diagnostics.
func New(log *slog.Logger) *CLI {
	if log == nil {
		log = logger.NewNope()
	}

	rootCmd := &cobra.Command{
		Use:           "glot",
		Short:         "Inspect and report on translation catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}
	rootCmd.InitDefaultVersionFlag()
	rootCmd.InitDefaultHelpFlag()

	c := &CLI{
		log:     log,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCoverageCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
