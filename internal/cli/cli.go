// Package cli implements the netgen command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/netgen/pkg/buildinfo"
	"github.com/matzehuels/netgen/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "netgen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives user-facing output (summaries, documents sent to stdout).
	Out io.Writer
}

// New creates a new CLI instance with a default logger. Logs go to w,
// user-facing output to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command without a subcommand generates a network.
func (c *CLI) RootCommand() *cobra.Command {
	opts := &generateFlags{}

	root := &cobra.Command{
		Use:   appName,
		Short: "netgen generates random telephone network documents",
		Long: `netgen builds a random telephone network from a catalog of stations and
writes it as an XML document (network.xml) validated by Network.dtd.

Every station gets between 1 and 5 clients with random names and 8-digit
phone numbers. Stations are joined by ((N-1)*(N-2))/2 + 1 distinct links.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	opts.register(root)

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.dtdCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
