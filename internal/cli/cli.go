// Package cli implements the archdiagram command-line interface.
//
// Running archdiagram with no subcommand renders the architecture diagram,
// the same as "archdiagram render". Logs go to stderr; stdout carries only
// the confirmation line for each saved file, or the requested listing.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/archdiagram/pkg/buildinfo"
	"github.com/matzehuels/archdiagram/pkg/observability"
)

// appName is the binary name used in help text and completions.
const appName = "archdiagram"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose bool
}

// New creates a CLI that logs to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with all subcommands registered.
// The root command itself renders the architecture diagram.
func (c *CLI) RootCommand() *cobra.Command {
	render := c.renderCommand()

	root := &cobra.Command{
		Use:   appName,
		Short: "Render the Finance system architecture diagram",
		Long: `archdiagram draws the Finance system architecture (frontend, backend,
AI parser, storage, external AI services and the core finance modules) onto a
1600x1200 canvas and saves it as PNG, SVG or a JSON display list.`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			observability.SetRenderHooks(&logHooks{logger: c.Logger})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: render.RunE,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	// the bare root command accepts render's flags
	root.Flags().AddFlagSet(render.Flags())

	root.AddCommand(render)
	root.AddCommand(c.flowchartCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.completionCommand())

	return root
}
