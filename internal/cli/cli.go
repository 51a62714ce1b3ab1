// Package cli implements the yamldoc command-line interface.
//
// Each command reads a definition file, renders it as a document and either
// prints it, writes it to a file when the content changed (-o), or verifies
// that the file on disk is current (--check).
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// FS is where input files are read from and output files written to.
	FS afero.Fs
	// Out receives rendered documents and diffs.
	Out io.Writer
}

// New creates a CLI on the OS file system that prints to out and logs to
// logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		FS:     afero.NewOsFs(),
		Out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "yamldoc",
		Short:         "Render GitHub Actions files and UI snapshots as YAML",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.actionCommand())
	root.AddCommand(c.workflowCommand())
	root.AddCommand(c.snapshotCommand())

	return root
}
