package cli

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/zuhlke/go-yamldoc/snapshot"
	"github.com/zuhlke/go-yamldoc/workflow"
)

func (c *CLI) readInput(path string) ([]byte, error) {
	data, err := afero.ReadFile(c.FS, path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return data, nil
}

func (c *CLI) actionCommand() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "action FILE.toml",
		Short: "Render an action metadata file (action.yml) from TOML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validateFlags(); err != nil {
				return err
			}
			data, err := c.readInput(args[0])
			if err != nil {
				return err
			}
			a, err := workflow.ParseAction(data)
			if err != nil {
				return errors.Wrapf(err, "parsing %s", args[0])
			}
			loggerFromContext(cmd.Context()).Debug("parsed action", "name", a.Name, "steps", len(a.Runs.Steps))

			text, err := a.Encode(opts.encodingOptions()...)
			if err != nil {
				return errors.Wrapf(err, "rendering %s", args[0])
			}
			return c.emit(cmd.Context(), &opts, text)
		},
	}
	opts.register(cmd)
	return cmd
}

func (c *CLI) workflowCommand() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "workflow FILE.toml",
		Short: "Render a workflow file from TOML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validateFlags(); err != nil {
				return err
			}
			data, err := c.readInput(args[0])
			if err != nil {
				return err
			}
			w, err := workflow.ParseWorkflow(data)
			if err != nil {
				return errors.Wrapf(err, "parsing %s", args[0])
			}
			loggerFromContext(cmd.Context()).Debug("parsed workflow", "name", w.Name, "jobs", len(w.Jobs))

			text, err := w.Encode(opts.encodingOptions()...)
			if err != nil {
				return errors.Wrapf(err, "rendering %s", args[0])
			}
			return c.emit(cmd.Context(), &opts, text)
		},
	}
	opts.register(cmd)
	return cmd
}

func (c *CLI) snapshotCommand() *cobra.Command {
	var (
		opts renderOptions
		name string
	)
	cmd := &cobra.Command{
		Use:   "snapshot FILE.json",
		Short: "Render a captured UI accessibility tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validateFlags(); err != nil {
				return err
			}
			data, err := c.readInput(args[0])
			if err != nil {
				return err
			}
			root, err := snapshot.Parse(data)
			if err != nil {
				return errors.Wrapf(err, "parsing %s", args[0])
			}
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}
			loggerFromContext(cmd.Context()).Debug("parsed snapshot", "name", name, "elements", snapshot.Count(root))

			text, err := snapshot.Export(name, root, opts.encodingOptions()...)
			if err != nil {
				return errors.Wrapf(err, "rendering %s", args[0])
			}
			return c.emit(cmd.Context(), &opts, text)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "snapshot name (defaults to the input file name)")
	return cmd
}
