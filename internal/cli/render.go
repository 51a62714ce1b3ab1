package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/zuhlke/go-yamldoc"
)

// ErrStale is returned by --check when the output file does not match the
// rendered document.
var ErrStale = errors.New("output is out of date")

// renderOptions are the flags shared by all render commands.
type renderOptions struct {
	output       string
	check        bool
	validate     bool
	indent       int
	commentWidth int
	color        string
}

func (o *renderOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.output, "output", "o", "", "write to `file` instead of stdout, only if the content changed")
	f.BoolVar(&o.check, "check", false, "fail with a diff if the output file is not up to date")
	f.BoolVar(&o.validate, "validate", false, "parse the rendered document as YAML before emitting it")
	f.IntVar(&o.indent, "indent", 2, "spaces per indentation level")
	f.IntVar(&o.commentWidth, "comment-width", 0, "wrap comments at this column (0 disables wrapping)")
	f.StringVar(&o.color, "color", "auto", "colorize diffs: auto, always or never")
}

func (o *renderOptions) encodingOptions() []yamldoc.Option {
	return []yamldoc.Option{yamldoc.Indent(o.indent), yamldoc.WrapComments(o.commentWidth)}
}

func (o *renderOptions) validateFlags() error {
	if o.check && o.output == "" {
		return errors.New("--check requires --output")
	}
	switch o.color {
	case "auto", "always", "never":
		return nil
	}
	return errors.Errorf("invalid --color value %q", o.color)
}

// colorize decides whether diffs written to w are colored.
func (o *renderOptions) colorize(w io.Writer) bool {
	switch o.color {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// emit validates text if requested and sends it to its destination.
func (c *CLI) emit(ctx context.Context, o *renderOptions, text string) error {
	logger := loggerFromContext(ctx)

	if o.validate {
		var v any
		if err := yaml.Unmarshal([]byte(text), &v); err != nil {
			return errors.Wrap(err, "rendered document is not valid YAML")
		}
		logger.Debug("validated rendered document")
	}

	if o.output == "" {
		_, err := c.Out.Write([]byte(text))
		return err
	}

	if o.check {
		current, err := afero.ReadFile(c.FS, o.output)
		if err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "reading %s", o.output)
		}
		if string(current) == text {
			logger.Info("up to date", "file", o.output)
			return nil
		}
		if _, err := c.Out.Write([]byte(lineDiff(string(current), text, o.colorize(c.Out)))); err != nil {
			return err
		}
		return errors.Wrap(ErrStale, o.output)
	}

	written, err := writeIfChanged(c.FS, o.output, []byte(text))
	if err != nil {
		return errors.Wrapf(err, "writing %s", o.output)
	}
	if !written {
		logger.Debug("unchanged", "file", o.output)
		return nil
	}
	logger.Info("wrote", "file", o.output, "size", humanize.Bytes(uint64(len(text))))
	return nil
}

// writeIfChanged writes data to filename unless the file already holds
// exactly data. It reports whether the file was written.
func writeIfChanged(fs afero.Fs, filename string, data []byte) (bool, error) {
	if _, err := fs.Stat(filename); err == nil {
		current, err := afero.ReadFile(fs, filename)
		if err != nil {
			return false, err
		}
		if bytes.Equal(current, data) {
			return false, nil
		}
	}
	if err := afero.WriteFile(fs, filename, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// lineDiff returns a line-oriented diff from one text to another. Removed
// lines are prefixed with "-", added lines with "+" and unchanged lines with
// a space.
func lineDiff(from, to string, colorize bool) string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)
	if colorize {
		removed.EnableColor()
		added.EnableColor()
	} else {
		removed.DisableColor()
		added.DisableColor()
	}

	var out strings.Builder
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			switch d.Type {
			case diffpatch.DiffDelete:
				out.WriteString(removed.Sprint("-"+ln) + "\n")
			case diffpatch.DiffInsert:
				out.WriteString(added.Sprint("+"+ln) + "\n")
			case diffpatch.DiffEqual:
				out.WriteString(" " + ln + "\n")
			}
		}
	}
	return out.String()
}
