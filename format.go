package yamldoc

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/zuhlke/go-yamldoc/ast"
	"github.com/zuhlke/go-yamldoc/internal/token"
)

const (
	seqMarker   = "- "
	literalMark = "|"
)

// formatter renders a document as a list of output lines. An empty string
// in the list is a blank separator line.
type formatter struct {
	indent string
	marker string // indentation under a sequence marker
	opts   *EncodingOptions
}

// newFormatter returns a formatter for the given options.
func newFormatter(opts *EncodingOptions) *formatter {
	spaces := opts.Indent
	if spaces < 1 {
		spaces = defaultIndent
	}
	return &formatter{
		indent: strings.Repeat(" ", spaces),
		marker: strings.Repeat(" ", len(seqMarker)),
		opts:   opts,
	}
}

// format returns the encoded text of doc, terminated by a blank line.
func (f *formatter) format(doc *Document) string {
	var lines []string
	for _, c := range doc.headComments {
		lines = append(lines, f.commentLines(&c, "")...)
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}
	lines = append(lines, f.rootLines(doc.root)...)

	var out strings.Builder
	for _, ln := range lines {
		out.WriteString(ln)
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	return out.String()
}

func (f *formatter) rootLines(n ast.Node) []string {
	switch n := n.(type) {
	case *ast.Map:
		if len(n.Entries) == 0 {
			return []string{"{}"}
		}
		return f.mapLines(n, "")
	case *ast.Sequence:
		if len(n.Items) == 0 {
			return []string{"[]"}
		}
		return f.sequenceLines(n, "")
	case *ast.Scalar:
		if token.StyleOf(n.Value) == token.LITERAL {
			return append([]string{literalMark}, f.literalLines(n.Value, f.indent)...)
		}
		return []string{token.Render(n.Value)}
	}
	return nil
}

// separated reports whether an entry holding v with comment c is set off
// from its neighbours by blank lines.
func separated(v ast.Node, c *ast.Comment) bool {
	return c != nil || (v != nil && v.Kind() != ast.ScalarKind)
}

func (f *formatter) mapLines(m *ast.Map, indent string) []string {
	var lines []string
	for i, e := range m.Entries {
		if i > 0 {
			prev := m.Entries[i-1]
			if separated(e.Value, e.Comment) || separated(prev.Value, prev.Comment) {
				lines = append(lines, "")
			}
		}
		lines = append(lines, f.commentLines(commentText(e.Comment), indent)...)
		lines = append(lines, f.entryLines(e, indent)...)
	}
	return lines
}

func (f *formatter) entryLines(e *ast.Entry, indent string) []string {
	head := indent + token.Render(e.Key) + ":"
	switch v := e.Value.(type) {
	case *ast.Scalar:
		if token.StyleOf(v.Value) == token.LITERAL {
			return append([]string{head + " " + literalMark}, f.literalLines(v.Value, indent+f.indent)...)
		}
		return []string{head + " " + token.Render(v.Value)}
	case *ast.Map:
		if len(v.Entries) == 0 {
			return []string{head + " {}"}
		}
		return append([]string{head}, f.mapLines(v, indent+f.indent)...)
	case *ast.Sequence:
		if len(v.Items) == 0 {
			return []string{head + " []"}
		}
		// Sequences under a key start at the key's own indentation.
		return append([]string{head}, f.sequenceLines(v, indent)...)
	}
	return []string{head}
}

func (f *formatter) sequenceLines(s *ast.Sequence, indent string) []string {
	var lines []string
	for i, it := range s.Items {
		if i > 0 {
			prev := s.Items[i-1]
			if separated(it.Value, it.Comment) || separated(prev.Value, prev.Comment) {
				lines = append(lines, "")
			}
		}
		lines = append(lines, f.commentLines(commentText(it.Comment), indent)...)
		lines = append(lines, f.itemLines(it, indent)...)
	}
	return lines
}

func (f *formatter) itemLines(it *ast.Item, indent string) []string {
	head := indent + seqMarker
	switch v := it.Value.(type) {
	case *ast.Scalar:
		if token.StyleOf(v.Value) == token.LITERAL {
			return append([]string{head + literalMark}, f.literalLines(v.Value, indent+f.indent)...)
		}
		return []string{head + token.Render(v.Value)}
	case *ast.Map:
		if len(v.Entries) == 0 {
			return []string{head + "{}"}
		}
		return f.underMarker(f.mapLines(v, indent+f.marker), indent)
	case *ast.Sequence:
		if len(v.Items) == 0 {
			return []string{head + "[]"}
		}
		return f.underMarker(f.sequenceLines(v, indent+f.marker), indent)
	}
	return []string{strings.TrimRight(head, " ")}
}

// underMarker replaces the leading indentation of the first of lines, which
// were rendered one marker width deeper than indent, with the sequence
// marker.
func (f *formatter) underMarker(lines []string, indent string) []string {
	lines[0] = indent + seqMarker + strings.TrimPrefix(lines[0], indent+f.marker)
	return lines
}

// literalLines returns the lines of a literal block. A single trailing
// newline is part of the block's clipped chomping and is not written out.
func (f *formatter) literalLines(text, indent string) []string {
	text = strings.TrimSuffix(text, "\n")
	src := strings.Split(text, "\n")
	lines := make([]string, 0, len(src))
	for _, ln := range src {
		if ln == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, indent+ln)
	}
	return lines
}

func (f *formatter) commentLines(text *string, indent string) []string {
	if text == nil {
		return nil
	}
	var lines []string
	for _, ln := range strings.Split(f.wrap(*text, indent), "\n") {
		if ln == "" {
			lines = append(lines, indent+"#")
			continue
		}
		lines = append(lines, indent+"# "+ln)
	}
	return lines
}

func (f *formatter) wrap(text, indent string) string {
	if f.opts.CommentWidth <= 0 {
		return text
	}
	limit := f.opts.CommentWidth - len(indent) - len("# ")
	if limit < 1 {
		limit = 1
	}
	return wordwrap.WrapString(text, uint(limit))
}

func commentText(c *ast.Comment) *string {
	if c == nil {
		return nil
	}
	return &c.Value
}
