package yamldoc

import (
	"io"
)

// Encoder writes documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the encoding of doc to the stream. The only errors it
// returns are those of the underlying writer.
func (e *Encoder) Encode(doc *Document) error {
	_, err := io.WriteString(e.w, Encode(doc, e.opts...))
	return err
}

// Encode returns the text encoding of doc.
//
// Map entries are written as "key: value" lines in insertion order, nested
// maps one indentation level deeper and sequences at the level of their key
// with a "- " marker. Scalars containing a newline use the "|" literal block
// style. A blank line separates an entry from its neighbours when it holds a
// map or sequence or carries a comment, and the document always ends with a
// blank line.
//
// Encode is deterministic and never fails; a nil document encodes to the
// empty string.
func Encode(doc *Document, opts ...Option) string {
	if doc == nil {
		return ""
	}
	o := newEncodingOptions(opts)
	return newFormatter(&o).format(doc)
}

// Marshal converts v with FromValue and encodes the result as a document.
func Marshal(v any, opts ...Option) ([]byte, error) {
	root, err := FromValue(v)
	if err != nil {
		return nil, err
	}
	doc := &Document{root: root}
	return []byte(Encode(doc, opts...)), nil
}
