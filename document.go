package yamldoc

import (
	"errors"
	"slices"

	"github.com/zuhlke/go-yamldoc/ast"
)

// Document is the unit the encoder accepts: a root node, conventionally a
// map, plus optional head comments. A Document owns its tree and is not
// modified after construction.
type Document struct {
	root         ast.Node
	headComments []string
}

// NewDocument wraps a copy of root in a Document.
func NewDocument(root ast.Node) (*Document, error) {
	if root == nil {
		return nil, errors.New("yamldoc: nil document root")
	}
	return &Document{root: ast.Clone(root)}, nil
}

// Root returns the root node of the document. Callers must not modify it.
func (d *Document) Root() ast.Node {
	return d.root
}

// HeadComments returns the comments written above the document content.
func (d *Document) HeadComments() []string {
	return slices.Clone(d.headComments)
}

// WithHeadComment returns a copy of d with comment appended to its head
// comments. The receiver is left unchanged.
func (d *Document) WithHeadComment(comment string) *Document {
	return &Document{
		root:         ast.Clone(d.root),
		headComments: append(slices.Clone(d.headComments), comment),
	}
}

// String returns the document encoded with the default options.
func (d *Document) String() string {
	return Encode(d)
}
