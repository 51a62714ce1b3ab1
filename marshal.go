package yamldoc

import (
	"github.com/zuhlke/go-yamldoc/ast"
	"github.com/zuhlke/go-yamldoc/internal/marshaler"
)

// Marshaler is the interface implemented by types that build their own
// document node.
type Marshaler interface {
	MarshalDocument() (ast.Node, error)
}

// FromValue converts a Go value into a node.
//
// Strings, booleans and numbers become scalars; slices and arrays become
// sequences; maps with string keys become maps with their keys sorted;
// structs become maps in field declaration order. Struct fields honour
// `yaml:"name,omitempty"` and `yaml:"-"` tags, and a `comment:"..."` tag
// attaches a comment to the field's entry. Nil pointers, interfaces, slices
// and maps become the scalar "null". Types implementing Marshaler supply
// their own node.
//
// Errors are of type *MarshalerError.
func FromValue(v any) (ast.Node, error) {
	return marshaler.Marshal(v)
}

// Val returns a Value holding the node FromValue builds for v. Conversion
// errors are reported when the enclosing scope is built.
func Val(v any) Value {
	return goValue{v: v}
}

type goValue struct {
	v any
}

func (g goValue) build(path string) (ast.Node, error) {
	n, err := FromValue(g.v)
	if err != nil {
		return nil, err
	}
	return n, nil
}
