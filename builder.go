package yamldoc

import (
	"fmt"

	"github.com/zuhlke/go-yamldoc/ast"
)

// Value is the right-hand side of a statement: a scalar (Text), a nested
// scope (Block), an existing node (Raw) or a sequence built per element
// (Each). The set of implementations is closed.
type Value interface {
	build(path string) (ast.Node, error)
}

// Text is a scalar value.
type Text string

func (t Text) build(string) (ast.Node, error) {
	return ast.NewScalar(string(t)), nil
}

// Block is a nested scope. It produces a map or a sequence depending on the
// statements fn adds.
type Block func(*Scope)

func (b Block) build(path string) (ast.Node, error) {
	if b == nil {
		return nil, malformed(path, "nil block")
	}
	s := newScope(path)
	b(s)
	return s.close()
}

type rawValue struct {
	node ast.Node
}

// Raw returns a Value holding a copy of n.
func Raw(n ast.Node) Value {
	return rawValue{node: n}
}

func (r rawValue) build(path string) (ast.Node, error) {
	n := ast.Clone(r.node)
	if n == nil {
		return nil, malformed(path, "nil node")
	}
	return n, nil
}

type eachValue struct {
	n  int
	fn func(s *Scope, i int)
}

// Each returns a sequence Value with one item per element of items. Every
// item is built by fn in its own nested scope, so binding statements made by
// fn produce one map per element.
func Each[T any](items []T, fn func(s *Scope, item T)) Value {
	e := eachValue{n: len(items)}
	if fn != nil {
		e.fn = func(s *Scope, i int) { fn(s, items[i]) }
	}
	return e
}

func (e eachValue) build(path string) (ast.Node, error) {
	if e.fn == nil {
		return nil, malformed(path, "nil element function")
	}
	if e.n == 0 {
		return nil, malformed(path, "empty scope")
	}
	seq := &ast.Sequence{Items: make([]*ast.Item, 0, e.n)}
	for i := 0; i < e.n; i++ {
		s := newScope(fmt.Sprintf("%s[%d]", path, i))
		e.fn(s, i)
		n, err := s.close()
		if err != nil {
			return nil, err
		}
		seq.Items = append(seq.Items, ast.Elem(n))
	}
	return seq, nil
}

// Begin builds a document whose root is the map produced by fn. It returns
// a *MalformedDocumentError if fn adds no statements, mixes key bindings with
// bare items, adds bare items only, or attaches a comment with no statement
// to attach it to.
func Begin(fn func(*Scope)) (*Document, error) {
	s := newScope("")
	if fn != nil {
		fn(s)
	}
	root, err := s.close()
	if err != nil {
		return nil, err
	}
	if root.Kind() != ast.MapKind {
		return nil, malformed("", "root scope must contain key bindings, got a %s", root.Kind())
	}
	return &Document{root: root}, nil
}

// MustBegin is like Begin but panics if the document is malformed.
func MustBegin(fn func(*Scope)) *Document {
	doc, err := Begin(fn)
	if err != nil {
		panic(err)
	}
	return doc
}

// Build runs fn in a standalone scope and returns the resulting node. Unlike
// Begin it accepts scopes that produce a sequence.
func Build(fn func(*Scope)) (ast.Node, error) {
	return Block(fn).build("")
}
