package yamldoc

import (
	"fmt"

	"github.com/zuhlke/go-yamldoc/ast"
)

type statementKind int

const (
	bindStatement statementKind = iota + 1
	itemStatement
)

func (k statementKind) String() string {
	if k == bindStatement {
		return "key binding"
	}
	return "bare item"
}

// Scope collects the statements of one builder block. All statements of a
// scope must be of the same kind: key bindings make the scope a map, bare
// items make it a sequence.
//
// Binding statements inside a loop all land in the same map. A loop such as
//
//	for _, step := range steps {
//		s.Key("name").Is(step.Name)
//	}
//
// does not produce one map per step; it repeats the key "name" in a single
// map and is rejected as a duplicate key. To build a sequence of maps, open
// one nested block per element, either with ItemBlock inside the loop or
// with Each.
type Scope struct {
	path   string
	stmts  []*Statement
	err    error
	closed bool
}

func newScope(path string) *Scope {
	return &Scope{path: path}
}

// Key starts a binding statement for key k.
func (s *Scope) Key(k string) Key {
	return Key{scope: s, name: k}
}

// Item adds a bare scalar statement.
func (s *Scope) Item(text string) *Statement {
	return s.add(&Statement{kind: itemStatement, value: Text(text)})
}

// ItemValue adds a bare statement holding v.
func (s *Scope) ItemValue(v Value) *Statement {
	return s.add(&Statement{kind: itemStatement, value: v})
}

// ItemBlock adds a bare statement whose value is built by fn in a nested scope.
func (s *Scope) ItemBlock(fn func(*Scope)) *Statement {
	return s.add(&Statement{kind: itemStatement, value: Block(fn)})
}

// Comment attaches text to the most recently added statement.
func (s *Scope) Comment(text string) {
	s.checkOpen()
	if len(s.stmts) == 0 {
		s.fail(malformed(s.path, "comment %q has no preceding statement", text))
		return
	}
	s.stmts[len(s.stmts)-1].Comment(text)
}

func (s *Scope) add(st *Statement) *Statement {
	s.checkOpen()
	st.scope = s
	if st.value == nil {
		s.fail(malformed(s.path, "statement %d has a nil value", len(s.stmts)))
	} else {
		n, err := st.value.build(s.childPath(st, len(s.stmts)))
		if err != nil {
			s.fail(err)
		}
		st.node = n
	}
	s.stmts = append(s.stmts, st)
	return st
}

func (s *Scope) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// checkOpen panics when a scope is used after its block returned. The
// document has already been built at that point, so the statement would
// otherwise be lost silently.
func (s *Scope) checkOpen() {
	if s.closed {
		panic(malformed(s.path, "scope used after its block returned"))
	}
}

func (s *Scope) childPath(st *Statement, index int) string {
	if st.kind == itemStatement {
		return fmt.Sprintf("%s[%d]", s.path, index)
	}
	if s.path == "" {
		return st.key
	}
	return s.path + "." + st.key
}

// close resolves the collected statements into a node. Nested values were
// already built when their statements were added.
func (s *Scope) close() (ast.Node, error) {
	s.closed = true
	if s.err != nil {
		return nil, s.err
	}
	if len(s.stmts) == 0 {
		return nil, malformed(s.path, "empty scope")
	}

	kind := s.stmts[0].kind
	for i, st := range s.stmts[1:] {
		if st.kind != kind {
			return nil, malformed(s.path, "statement %d is a %s but the scope started with a %s", i+1, st.kind, kind)
		}
	}

	if kind == itemStatement {
		seq := &ast.Sequence{Items: make([]*ast.Item, 0, len(s.stmts))}
		for _, st := range s.stmts {
			seq.Items = append(seq.Items, &ast.Item{Value: st.node, Comment: st.comment})
		}
		return seq, nil
	}

	seen := make(map[string]bool, len(s.stmts))
	m := &ast.Map{Entries: make([]*ast.Entry, 0, len(s.stmts))}
	for _, st := range s.stmts {
		if seen[st.key] {
			return nil, malformed(s.path, "duplicate key %q; use Each or one ItemBlock per element to build a sequence of maps", st.key)
		}
		seen[st.key] = true
		m.Entries = append(m.Entries, &ast.Entry{Key: st.key, Value: st.node, Comment: st.comment})
	}
	return m, nil
}

// Key is the left-hand side of a binding statement.
type Key struct {
	scope *Scope
	name  string
}

// Is binds the key to a scalar.
func (k Key) Is(text string) *Statement {
	return k.IsValue(Text(text))
}

// IsValue binds the key to v.
func (k Key) IsValue(v Value) *Statement {
	return k.scope.add(&Statement{kind: bindStatement, key: k.name, value: v})
}

// IsBlock binds the key to the node built by fn in a nested scope.
func (k Key) IsBlock(fn func(*Scope)) *Statement {
	return k.IsValue(Block(fn))
}

// Statement is a single binding or bare item in a scope.
type Statement struct {
	scope   *Scope
	kind    statementKind
	key     string
	value   Value
	node    ast.Node
	comment *ast.Comment
}

// Comment attaches a comment to the statement. A statement holds at most one
// comment.
func (st *Statement) Comment(text string) *Statement {
	st.scope.checkOpen()
	if st.comment != nil {
		st.scope.fail(malformed(st.scope.path, "statement already has comment %q", st.comment.Value))
		return st
	}
	st.comment = &ast.Comment{Value: text}
	return st
}
