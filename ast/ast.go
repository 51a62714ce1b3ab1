package ast

import (
	"bytes"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Node.
type Kind int

const (
	ScalarKind Kind = iota
	MapKind
	SequenceKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case MapKind:
		return "map"
	case SequenceKind:
		return "sequence"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Node is the base interface for all document nodes. The set of
// implementations is closed: *Scalar, *Map and *Sequence.
type Node interface {
	// Kind returns the variant of the node.
	Kind() Kind
	// String returns a compact flow-style representation of the node.
	String() string
	node()
}

// Comment is a single comment attached to a map entry or sequence item.
type Comment struct {
	Value string
}

// Scalar is a leaf value. Its text may contain newlines; the encoder
// decides how to render it.
type Scalar struct {
	Value string
}

func (s *Scalar) node()      {}
func (s *Scalar) Kind() Kind { return ScalarKind }
func (s *Scalar) String() string {
	if s.Value == "" || strings.ContainsAny(s.Value, "\n,:[]{}\"") {
		return strconv.Quote(s.Value)
	}
	return s.Value
}

// Entry is a key-value pair in a Map.
type Entry struct {
	Key     string
	Value   Node
	Comment *Comment
}

// WithComment attaches c to the entry and returns it.
func (e *Entry) WithComment(c string) *Entry {
	e.Comment = &Comment{Value: c}
	return e
}

func (e *Entry) String() string {
	return (&Scalar{Value: e.Key}).String() + ": " + e.Value.String()
}

// Map is an insertion-ordered list of entries. Keys are not deduplicated.
type Map struct {
	Entries []*Entry
}

func (m *Map) node()      {}
func (m *Map) Kind() Kind { return MapKind }
func (m *Map) String() string {
	var out bytes.Buffer
	pairs := []string{}
	for _, e := range m.Entries {
		pairs = append(pairs, e.String())
	}
	out.WriteString("{")
	out.WriteString(strings.Join(pairs, ", "))
	out.WriteString("}")
	return out.String()
}

// Item is an element of a Sequence.
type Item struct {
	Value   Node
	Comment *Comment
}

// WithComment attaches c to the item and returns it.
func (i *Item) WithComment(c string) *Item {
	i.Comment = &Comment{Value: c}
	return i
}

// Sequence is an ordered list of items.
type Sequence struct {
	Items []*Item
}

func (s *Sequence) node()      {}
func (s *Sequence) Kind() Kind { return SequenceKind }
func (s *Sequence) String() string {
	var out bytes.Buffer
	elements := []string{}
	for _, it := range s.Items {
		elements = append(elements, it.Value.String())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString("]")
	return out.String()
}

// NewScalar returns a scalar holding v.
func NewScalar(v string) *Scalar {
	return &Scalar{Value: v}
}

// Pair returns a map entry binding key to v.
func Pair(key string, v Node) *Entry {
	return &Entry{Key: key, Value: v}
}

// Elem returns a sequence item holding v.
func Elem(v Node) *Item {
	return &Item{Value: v}
}

// NewMap returns a map with the given entries in order.
func NewMap(entries ...*Entry) *Map {
	return &Map{Entries: entries}
}

// NewSequence returns a sequence with the given items in order.
func NewSequence(items ...*Item) *Sequence {
	return &Sequence{Items: items}
}

// Clone returns a deep copy of n. It returns nil for a nil node, including
// a typed nil pointer.
func Clone(n Node) Node {
	switch n := n.(type) {
	case *Scalar:
		if n == nil {
			return nil
		}
		return &Scalar{Value: n.Value}
	case *Map:
		if n == nil {
			return nil
		}
		entries := make([]*Entry, len(n.Entries))
		for i, e := range n.Entries {
			entries[i] = &Entry{Key: e.Key, Value: Clone(e.Value), Comment: cloneComment(e.Comment)}
		}
		return &Map{Entries: entries}
	case *Sequence:
		if n == nil {
			return nil
		}
		items := make([]*Item, len(n.Items))
		for i, it := range n.Items {
			items[i] = &Item{Value: Clone(it.Value), Comment: cloneComment(it.Comment)}
		}
		return &Sequence{Items: items}
	}
	return nil
}

func cloneComment(c *Comment) *Comment {
	if c == nil {
		return nil
	}
	return &Comment{Value: c.Value}
}
