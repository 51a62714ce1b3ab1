package marshaler_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zuhlke/go-yamldoc/ast"
	"github.com/zuhlke/go-yamldoc/internal/marshaler"
)

func scalar(t *testing.T, n ast.Node) string {
	t.Helper()
	s, ok := n.(*ast.Scalar)
	require.True(t, ok, "expected a scalar, got %s", n.Kind())
	return s.Value
}

func TestMarshal_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"Nil", nil, "null"},
		{"String", "hello", "hello"},
		{"Empty string", "", ""},
		{"Integer", 123, "123"},
		{"Negative", int8(-7), "-7"},
		{"Unsigned", uint64(math.MaxUint64), "18446744073709551615"},
		{"Float", 3.14, "3.14"},
		{"Float32", float32(0.5), "0.5"},
		{"Boolean", true, "true"},
		{"Nil pointer", (*int)(nil), "null"},
		{"Pointer", func() *string { s := "x"; return &s }(), "x"},
		{"Nil func", (func())(nil), "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := marshaler.Marshal(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, scalar(t, node))
		})
	}
}

func TestMarshal_Collections(t *testing.T) {
	t.Run("Slice", func(t *testing.T) {
		node, err := marshaler.Marshal([]int{1, 2})
		require.NoError(t, err)
		require.Equal(t, "[1, 2]", node.String())
	})

	t.Run("Array", func(t *testing.T) {
		node, err := marshaler.Marshal([2]string{"a", "b"})
		require.NoError(t, err)
		require.Equal(t, "[a, b]", node.String())
	})

	t.Run("Empty slice", func(t *testing.T) {
		node, err := marshaler.Marshal([]int{})
		require.NoError(t, err)
		require.Equal(t, ast.SequenceKind, node.Kind())
		require.Empty(t, node.(*ast.Sequence).Items)
	})

	t.Run("Map keys are sorted", func(t *testing.T) {
		node, err := marshaler.Marshal(map[string]int{"b": 2, "c": 3, "a": 1})
		require.NoError(t, err)
		require.Equal(t, "{a: 1, b: 2, c: 3}", node.String())
	})

	t.Run("Non-string map key", func(t *testing.T) {
		_, err := marshaler.Marshal(map[int]string{1: "a"})
		var merr *marshaler.Error
		require.True(t, errors.As(err, &merr))
		require.ErrorContains(t, err, "map key type must be a string")
	})
}

func TestMarshal_Struct(t *testing.T) {
	type inner struct {
		Width int `yaml:"width"`
	}
	type element struct {
		Type    string `yaml:"type" comment:"Accessibility role"`
		Label   string `yaml:"label,omitempty"`
		Hidden  bool   `yaml:"-"`
		private string
		Frame   *inner `yaml:"frame,omitempty"`
		Count   int
	}

	node, err := marshaler.Marshal(element{Type: "button", Frame: &inner{Width: 10}, private: "x"})
	require.NoError(t, err)

	m, ok := node.(*ast.Map)
	require.True(t, ok)
	require.Equal(t, "{type: button, frame: {width: 10}, Count: 0}", m.String())
	require.NotNil(t, m.Entries[0].Comment)
	require.Equal(t, "Accessibility role", m.Entries[0].Comment.Value)
	require.Nil(t, m.Entries[1].Comment)
}

type custom struct{ v string }

func (c custom) MarshalDocument() (ast.Node, error) {
	if c.v == "" {
		return nil, errors.New("no value")
	}
	return ast.NewSequence(ast.Elem(ast.NewScalar(c.v))), nil
}

func TestMarshal_Custom(t *testing.T) {
	node, err := marshaler.Marshal(map[string]custom{"k": {v: "x"}})
	require.NoError(t, err)
	require.Equal(t, "{k: [x]}", node.String())

	_, err = marshaler.Marshal(custom{})
	require.ErrorContains(t, err, "no value")
}

func TestMarshal_Cycle(t *testing.T) {
	type node struct {
		Next *node `yaml:"next"`
	}
	n := &node{}
	n.Next = n

	_, err := marshaler.Marshal(n)
	require.ErrorContains(t, err, "encountered a cycle")

	// Shared, acyclic references are fine.
	leaf := &node{}
	_, err = marshaler.Marshal([]*node{leaf, leaf})
	require.NoError(t, err)
}
