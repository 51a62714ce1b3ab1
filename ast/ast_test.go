package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	node := NewMap(
		Pair("my-key", NewScalar("my-value")),
		Pair("list", NewSequence(Elem(NewScalar("a")), Elem(NewScalar("")))),
		Pair("nested", NewMap(Pair("x", NewScalar("1: 2")))),
	)

	expected := `{my-key: my-value, list: [a, ""], nested: {x: "1: 2"}}`
	require.Equal(t, expected, node.String())
}

func TestKind(t *testing.T) {
	require.Equal(t, ScalarKind, NewScalar("x").Kind())
	require.Equal(t, MapKind, NewMap().Kind())
	require.Equal(t, SequenceKind, NewSequence().Kind())
	require.Equal(t, "sequence", SequenceKind.String())
	require.Equal(t, "Kind(7)", Kind(7).String())
}

func TestClone(t *testing.T) {
	orig := NewMap(
		Pair("a", NewScalar("1")).WithComment("first"),
		Pair("b", NewSequence(Elem(NewMap(Pair("c", NewScalar("2")))).WithComment("item"))),
	)

	clone := Clone(orig)
	require.Empty(t, cmp.Diff(orig, clone))

	cm := clone.(*Map)
	cm.Entries[0].Comment.Value = "changed"
	cm.Entries[1].Value.(*Sequence).Items[0].Value.(*Map).Entries[0].Key = "z"

	require.Equal(t, "first", orig.Entries[0].Comment.Value)
	require.Equal(t, "c", orig.Entries[1].Value.(*Sequence).Items[0].Value.(*Map).Entries[0].Key)

	require.Nil(t, Clone(nil))
	require.Nil(t, Clone((*Map)(nil)))
	require.Nil(t, Clone((*Sequence)(nil)))
	require.Nil(t, Clone((*Scalar)(nil)))
}
