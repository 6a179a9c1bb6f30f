package peg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnyOf(t *testing.T) {
	digit := AnyOf('0', '1')
	require.Equal(t, []Match{{Result: Token{V: '1', Pos: 0}, Pos: 1}}, collect(digit, "1"))
	require.Empty(t, collect(digit, "2"))
	require.Empty(t, collect(digit, ""))

	keywords := AnyOf("let", "in")
	require.Len(t, collect(Many(keywords), []string{"let", "in", "x"})[0].Result.(Sequence).Items, 2)
}

type boxed struct {
	V any
}

func TestSetIgnoresUncomparableElements(t *testing.T) {
	require.Empty(t, collect(AnyOf(1), []any{[]int{1}}))
	require.False(t, AnyOf(1).Contains(nil))

	// The type is comparable but the value it holds is not.
	set := AnyOf(boxed{V: 1})
	require.Empty(t, collect(set, []boxed{{V: []int{1}}}))
	require.False(t, set.Contains(boxed{V: []int{1}}))
	require.Len(t, collect(set, []boxed{{V: 1}}), 1)
	n, err := MustNew(set).Count([]boxed{{V: []int{1}}})
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestSetAlgebra(t *testing.T) {
	abc, bcd := Runes("abc"), Runes("bcd")
	tests := []struct {
		name     string
		set      *Set
		expected []any
	}{
		{"Union", abc.Union(bcd), []any{'a', 'b', 'c', 'd'}},
		{"Intersect", abc.Intersect(bcd), []any{'b', 'c'}},
		{"Difference", abc.Difference(bcd), []any{'a'}},
		{"SymmetricDifference", abc.SymmetricDifference(bcd), []any{'a', 'd'}},
		{"Duplicates", Runes("aab"), []any{'a', 'b'}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.set.Members())
		})
	}
	require.Equal(t, []any{'a', 'b', 'c'}, abc.Members(), "operands must not be modified")
}

func TestSetRejectsUncomparableMembers(t *testing.T) {
	require.PanicsWithValue(t, "peg: set members must be comparable, got []int", func() {
		AnyOf([]int{1})
	})
	require.PanicsWithValue(t, "peg: set members must be comparable, got peg.boxed", func() {
		AnyOf(boxed{V: []int{1}})
	})
	require.PanicsWithValue(t, "peg: set members must be comparable, got <nil>", func() {
		AnyOf(nil)
	})
}
