package peg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func lengths(matches []Match) []int {
	out := []int{}
	for _, m := range matches {
		out = append(out, len(m.Result.(Sequence).Items))
	}
	return out
}

func TestManyPrefersLongestMatch(t *testing.T) {
	actual := collect(Many(Item('a')), "aaa")
	require.Equal(t, []int{3, 2, 1, 0}, lengths(actual))
	require.Equal(t, 3, actual[0].Pos)
	require.Equal(t, Sequence{Items: []Result{
		Token{V: 'a', Pos: 0},
		Token{V: 'a', Pos: 1},
		Token{V: 'a', Pos: 2},
	}}, actual[0].Result)
	require.Equal(t, Sequence{Pos: 0}, actual[3].Result)
}

func TestManyBacktracksOnDemand(t *testing.T) {
	calls := 0
	counted := Satisfy(func(v any) bool {
		calls++
		return v == 'a'
	})
	// The shorter repetition is only explored because the trailing Item needs the last 'a'.
	expr := Seq(Many(counted), Item('a'), EOF)
	m, ok := first(Instantiate(expr, "aaa", 0))
	require.True(t, ok)
	require.Equal(t, 2, len(m.Result.(Sequence).Items[0].(Sequence).Items))

	calls = 0
	_, ok = first(Instantiate(Many(counted), "aaa", 0))
	require.True(t, ok)
	require.Equal(t, 3, calls, "only the longest repetition should be computed")
}

func TestManyEmptyInput(t *testing.T) {
	actual := collect(Many(Item('a')), "")
	require.Equal(t, []Match{{Result: Sequence{Pos: 0}, Pos: 0}}, actual)
}

func TestManyWithoutProgressTerminates(t *testing.T) {
	actual := collect(Many(Optional(Item('a'))), "a")
	require.NotEmpty(t, actual)
	require.Equal(t, 1, actual[0].Pos)
}

func TestSome(t *testing.T) {
	require.Equal(t, []int{2, 1}, lengths(collect(Some(Item('a')), "aab")))
	require.Empty(t, collect(Some(Item('a')), "b"))
}

func TestSomeIsManyPrependedWithOne(t *testing.T) {
	expected := collect(Bind(Item('a'), func(r Result) Expression {
		return Map(Many(Item('a')), func(rest Result) any {
			return Sequence{Items: append([]Result{r}, rest.(Sequence).Items...)}
		})
	}), "aaa")
	require.Equal(t, lengths(expected), lengths(collect(Some(Item('a')), "aaa")))
}

func TestStarIsGreedy(t *testing.T) {
	actual := collect(Star(Item('a')), "aaa")
	require.Equal(t, []int{3}, lengths(actual))
	require.Empty(t, collect(Seq(Star(Item('a')), Item('a'), EOF), "aaa"))
	require.Len(t, collect(Seq(Many(Item('a')), Item('a'), EOF), "aaa"), 1)
	require.Equal(t, []int{0}, lengths(collect(Star(Item('a')), "b")))
}

func TestStarThreadsBindings(t *testing.T) {
	x := NewVariable("x")
	actual := collect(Star(Capture(Element, x)), "aab")
	require.Equal(t, []int{2}, lengths(actual))
	require.Equal(t, 'a', x.Unpack(actual[0].Env))
}

func TestPlus(t *testing.T) {
	require.Equal(t, []int{2}, lengths(collect(Plus(Item('a')), "aa")))
	require.Empty(t, collect(Plus(Item('a')), "b"))
}

func TestSubscript(t *testing.T) {
	word := Some(Runes("abc"))
	expr := Subscript(word, Seq(Item('a'), Item('b'), EOF))
	actual := collect(expr, "ab!")
	require.Len(t, actual, 1)
	require.Equal(t, 2, actual[0].Pos)
	require.Equal(t, []any{'a', 'b', nil}, actual[0].Result.Unpack())
}

func TestSubscriptThisIsIdentity(t *testing.T) {
	for _, expr := range []Expression{Many(Item('a')), Item('a'), Get("X"), Return(1)} {
		for _, input := range []any{"aa", point{X: 1}} {
			require.Equal(t, collect(expr, input), collect(Subscript(expr, This), input))
		}
	}
}

func TestCaptureAttributes(t *testing.T) {
	type pair struct {
		Left, Right any
	}
	x := NewVariable("x")
	same := Seq(Capture(Get("Left"), x), Capture(Get("Right"), x))
	require.Len(t, collect(same, pair{Left: 1, Right: 1}), 1)
	require.Empty(t, collect(same, pair{Left: 1, Right: 2}))
}
