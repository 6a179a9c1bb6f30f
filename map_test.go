package peg

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

type binaryAdd struct {
	Left, Right int
}

func (b binaryAdd) Evaluate() int { return (b.Left + b.Right) % 2 }

func atoi(v any) (any, error) {
	return strconv.Atoi(string(v.(rune)))
}

func newBinaryAdd(args Args) (any, error) {
	return binaryAdd{Left: args["left"].(int), Right: args["right"].(int)}, nil
}

func TestMakeConstructsFromVariables(t *testing.T) {
	l, r := NewVariable("l"), NewVariable("r")
	digit := Unify(Or(Item('1'), Item('0')), Make(atoi))
	add := Unify(Seq(Capture(digit, l), Item('+'), Capture(digit, r)),
		Construct(newBinaryAdd, Params{"left": l, "right": r}))

	tests := []struct {
		input    string
		expected int
	}{
		{"0+0", 0},
		{"0+1", 1},
		{"1+0", 1},
		{"1+1", 0},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			actual := collect(add, test.input)
			require.Len(t, actual, 1)
			require.Equal(t, 3, actual[0].Pos)
			require.Equal(t, test.expected, actual[0].Result.Unpack().(binaryAdd).Evaluate())
		})
	}
	require.Empty(t, collect(add, "1+2"))
}

func TestMakeConvertsValue(t *testing.T) {
	actual := collect(Unify(Item('7'), Make(atoi)), "7")
	require.Equal(t, []Match{{Result: Value{V: 7, Pos: 0}, Pos: 1}}, actual)
}

func TestMakeIsCalledOncePerResult(t *testing.T) {
	calls := 0
	counting := Make(func(v any) (any, error) {
		calls++
		return v, nil
	})
	collect(Unify(Or(Item('0'), Item('1')), counting), "1")
	require.Equal(t, 1, calls, "must not be called for the failed branch")

	calls = 0
	collect(Then(Unify(Item('a'), counting), Item('x')), "ab")
	require.Equal(t, 1, calls)

	calls = 0
	require.Len(t, collect(Unify(Many(Item('a')), counting), "aa"), 3)
	require.Equal(t, 3, calls)

	calls = 0
	_, ok := first(Instantiate(Unify(Many(Item('a')), counting), "aa", 0))
	require.True(t, ok)
	require.Equal(t, 1, calls, "results that are never pulled are never constructed")
}

func TestApply(t *testing.T) {
	a, b := NewVariable("a"), NewVariable("b")
	digit := Unify(Element, Make(atoi))
	sum := Unify(Seq(digit, Skip(Item('+')), digit), Apply(func(args ...any) (any, error) {
		return args[0].(int) + args[1].(int), nil
	}, a, b))

	actual := collect(sum, "2+3")
	require.Len(t, actual, 1)
	require.Equal(t, 5, actual[0].Result.Unpack())
	require.Equal(t, 2, a.Unpack(actual[0].Env))
	require.Equal(t, 3, b.Unpack(actual[0].Env))

	// The pattern must have one item per variable.
	require.Empty(t, collect(Unify(Seq(digit), Apply(func(args ...any) (any, error) { return nil, nil }, a, b)), "2"))
}

func TestApplyUnifiesWithBoundVariables(t *testing.T) {
	a := NewVariable("a")
	echo := Apply(func(args ...any) (any, error) { return args[0].(rune), nil }, a)
	expr := Seq(Capture(Element, a), Unify(Element, echo))
	require.Len(t, collect(expr, "xx"), 1)
	require.Empty(t, collect(expr, "xy"))
}

func TestMap(t *testing.T) {
	upper := Map(Element, func(r Result) any { return r.Unpack().(rune) - 'a' + 'A' })
	actual := collect(upper, "q")
	require.Equal(t, []Match{{Result: Value{V: 'Q', Pos: 0}, Pos: 1}}, actual)
}

func TestConstructUnboundVariable(t *testing.T) {
	x := NewVariable("x")
	expr := Unify(Item('a'), Construct(func(Args) (any, error) { return nil, nil }, Params{"value": x}))
	_, err := MustNew(expr).First("a")
	var unbound *UnboundVariableError
	require.ErrorAs(t, err, &unbound)
	require.Equal(t, "value", unbound.Param)
	require.Equal(t, `0: parameter "value" refers to unbound variable x`, err.Error())
}

func TestFactoryError(t *testing.T) {
	failed := errors.New("not a number")
	expr := Unify(Element, Make(func(any) (any, error) { return nil, failed }))
	_, err := MustNew(expr).All("a")
	require.ErrorIs(t, err, failed)
	var factory *FactoryError
	require.ErrorAs(t, err, &factory)
	require.Equal(t, "0: factory failed: not a number", err.Error())
}
