package peg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		err      Error
		expected string
		pos      int
	}{
		{&UnboundVariableError{Param: "left", Variable: NewVariable("l"), Pos: 3}, `3: parameter "left" refers to unbound variable l`, 3},
		{&FactoryError{Err: cause, Pos: 1}, "1: factory failed: boom", 1},
		{&UndefinedRuleError{Rule: "expr", Pos: 0}, `0: undefined rule "expr"`, 0},
		{&ContractError{Name: "digits", Pos: 2, Next: 9}, "2: primitive digits moved from 2 to invalid position 9", 2},
	}
	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			require.EqualError(t, test.err, test.expected)
			require.Equal(t, test.pos, test.err.Position())
			require.Contains(t, test.expected, test.err.Message())
		})
	}
}

func TestRecoverToErrorRepanicsForeignPanics(t *testing.T) {
	p := MustNew(Satisfy(func(any) bool { panic("boom") }))
	require.PanicsWithValue(t, "boom", func() {
		_, _ = p.First("a")
	})
}

func TestDefectsSurfaceAsPanicsFromInstantiate(t *testing.T) {
	g := NewGrammar("a")
	require.Panics(t, func() { collect(g.Ref("missing"), "a") })
}
