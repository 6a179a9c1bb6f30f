package peg

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringer(t *testing.T) {
	x := NewVariable("x")
	g := NewGrammar("expr")
	tests := []struct {
		expr     Expression
		expected string
	}{
		{Return(1), "Return(1)"},
		{Fail, "Fail"},
		{Or(Item('0'), Item('1')), "'0' | '1'"},
		{Seq(Item('a'), Element, EOF), "('a' . EOF)"},
		{Many(Item('a')), "'a'*"},
		{Some(Or(Item('a'), Item('b'))), "('a' | 'b')+"},
		{Star(Item('a')), "'a'*!"},
		{Plus(Item('a')), "'a'+!"},
		{Not(Item('a')), "!'a'"},
		{Peek(Item('a')), "&'a'"},
		{Capture(Element, x), "(. >> x)"},
		{Unify(Element, Any), "(. >> …)"},
		{Map(Element, func(r Result) any { return r }), "Map(.)"},
		{Then(Item('a'), Item('b')), "Bind('a', …)"},
		{Runes("ab"), "{'a', 'b'}"},
		{AnyOf("let", 1), `{"let", 1}`},
		{Subscript(Get("Items"), Many(At(0))), ".Items[[0]*]"},
		{This, "This"},
		{TypeOf(reflect.TypeOf(0)), "TypeOf(int)"},
		{Satisfy(func(any) bool { return true }), "Satisfy(…)"},
		{Primitive("digits", nil), "digits"},
		{g.Ref("expr"), "<expr>"},
		{Optional(Item('a')), "'a' | Return(Empty)"},
	}
	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			require.Equal(t, test.expected, stringer(test.expr))
		})
	}
}
