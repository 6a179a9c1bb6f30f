package main

import (
	"github.com/alecthomas/peg"
)

type builtin struct {
	help string
	expr peg.Expression
}

var builtins = map[string]builtin{
	"add":    {"Binary addition of two captured digits, such as 1+0.", addGrammar()},
	"as":     {"Any number of a's, backtracking into shorter runs.", peg.Many(peg.Item('a'))},
	"select": {"Three letters from abc where the last repeats one of the first two.", selectGrammar()},
	"sum":    {"Right-recursive sums of decimal digits, such as 1+2+3.", sumGrammar()},
}

func digit(set *peg.Set) peg.Expression {
	return peg.Unify(set, peg.Make(func(v any) (any, error) {
		return int(v.(rune) - '0'), nil
	}))
}

func addGrammar() peg.Expression {
	l, r := peg.NewVariable("l"), peg.NewVariable("r")
	bit := digit(peg.AnyOf('0', '1'))
	return peg.Unify(
		peg.Seq(peg.Capture(bit, l), peg.Item('+'), peg.Capture(bit, r)),
		peg.Construct(func(args peg.Args) (any, error) {
			return args["left"].(int) + args["right"].(int), nil
		}, peg.Params{"left": l, "right": r}),
	)
}

func selectGrammar() peg.Expression {
	x, y := peg.NewVariable("x"), peg.NewVariable("y")
	abc := peg.Runes("abc")
	return peg.Seq(peg.Capture(abc, x), peg.Capture(abc, y), peg.Unify(abc, peg.Select(x, y)))
}

func sumGrammar() *peg.Grammar {
	g := peg.NewGrammar("expr")
	g.Define("expr", peg.Or(g.Ref("add"), g.Ref("digit")))
	g.Define("add", peg.Map(peg.Seq(g.Ref("digit"), peg.Skip(peg.Item('+')), g.Ref("expr")), func(r peg.Result) any {
		operands := r.Unpack().([]any)
		return operands[0].(int) + operands[1].(int)
	}))
	g.Define("digit", digit(peg.Runes("0123456789")))
	return g
}
