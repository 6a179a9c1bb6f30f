package peg

import (
	"iter"
)

// Return(x)
type ret struct {
	x any
}

// Return consumes no input and yields x once.
//
// x is yielded unchanged if it is a Result, otherwise it is wrapped in a Value.
func Return(x any) Expression { return &ret{x: x} }

func (r *ret) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		yield(Match{Result: liftAt(r.x, pos), Pos: pos, Env: env})
	}
}

type zero struct{}

// Fail is the zero of the monad. It never matches.
var Fail Expression = zero{}

// Zero returns Fail.
func Zero() Expression { return Fail }

func (zero) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return func(yield func(Match) bool) {}
}

// Bind(p, f)
type bind struct {
	expr Expression
	each func(Result) Expression
}

// Bind sequences expr with the expression f derives from each of its results.
//
// For each match of expr, in order, f is called with the result and every match of the
// expression it returns is yielded, starting where expr stopped. f is only called as matches
// are pulled.
func Bind(expr Expression, f func(Result) Expression) Expression {
	return &bind{expr: expr, each: f}
}

func (b *bind) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for m := range b.expr.Instantiate(in, pos, env) {
			for next := range b.each(m.Result).Instantiate(in, m.Pos, m.Env) {
				if !yield(next) {
					return
				}
			}
		}
	}
}

// <expr> | <expr>
type branch struct {
	p, q Expression
}

// Branch yields every match of p followed by every match of q, both starting from the same
// input, position and bindings.
func Branch(p, q Expression) Expression { return &branch{p: p, q: q} }

// Or is a right-nested Branch over all of alternatives. Or() is Fail.
func Or(alternatives ...Expression) Expression {
	switch len(alternatives) {
	case 0:
		return Fail
	case 1:
		return alternatives[0]
	}
	return Branch(alternatives[0], Or(alternatives[1:]...))
}

func (b *branch) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for m := range b.p.Instantiate(in, pos, env) {
			if !yield(m) {
				return
			}
		}
		for m := range b.q.Instantiate(in, pos, env) {
			if !yield(m) {
				return
			}
		}
	}
}

// Then applies p followed by q, keeping q's result.
func Then(p, q Expression) Expression {
	return Bind(p, func(Result) Expression { return q })
}

// <expr> <expr> ...
type seq struct {
	exprs []Expression
}

// Seq applies each expression in order and combines their results into a Sequence.
//
// Empty results are dropped. Results that are themselves sequences are kept as single items.
func Seq(exprs ...Expression) Expression { return &seq{exprs: exprs} }

func (s *seq) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		s.instantiate(in, 0, pos, pos, env, nil, yield)
	}
}

// Returns false if the consumer stopped pulling.
func (s *seq) instantiate(in Input, i, start, pos int, env Env, acc []Result, yield func(Match) bool) bool {
	if i == len(s.exprs) {
		return yield(Match{Result: Sequence{Items: acc, Pos: start}, Pos: pos, Env: env})
	}
	for m := range s.exprs[i].Instantiate(in, pos, env) {
		items := acc[:len(acc):len(acc)]
		if _, empty := m.Result.(emptyResult); !empty {
			items = append(items, m.Result)
		}
		if !s.instantiate(in, i+1, start, m.Pos, m.Env, items, yield) {
			return false
		}
	}
	return true
}

// When filters the results of expr by pred.
func When(expr Expression, pred func(Result) bool) Expression {
	return Bind(expr, func(r Result) Expression {
		if pred(r) {
			return Return(r)
		}
		return Fail
	})
}

// Optional matches expr or, failing that, nothing. The latter yields Empty.
func Optional(expr Expression) Expression {
	return Branch(expr, Return(Empty))
}

// Skip matches expr but yields Empty in place of its results.
func Skip(expr Expression) Expression {
	return Bind(expr, func(Result) Expression { return Return(Empty) })
}

// !<expr>
type not struct {
	expr Expression
}

// Not succeeds, yielding Empty and consuming nothing, only if expr does not match.
func Not(expr Expression) Expression { return &not{expr: expr} }

func (n *not) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		if _, ok := first(n.expr.Instantiate(in, pos, env)); ok {
			return
		}
		yield(Match{Result: Empty, Pos: pos, Env: env})
	}
}

// &<expr>
type peek struct {
	expr Expression
}

// Peek yields the first result of expr without consuming input. Bindings made by expr are
// discarded.
func Peek(expr Expression) Expression { return &peek{expr: expr} }

func (p *peek) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		if m, ok := first(p.expr.Instantiate(in, pos, env)); ok {
			yield(Match{Result: m.Result, Pos: pos, Env: env})
		}
	}
}

func first(matches iter.Seq[Match]) (Match, bool) {
	for m := range matches {
		return m, true
	}
	return Match{}, false
}
