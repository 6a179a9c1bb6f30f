package peg

import (
	"iter"
)

// <expr>*
type many struct {
	expr Expression
}

// Many applies expr zero or more times, yielding a Sequence of its results.
//
// The longest repetition is yielded first, shorter ones follow on backtracking, down to the
// empty sequence. An iteration that consumes no input ends the repetition.
func Many(expr Expression) Expression { return &many{expr: expr} }

func (m *many) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		if !repeat(m.expr, in, pos, pos, env, nil, yield) {
			return
		}
		yield(Match{Result: Sequence{Pos: pos}, Pos: pos, Env: env})
	}
}

// <expr>+
type some struct {
	expr Expression
}

// Some applies expr one or more times, yielding a Sequence of its results. Like Many, longer
// repetitions are yielded first.
func Some(expr Expression) Expression { return &some{expr: expr} }

func (s *some) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		repeat(s.expr, in, pos, pos, env, nil, yield)
	}
}

// repeat yields every non-empty repetition of expr starting at pos, longest first, prefixed by
// the results in acc. It returns false if the consumer stopped pulling.
func repeat(expr Expression, in Input, start, pos int, env Env, acc []Result, yield func(Match) bool) bool {
	for m := range expr.Instantiate(in, pos, env) {
		items := append(acc[:len(acc):len(acc)], m.Result)
		if m.Pos != pos && !repeat(expr, in, start, m.Pos, m.Env, items, yield) {
			return false
		}
		if !yield(Match{Result: Sequence{Items: items, Pos: start}, Pos: m.Pos, Env: m.Env}) {
			return false
		}
	}
	return true
}

// Greedy repetition.
type star struct {
	expr Expression
	min  int
}

// Star applies expr as many times as possible, taking only the first match of each iteration.
// It yields exactly one Sequence and never backtracks into shorter repetitions.
func Star(expr Expression) Expression { return &star{expr: expr} }

// Plus is Star requiring at least one match.
func Plus(expr Expression) Expression { return &star{expr: expr, min: 1} }

func (s *star) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		var items []Result
		next := pos
		for {
			m, ok := first(s.expr.Instantiate(in, next, env))
			if !ok {
				break
			}
			items = append(items, m.Result)
			progressed := m.Pos != next
			next, env = m.Pos, m.Env
			if !progressed {
				break
			}
		}
		if len(items) < s.min {
			return
		}
		yield(Match{Result: Sequence{Items: items, Pos: pos}, Pos: next, Env: env})
	}
}

// <expr>[<expr>]
type subscript struct {
	expr  Expression
	inner Expression
}

// Subscript parses each result of expr with inner, treating the result as a fresh input at
// position 0. inner's results are yielded at the position expr stopped at.
//
// inner is not required to consume its whole input; end it with EOF to demand that.
func Subscript(expr, inner Expression) Expression {
	return &subscript{expr: expr, inner: inner}
}

func (s *subscript) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for m := range s.expr.Instantiate(in, pos, env) {
			for sub := range s.inner.Instantiate(NewInput(m.Result), 0, m.Env.nested()) {
				if !yield(Match{Result: sub.Result, Pos: m.Pos, Env: sub.Env.leave(m.Env)}) {
					return
				}
			}
		}
	}
}
