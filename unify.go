package peg

import (
	"fmt"
	"iter"
)

// A Variable captures a parsed value. Once bound along a derivation it only unifies with values
// that unify with the captured one.
//
// Variables carry no state of their own; bindings live in the Env of each derivation, so a
// Variable can be shared freely between grammars and parses.
type Variable struct {
	Name string
}

// NewVariable creates a new Variable. The name is only used for display.
func NewVariable(name string) *Variable {
	return &Variable{Name: name}
}

func (v *Variable) String() string {
	if v.Name == "" {
		return fmt.Sprintf("var(%p)", v)
	}
	return v.Name
}

// Unify binds v to candidate if v is unbound in env, otherwise unifies the bound value with
// candidate.
func (v *Variable) Unify(env Env, candidate Result) iter.Seq2[Result, Env] {
	return func(yield func(Result, Env) bool) {
		bound, ok := env.Lookup(v)
		if !ok {
			yield(candidate, env.Bind(v, candidate))
			return
		}
		for r, next := range bound.Unify(env, candidate) {
			if !yield(r, next) {
				return
			}
		}
	}
}

// Value returns the result bound to v in env.
func (v *Variable) Value(env Env) (Result, bool) {
	return env.Lookup(v)
}

// Unpack returns the plain value bound to v in env, or nil.
func (v *Variable) Unpack(env Env) any {
	if r, ok := env.Lookup(v); ok {
		return r.Unpack()
	}
	return nil
}

// Any accepts every candidate unchanged.
var Any Unifier = UnifierFunc(func(env Env, candidate Result) iter.Seq2[Result, Env] {
	return func(yield func(Result, Env) bool) {
		yield(candidate, env)
	}
})

// Nothing rejects every candidate.
var Nothing Unifier = UnifierFunc(func(env Env, candidate Result) iter.Seq2[Result, Env] {
	return func(yield func(Result, Env) bool) {}
})

// Const accepts candidates whose value equals v.
func Const(v any) Unifier {
	return UnifierFunc(func(env Env, candidate Result) iter.Seq2[Result, Env] {
		return unifyValue(v, env, candidate)
	})
}

// Select yields the unifications of each of the unifiers in turn.
//
// For example, Select(x, y) accepts a value that unifies with either x or y.
func Select(unifiers ...Unifier) Unifier {
	return UnifierFunc(func(env Env, candidate Result) iter.Seq2[Result, Env] {
		return func(yield func(Result, Env) bool) {
			for _, u := range unifiers {
				for r, next := range u.Unify(env, candidate) {
					if !yield(r, next) {
						return
					}
				}
			}
		}
	})
}

// Label the candidate.
func Label(label string) Unifier {
	return UnifierFunc(func(env Env, candidate Result) iter.Seq2[Result, Env] {
		return func(yield func(Result, Env) bool) {
			yield(Labelled{Result: candidate, Label: label}, env)
		}
	})
}

// Pipes the results of an expression through a Unifier.
type unify struct {
	expr Expression
	u    Unifier
}

// Unify pipes every result of expr into u, yielding one match for each unification at the
// position expr stopped at. Results u rejects are dropped.
func Unify(expr Expression, u Unifier) Expression {
	return &unify{expr: expr, u: u}
}

// Capture binds the results of expr to v.
func Capture(expr Expression, v *Variable) Expression {
	return Unify(expr, v)
}

func (u *unify) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for m := range u.expr.Instantiate(in, pos, env) {
			for r, next := range u.u.Unify(m.Env, m.Result) {
				if !yield(Match{Result: r, Pos: m.Pos, Env: next}) {
					return
				}
			}
		}
	}
}
