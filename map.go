package peg

import (
	"iter"

	"golang.org/x/exp/slices"
)

// Mapper transforms a result into a new value.
type Mapper func(r Result) any

type mapped struct {
	expr   Expression
	mapper Mapper
}

// Map applies mapper to each result of expr. The mapped value is wrapped with Lift.
func Map(expr Expression, mapper Mapper) Expression {
	return &mapped{expr: expr, mapper: mapper}
}

func (m *mapped) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for match := range m.expr.Instantiate(in, pos, env) {
			match.Result = liftAt(m.mapper(match.Result), match.Result.At())
			if !yield(match) {
				return
			}
		}
	}
}

// Args are the named arguments passed to a Construct factory.
type Args map[string]any

// Params map factory parameter names to the variables supplying them.
type Params map[string]*Variable

// Make converts each candidate with fn, which receives the candidate's plain value.
//
//	digit := Unify(AnyOf('0', '1'), Make(func(v any) (any, error) { return int(v.(rune) - '0'), nil }))
//
// fn is called exactly once per candidate. An error from fn is a programming error and panics
// with a *FactoryError.
func Make(fn func(v any) (any, error)) Unifier {
	return UnifierFunc(func(env Env, candidate Result) iter.Seq2[Result, Env] {
		return func(yield func(Result, Env) bool) {
			yield(construct(candidate, func() (any, error) { return fn(candidate.Unpack()) }), env)
		}
	})
}

// Apply unifies each candidate with the pattern formed by vars and calls fn with the unpacked
// values of vars, once per unification.
//
// With a single variable the candidate itself is unified with it, otherwise the candidate
// must be a Sequence with one item per variable.
func Apply(fn func(args ...any) (any, error), vars ...*Variable) Unifier {
	return UnifierFunc(func(env Env, candidate Result) iter.Seq2[Result, Env] {
		return func(yield func(Result, Env) bool) {
			for bound := range unifyPattern(env, candidate, vars) {
				args := make([]any, len(vars))
				for i, v := range vars {
					args[i] = v.Unpack(bound)
				}
				if !yield(construct(candidate, func() (any, error) { return fn(args...) }), bound) {
					return
				}
			}
		}
	})
}

func unifyPattern(env Env, candidate Result, vars []*Variable) iter.Seq[Env] {
	return func(yield func(Env) bool) {
		switch len(vars) {
		case 0:
			yield(env)
			return
		case 1:
			for _, next := range vars[0].Unify(env, candidate) {
				if !yield(next) {
					return
				}
			}
			return
		}
		items, ok := candidate.(Sequence)
		if !ok || len(items.Items) != len(vars) {
			return
		}
		unifyItems(env, items.Items, vars, yield)
	}
}

func unifyItems(env Env, items []Result, vars []*Variable, yield func(Env) bool) bool {
	if len(vars) == 0 {
		return yield(env)
	}
	for _, next := range vars[0].Unify(env, items[0]) {
		if !unifyItems(next, items[1:], vars[1:], yield) {
			return false
		}
	}
	return true
}

// Construct calls fn with the current values of the variables in params, ignoring the
// candidate's own value.
//
//	add := Unify(Seq(Capture(digit, l), Item('+'), Capture(digit, r)),
//		Construct(newBinaryAdd, Params{"left": l, "right": r}))
//
// Every variable in params must be bound when Construct is reached. An unbound variable is a
// programming error and panics with an *UnboundVariableError.
func Construct(fn func(args Args) (any, error), params Params) Unifier {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	slices.Sort(names)
	return UnifierFunc(func(env Env, candidate Result) iter.Seq2[Result, Env] {
		return func(yield func(Result, Env) bool) {
			args := Args{}
			for _, name := range names {
				v := params[name]
				value, ok := v.Value(env)
				if !ok {
					panic(&UnboundVariableError{Param: name, Variable: v, Pos: candidate.At()})
				}
				args[name] = value.Unpack()
			}
			yield(construct(candidate, func() (any, error) { return fn(args) }), env)
		}
	})
}

func construct(candidate Result, fn func() (any, error)) Result {
	out, err := fn()
	if err != nil {
		panic(&FactoryError{Err: err, Pos: candidate.At()})
	}
	return liftAt(out, candidate.At())
}
