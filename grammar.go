package peg

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/exp/slices"
)

// A Grammar is a collection of named rules that may refer to each other, and to themselves,
// through late bound references.
//
// A Grammar is an Expression evaluating its start rule.
type Grammar struct {
	start string
	rules map[string]Expression
}

// NewGrammar creates an empty Grammar starting at the rule named start.
func NewGrammar(start string) *Grammar {
	return &Grammar{start: start, rules: map[string]Expression{}}
}

// Define (or redefine) rule name.
func (g *Grammar) Define(name string, expr Expression) *Grammar {
	g.rules[name] = expr
	return g
}

// Ref refers to rule name. The rule does not need to be defined yet.
func (g *Grammar) Ref(name string) Expression {
	return &reference{g: g, rule: name}
}

// Start returns the name of the start rule.
func (g *Grammar) Start() string { return g.start }

// Rule returns the expression defined for name.
func (g *Grammar) Rule(name string) (Expression, bool) {
	expr, ok := g.rules[name]
	return expr, ok
}

// Rules returns the names of all defined rules, sorted.
func (g *Grammar) Rules() []string {
	names := make([]string, 0, len(g.rules))
	for name := range g.rules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate that the start rule and every rule referred to from a defined rule exist.
func (g *Grammar) Validate() error {
	missing := map[string]bool{}
	if _, ok := g.rules[g.start]; !ok {
		missing[g.start] = true
	}
	for _, name := range g.Rules() {
		_ = visit(g.rules[name], func(expr Expression, next func() error) error {
			if ref, ok := expr.(*reference); ok {
				if _, defined := ref.g.rules[ref.rule]; !defined {
					missing[ref.rule] = true
				}
				// Don't follow references into other grammars.
				return nil
			}
			return next()
		})
	}
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, 0, len(missing))
	for name := range missing {
		names = append(names, name)
	}
	slices.Sort(names)
	return fmt.Errorf("undefined rules: %s", strings.Join(names, ", "))
}

func (g *Grammar) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return g.Ref(g.start).Instantiate(in, pos, env)
}

func (g *Grammar) String() string {
	w := &strings.Builder{}
	for _, name := range g.Rules() {
		fmt.Fprintf(w, "%s = %s\n", name, stringer(g.rules[name]))
	}
	return w.String()
}

// <rule>
type reference struct {
	g    *Grammar
	rule string
}

// Expanding a rule that is already being expanded at the same position would recurse forever,
// so that branch fails instead.
func (r *reference) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		expr, ok := r.g.rules[r.rule]
		if !ok {
			panic(&UndefinedRuleError{Rule: r.rule, Pos: pos})
		}
		if env.expanding(r.g, r.rule, pos) {
			env.tracef("%s @%d: left recursion, backtracking", r.rule, pos)
			return
		}
		env.tracef("%s @%d", r.rule, pos)
		inner := env.enter(r.g, r.rule, pos)
		for m := range expr.Instantiate(in, pos, inner) {
			env.tracef("%s @%d => %s @%d", r.rule, pos, m.Result, m.Pos)
			if !yield(Match{Result: m.Result, Pos: m.Pos, Env: m.Env.leave(env)}) {
				return
			}
		}
	}
}
