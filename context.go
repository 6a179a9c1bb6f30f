package peg

import (
	"iter"
)

// Env is the state of a single derivation: the variable bindings made so far, the grammar
// rules currently being expanded, and the tracer of the parse.
//
// An Env is immutable. Extending it returns a new Env sharing structure with the old one, so
// every alternative explored after backtracking starts from the bindings that held when the
// alternative was entered. The zero Env is empty and ready to use.
type Env struct {
	vars   *binding
	frames *frame
	tracer *tracer
}

type binding struct {
	v    *Variable
	r    Result
	next *binding
}

// A rule expansion in progress. Barrier frames separate expansions over different inputs.
type frame struct {
	g       *Grammar
	rule    string
	pos     int
	depth   int
	barrier bool
	next    *frame
}

// Bind returns a copy of env with v bound to r.
func (e Env) Bind(v *Variable, r Result) Env {
	e.vars = &binding{v: v, r: r, next: e.vars}
	return e
}

// Lookup the value bound to v.
func (e Env) Lookup(v *Variable) (Result, bool) {
	for b := e.vars; b != nil; b = b.next {
		if b.v == v {
			return b.r, true
		}
	}
	return nil, false
}

// Bindings iterates over bound variables in the order they were bound.
func (e Env) Bindings() iter.Seq2[*Variable, Result] {
	return func(yield func(*Variable, Result) bool) {
		var stack []*binding
		for b := e.vars; b != nil; b = b.next {
			stack = append(stack, b)
		}
		for i := len(stack) - 1; i >= 0; i-- {
			if !yield(stack[i].v, stack[i].r) {
				return
			}
		}
	}
}

// Len returns the number of bound variables.
func (e Env) Len() int {
	n := 0
	for b := e.vars; b != nil; b = b.next {
		n++
	}
	return n
}

// expanding reports whether rule of g is already being expanded at pos.
func (e Env) expanding(g *Grammar, rule string, pos int) bool {
	for f := e.frames; f != nil && !f.barrier; f = f.next {
		if f.g == g && f.rule == rule && f.pos == pos {
			return true
		}
	}
	return false
}

func (e Env) enter(g *Grammar, rule string, pos int) Env {
	depth := 0
	if e.frames != nil {
		depth = e.frames.depth + 1
	}
	e.frames = &frame{g: g, rule: rule, pos: pos, depth: depth, next: e.frames}
	return e
}

// nested returns env for parsing a different input, such as a subscripted result.
func (e Env) nested() Env {
	e.frames = &frame{depth: e.depth() - 1, barrier: true, next: e.frames}
	return e
}

// leave restores the rule frames of outer while keeping the bindings of e.
func (e Env) leave(outer Env) Env {
	e.frames = outer.frames
	return e
}

func (e Env) depth() int {
	if e.frames == nil {
		return 0
	}
	return e.frames.depth + 1
}
