package peg

import (
	"io"
	"iter"
)

// A Parser drives an Expression over inputs.
type Parser struct {
	root     Expression
	start    int
	complete bool
	limit    int
	trace    io.Writer
	env      Env
}

// New creates a Parser for root.
//
// If root is a Grammar it is validated.
func New(root Expression, options ...Option) (*Parser, error) {
	p := &Parser{root: root}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	if g, ok := root.(*Grammar); ok {
		if err := g.Validate(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustNew calls New and panics if it fails.
func MustNew(root Expression, options ...Option) *Parser {
	p, err := New(root, options...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Parser) String() string {
	return stringer(p.root)
}

// Instantiate expr against v starting at pos, with no bindings.
//
// Programming errors in the grammar are raised as panics carrying an Error.
func Instantiate(expr Expression, v any, pos int) iter.Seq[Match] {
	return expr.Instantiate(NewInput(v), pos, Env{})
}

// Matches lazily yields the matches of the parser's expression against v.
//
// Programming errors in the grammar are raised as panics carrying an Error.
func (p *Parser) Matches(v any) iter.Seq[Match] {
	in := NewInput(v)
	return func(yield func(Match) bool) {
		env := p.env.withTracer(p.trace)
		n := 0
		for m := range p.root.Instantiate(in, p.start, env) {
			if p.complete {
				if end, ok := in.Len(); ok && m.Pos != end {
					continue
				}
			}
			m.Env = m.Env.withTracer(nil)
			if !yield(m) {
				return
			}
			n++
			if p.limit > 0 && n >= p.limit {
				return
			}
		}
	}
}

// All returns every match of v.
func (p *Parser) All(v any) (matches []Match, err error) {
	defer recoverToError(&err)
	for m := range p.Matches(v) {
		matches = append(matches, m)
	}
	return matches, nil
}

// First returns the first match of v, or ErrNoMatch.
func (p *Parser) First(v any) (match Match, err error) {
	defer recoverToError(&err)
	if m, ok := first(p.Matches(v)); ok {
		return m, nil
	}
	return Match{}, ErrNoMatch
}

// Count the matches of v.
func (p *Parser) Count(v any) (n int, err error) {
	defer recoverToError(&err)
	for range p.Matches(v) {
		n++
	}
	return n, nil
}
