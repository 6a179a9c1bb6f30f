package peg

import (
	"fmt"
	"iter"
)

// An Expression is a parser: given an input, a position and the bindings made so far it lazily
// yields every interpretation of the input starting at that position.
//
// Implement Expression to plug a custom combinator into a grammar. Implementations must not
// retain per-parse state; everything a derivation needs travels in the Env.
type Expression interface {
	Instantiate(in Input, pos int, env Env) iter.Seq[Match]
}

// The Unifier interface is implemented by anything a parse result can be piped into with Unify.
//
// Unify yields every way candidate unifies with the receiver, together with the bindings that
// result. Yielding nothing rejects the candidate.
type Unifier interface {
	Unify(env Env, candidate Result) iter.Seq2[Result, Env]
}

// A Result is a parsed value together with the position it was produced at.
type Result interface {
	Unifier
	// Unpack the plain Go value held by the result.
	Unpack() any
	// At returns the input position the result was produced at.
	At() int
}

// Match is a single interpretation yielded by an Expression.
type Match struct {
	Result Result
	// Pos is the position parsing continues from.
	Pos int
	// Env holds the variable bindings made along the derivation that produced this match.
	Env Env
}

func (m Match) String() string {
	return fmt.Sprintf("%s @%d", m.Result, m.Pos)
}

// UnifierFunc adapts a function to the Unifier interface.
type UnifierFunc func(env Env, candidate Result) iter.Seq2[Result, Env]

func (u UnifierFunc) Unify(env Env, candidate Result) iter.Seq2[Result, Env] {
	return u(env, candidate)
}
