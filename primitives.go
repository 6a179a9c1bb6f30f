package peg

import (
	"iter"
	"reflect"
)

type element struct{}

// Element matches the next element of the input, whatever it is.
var Element Expression = element{}

func (element) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		if v, ok := in.Index(pos); ok {
			yield(Match{Result: elementAt(v, pos), Pos: pos + 1, Env: env})
		}
	}
}

// Elements that are already results, such as the items of a Sequence being subscripted, are
// passed through as is.
func elementAt(v any, pos int) Result {
	if r, ok := v.(Result); ok {
		return r
	}
	return Token{V: v, Pos: pos}
}

// A literal symbol.
type item struct {
	symbol any
	Expression
}

// Item matches the next element if it equals symbol.
//
// Strings are parsed rune by rune, so Item('a') rather than Item("a") matches in "abc".
func Item(symbol any) Expression {
	return &item{symbol: symbol, Expression: Bind(Element, func(r Result) Expression {
		if equal(r.Unpack(), symbol) {
			return Return(r)
		}
		return Fail
	})}
}

type satisfy struct {
	Expression
}

// Satisfy matches the next element if pred accepts it.
func Satisfy(pred func(v any) bool) Expression {
	return &satisfy{Bind(Element, func(r Result) Expression {
		if pred(r.Unpack()) {
			return Return(r)
		}
		return Fail
	})}
}

type this struct{}

// This yields the whole input value and consumes nothing.
//
// It is the identity for Subscript: Subscript(p, This) is equivalent to p.
var This Expression = this{}

func (this) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		yield(Match{Result: liftAt(in.Value(), pos), Pos: pos, Env: env})
	}
}

// .name
type get struct {
	name string
	Expression
}

// Get yields the named attribute of the input value. See Input.Attr.
func Get(name string) Expression {
	return &get{name: name, Expression: Bind(This, func(r Result) Expression {
		if v, ok := attr(r, name); ok {
			return Return(v)
		}
		return Fail
	})}
}

type typeOf struct {
	t reflect.Type
	Expression
}

// TypeOf yields the input value if it is assignable to t or, if t is an interface, implements t.
func TypeOf(t reflect.Type) Expression {
	return &typeOf{t: t, Expression: Bind(This, func(r Result) Expression {
		if isType(r.Unpack(), t) {
			return Return(r)
		}
		return Fail
	})}
}

// Is yields the input value if it is a T.
func Is[T any]() Expression {
	return TypeOf(reflect.TypeFor[T]())
}

func isType(v any, t reflect.Type) bool {
	if v == nil {
		return false
	}
	vt := reflect.TypeOf(v)
	if t.Kind() == reflect.Interface {
		return vt.Implements(t)
	}
	return vt.AssignableTo(t)
}

// [index]
type at struct {
	index int
	Expression
}

// At yields element index of the input value. It fails if the value is not indexable or has no
// such element.
func At(index int) Expression {
	return &at{index: index, Expression: Bind(This, func(r Result) Expression {
		if v, ok := NewInput(r).Index(index); ok {
			return Return(elementAt(v, index))
		}
		return Fail
	})}
}

type eof struct{}

// EOF matches the end of an indexable input, yielding End.
var EOF Expression = eof{}

func (eof) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		if n, ok := in.Len(); ok && pos == n {
			yield(Match{Result: End{Pos: pos}, Pos: pos, Env: env})
		}
	}
}

// PrimitiveFunc matches at pos, returning the matched value and the position parsing continues
// from. It returns false if it does not match.
type PrimitiveFunc func(in Input, pos int) (v any, next int, ok bool)

type primitive struct {
	name string
	fn   PrimitiveFunc
}

// Primitive creates a custom single-match Expression from fn.
//
// fn must not move backwards or past the end of the input. Doing so is a programming error and
// panics with a *ContractError.
func Primitive(name string, fn PrimitiveFunc) Expression {
	return &primitive{name: name, fn: fn}
}

func (p *primitive) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		v, next, ok := p.fn(in, pos)
		if !ok {
			return
		}
		if n, indexable := in.Len(); next < pos || (indexable && next > n) {
			panic(&ContractError{Name: p.name, Pos: pos, Next: next})
		}
		yield(Match{Result: liftAt(v, pos), Pos: next, Env: env})
	}
}
