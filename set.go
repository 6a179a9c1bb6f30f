package peg

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/ahrtr/gocontainer/set"
)

// A Set matches the next element if it is one of a class of symbols.
//
// Sets can be combined with set algebra, which is cheaper than alternation over single items.
type Set struct {
	members []any
	index   set.Interface
}

// AnyOf creates a Set matching any of symbols. Symbols must be comparable.
func AnyOf(symbols ...any) *Set {
	s := &Set{index: set.New()}
	for _, symbol := range symbols {
		s.add(symbol)
	}
	return s
}

// Runes creates a Set matching any rune in s.
func Runes(s string) *Set {
	symbols := []any{}
	for _, r := range s {
		symbols = append(symbols, r)
	}
	return AnyOf(symbols...)
}

func (s *Set) add(symbol any) {
	if !isComparable(symbol) {
		panic(fmt.Sprintf("peg: set members must be comparable, got %T", symbol))
	}
	if s.index.Contains(symbol) {
		return
	}
	s.index.Add(symbol)
	s.members = append(s.members, symbol)
}

// Contains reports whether v is a member of the set.
func (s *Set) Contains(v any) bool {
	return isComparable(v) && s.index.Contains(v)
}

// Members of the set in the order they were added.
func (s *Set) Members() []any {
	return append([]any(nil), s.members...)
}

// Union of s and other.
func (s *Set) Union(other *Set) *Set {
	return AnyOf(append(s.Members(), other.members...)...)
}

// Intersect returns the members of s that are also in other.
func (s *Set) Intersect(other *Set) *Set {
	return s.filter(other.Contains)
}

// Difference returns the members of s that are not in other.
func (s *Set) Difference(other *Set) *Set {
	return s.filter(func(v any) bool { return !other.Contains(v) })
}

// SymmetricDifference returns the members in exactly one of s and other.
func (s *Set) SymmetricDifference(other *Set) *Set {
	return s.Difference(other).Union(other.Difference(s))
}

func (s *Set) filter(keep func(v any) bool) *Set {
	out := AnyOf()
	for _, member := range s.members {
		if keep(member) {
			out.add(member)
		}
	}
	return out
}

func (s *Set) Instantiate(in Input, pos int, env Env) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		v, ok := in.Index(pos)
		if !ok {
			return
		}
		r := elementAt(v, pos)
		if s.Contains(r.Unpack()) {
			yield(Match{Result: r, Pos: pos + 1, Env: env})
		}
	}
}

// The value is checked rather than its type, as interface fields may hold uncomparable values.
func isComparable(v any) bool {
	return v != nil && reflect.ValueOf(v).Comparable()
}
