package peg

import (
	"fmt"
	"iter"
	"reflect"
	"strconv"
	"strings"

	"github.com/alecthomas/repr"
)

// Token is a single input element matched at Pos.
type Token struct {
	V   any
	Pos int
}

func (t Token) Unpack() any { return t.V }
func (t Token) At() int     { return t.Pos }

// Unify succeeds if the candidate holds an equal value. Positions are not compared.
func (t Token) Unify(env Env, candidate Result) iter.Seq2[Result, Env] {
	return unifyValue(t.V, env, candidate)
}

func (t Token) String() string { return fmt.Sprintf("<%s at %d>", show(t.V), t.Pos) }

// Sequence is the ordered list of results produced by repetition or Seq.
type Sequence struct {
	Items []Result
	// Pos is where the sequence started.
	Pos int
}

func (s Sequence) At() int { return s.Pos }

// Unpack returns the unpacked items as a []any.
func (s Sequence) Unpack() any {
	out := make([]any, len(s.Items))
	for i, item := range s.Items {
		out[i] = item.Unpack()
	}
	return out
}

// Unify succeeds if candidate is a Sequence of the same length whose items pairwise unify.
//
// Unification is flat: only the first unification of each pair is considered.
func (s Sequence) Unify(env Env, candidate Result) iter.Seq2[Result, Env] {
	return func(yield func(Result, Env) bool) {
		other, ok := sequenceOf(candidate)
		if !ok || len(other.Items) != len(s.Items) {
			return
		}
		for i, item := range s.Items {
			var matched bool
			for _, next := range item.Unify(env, other.Items[i]) {
				env, matched = next, true
				break
			}
			if !matched {
				return
			}
		}
		yield(candidate, env)
	}
}

// sequenceOf unwraps labels around a Sequence.
func sequenceOf(r Result) (Sequence, bool) {
	for {
		switch v := r.(type) {
		case Sequence:
			return v, true
		case Labelled:
			r = v.Result
		default:
			return Sequence{}, false
		}
	}
}

func (s Sequence) String() string {
	items := make([]string, len(s.Items))
	for i, item := range s.Items {
		items[i] = fmt.Sprint(item)
	}
	return "[" + strings.Join(items, ", ") + "]"
}

// Value is a constructed value, such as the argument to Return or the output of Make.
type Value struct {
	V   any
	Pos int
}

func (v Value) Unpack() any { return v.V }
func (v Value) At() int     { return v.Pos }

func (v Value) Unify(env Env, candidate Result) iter.Seq2[Result, Env] {
	return unifyValue(v.V, env, candidate)
}

func (v Value) String() string { return show(v.V) }

// End marks the end of input.
type End struct {
	Pos int
}

func (e End) Unpack() any { return nil }
func (e End) At() int     { return e.Pos }

func (e End) Unify(env Env, candidate Result) iter.Seq2[Result, Env] {
	return func(yield func(Result, Env) bool) {
		if _, ok := candidate.(End); ok {
			yield(candidate, env)
		}
	}
}

func (e End) String() string { return fmt.Sprintf("<end at %d>", e.Pos) }

// Labelled attaches a label to a result.
type Labelled struct {
	Result
	Label string
}

func (l Labelled) String() string { return fmt.Sprintf("<%s: %s>", l.Label, l.Result) }

type emptyResult struct{}

// Empty signals success without a value. Seq drops it when combining results.
var Empty Result = emptyResult{}

func (emptyResult) Unpack() any    { return nil }
func (emptyResult) At() int        { return 0 }
func (emptyResult) String() string { return "Empty" }

func (emptyResult) Unify(env Env, candidate Result) iter.Seq2[Result, Env] {
	return func(yield func(Result, Env) bool) {
		if _, ok := candidate.(emptyResult); ok {
			yield(candidate, env)
		}
	}
}

// Lift wraps v in a Value unless it is already a Result.
func Lift(v any) Result { return liftAt(v, 0) }

func liftAt(v any, pos int) Result {
	if r, ok := v.(Result); ok {
		return r
	}
	return Value{V: v, Pos: pos}
}

func unifyValue(v any, env Env, candidate Result) iter.Seq2[Result, Env] {
	return func(yield func(Result, Env) bool) {
		if equal(v, candidate.Unpack()) {
			yield(candidate, env)
		}
	}
}

func equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

func show(v any) string {
	if r, ok := v.(rune); ok {
		return strconv.QuoteRune(r)
	}
	return repr.String(v)
}
