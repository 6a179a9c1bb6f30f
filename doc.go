// Package peg is a backtracking parser built from a monad of parsing expressions, extended
// with unification over variables.
//
// An Expression takes an input and a position and lazily yields every interpretation of the
// input from that position as a Match: a Result, the position parsing continues from, and the
// variable bindings made along the way. Consumers pull as many matches as they need; alternatives
// that are never pulled are never computed.
//
// Expressions form a monad with
//
//   - `Return(x)` consuming no input and yielding only x.
//   - `Bind(p, f)` applying f to each result of p and parsing on with the expression it returns.
//   - `Branch(p, q)` yielding the matches of p and then those of q from the same position.
//   - `Fail` (`Zero()`) yielding nothing.
//
// satisfying
//
//	Bind(p, Return)                    == p
//	Bind(Return(a), f)                 == f(a)
//	Bind(Bind(p, f), g)                == Bind(p, a => Bind(f(a), g))
//	Branch(Branch(p, q), r)            == Branch(p, Branch(q, r))
//	Branch(p, Fail) == Branch(Fail, p) == p
//	Bind(Branch(p, q), f)              == Branch(Bind(p, f), Bind(q, f))
//
// The remaining combinators are built on those:
//
//   - `Element`, `Item(x)`, `AnyOf(x...)`, `Satisfy(f)` match single elements.
//   - `This`, `Get(name)`, `TypeOf(t)`, `At(i)` inspect a single object.
//   - `Seq(p...)`, `Then(p, q)`, `Or(p...)`, `Optional(p)`, `Not(p)`, `Peek(p)`, `EOF`.
//   - `Many(p)` and `Some(p)` repeat, longest first, backtracking into shorter repetitions.
//   - `Star(p)` and `Plus(p)` repeat greedily without backtracking.
//   - `Subscript(p, q)` parses the results of p with q.
//   - `Grammar` holds late bound, possibly recursive, named rules.
//
// Results are piped through a Unifier with `Unify(p, u)`. A Variable is a Unifier that binds
// the first value it sees along a derivation and afterwards only accepts values that unify
// with it. Bindings live in the Env of each Match, never in the Variable, so backtracking
// discards them automatically and grammars can be reused freely.
//
// Here's a grammar of binary additions constructing a value from the captured digits.
//
//	l, r := peg.NewVariable("l"), peg.NewVariable("r")
//	digit := peg.Unify(peg.AnyOf('0', '1'), peg.Make(func(v any) (any, error) {
//		return int(v.(rune) - '0'), nil
//	}))
//	add := peg.Unify(
//		peg.Seq(peg.Capture(digit, l), peg.Item('+'), peg.Capture(digit, r)),
//		peg.Construct(func(args peg.Args) (any, error) {
//			return args["left"].(int) + args["right"].(int), nil
//		}, peg.Params{"left": l, "right": r}),
//	)
//	for m := range peg.Instantiate(add, "1+1", 0) {
//		fmt.Println(m.Result.Unpack()) // 2
//	}
package peg
