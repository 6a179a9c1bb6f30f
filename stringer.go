package peg

import (
	"bytes"
	"fmt"
	"strings"
)

type stringerVisitor struct {
	bytes.Buffer
}

func stringer(expr Expression) string {
	v := &stringerVisitor{}
	v.visit(expr)
	return v.String()
}

func (s *stringerVisitor) visit(expr Expression) {
	switch expr := expr.(type) {
	case *ret:
		if expr.x == Empty {
			fmt.Fprint(s, "Return(Empty)")
		} else {
			fmt.Fprintf(s, "Return(%s)", show(unpack(expr.x)))
		}

	case zero:
		fmt.Fprint(s, "Fail")

	case *bind:
		fmt.Fprint(s, "Bind(")
		s.visit(expr.expr)
		fmt.Fprint(s, ", …)")

	case *branch:
		s.visit(expr.p)
		fmt.Fprint(s, " | ")
		s.visit(expr.q)

	case *seq:
		s.list("(", expr.exprs, " ", ")")

	case *not:
		fmt.Fprint(s, "!")
		s.visit(expr.expr)

	case *peek:
		fmt.Fprint(s, "&")
		s.visit(expr.expr)

	case *unify:
		fmt.Fprint(s, "(")
		s.visit(expr.expr)
		fmt.Fprintf(s, " >> %s)", unifierName(expr.u))

	case *mapped:
		fmt.Fprint(s, "Map(")
		s.visit(expr.expr)
		fmt.Fprint(s, ")")

	case element:
		fmt.Fprint(s, ".")

	case *item:
		fmt.Fprint(s, show(expr.symbol))

	case *satisfy:
		fmt.Fprint(s, "Satisfy(…)")

	case *Set:
		members := make([]string, len(expr.members))
		for i, member := range expr.members {
			members[i] = show(member)
		}
		fmt.Fprintf(s, "{%s}", strings.Join(members, ", "))

	case this:
		fmt.Fprint(s, "This")

	case *get:
		fmt.Fprintf(s, ".%s", expr.name)

	case *typeOf:
		fmt.Fprintf(s, "TypeOf(%s)", expr.t)

	case *at:
		fmt.Fprintf(s, "[%d]", expr.index)

	case eof:
		fmt.Fprint(s, "EOF")

	case *primitive:
		fmt.Fprint(s, expr.name)

	case *many:
		s.group(expr.expr)
		fmt.Fprint(s, "*")

	case *some:
		s.group(expr.expr)
		fmt.Fprint(s, "+")

	case *star:
		s.group(expr.expr)
		if expr.min == 0 {
			fmt.Fprint(s, "*!")
		} else {
			fmt.Fprint(s, "+!")
		}

	case *subscript:
		s.group(expr.expr)
		fmt.Fprint(s, "[")
		s.visit(expr.inner)
		fmt.Fprint(s, "]")

	case *reference:
		fmt.Fprintf(s, "<%s>", expr.rule)

	case *Grammar:
		fmt.Fprintf(s, "<%s>", expr.start)

	default:
		fmt.Fprintf(s, "%v", expr)
	}
}

// Sub-expressions that print with spaces or operators are parenthesised before a suffix.
func (s *stringerVisitor) group(expr Expression) {
	switch expr.(type) {
	case *branch, *bind:
		fmt.Fprint(s, "(")
		s.visit(expr)
		fmt.Fprint(s, ")")
	default:
		s.visit(expr)
	}
}

func (s *stringerVisitor) list(open string, exprs []Expression, sep, end string) {
	fmt.Fprint(s, open)
	for i, expr := range exprs {
		if i > 0 {
			fmt.Fprint(s, sep)
		}
		s.visit(expr)
	}
	fmt.Fprint(s, end)
}

func unifierName(u Unifier) string {
	if v, ok := u.(*Variable); ok {
		return v.String()
	}
	return "…"
}
