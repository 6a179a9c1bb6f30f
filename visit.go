package peg

type visitorFunc func(expr Expression, next func() error) error

// visit the expression tree rooted at expr. The visitor calls next to descend into children.
//
// Children hidden behind functions, such as the continuation of Bind, and the internals of
// custom Expressions are not visited.
func visit(expr Expression, visitor visitorFunc) error {
	return _visit(map[Expression]bool{}, expr, visitor)
}

func _visit(seen map[Expression]bool, expr Expression, visitor visitorFunc) error {
	if isComparable(expr) {
		if seen[expr] {
			return nil
		}
		seen[expr] = true
	}
	return visitor(expr, func() error {
		for _, child := range children(expr) {
			if err := _visit(seen, child, visitor); err != nil {
				return err
			}
		}
		return nil
	})
}

func children(expr Expression) []Expression {
	switch expr := expr.(type) {
	case *bind:
		return []Expression{expr.expr}
	case *branch:
		return []Expression{expr.p, expr.q}
	case *seq:
		return expr.exprs
	case *not:
		return []Expression{expr.expr}
	case *peek:
		return []Expression{expr.expr}
	case *unify:
		return []Expression{expr.expr}
	case *many:
		return []Expression{expr.expr}
	case *some:
		return []Expression{expr.expr}
	case *star:
		return []Expression{expr.expr}
	case *subscript:
		return []Expression{expr.expr, expr.inner}
	case *mapped:
		return []Expression{expr.expr}
	case *Grammar:
		out := []Expression{}
		for _, name := range expr.Rules() {
			out = append(out, expr.rules[name])
		}
		return out
	}
	return nil
}
