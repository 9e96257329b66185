package testset

// WalkExpressions calls fn for expr and all of its sub-expressions in depth-first order.
// Children are not visited if fn returns false.
func WalkExpressions(expr Expression, fn func(Expression) bool) {
	if expr == nil || !fn(expr) {
		return
	}

	switch node := expr.(type) {
	case *CallExpression:
		for _, arg := range node.Arguments {
			WalkExpressions(arg, fn)
		}
	case *PrefixExpression:
		WalkExpressions(node.Right, fn)
	case *InfixExpression:
		WalkExpressions(node.Left, fn)
		WalkExpressions(node.Right, fn)
	}
}

// References returns the identifiers an expression looks up, in order of first use.
func References(expr Expression) []Identifier {
	var ids []Identifier

	seen := make(map[Identifier]struct{})
	add := func(id Identifier) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	WalkExpressions(expr, func(e Expression) bool {
		switch node := e.(type) {
		case *IdentExpression:
			add(node.Name)
		case *CallExpression:
			add(node.Name)
		}

		return true
	})

	return ids
}
