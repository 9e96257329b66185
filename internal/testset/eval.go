package testset

import (
	"fmt"
)

// Eval evaluates expr against ctx.
func Eval(ctx *Context, expr Expression) (Value, error) {
	switch node := expr.(type) {
	case *IdentExpression:
		return ctx.Resolve(node.Name)
	case *NumberLiteral:
		return Num(node.Value), nil
	case *StringLiteral:
		return Str(node.Value), nil
	case *PatternLiteral:
		return CoercePattern(node.Pattern), nil
	case *CallExpression:
		return evalCall(ctx, node)
	case *PrefixExpression:
		return evalPrefix(ctx, node)
	case *InfixExpression:
		return evalInfix(ctx, node)
	default:
		panic(fmt.Sprintf("unhandled expression node %T", expr))
	}
}

// EvalSet evaluates expr and requires the result to be a test set.
func EvalSet(ctx *Context, expr Expression) (Set, error) {
	value, err := Eval(ctx, expr)
	if err != nil {
		return Set{}, err
	}

	return ExpectType[Set](value)
}

func evalCall(ctx *Context, node *CallExpression) (Value, error) {
	value, err := ctx.Resolve(node.Name)
	if err != nil {
		return nil, err
	}

	fn, err := ExpectType[Func](value)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(node.Arguments))

	for i, arg := range node.Arguments {
		if args[i], err = Eval(ctx, arg); err != nil {
			return nil, err
		}
	}

	return fn.Call(ctx, args)
}

func evalPrefix(ctx *Context, node *PrefixExpression) (Value, error) {
	right, err := EvalSet(ctx, node.Right)
	if err != nil {
		return nil, err
	}

	switch node.Operator {
	case OpComplement:
		return Complement(right), nil
	default:
		panic(fmt.Sprintf("unhandled prefix operator %d", node.Operator))
	}
}

func evalInfix(ctx *Context, node *InfixExpression) (Value, error) {
	left, err := EvalSet(ctx, node.Left)
	if err != nil {
		return nil, err
	}

	right, err := EvalSet(ctx, node.Right)
	if err != nil {
		return nil, err
	}

	switch node.Operator {
	case OpUnion:
		return Union(left, right), nil
	case OpIntersection:
		return Intersection(left, right), nil
	case OpDifference:
		return Difference(left, right), nil
	case OpSymmetricDifference:
		return SymmetricDifference(left, right), nil
	default:
		panic(fmt.Sprintf("unhandled infix operator %d", node.Operator))
	}
}
