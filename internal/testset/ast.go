package testset

import (
	"strconv"
	"strings"
)

// Expression represents a node in the abstract syntax tree. Nodes are never mutated after
// parsing, so a tree can be evaluated from many goroutines.
type Expression interface {
	// expressionNode is a marker method to distinguish expression nodes.
	expressionNode()
	// String returns a fully parenthesized representation that parses back to an equal tree.
	String() string
}

// IdentExpression refers to a binding in the evaluation context.
type IdentExpression struct {
	Name Identifier
}

func (i *IdentExpression) expressionNode() {}
func (i *IdentExpression) String() string { return string(i.Name) }

// NumberLiteral is an unsigned integer literal.
type NumberLiteral struct {
	Value uint64
}

func (n *NumberLiteral) expressionNode() {}
func (n *NumberLiteral) String() string { return strconv.FormatUint(n.Value, 10) }

// StringLiteral is a decoded string literal.
type StringLiteral struct {
	Value string
}

func (s *StringLiteral) expressionNode() {}
func (s *StringLiteral) String() string { return quoteString(s.Value) }

// PatternLiteral is a compiled pattern literal such as `g:foo/*`.
type PatternLiteral struct {
	Pattern *Pattern
}

func (p *PatternLiteral) expressionNode() {}
func (p *PatternLiteral) String() string { return p.Pattern.String() }

// CallExpression calls the function bound to Name with the given arguments.
type CallExpression struct {
	Name      Identifier
	Arguments []Expression
}

func (c *CallExpression) expressionNode() {}
func (c *CallExpression) String() string {
	args := make([]string, len(c.Arguments))
	for i, arg := range c.Arguments {
		args[i] = arg.String()
	}

	return string(c.Name) + "(" + strings.Join(args, ", ") + ")"
}

// PrefixOperator is a unary operator.
type PrefixOperator int

const (
	// OpComplement is `!` or `not`.
	OpComplement PrefixOperator = iota
)

func (op PrefixOperator) String() string {
	return "!"
}

// InfixOperator is a binary set operator.
type InfixOperator int

const (
	// OpUnion is `|` or `or`.
	OpUnion InfixOperator = iota
	// OpIntersection is `&` or `and`.
	OpIntersection
	// OpDifference is `~` or `diff`.
	OpDifference
	// OpSymmetricDifference is `^` or `xor`.
	OpSymmetricDifference
)

func (op InfixOperator) String() string {
	switch op {
	case OpUnion:
		return "|"
	case OpIntersection:
		return "&"
	case OpDifference:
		return "~"
	case OpSymmetricDifference:
		return "^"
	}

	return "?"
}

// PrefixExpression applies a prefix operator to an operand.
type PrefixExpression struct {
	Right    Expression
	Operator PrefixOperator
}

func (p *PrefixExpression) expressionNode() {}
func (p *PrefixExpression) String() string {
	return p.Operator.String() + p.Right.String()
}

// InfixExpression applies a binary operator to two operands. Chains of the same operator
// are kept as nested binary nodes.
type InfixExpression struct {
	Left     Expression
	Right    Expression
	Operator InfixOperator
}

func (i *InfixExpression) expressionNode() {}
func (i *InfixExpression) String() string {
	return "(" + i.Left.String() + " " + i.Operator.String() + " " + i.Right.String() + ")"
}
