// Package testset implements the test set language used to select which tests a command operates on.
//
// # Overview
//
// A test set expression is compiled in three stages:
//  1. Lexer: tokenizes the expression
//  2. Parser: builds an AST using operator precedence (Pratt) parsing
//  3. Evaluator: evaluates the AST against a Context of bindings into a Set
//
// A Set is a predicate over tests. It is built once per expression and then asked for every
// candidate test whether that test is a member, possibly from many goroutines at once.
//
// # Syntax
//
// Function calls construct sets:
//
//	all()                   # every test
//	unit() & !skip()        # unit tests which are not skipped
//	compile-only()          # unit tests without references
//
// Pattern literals match the test identifier directly:
//
//	glob:'foo/*'   g:foo/*  # glob, '*' also matches '/'
//	regex:'^foo/\d+$'  r:x  # regular expression, unanchored unless anchored explicitly
//	exact:foo/bar  e:'a b'  # byte-wise equality
//
// Other literals are numbers (1_000) and strings ('raw', "escaped\n"), which are only useful
// as function arguments.
//
// # Operators
//
// From loosest to tightest binding, all binary operators are left-associative:
//
//	a | b    a or b         # union
//	a & b    a and b        # intersection
//	a ~ b    a diff b       # difference, same as a & !b
//	a ^ b    a xor b        # symmetric difference
//	!a       not a          # complement
//
// Parentheses group sub-expressions. Whitespace between tokens is insignificant.
//
// # Types
//
// Values are tests, test sets, functions, numbers and strings. Operators only accept test sets;
// any other operand is a type error raised during evaluation, never during parsing.
package testset
