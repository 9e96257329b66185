package testset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tytanic-dev/tytanic/internal/testset"
)

func TestLexer_Operators(t *testing.T) {
	t.Parallel()

	tokens := testset.NewLexer("! not | or & and ~ diff ^ xor ( ) ,").Tokens()

	expected := []testset.TokenType{
		testset.BANG, testset.NOT,
		testset.PIPE, testset.OR,
		testset.AMPERSAND, testset.AND,
		testset.TILDE, testset.DIFF,
		testset.CARET, testset.XOR,
		testset.LPAREN, testset.RPAREN, testset.COMMA,
		testset.EOF,
	}

	types := make([]testset.TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}

	assert.Equal(t, expected, types)
}

func TestLexer_Tokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []testset.Token
	}{
		{
			name:  "function call",
			input: "compile-only()",
			expected: []testset.Token{
				{Type: testset.IDENT, Literal: "compile-only", Position: 0},
				{Type: testset.LPAREN, Literal: "(", Position: 12},
				{Type: testset.RPAREN, Literal: ")", Position: 13},
				{Type: testset.EOF, Literal: "", Position: 14},
			},
		},
		{
			name:  "keywords only as whole words",
			input: "order note",
			expected: []testset.Token{
				{Type: testset.IDENT, Literal: "order", Position: 0},
				{Type: testset.IDENT, Literal: "note", Position: 6},
				{Type: testset.EOF, Literal: "", Position: 10},
			},
		},
		{
			name:  "number with separators",
			input: "1_000",
			expected: []testset.Token{
				{Type: testset.NUMBER, Literal: "1_000", Position: 0},
				{Type: testset.EOF, Literal: "", Position: 5},
			},
		},
		{
			name:  "strings keep their quotes",
			input: `'a\' "b\"c"`,
			expected: []testset.Token{
				{Type: testset.SQSTRING, Literal: `'a\'`, Position: 0},
				{Type: testset.DQSTRING, Literal: `"b\"c"`, Position: 5},
				{Type: testset.EOF, Literal: "", Position: 11},
			},
		},
		{
			name:  "raw pattern ends at operator",
			input: "g:foo/**|e:a/b",
			expected: []testset.Token{
				{Type: testset.PATTERN, Literal: "g:foo/**", Position: 0},
				{Type: testset.PIPE, Literal: "|", Position: 8},
				{Type: testset.PATTERN, Literal: "e:a/b", Position: 9},
				{Type: testset.EOF, Literal: "", Position: 14},
			},
		},
		{
			name:  "raw pattern keeps balanced parentheses",
			input: "f(r:qux(quuz{3,4}))",
			expected: []testset.Token{
				{Type: testset.IDENT, Literal: "f", Position: 0},
				{Type: testset.LPAREN, Literal: "(", Position: 1},
				{Type: testset.PATTERN, Literal: "r:qux(quuz{3,4})", Position: 2},
				{Type: testset.RPAREN, Literal: ")", Position: 18},
				{Type: testset.EOF, Literal: "", Position: 19},
			},
		},
		{
			name:  "raw pattern with escaped parenthesis",
			input: `r:(a\)) | b`,
			expected: []testset.Token{
				{Type: testset.PATTERN, Literal: `r:(a\))`, Position: 0},
				{Type: testset.PIPE, Literal: "|", Position: 8},
				{Type: testset.IDENT, Literal: "b", Position: 10},
				{Type: testset.EOF, Literal: "", Position: 11},
			},
		},
		{
			name:  "quoted pattern",
			input: "regex:'a b' )",
			expected: []testset.Token{
				{Type: testset.PATTERN, Literal: "regex:'a b'", Position: 0},
				{Type: testset.RPAREN, Literal: ")", Position: 12},
				{Type: testset.EOF, Literal: "", Position: 13},
			},
		},
		{
			name:  "unterminated string",
			input: "a | 'abc",
			expected: []testset.Token{
				{Type: testset.IDENT, Literal: "a", Position: 0},
				{Type: testset.PIPE, Literal: "|", Position: 2},
				{Type: testset.ILLEGAL, Literal: "'abc", Position: 4},
			},
		},
		{
			name:  "unterminated quoted pattern",
			input: `g:"abc\"`,
			expected: []testset.Token{
				{Type: testset.ILLEGAL, Literal: `g:"abc\"`, Position: 0},
			},
		},
		{
			name:  "illegal character",
			input: "a $",
			expected: []testset.Token{
				{Type: testset.IDENT, Literal: "a", Position: 0},
				{Type: testset.ILLEGAL, Literal: "$", Position: 2},
			},
		},
		{
			name:  "whitespace only",
			input: " \t\n ",
			expected: []testset.Token{
				{Type: testset.EOF, Literal: "", Position: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, testset.NewLexer(tt.input).Tokens())
		})
	}
}

func TestTokenTypeNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "symbol union op", testset.PIPE.Name())
	assert.Equal(t, "|", testset.PIPE.Example())
	assert.Equal(t, "literal union op", testset.OR.Name())
	assert.Equal(t, "or", testset.OR.Example())
	assert.Equal(t, "identifier", testset.IDENT.Name())
	assert.Equal(t, "<ident>", testset.IDENT.Example())
	assert.Equal(t, "EOI", testset.EOF.Name())
	assert.Equal(t, "<EOI>", testset.EOF.Example())
}
