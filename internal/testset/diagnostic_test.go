package testset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tytanic-dev/tytanic/internal/errors"
	"github.com/tytanic-dev/tytanic/internal/testset"
)

func TestFormatDiagnostic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:  "stray closing paren",
			query: "all() )",
			expected: "Test set parsing error: Unexpected trailing input\n" +
				" --> 'all() )'\n" +
				"\n" +
				"     all() )\n" +
				"           ^ expected infix operator or EOI, found closing parenthesis\n" +
				"\n" +
				"  hint: Unexpected ')' without matching '('.\n",
		},
		{
			name:  "unclosed paren",
			query: "(a | b",
			expected: "Test set parsing error: Unclosed parenthesis\n" +
				" --> '(a | b'\n" +
				"\n" +
				"     (a | b\n" +
				"     ^ unclosed parenthesis, expected infix operator or closing parenthesis\n" +
				"\n" +
				"  hint: Add a ')' to close the parenthesis opened here.\n",
		},
		{
			name:  "missing operator",
			query: "skip() unit()",
			expected: "Test set parsing error: Unexpected trailing input\n" +
				" --> 'skip() unit()'\n" +
				"\n" +
				"     skip() unit()\n" +
				"            ^^^^ expected infix operator or EOI, found identifier\n" +
				"\n" +
				"  hint: Two expressions must be combined with an operator such as '|' or '&'.\n",
		},
		{
			name:  "invalid pattern kind",
			query: "x:foo",
			expected: "Test set parsing error: Invalid pattern kind\n" +
				" --> 'x:foo'\n" +
				"\n" +
				"     x:foo\n" +
				"     ^ invalid pattern kind x, expected one of glob, g, regex, r, exact or e\n" +
				"\n" +
				"  hint: Patterns are written as glob:, regex: or exact: (or g:, r:, e:) followed by the pattern.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := testset.Parse(tt.query)

			var perr *testset.ParseError
			require.True(t, errors.As(err, &perr))

			assert.Equal(t, tt.expected, testset.FormatDiagnostic(perr, false))
			assert.Equal(t, tt.expected, testset.FormatError(err, tt.query, false))
		})
	}
}

func TestFormatError_UnknownBinding(t *testing.T) {
	t.Parallel()

	query := "foo | all()"

	expr, err := testset.Parse(query)
	require.NoError(t, err)

	_, err = testset.Eval(testContext(), expr)
	require.Error(t, err)

	out := testset.FormatError(err, query, false)

	assert.Contains(t, out, "Test set evaluation error: unknown binding: foo\n")
	assert.Contains(t, out, "     foo | all()\n     ^^^ not bound\n")
	assert.Contains(t, out, "hint: did you mean 'foobar'")
}

func TestFormatError_UnknownBindingPosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		expr     string
		expected string
	}{
		{
			name:     "identifier that prefixes another",
			query:    "ab() | a()",
			expr:     "ab() | a()",
			expected: "     ab() | a()\n            ^ not bound\n",
		},
		{
			name:     "name inside a pattern",
			query:    "e:a | a()",
			expr:     "e:a | a()",
			expected: "     e:a | a()\n           ^ not bound\n",
		},
		{
			name:     "all prefix",
			query:    "all:ab() | a()",
			expr:     "ab() | a()",
			expected: "     all:ab() | a()\n                ^ not bound\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			expr, err := testset.Parse(tt.expr)
			require.NoError(t, err)

			_, err = testset.Eval(testContext(), expr)

			var unknown testset.UnknownBindingError
			require.True(t, errors.As(err, &unknown))
			assert.Equal(t, testset.Identifier("a"), unknown.ID)

			assert.Contains(t, testset.FormatError(err, tt.query, false), tt.expected)
		})
	}
}

func TestFormatError_Color(t *testing.T) {
	t.Parallel()

	_, err := testset.Parse("a b")
	require.Error(t, err)

	plain := testset.FormatError(err, "a b", false)
	colored := testset.FormatError(err, "a b", true)

	assert.NotContains(t, plain, "\x1b[")
	assert.Contains(t, colored, "\x1b[")
}
