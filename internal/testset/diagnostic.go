package testset

import (
	"fmt"
	"strings"

	"github.com/mgutz/ansi"

	"github.com/tytanic-dev/tytanic/internal/errors"
)

var (
	styleArrow = ansi.ColorFunc("blue+b")
	styleCaret = ansi.ColorFunc("red+b")
	styleHint  = ansi.ColorFunc("cyan+b")
)

const diagnosticIndent = "     "

// FormatDiagnostic renders a parse error with the offending part of the expression underlined:
//
//	Test set parsing error: Unexpected trailing input
//	 --> 'all() )'
//
//	     all() )
//	           ^ expected infix operator or EOI, found closing parenthesis
//
//	  hint: Unexpected ')' without matching '('.
func FormatDiagnostic(err *ParseError, useColor bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Test set parsing error: %s\n", err.Title())
	writeLocation(&sb, err.Query, useColor)

	underline := strings.Repeat("^", max(err.TokenLength, 1))
	if err.ErrorCode == ErrorCodeMissingClosingParen {
		underline = "^"
	}

	if useColor {
		underline = styleCaret(underline)
	}

	fmt.Fprintf(&sb, "%s%s%s %s\n", diagnosticIndent, caretPadding(err.Query, err.ErrorPosition), underline, err.Message)

	writeHint(&sb, GetHint(err.ErrorCode, err.TokenLiteral, err.Query, err.Position), useColor)

	return sb.String()
}

// FormatError renders any error returned while parsing or evaluating query. Parse errors get
// a full diagnostic, unknown bindings get "did you mean" suggestions.
func FormatError(err error, query string, useColor bool) string {
	var perr *ParseError
	if errors.As(err, &perr) {
		return FormatDiagnostic(perr, useColor)
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "Test set evaluation error: %s\n", err.Error())
	writeLocation(&sb, query, useColor)

	var unknown UnknownBindingError
	if errors.As(err, &unknown) {
		if pos := bindingPosition(query, unknown.ID); pos >= 0 {
			underline := strings.Repeat("^", len(unknown.ID))
			if useColor {
				underline = styleCaret(underline)
			}

			fmt.Fprintf(&sb, "%s%s%s not bound\n", diagnosticIndent, caretPadding(query, pos), underline)
		}

		if len(unknown.Similar) > 0 {
			names := make([]string, len(unknown.Similar))
			for i, id := range unknown.Similar {
				names[i] = "'" + string(id) + "'"
			}

			writeHint(&sb, "did you mean "+joinAlternatives(names)+"?", useColor)
		}
	}

	return sb.String()
}

// bindingPosition returns the offset of the first identifier named id in query, or -1. A word
// followed by a colon that is not a pattern kind is skipped, so a prefix like `all:` does not
// hide the expression behind it.
func bindingPosition(query string, id Identifier) int {
	offset := 0
	l := NewLexer(query)

	for {
		tok := l.NextToken()

		switch tok.Type {
		case EOF, ILLEGAL:
			return -1
		case IDENT:
			if tok.Literal == string(id) {
				return offset + tok.Position
			}
		case PATTERN:
			kind, _, _ := strings.Cut(tok.Literal, ":")
			if _, ok := ParsePatternKind(kind); !ok {
				offset += tok.Position + len(kind) + 1
				l = NewLexer(query[offset:])
			}
		}
	}
}

func writeLocation(sb *strings.Builder, query string, useColor bool) {
	arrow := " --> "
	if useColor {
		arrow = styleArrow(arrow)
	}

	fmt.Fprintf(sb, "%s'%s'\n\n", arrow, query)
	fmt.Fprintf(sb, "%s%s\n", diagnosticIndent, query)
}

func writeHint(sb *strings.Builder, hint string, useColor bool) {
	if hint == "" {
		return
	}

	label := "hint:"
	if useColor {
		label = styleHint(label)
	}

	fmt.Fprintf(sb, "\n  %s %s\n", label, hint)
}

// caretPadding returns whitespace that lines up with byte offset pos of query, keeping tabs
// so that the caret lands under the right column.
func caretPadding(query string, pos int) string {
	pos = min(max(pos, 0), len(query))

	var sb strings.Builder

	for _, r := range query[:pos] {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}

		sb.WriteByte(' ')
	}

	return sb.String()
}
