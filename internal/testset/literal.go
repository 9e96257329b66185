package testset

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const maxUnicodeEscapeDigits = 6

// decodeNumber converts a NUMBER token into its value, ignoring `_` separators.
// Values that do not fit into 64 bits are rejected.
func decodeNumber(tok Token) (uint64, *ParseError) {
	var value uint64

	for i := 0; i < len(tok.Literal); i++ {
		ch := tok.Literal[i]
		if ch == '_' {
			continue
		}

		digit := uint64(ch - '0')
		if value > (math.MaxUint64-digit)/10 {
			return 0, &ParseError{
				Message:       "number literal " + tok.Literal + " does not fit into 64 bits",
				Position:      tok.Position,
				ErrorPosition: tok.Position,
				TokenLiteral:  tok.Literal,
				TokenLength:   tok.Length(),
				ErrorCode:     ErrorCodeNumberOverflow,
			}
		}

		value = value*10 + digit
	}

	return value, nil
}

// decodeString converts a quoted string at the given source position into its value.
// Single quoted strings are taken verbatim, double quoted strings have their escapes processed.
func decodeString(quoted string, position int) (string, *ParseError) {
	inner := quoted[1 : len(quoted)-1]

	if quoted[0] == '\'' {
		return inner, nil
	}

	if !strings.ContainsRune(inner, '\\') {
		return inner, nil
	}

	var sb strings.Builder

	sb.Grow(len(inner))

	for i := 0; i < len(inner); i++ {
		ch := inner[i]
		if ch != '\\' {
			sb.WriteByte(ch)
			continue
		}

		// The lexer guarantees a character after every backslash.
		escapeStart := i
		i++

		switch inner[i] {
		case '\\':
			sb.WriteByte('\\')
		case '"':
			sb.WriteByte('"')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'u':
			r, end, ok := decodeUnicodeEscape(inner, i+1)
			if !ok {
				return "", escapeError(ErrorCodeInvalidUnicodeEscape, inner[escapeStart:end], position+1+escapeStart,
					"invalid unicode escape "+inner[escapeStart:end])
			}

			sb.WriteRune(r)

			i = end - 1
		default:
			_, size := utf8.DecodeRuneInString(inner[i:])

			return "", escapeError(ErrorCodeInvalidEscape, inner[escapeStart:i+size], position+1+escapeStart,
				"invalid escape sequence "+inner[escapeStart:i+size])
		}
	}

	return sb.String(), nil
}

// decodeUnicodeEscape decodes `{X..X}` starting at start. It returns the rune, the index after
// the consumed text and whether the escape was valid.
func decodeUnicodeEscape(s string, start int) (rune, int, bool) {
	if start >= len(s) || s[start] != '{' {
		return 0, min(start, len(s)), false
	}

	end := strings.IndexByte(s[start:], '}')
	if end < 0 {
		return 0, len(s), false
	}

	end += start

	digits := s[start+1 : end]
	if len(digits) == 0 || len(digits) > maxUnicodeEscapeDigits {
		return 0, end + 1, false
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, end + 1, false
	}

	r := rune(value)
	if !utf8.ValidRune(r) {
		return 0, end + 1, false
	}

	return r, end + 1, true
}

func escapeError(code ErrorCode, literal string, position int, message string) *ParseError {
	return &ParseError{
		Message:       message,
		Position:      position,
		ErrorPosition: position,
		TokenLiteral:  literal,
		TokenLength:   len(literal),
		ErrorCode:     code,
	}
}

// quoteString renders s as a string literal that decodes back to s.
func quoteString(s string) string {
	if !strings.ContainsAny(s, "'") {
		return "'" + s + "'"
	}

	var sb strings.Builder

	sb.WriteByte('"')

	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}

	sb.WriteByte('"')

	return sb.String()
}
