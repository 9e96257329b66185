package testset

import (
	"strings"
)

// GetHint returns a hint for a parse error, or an empty string if there is nothing useful to say.
func GetHint(code ErrorCode, token, query string, position int) string {
	switch code {
	case ErrorCodeUnexpectedToken, ErrorCodeExpectedEOF:
		return getUnexpectedTokenHint(token, query, position)
	case ErrorCodeUnexpectedEOF:
		return "The expression is incomplete. Make sure every operator has operands on both sides."
	case ErrorCodeMissingClosingParen:
		return "Add a ')' to close the parenthesis opened here."
	case ErrorCodeIllegalToken:
		return "This character is not recognized. Valid operators: | & ~ ^ ! and or diff xor not"
	case ErrorCodeUnterminatedString:
		return "Close the string with the same quote it was opened with."
	case ErrorCodeInvalidEscape:
		return `Valid escapes are \\ \" \n \r \t and \u{...}. Use a single quoted string to avoid escapes.`
	case ErrorCodeInvalidUnicodeEscape:
		return `Unicode escapes take 1 to 6 hex digits in braces, e.g. \u{1F600}.`
	case ErrorCodeInvalidPatternKind:
		return "Patterns are written as glob:, regex: or exact: (or g:, r:, e:) followed by the pattern."
	case ErrorCodeEmptyPattern:
		return "Quote the pattern if it contains whitespace or operators, e.g. g:'foo bar/*'"
	case ErrorCodeNumberOverflow:
		return "Numbers must be smaller than 2^64."

	case ErrorCodeInvalidGlob, ErrorCodeInvalidRegex, ErrorCodeUnknown:
		return ""
	}

	return ""
}

func getUnexpectedTokenHint(token, query string, position int) string {
	if position > 0 && position <= len(query) {
		before := strings.TrimRight(query[:position], " \t\r\n")
		if before != "" && endsOperand(before) && isLetter(firstByte(token)) {
			return "Two expressions must be combined with an operator such as '|' or '&'."
		}
	}

	switch token {
	case ")":
		return "Unexpected ')' without matching '('."
	case ",":
		return "Commas only separate function arguments."
	case "|", "&", "~", "^", "or", "and", "diff", "xor":
		return "Binary operators need an expression on both sides."
	}

	return ""
}

func firstByte(s string) byte {
	if s == "" {
		return 0
	}

	return s[0]
}

func endsOperand(s string) bool {
	last := s[len(s)-1]
	return isIdentifierChar(last) || last == ')' || last == '\'' || last == '"'
}
