package testset

// Lexer tokenizes a test set expression.
type Lexer struct {
	input        string // The input string being tokenized
	position     int    // Current position in input (points to current char)
	readPosition int    // Current reading position in input (after current char)
	ch           byte   // Current char under examination
}

// NewLexer creates a new Lexer for the given input string.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()

	return l
}

// NextToken reads and returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	startPosition := l.position

	if l.atEnd() {
		return NewToken(EOF, "", startPosition)
	}

	switch l.ch {
	case '(':
		return l.single(LPAREN)
	case ')':
		return l.single(RPAREN)
	case ',':
		return l.single(COMMA)
	case '!':
		return l.single(BANG)
	case '|':
		return l.single(PIPE)
	case '&':
		return l.single(AMPERSAND)
	case '~':
		return l.single(TILDE)
	case '^':
		return l.single(CARET)
	case '\'', '"':
		return l.readString(startPosition)
	}

	switch {
	case isDigit(l.ch):
		return NewToken(NUMBER, l.readWhile(isNumberChar), startPosition)
	case isLetter(l.ch):
		return l.readWord(startPosition)
	}

	return l.single(ILLEGAL)
}

// Tokens returns all tokens up to and including EOF or the first ILLEGAL token.
func (l *Lexer) Tokens() []Token {
	var tokens []Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == EOF || tok.Type == ILLEGAL {
			return tokens
		}
	}
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

// readChar advances the lexer's position and updates the current character.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPosition = len(l.input) + 1

		return
	}

	l.ch = l.input[l.readPosition]
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) single(tokenType TokenType) Token {
	tok := NewToken(tokenType, string(l.ch), l.position)
	l.readChar()

	return tok
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && isWhitespace(l.ch) {
		l.readChar()
	}
}

func (l *Lexer) readWhile(pred func(byte) bool) string {
	start := l.position

	for !l.atEnd() && pred(l.ch) {
		l.readChar()
	}

	return l.input[start:l.position]
}

// readWord reads an identifier, a keyword operator or, if the word is directly followed by
// a colon, a pattern literal.
func (l *Lexer) readWord(startPosition int) Token {
	word := l.readWhile(isIdentifierChar)

	if l.atEnd() || l.ch != ':' {
		if tokenType, ok := keywords[word]; ok {
			return NewToken(tokenType, word, startPosition)
		}

		return NewToken(IDENT, word, startPosition)
	}

	l.readChar()

	if !l.atEnd() && (l.ch == '\'' || l.ch == '"') {
		if str := l.readString(l.position); str.Type == ILLEGAL {
			return NewToken(ILLEGAL, l.input[startPosition:], startPosition)
		}
	} else {
		l.readRawPattern()
	}

	return NewToken(PATTERN, l.input[startPosition:l.position], startPosition)
}

// readRawPattern reads an unquoted pattern payload. Parentheses nest, an unmatched closing
// parenthesis ends the payload and a backslash takes the next character literally. Inside
// parentheses only whitespace ends the payload.
func (l *Lexer) readRawPattern() {
	depth := 0

	for !l.atEnd() {
		switch {
		case isWhitespace(l.ch):
			return
		case l.ch == '\\':
			l.readChar()

			if l.atEnd() || isWhitespace(l.ch) {
				return
			}
		case l.ch == '(':
			depth++
		case l.ch == ')':
			if depth == 0 {
				return
			}

			depth--
		case depth == 0 && !isRawPatternChar(l.ch):
			return
		}

		l.readChar()
	}
}

// readString reads a quoted string including its quotes. Double quoted strings may contain
// escaped quotes, single quoted strings end at the first closing quote. An unterminated
// string yields an ILLEGAL token spanning the rest of the input.
func (l *Lexer) readString(startPosition int) Token {
	quote := l.ch
	tokenType := SQSTRING

	if quote == '"' {
		tokenType = DQSTRING
	}

	l.readChar()

	for !l.atEnd() && l.ch != quote {
		if l.ch == '\\' && quote == '"' {
			l.readChar()

			if l.atEnd() {
				break
			}
		}

		l.readChar()
	}

	if l.atEnd() {
		return NewToken(ILLEGAL, l.input[startPosition:], startPosition)
	}

	l.readChar()

	return NewToken(tokenType, l.input[startPosition:l.position], startPosition)
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isNumberChar(ch byte) bool {
	return isDigit(ch) || ch == '_'
}

func isIdentifierChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '-' || ch == '_'
}

// isRawPatternChar reports whether ch may appear in an unquoted pattern payload outside of
// parentheses. Operators, commas, quotes and whitespace end the payload there.
func isRawPatternChar(ch byte) bool {
	switch ch {
	case '(', ')', ',', '\'', '"', '!', '|', '&', '~', '^':
		return false
	}

	return !isWhitespace(ch)
}
