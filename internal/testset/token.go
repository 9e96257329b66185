package testset

// TokenType represents the type of a token.
type TokenType int

const (
	// ILLEGAL is a character that cannot start any token, or an unterminated string.
	ILLEGAL TokenType = iota
	EOF

	IDENT
	NUMBER
	SQSTRING // 'raw string'
	DQSTRING // "escaped string"
	PATTERN  // kind:payload

	LPAREN
	RPAREN
	COMMA

	BANG // !
	NOT  // not

	PIPE // |
	OR   // or

	AMPERSAND // &
	AND       // and

	TILDE // ~
	DIFF  // diff

	CARET // ^
	XOR   // xor
)

// Descriptive names of rules that are not single tokens, used in error messages.
const (
	ruleExpression    = "expression"
	ruleInfixOperator = "infix operator"
)

type tokenInfo struct {
	name    string
	example string
}

var tokenInfos = map[TokenType]tokenInfo{
	ILLEGAL:   {name: "illegal character", example: "<illegal>"},
	EOF:       {name: "EOI", example: "<EOI>"},
	IDENT:     {name: "identifier", example: "<ident>"},
	NUMBER:    {name: "number", example: "<number>"},
	SQSTRING:  {name: "single quoted string", example: "'...'"},
	DQSTRING:  {name: "double quoted string", example: `"..."`},
	PATTERN:   {name: "pattern", example: "<kind>:<pattern>"},
	LPAREN:    {name: "opening parenthesis", example: "("},
	RPAREN:    {name: "closing parenthesis", example: ")"},
	COMMA:     {name: "comma", example: ","},
	BANG:      {name: "symbol complement op", example: "!"},
	NOT:       {name: "literal complement op", example: "not"},
	PIPE:      {name: "symbol union op", example: "|"},
	OR:        {name: "literal union op", example: "or"},
	AMPERSAND: {name: "symbol intersection op", example: "&"},
	AND:       {name: "literal intersection op", example: "and"},
	TILDE:     {name: "symbol difference op", example: "~"},
	DIFF:      {name: "literal difference op", example: "diff"},
	CARET:     {name: "symbol symmetric difference op", example: "^"},
	XOR:       {name: "literal symmetric difference op", example: "xor"},
}

// Name returns the human readable name of the token type used in error messages.
func (t TokenType) Name() string {
	return tokenInfos[t].name
}

// Example returns an example of how the token looks in source.
func (t TokenType) Example() string {
	return tokenInfos[t].example
}

func (t TokenType) String() string {
	return t.Name()
}

var keywords = map[string]TokenType{
	"not":  NOT,
	"or":   OR,
	"and":  AND,
	"diff": DIFF,
	"xor":  XOR,
}

// Token represents a lexical token with its type, raw source text and byte offset.
type Token struct {
	Literal  string
	Type     TokenType
	Position int
}

// NewToken creates a new token.
func NewToken(tokenType TokenType, literal string, position int) Token {
	return Token{
		Type:     tokenType,
		Literal:  literal,
		Position: position,
	}
}

// Length returns the length of the token in the source, at least one so a caret can point at it.
func (t Token) Length() int {
	return max(len(t.Literal), 1)
}
