package testset

import (
	"slices"
	"strings"

	"github.com/tytanic-dev/tytanic/internal/errors"
)

// Parser parses a test set expression into an AST. Parsing stops at the first error.
type Parser struct {
	lexer     *Lexer
	err       *ParseError
	query     string
	curToken  Token
	peekToken Token
}

// Operator precedence levels, loosest first.
const (
	_ int = iota
	LOWEST
	UNION                // | or
	INTERSECTION         // & and
	DIFFERENCE           // ~ diff
	SYMMETRIC_DIFFERENCE //nolint:revive // ^ xor
	PREFIX               // ! not
)

// precedences maps infix token types to their precedence levels.
var precedences = map[TokenType]int{
	PIPE:      UNION,
	OR:        UNION,
	AMPERSAND: INTERSECTION,
	AND:       INTERSECTION,
	TILDE:     DIFFERENCE,
	DIFF:      DIFFERENCE,
	CARET:     SYMMETRIC_DIFFERENCE,
	XOR:       SYMMETRIC_DIFFERENCE,
}

var infixOperators = map[TokenType]InfixOperator{
	PIPE:      OpUnion,
	OR:        OpUnion,
	AMPERSAND: OpIntersection,
	AND:       OpIntersection,
	TILDE:     OpDifference,
	DIFF:      OpDifference,
	CARET:     OpSymmetricDifference,
	XOR:       OpSymmetricDifference,
}

// Parse parses input into an expression.
func Parse(input string) (Expression, error) {
	return NewParser(input).ParseExpression()
}

// NewParser creates a new Parser for the given input.
func NewParser(input string) *Parser {
	p := &Parser{
		lexer: NewLexer(input),
		query: input,
	}

	// Read two tokens to initialize curToken and peekToken
	p.nextToken()
	p.nextToken()

	return p
}

// ParseExpression parses the whole input as a single expression.
func (p *Parser) ParseExpression() (Expression, error) {
	expr := p.parseExpression(LOWEST)

	if p.err == nil && p.peekToken.Type != EOF {
		p.failAt(p.peekToken, ErrorCodeExpectedEOF, ruleInfixOperator, EOF.Name())
	}

	if p.err != nil {
		p.err.Query = p.query
		return nil, errors.New(p.err)
	}

	return expr, nil
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lexer.NextToken()
}

// parseExpression implements precedence climbing. An operator is only consumed while it
// binds tighter than the caller's precedence, which makes all operators left-associative.
func (p *Parser) parseExpression(precedence int) Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		p.nextToken()

		left = p.parseInfixExpression(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parsePrefix() Expression {
	switch p.curToken.Type {
	case BANG, NOT:
		return p.parsePrefixExpression()
	case IDENT:
		if p.peekToken.Type == LPAREN {
			return p.parseCallExpression()
		}

		return &IdentExpression{Name: Identifier(p.curToken.Literal)}
	case NUMBER:
		value, perr := decodeNumber(p.curToken)
		if perr != nil {
			p.err = perr
			return nil
		}

		return &NumberLiteral{Value: value}
	case SQSTRING, DQSTRING:
		value, perr := decodeString(p.curToken.Literal, p.curToken.Position)
		if perr != nil {
			p.err = perr
			return nil
		}

		return &StringLiteral{Value: value}
	case PATTERN:
		return p.parsePatternLiteral()
	case LPAREN:
		return p.parseGroupedExpression()
	default:
		p.failAt(p.curToken, ErrorCodeUnexpectedToken, ruleExpression)
		return nil
	}
}

func (p *Parser) parsePrefixExpression() Expression {
	p.nextToken()

	right := p.parseExpression(PREFIX)
	if right == nil {
		return nil
	}

	return &PrefixExpression{Operator: OpComplement, Right: right}
}

func (p *Parser) parseInfixExpression(left Expression) Expression {
	operator := infixOperators[p.curToken.Type]
	precedence := p.curPrecedence()

	p.nextToken()

	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}

	return &InfixExpression{Left: left, Operator: operator, Right: right}
}

func (p *Parser) parseGroupedExpression() Expression {
	open := p.curToken

	p.nextToken()

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	if !p.expectClosingParen(open, ruleInfixOperator) {
		return nil
	}

	return expr
}

// parseCallExpression parses `name(arg, ...)`. A trailing comma is allowed.
func (p *Parser) parseCallExpression() Expression {
	call := &CallExpression{Name: Identifier(p.curToken.Literal), Arguments: []Expression{}}

	p.nextToken()
	open := p.curToken

	if p.peekToken.Type == RPAREN {
		p.nextToken()
		return call
	}

	for {
		p.nextToken()

		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}

		call.Arguments = append(call.Arguments, arg)

		if p.peekToken.Type != COMMA {
			break
		}

		p.nextToken()

		if p.peekToken.Type == RPAREN {
			break
		}
	}

	if !p.expectClosingParen(open, COMMA.Name()) {
		return nil
	}

	return call
}

func (p *Parser) parsePatternLiteral() Expression {
	tok := p.curToken
	colon := strings.IndexByte(tok.Literal, ':')
	kindStr, payload := tok.Literal[:colon], tok.Literal[colon+1:]

	kind, ok := ParsePatternKind(kindStr)
	if !ok {
		p.err = &ParseError{
			Message:       "invalid pattern kind " + kindStr + ", expected one of glob, g, regex, r, exact or e",
			Found:         kindStr,
			Position:      tok.Position,
			ErrorPosition: tok.Position,
			TokenLiteral:  kindStr,
			TokenLength:   len(kindStr),
			ErrorCode:     ErrorCodeInvalidPatternKind,
		}

		return nil
	}

	payloadPosition := tok.Position + colon + 1

	if payload == "" {
		p.err = &ParseError{
			Message:       "pattern " + kindStr + ": has no pattern",
			Position:      tok.Position,
			ErrorPosition: payloadPosition,
			TokenLiteral:  tok.Literal,
			TokenLength:   1,
			ErrorCode:     ErrorCodeEmptyPattern,
		}

		return nil
	}

	source := payload

	if payload[0] == '\'' || payload[0] == '"' {
		decoded, perr := decodeString(payload, payloadPosition)
		if perr != nil {
			p.err = perr
			return nil
		}

		source = decoded
	}

	pat, err := NewPattern(kind, source)
	if err != nil {
		code := ErrorCodeInvalidGlob
		if kind == PatternRegex {
			code = ErrorCodeInvalidRegex
		}

		p.err = &ParseError{
			Cause:         err,
			Message:       err.Error(),
			Position:      tok.Position,
			ErrorPosition: payloadPosition,
			TokenLiteral:  payload,
			TokenLength:   len(payload),
			ErrorCode:     code,
		}

		return nil
	}

	return &PatternLiteral{Pattern: pat}
}

// expectClosingParen advances onto a `)` matching open, or records an error naming the
// alternatives that would also have been valid at this point.
func (p *Parser) expectClosingParen(open Token, alternatives ...string) bool {
	if p.peekToken.Type == RPAREN {
		p.nextToken()
		return true
	}

	expected := slices.Concat(alternatives, []string{RPAREN.Name()})

	if p.peekToken.Type == EOF {
		p.err = &ParseError{
			Message:       "unclosed parenthesis, expected " + joinAlternatives(expected),
			Expected:      expected,
			Found:         EOF.Name(),
			Position:      p.peekToken.Position,
			ErrorPosition: open.Position,
			TokenLiteral:  open.Literal,
			TokenLength:   1,
			ErrorCode:     ErrorCodeMissingClosingParen,
		}

		return false
	}

	p.failAt(p.peekToken, ErrorCodeUnexpectedToken, expected...)

	return false
}

// failAt records an error for tok. Illegal tokens and the end of input get their own codes.
func (p *Parser) failAt(tok Token, code ErrorCode, expected ...string) {
	perr := &ParseError{
		Expected:      expected,
		Found:         tok.Type.Name(),
		Position:      tok.Position,
		ErrorPosition: tok.Position,
		TokenLiteral:  tok.Literal,
		TokenLength:   tok.Length(),
		ErrorCode:     code,
	}

	switch tok.Type {
	case ILLEGAL:
		if strings.ContainsAny(tok.Literal, `'"`) {
			perr.ErrorCode = ErrorCodeUnterminatedString
			perr.Message = "unterminated string literal"
			perr.TokenLength = 1
			perr.ErrorPosition = tok.Position + strings.IndexAny(tok.Literal, `'"`)

			break
		}

		perr.ErrorCode = ErrorCodeIllegalToken
		perr.Message = "illegal character " + strings.TrimSpace(tok.Literal)
	case EOF:
		perr.ErrorCode = ErrorCodeUnexpectedEOF
		perr.Message = "unexpected end of input, expected " + joinAlternatives(expected)
	default:
		perr.Message = "expected " + joinAlternatives(expected) + ", found " + tok.Type.Name()
	}

	p.err = perr
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}

	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}

	return LOWEST
}
