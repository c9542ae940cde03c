// File: parser.go
// Title: Expression Recursive Descent Parser
// Description: Builds an expression tree from a token sequence with one
//              precedence level per grammar rule and left-associative folding.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial parser implementation

package parser

import (
	"github.com/msto63/kobraille/internal/mathexpr/ast"
	kblog "github.com/msto63/kobraille/pkg/core/log"
)

// Options configures a Parser
type Options struct {
	Logger *kblog.Logger // Optional; a no-op logger is used when nil
}

// Parser turns token sequences into expression trees. It holds no per-parse
// state, so one Parser may be shared between goroutines.
type Parser struct {
	logger *kblog.Logger
}

// New creates a parser
func New(opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = kblog.NewNop()
	}
	return &Parser{logger: logger.WithField("component", "mathexpr-parser")}
}

var defaultParser = New(Options{})

// Parse builds a tree from tokens using a parser without logging
func Parse(tokens []Token) (ast.Node, error) {
	return defaultParser.Parse(tokens)
}

// ParseString tokenizes and parses text in one step
func ParseString(text string) (ast.Node, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Parse consumes the whole token sequence including its EOF token. A
// sequence without EOF behaves as if EOF followed the last token.
func (p *Parser) Parse(tokens []Token) (ast.Node, error) {
	p.logger.Trace("parsing token sequence", kblog.Field("tokens", len(tokens)))

	s := &parseState{tokens: tokens}
	node, err := s.parseExpression()
	if err == nil {
		_, err = s.expect(TokenEOF, "unexpected token after complete expression")
	}
	if err == nil && s.pos < len(s.tokens) {
		tok := s.tokens[s.pos]
		err = &SyntaxError{
			Expected: []TokenType{TokenEOF},
			Actual:   tok,
			Position: tok.Position,
			Reason:   "tokens remain after end of input",
		}
	}
	if err != nil {
		p.logger.Debug("parse failed", kblog.Err(err))
		return nil, err
	}

	p.logger.Trace("parse completed", kblog.Field("structure", ast.Structure(node)))
	return node, nil
}

type parseState struct {
	tokens []Token
	pos    int
}

func (s *parseState) current() Token {
	if s.pos < len(s.tokens) {
		return s.tokens[s.pos]
	}
	end := 0
	if n := len(s.tokens); n > 0 {
		last := s.tokens[n-1]
		end = last.Position + len([]rune(last.Value))
	}
	return Token{Type: TokenEOF, Position: end}
}

func (s *parseState) advance() Token {
	tok := s.current()
	if s.pos < len(s.tokens) {
		s.pos++
	}
	return tok
}

func (s *parseState) expect(tt TokenType, reason string) (Token, error) {
	tok := s.current()
	if tok.Type != tt {
		return tok, &SyntaxError{
			Expected: []TokenType{tt},
			Actual:   tok,
			Position: tok.Position,
			Reason:   reason,
		}
	}
	return s.advance(), nil
}

// expression := term ( ('+' | '-') term )*
func (s *parseState) parseExpression() (ast.Node, error) {
	left, err := s.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		tok := s.current()
		var op ast.Operator
		switch tok.Type {
		case TokenPlus:
			op = ast.OpAdd
		case TokenMinus:
			op = ast.OpSubtract
		default:
			return left, nil
		}
		s.advance()

		right, err := s.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right, Pos: ast.Position{Offset: tok.Position}}
	}
}

// term := factor ( ('*' | '/') factor )*
func (s *parseState) parseTerm() (ast.Node, error) {
	left, err := s.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		tok := s.current()
		var op ast.Operator
		switch tok.Type {
		case TokenStar:
			op = ast.OpMultiply
		case TokenSlash:
			op = ast.OpDivide
		default:
			return left, nil
		}
		s.advance()

		right, err := s.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right, Pos: ast.Position{Offset: tok.Position}}
	}
}

// factor := NUMBER | '(' expression ')'
func (s *parseState) parseFactor() (ast.Node, error) {
	tok := s.current()
	switch tok.Type {
	case TokenNumber:
		s.advance()
		return &ast.Number{Digits: tok.Value, Pos: ast.Position{Offset: tok.Position}}, nil

	case TokenLeftParen:
		s.advance()
		inner, err := s.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := s.expect(TokenRightParen, "unclosed parenthesis"); err != nil {
			return nil, err
		}
		return &ast.Group{Inner: inner, Pos: ast.Position{Offset: tok.Position}}, nil

	default:
		return nil, &SyntaxError{
			Expected: []TokenType{TokenNumber, TokenLeftParen},
			Actual:   tok,
			Position: tok.Position,
			Reason:   "expected a number or an opening parenthesis",
		}
	}
}
