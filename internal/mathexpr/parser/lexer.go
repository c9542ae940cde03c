// File: lexer.go
// Title: Expression Lexical Analyzer (Tokenizer)
// Description: Converts normalized expression text into a token sequence
//              terminated by a single EOF token, with rune positions for
//              error reporting.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"strings"
	"unicode"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenEOF TokenType = iota

	TokenNumber // 0, 42, 007

	// Operators
	TokenPlus  // +
	TokenMinus // -
	TokenStar  // *
	TokenSlash // /

	// Delimiters
	TokenLeftParen  // (
	TokenRightParen // )
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenNumber:
		return "NUMBER"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	default:
		return "UNKNOWN"
	}
}

// MarshalText encodes the token type by name
func (tt TokenType) MarshalText() ([]byte, error) {
	return []byte(tt.String()), nil
}

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType `json:"type"`            // Token type
	Value    string    `json:"value,omitempty"` // Exact source text
	Position int       `json:"position"`        // Rune offset in the normalized input
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type, t.Value)
}

var singleCharTokens = map[rune]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'(': TokenLeftParen,
	')': TokenRightParen,
}

// Normalize removes every '$' inline-math delimiter and trims surrounding
// whitespace.
func Normalize(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "$", ""))
}

// Lexer performs lexical analysis of expression text
type Lexer struct {
	text     string // Normalized input
	input    []rune // Normalized input as runes
	position int    // Current rune offset
}

// NewLexer creates a new lexer for the given raw input
func NewLexer(text string) *Lexer {
	normalized := Normalize(text)
	return &Lexer{
		text:  normalized,
		input: []rune(normalized),
	}
}

// Input returns the normalized text the lexer scans
func (l *Lexer) Input() string {
	return l.text
}

// NextToken returns the next token. Once the input is exhausted it keeps
// returning EOF.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	if l.position >= len(l.input) {
		return Token{Type: TokenEOF, Position: len(l.input)}, nil
	}

	ch := l.input[l.position]

	if isDigit(ch) {
		return l.readNumber(), nil
	}

	if tt, ok := singleCharTokens[ch]; ok {
		tok := Token{Type: tt, Value: string(ch), Position: l.position}
		l.position++
		return tok, nil
	}

	return Token{}, &LexicalError{Char: ch, Position: l.position, Input: l.text}
}

// Tokenize scans the whole input. The result always ends with exactly one
// EOF token.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

// Tokenize normalizes and scans text
func Tokenize(text string) ([]Token, error) {
	return NewLexer(text).Tokenize()
}

func (l *Lexer) skipWhitespace() {
	for l.position < len(l.input) && unicode.IsSpace(l.input[l.position]) {
		l.position++
	}
}

func (l *Lexer) readNumber() Token {
	start := l.position
	for l.position < len(l.input) && isDigit(l.input[l.position]) {
		l.position++
	}
	return Token{
		Type:     TokenNumber,
		Value:    string(l.input[start:l.position]),
		Position: start,
	}
}

// isDigit accepts ASCII digits only; other Unicode digits are lexical errors.
func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
