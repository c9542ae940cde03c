// File: errors.go
// Title: Lexical and Syntax Errors
// Description: Error types returned by the lexer and the parser. Both carry
//              positions in the normalized input and a structured code.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial error types

package parser

import (
	"fmt"
	"strings"

	kberrors "github.com/msto63/kobraille/pkg/core/errors"
)

// LexicalError reports a character the lexer does not support
type LexicalError struct {
	Char     rune   // Offending character
	Position int    // Rune offset in Input
	Input    string // Full normalized input
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at position %d: unsupported character %q in %q (supported: digits 0-9, + - * / ( ))",
		e.Position, e.Char, e.Input)
}

// Code returns kberrors.CodeLexical
func (e *LexicalError) Code() kberrors.Code {
	return kberrors.CodeLexical
}

// SyntaxError reports a token the grammar does not allow at its position
type SyntaxError struct {
	Expected []TokenType // Token kinds that would have been accepted
	Actual   Token       // Token found instead
	Position int         // Rune offset of Actual
	Reason   string      // Short description of the violated rule
}

func (e *SyntaxError) Error() string {
	expected := make([]string, len(e.Expected))
	for i, tt := range e.Expected {
		expected[i] = tt.String()
	}
	return fmt.Sprintf("syntax error at position %d: %s: expected %s, got %s",
		e.Position, e.Reason, strings.Join(expected, " or "), e.Actual)
}

// Code returns kberrors.CodeSyntax
func (e *SyntaxError) Code() kberrors.Code {
	return kberrors.CodeSyntax
}

// Expects reports whether tt is among the expected token kinds
func (e *SyntaxError) Expects(tt TokenType) bool {
	for _, x := range e.Expected {
		if x == tt {
			return true
		}
	}
	return false
}
