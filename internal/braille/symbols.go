// ============================================================================
// kobraille - Korean mathematical braille transcription
// ============================================================================
//
// Package:     braille
// Description: Symbol table mapping source symbols to braille cells
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package braille

import (
	"fmt"

	"github.com/msto63/kobraille/internal/mathexpr/ast"
)

// Fixed cells of the Korean mathematical braille standard
const (
	Indicator  = "⠼"
	LeftParen  = "⠦"
	RightParen = "⠴"
)

// Table maps source symbols to braille cell sequences
type Table struct {
	Indicator  string
	Digits     [10]string
	Operators  map[ast.Operator]string
	LeftParen  string
	RightParen string
}

var korean = Table{
	Indicator: Indicator,
	Digits:    [10]string{"⠚", "⠁", "⠃", "⠉", "⠙", "⠑", "⠋", "⠛", "⠓", "⠊"},
	Operators: map[ast.Operator]string{
		ast.OpAdd:      "⠢",
		ast.OpSubtract: "⠔",
		ast.OpMultiply: "⠡",
		ast.OpDivide:   "⠌⠌",
	},
	LeftParen:  LeftParen,
	RightParen: RightParen,
}

// DefaultTable returns the Korean mathematical braille table. The table is
// shared; callers must not modify it.
func DefaultTable() *Table {
	return &korean
}

// DigitSymbol returns the cell for an ASCII digit
func (t *Table) DigitSymbol(d rune) (string, bool) {
	if d < '0' || d > '9' {
		return "", false
	}
	return t.Digits[d-'0'], true
}

// OperatorSymbol returns the cell sequence for op
func (t *Table) OperatorSymbol(op ast.Operator) (string, bool) {
	s, ok := t.Operators[op]
	return s, ok
}

// DigitSymbol looks d up in the default table
func DigitSymbol(d rune) (string, bool) {
	return korean.DigitSymbol(d)
}

// OperatorSymbol looks op up in the default table
func OperatorSymbol(op ast.Operator) (string, bool) {
	return korean.OperatorSymbol(op)
}

// Validate checks that the table covers every symbol a parsed tree can hold
func (t *Table) Validate() error {
	if t.Indicator == "" {
		return fmt.Errorf("braille table: empty number indicator")
	}
	for d, cell := range t.Digits {
		if cell == "" {
			return fmt.Errorf("braille table: no cell for digit %d", d)
		}
	}
	for _, op := range []ast.Operator{ast.OpAdd, ast.OpSubtract, ast.OpMultiply, ast.OpDivide} {
		if t.Operators[op] == "" {
			return fmt.Errorf("braille table: no cells for operator %q", op)
		}
	}
	if t.LeftParen == "" || t.RightParen == "" {
		return fmt.Errorf("braille table: missing bracket cells")
	}
	return nil
}
