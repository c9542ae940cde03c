// ============================================================================
// kobraille - Korean mathematical braille transcription
// ============================================================================
//
// Package:     braille
// Description: Context-aware tree encoder placing number indicators
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package braille

import (
	"strings"

	"github.com/msto63/kobraille/internal/mathexpr/ast"
)

// Encoder renders expression trees as braille. It keeps no state between
// calls and is safe for concurrent use.
type Encoder struct {
	table *Table
}

// NewEncoder creates an encoder for table; nil selects DefaultTable.
func NewEncoder(table *Table) *Encoder {
	if table == nil {
		table = DefaultTable()
	}
	return &Encoder{table: table}
}

var defaultEncoder = NewEncoder(nil)

// Encode renders node with the default table
func Encode(node ast.Node) string {
	return defaultEncoder.Encode(node)
}

// Encode renders node. Trees must satisfy ast.ValidateTree; digits or
// operators missing from the table are copied through unchanged.
func (e *Encoder) Encode(node ast.Node) string {
	if node == nil {
		return ""
	}
	return e.encode(node, true)
}

// EncodeWithIndicator renders node with an explicit starting context. With
// indicator false a leading numeral run continues an already marked run.
func (e *Encoder) EncodeWithIndicator(node ast.Node, indicator bool) string {
	if node == nil {
		return ""
	}
	return e.encode(node, indicator)
}

func (e *Encoder) encode(node ast.Node, indicator bool) string {
	return node.Accept(cellVisitor{table: e.table, indicator: indicator}).(string)
}

// cellVisitor carries the indicator flag by value; every child visit gets
// its own copy.
type cellVisitor struct {
	table     *Table
	indicator bool
}

func (v cellVisitor) with(indicator bool) cellVisitor {
	v.indicator = indicator
	return v
}

func (v cellVisitor) VisitNumber(node *ast.Number) interface{} {
	var b strings.Builder
	if v.indicator {
		b.WriteString(v.table.Indicator)
	}
	for _, d := range node.Digits {
		if cell, ok := v.table.DigitSymbol(d); ok {
			b.WriteString(cell)
		} else {
			b.WriteRune(d)
		}
	}
	return b.String()
}

func (v cellVisitor) VisitBinaryOp(node *ast.BinaryOp) interface{} {
	op, ok := v.table.OperatorSymbol(node.Op)
	if !ok {
		op = node.Op.String()
	}
	left := node.Left.Accept(v).(string)
	right := node.Right.Accept(v.with(true)).(string)
	return left + op + right
}

func (v cellVisitor) VisitGroup(node *ast.Group) interface{} {
	inner := node.Inner.Accept(v.with(true)).(string)
	return v.table.LeftParen + inner + v.table.RightParen
}
