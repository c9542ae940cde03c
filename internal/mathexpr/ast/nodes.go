// File: nodes.go
// Title: Expression Tree Node Definitions
// Description: Defines the Number, BinaryOp and Group nodes together with
//              their positions, string forms and invariant checks.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial node definitions

package ast

import (
	"fmt"
)

// Node represents the base interface for all expression tree nodes
type Node interface {
	// String returns the structure echo of the subtree
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate checks the node invariants for the whole subtree
	Validate() error

	// exprNode seals the set of node kinds to this package
	exprNode()
}

// Position represents a position in the normalized source text
type Position struct {
	Offset int // Rune offset (0-based)
}

// Operator is one of the four supported binary operators
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
)

// Valid reports whether op is a supported operator
func (op Operator) Valid() bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	default:
		return false
	}
}

// String returns the operator symbol
func (op Operator) String() string {
	return string(op)
}

// Number represents a numeral leaf
type Number struct {
	Digits string   // One or more ASCII digits, verbatim
	Pos    Position // Source position
}

// BinaryOp represents a binary operation (left op right)
type BinaryOp struct {
	Op    Operator // Operator
	Left  Node     // Left operand
	Right Node     // Right operand
	Pos   Position // Position of the operator token
}

// Group represents a parenthesized sub-expression
type Group struct {
	Inner Node     // Enclosed expression
	Pos   Position // Position of the opening parenthesis
}

// NewNumber creates a number node
func NewNumber(digits string) *Number {
	return &Number{Digits: digits}
}

// NewBinaryOp creates a binary operation node
func NewBinaryOp(op Operator, left, right Node) *BinaryOp {
	return &BinaryOp{Op: op, Left: left, Right: right}
}

// NewGroup creates a group node
func NewGroup(inner Node) *Group {
	return &Group{Inner: inner}
}

// Implementation of Node for Number

func (n *Number) String() string {
	return n.Digits
}

func (n *Number) Accept(visitor Visitor) interface{} {
	return visitor.VisitNumber(n)
}

func (n *Number) Position() Position {
	return n.Pos
}

func (n *Number) Validate() error {
	if n.Digits == "" {
		return fmt.Errorf("number has no digits")
	}
	for i := 0; i < len(n.Digits); i++ {
		if c := n.Digits[i]; c < '0' || c > '9' {
			return fmt.Errorf("number %q contains non-digit %q", n.Digits, c)
		}
	}
	return nil
}

func (n *Number) exprNode() {}

// Implementation of Node for BinaryOp

func (b *BinaryOp) String() string {
	return Structure(b)
}

func (b *BinaryOp) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryOp(b)
}

func (b *BinaryOp) Position() Position {
	return b.Pos
}

func (b *BinaryOp) Validate() error {
	if !b.Op.Valid() {
		return fmt.Errorf("unsupported operator %q", string(b.Op))
	}
	if b.Left == nil {
		return fmt.Errorf("left operand is required")
	}
	if b.Right == nil {
		return fmt.Errorf("right operand is required")
	}
	if err := b.Left.Validate(); err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	if err := b.Right.Validate(); err != nil {
		return fmt.Errorf("right operand: %w", err)
	}
	return nil
}

func (b *BinaryOp) exprNode() {}

// Implementation of Node for Group

func (g *Group) String() string {
	return Structure(g)
}

func (g *Group) Accept(visitor Visitor) interface{} {
	return visitor.VisitGroup(g)
}

func (g *Group) Position() Position {
	return g.Pos
}

func (g *Group) Validate() error {
	if g.Inner == nil {
		return fmt.Errorf("group has no inner expression")
	}
	if err := g.Inner.Validate(); err != nil {
		return fmt.Errorf("group: %w", err)
	}
	return nil
}

func (g *Group) exprNode() {}
