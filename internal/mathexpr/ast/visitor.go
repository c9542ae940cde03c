// File: visitor.go
// Title: Expression Tree Visitor Pattern Implementation
// Description: Declares the Visitor contract and the renderers built on it:
//              structure echo, indented dump, numeral collection and tree
//              ownership validation.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial visitor implementations

package ast

import (
	"fmt"
	"strings"
)

// Visitor has one method per node kind. Accept calls exactly one of them.
type Visitor interface {
	VisitNumber(node *Number) interface{}
	VisitBinaryOp(node *BinaryOp) interface{}
	VisitGroup(node *Group) interface{}
}

// StructureVisitor reconstructs a fully parenthesized form of the tree:
// every BinaryOp becomes "(left op right)" and every Group "[inner]", so
// the grouping the parser chose is visible independently of the source.
type StructureVisitor struct{}

func (sv StructureVisitor) VisitNumber(node *Number) interface{} {
	return node.Digits
}

func (sv StructureVisitor) VisitBinaryOp(node *BinaryOp) interface{} {
	left := node.Left.Accept(sv).(string)
	right := node.Right.Accept(sv).(string)
	return fmt.Sprintf("(%s %s %s)", left, node.Op, right)
}

func (sv StructureVisitor) VisitGroup(node *Group) interface{} {
	return "[" + node.Inner.Accept(sv).(string) + "]"
}

// DumpVisitor renders an indented, labelled listing of the tree
type DumpVisitor struct {
	buffer strings.Builder
	indent int
	label  string
}

// NewDumpVisitor creates a new dump visitor
func NewDumpVisitor() *DumpVisitor {
	return &DumpVisitor{}
}

// String returns the built listing
func (dv *DumpVisitor) String() string {
	return dv.buffer.String()
}

// Reset clears the internal buffer
func (dv *DumpVisitor) Reset() {
	dv.buffer.Reset()
	dv.indent = 0
	dv.label = ""
}

func (dv *DumpVisitor) writePrefix() {
	for i := 0; i < dv.indent; i++ {
		dv.buffer.WriteString("  ")
	}
	if dv.label != "" {
		dv.buffer.WriteString("[" + dv.label + "] ")
	}
}

func (dv *DumpVisitor) child(label string, node Node) {
	dv.indent++
	dv.label = label
	node.Accept(dv)
	dv.indent--
}

func (dv *DumpVisitor) VisitNumber(node *Number) interface{} {
	dv.writePrefix()
	dv.buffer.WriteString(fmt.Sprintf("Number(%s)\n", node.Digits))
	return nil
}

func (dv *DumpVisitor) VisitBinaryOp(node *BinaryOp) interface{} {
	dv.writePrefix()
	dv.buffer.WriteString(fmt.Sprintf("BinaryOp(%s)\n", node.Op))
	dv.child("L", node.Left)
	dv.child("R", node.Right)
	return nil
}

func (dv *DumpVisitor) VisitGroup(node *Group) interface{} {
	dv.writePrefix()
	dv.buffer.WriteString("Group\n")
	dv.child("inner", node.Inner)
	return nil
}

// CollectorVisitor collects the numerals of a tree in source order
type CollectorVisitor struct {
	Numbers []*Number
}

func (cv *CollectorVisitor) VisitNumber(node *Number) interface{} {
	cv.Numbers = append(cv.Numbers, node)
	return nil
}

func (cv *CollectorVisitor) VisitBinaryOp(node *BinaryOp) interface{} {
	node.Left.Accept(cv)
	node.Right.Accept(cv)
	return nil
}

func (cv *CollectorVisitor) VisitGroup(node *Group) interface{} {
	node.Inner.Accept(cv)
	return nil
}

// ownershipVisitor rejects trees in which a node is reachable twice,
// which covers both shared subtrees and cycles.
type ownershipVisitor struct {
	seen map[Node]bool
	err  error
}

func (ov *ownershipVisitor) enter(node Node) bool {
	if ov.err != nil {
		return false
	}
	if ov.seen[node] {
		ov.err = fmt.Errorf("node %T at offset %d is reachable more than once", node, node.Position().Offset)
		return false
	}
	ov.seen[node] = true
	return true
}

func (ov *ownershipVisitor) visitChild(parent string, node Node) {
	if node == nil {
		if ov.err == nil {
			ov.err = fmt.Errorf("%s has a nil child", parent)
		}
		return
	}
	node.Accept(ov)
}

func (ov *ownershipVisitor) VisitNumber(node *Number) interface{} {
	ov.enter(node)
	return nil
}

func (ov *ownershipVisitor) VisitBinaryOp(node *BinaryOp) interface{} {
	if ov.enter(node) {
		ov.visitChild("binary operation", node.Left)
		ov.visitChild("binary operation", node.Right)
	}
	return nil
}

func (ov *ownershipVisitor) VisitGroup(node *Group) interface{} {
	if ov.enter(node) {
		ov.visitChild("group", node.Inner)
	}
	return nil
}

// Utility functions for working with visitors

// Structure returns the fully parenthesized echo of a tree
func Structure(node Node) string {
	return node.Accept(StructureVisitor{}).(string)
}

// Dump returns an indented listing of a tree for diagnostics
func Dump(node Node) string {
	visitor := NewDumpVisitor()
	node.Accept(visitor)
	return visitor.String()
}

// Numbers returns the numerals of a tree from left to right
func Numbers(node Node) []*Number {
	visitor := &CollectorVisitor{}
	node.Accept(visitor)
	return visitor.Numbers
}

// ValidateTree checks exclusive ownership first and then the per-node
// invariants. Ownership is checked first because Validate recurses and
// would not terminate on a cyclic tree.
func ValidateTree(node Node) error {
	if node == nil {
		return fmt.Errorf("tree is empty")
	}
	ov := &ownershipVisitor{seen: make(map[Node]bool)}
	node.Accept(ov)
	if ov.err != nil {
		return ov.err
	}
	return node.Validate()
}
