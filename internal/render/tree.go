// ============================================================================
// kobraille - Korean mathematical braille transcription
// ============================================================================
//
// Package:     render
// Description: Styled expression tree rendering with lipgloss/tree
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package render

import (
	"github.com/charmbracelet/lipgloss/tree"

	kbast "github.com/msto63/kobraille/internal/mathexpr/ast"
)

// Tree builds a lipgloss tree for node. Children are labelled [L], [R] and
// [inner] like ast.Dump.
func Tree(node kbast.Node, styles Styles) *tree.Tree {
	if node == nil {
		return tree.Root("")
	}
	v := treeVisitor{styles: styles}
	switch t := node.Accept(v).(type) {
	case *tree.Tree:
		return t
	default:
		return tree.Root(t)
	}
}

// TreeString renders node as a styled tree
func TreeString(node kbast.Node, styles Styles) string {
	return Tree(node, styles).String()
}

// treeVisitor returns a string for leaves and a *tree.Tree for inner nodes
type treeVisitor struct {
	styles Styles
	edge   string
}

func (v treeVisitor) child(edge string) treeVisitor {
	v.edge = edge
	return v
}

func (v treeVisitor) label(text string) string {
	if v.edge == "" {
		return text
	}
	return v.styles.Edge.Render(v.edge) + " " + text
}

func (v treeVisitor) branch(root string) *tree.Tree {
	return tree.Root(root).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(v.styles.Branch)
}

func (v treeVisitor) VisitNumber(node *kbast.Number) interface{} {
	return v.label(v.styles.Number.Render("Number(" + node.Digits + ")"))
}

func (v treeVisitor) VisitBinaryOp(node *kbast.BinaryOp) interface{} {
	root := v.label("BinaryOp(" + v.styles.Operator.Render(node.Op.String()) + ")")
	return v.branch(root).Child(
		node.Left.Accept(v.child("[L]")),
		node.Right.Accept(v.child("[R]")),
	)
}

func (v treeVisitor) VisitGroup(node *kbast.Group) interface{} {
	root := v.label(v.styles.Group.Render("Group"))
	return v.branch(root).Child(node.Inner.Accept(v.child("[inner]")))
}
