// File: doc.go
// Title: Expression Tree Package Documentation
// Description: Defines the typed expression tree produced by the parser and
//              the visitor contract used by every renderer of that tree.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial expression tree

/*
Package ast defines the expression tree for arithmetic expressions.

The tree has exactly three node kinds:

  • Number   - a run of ASCII digits kept verbatim ("007" stays "007")
  • BinaryOp - one of + - * / with owned left and right operands
  • Group    - a parenthesized sub-expression

Renderers implement Visitor, one method per node kind, and call
Node.Accept to dispatch. New renderers never require changes to the nodes.
The package ships two of them: Structure, a fully parenthesized echo used to
check precedence, and Dump, an indented diagnostic listing.
*/
package ast
