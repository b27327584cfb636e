// Package ast defines the node types produced by the parser and walked by
// the interpreter: literals, identifiers, operators, assignment, control
// flow, functions, and calls.
package ast
