// Package parser builds a Program from a token stream: a fixed-order
// recursive-descent statement dispatcher (ifElse, function, return,
// forLoop, callable, assign, reassign — the first builder that matches
// wins) feeding a fixed-precedence expression chain (logicalExpr ->
// compExpr -> mathExpr -> factor -> term). There is no Pratt table and no
// precedence climbing; the grammar's shape is the precedence.
package parser
