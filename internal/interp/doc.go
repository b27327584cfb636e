// Package interp walks a Program and executes it directly against a
// symbol table — no bytecode, no separate compile pass. Every node type
// has exactly one handler, found by a type switch rather than reflection;
// a function call runs its body through a fresh Interpreter sharing the
// caller's I/O but scoped to a child symbol table.
package interp
