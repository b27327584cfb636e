// Package symtab implements the lexically-scoped name table shared by the
// interpreter: a flat map per scope plus a parent link, walked outward on
// lookup. A fresh global table must be constructed per program run (or per
// REPL block); sharing one across runs would leak names between scripts.
package symtab

import (
	"github.com/sanmaykant/viper/internal/ast"
	"github.com/sanmaykant/viper/internal/value"
)

// Kind identifies what an Entry's name denotes.
type Kind int

const (
	DataType Kind = iota
	InbuiltFunc
	FuncDef
	Variable
)

func (k Kind) String() string {
	switch k {
	case DataType:
		return "DataType"
	case InbuiltFunc:
		return "InbuiltFunc"
	case FuncDef:
		return "FuncDef"
	case Variable:
		return "Variable"
	default:
		return "Unknown"
	}
}

// Entry is a single symbol table slot. DataType and InbuiltFunc entries
// carry no value (their Kind alone identifies them); a Variable carries a
// Value; a FuncDef carries the defining *ast.Function node.
type Entry struct {
	Kind  Kind
	Value value.Value
	Node  *ast.Function
}

// preInstalledTypes and preInstalledFuncs are the names every global scope
// starts with, per spec's "pre-installed names" list.
var (
	preInstalledTypes = []string{"num", "bool", "String"}
	preInstalledFuncs = []string{"print", "sum", "inputExpr", "inputNum"}
)

// Table is a single lexical scope: its own entries plus an optional parent
// to search when a name isn't found locally.
type Table struct {
	entries map[string]Entry
	parent  *Table
}

// New creates a child scope of parent (nil for a root scope with no
// pre-installed names — use NewGlobal for the program's root scope).
func New(parent *Table) *Table {
	return &Table{entries: make(map[string]Entry), parent: parent}
}

// NewGlobal creates a fresh root scope carrying the pre-installed type and
// built-in function entries. Call this once per program run / REPL block;
// never share one instance across runs.
func NewGlobal() *Table {
	t := New(nil)
	for _, name := range preInstalledTypes {
		t.entries[name] = Entry{Kind: DataType}
	}
	for _, name := range preInstalledFuncs {
		t.entries[name] = Entry{Kind: InbuiltFunc}
	}
	return t
}

// NewChild creates a scope whose parent is t, for entering a function body
// or block with lexical scoping.
func (t *Table) NewChild() *Table {
	return New(t)
}

// Get looks up name in t, then walks the parent chain.
func (t *Table) Get(name string) (Entry, bool) {
	if e, ok := t.entries[name]; ok {
		return e, true
	}
	if t.parent != nil {
		return t.parent.Get(name)
	}
	return Entry{}, false
}

// Has reports whether name is visible from t.
func (t *Table) Has(name string) bool {
	_, ok := t.Get(name)
	return ok
}

// Add declares name as kind Variable with the given value in t's own scope.
func (t *Table) Add(name string, val value.Value) {
	t.entries[name] = Entry{Kind: Variable, Value: val}
}

// AddFunc declares name as a FuncDef bound to node in t's own scope.
func (t *Table) AddFunc(name string, node *ast.Function) {
	t.entries[name] = Entry{Kind: FuncDef, Node: node}
}

// Update assigns a new value to an already-declared name, preserving its
// Kind, in whichever scope in the chain owns it. Reports false if name is
// not declared anywhere in the chain.
func (t *Table) Update(name string, val value.Value) bool {
	if e, ok := t.entries[name]; ok {
		e.Value = val
		t.entries[name] = e
		return true
	}
	if t.parent != nil {
		return t.parent.Update(name, val)
	}
	return false
}
