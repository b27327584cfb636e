package value

import "strconv"

// dataType tags, matching the domain {"num", "bool", "String", "func"}.
const (
	TypeNum    = "num"
	TypeBool   = "bool"
	TypeString = "String"
	TypeFunc   = "func"
)

// Value is satisfied by every runtime value. All three concrete kinds are
// immutable after construction; arithmetic always produces a fresh value.
type Value interface {
	Type() string
	String() string
}

// Number is Viper's single numeric kind. IsInt records whether the value
// came from (or still behaves like) an integer literal so that op results
// stay integral when both operands are, and falls back to float
// presentation as soon as either side isn't.
type Number struct {
	Val   float64
	IsInt bool
}

// Int wraps a Go int64 as an integer Number.
func Int(v int64) *Number { return &Number{Val: float64(v), IsInt: true} }

// Float wraps a Go float64 as a floating-point Number.
func Float(v float64) *Number { return &Number{Val: v} }

func (n *Number) Type() string { return TypeNum }

func (n *Number) String() string {
	if n.IsInt {
		return strconv.FormatInt(int64(n.Val), 10)
	}
	return strconv.FormatFloat(n.Val, 'g', -1, 64)
}

// Int64 truncates the number toward zero, for contexts that need an index
// or count.
func (n *Number) Int64() int64 { return int64(n.Val) }

// String is Viper's text kind. Delimiters are already stripped by the
// lexer, so Val holds the bare contents.
type String struct {
	Val string
}

func (s *String) Type() string   { return TypeString }
func (s *String) String() string { return s.Val }

// Bool is Viper's boolean kind.
type Bool struct {
	Val bool
}

func (b *Bool) Type() string { return TypeBool }

func (b *Bool) String() string {
	if b.Val {
		return "true"
	}
	return "false"
}

// Truthy reduces any value to a boolean: Bool(true), a non-zero Number, and
// a non-empty String are truthy; everything else, including a nil Value,
// is falsy.
func Truthy(v Value) bool {
	switch vv := v.(type) {
	case *Number:
		return vv.Val != 0
	case *String:
		return vv.Val != ""
	case *Bool:
		return vv.Val
	default:
		return false
	}
}
