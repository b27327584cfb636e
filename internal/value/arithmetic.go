package value

import "math"

// combineNumbers applies f to both operands' underlying float64. The
// result stays integral only when both inputs were and the operation
// didn't leave the integers — division and negative exponents can turn two
// integer operands into a fraction (or an infinity, on division by zero),
// and such a result must present as a float.
func combineNumbers(a, b *Number, f func(x, y float64) float64) *Number {
	v := f(a.Val, b.Val)
	isInt := a.IsInt && b.IsInt && v == math.Trunc(v) && !math.IsInf(v, 0)
	return &Number{Val: v, IsInt: isInt}
}

// Add implements '+'. Two Numbers add arithmetically; two Strings
// concatenate. Any other pairing is a type mismatch (ok=false), for the
// caller to report as InvalidTypeError.
func Add(a, b Value) (Value, bool) {
	switch av := a.(type) {
	case *Number:
		bv, ok := b.(*Number)
		if !ok {
			return nil, false
		}
		return combineNumbers(av, bv, func(x, y float64) float64 { return x + y }), true
	case *String:
		bv, ok := b.(*String)
		if !ok {
			return nil, false
		}
		return &String{Val: av.Val + bv.Val}, true
	default:
		return nil, false
	}
}

// Sub implements '-'. Numbers only.
func Sub(a, b Value) (Value, bool) {
	av, ok := a.(*Number)
	if !ok {
		return nil, false
	}
	bv, ok := b.(*Number)
	if !ok {
		return nil, false
	}
	return combineNumbers(av, bv, func(x, y float64) float64 { return x - y }), true
}

// Mul implements '*'. Numbers only.
func Mul(a, b Value) (Value, bool) {
	av, ok := a.(*Number)
	if !ok {
		return nil, false
	}
	bv, ok := b.(*Number)
	if !ok {
		return nil, false
	}
	return combineNumbers(av, bv, func(x, y float64) float64 { return x * y }), true
}

// Div implements '/'. Numbers only; division by zero follows Go float64
// semantics (±Inf or NaN) rather than raising, since the language has no
// exceptions.
func Div(a, b Value) (Value, bool) {
	av, ok := a.(*Number)
	if !ok {
		return nil, false
	}
	bv, ok := b.(*Number)
	if !ok {
		return nil, false
	}
	return combineNumbers(av, bv, func(x, y float64) float64 { return x / y }), true
}

// Pow implements '**' / '^'. Numbers only.
func Pow(a, b Value) (Value, bool) {
	av, ok := a.(*Number)
	if !ok {
		return nil, false
	}
	bv, ok := b.(*Number)
	if !ok {
		return nil, false
	}
	return combineNumbers(av, bv, math.Pow), true
}

// Negate implements unary '-'. Numbers only.
func Negate(v Value) (Value, bool) {
	n, ok := v.(*Number)
	if !ok {
		return nil, false
	}
	return &Number{Val: -n.Val, IsInt: n.IsInt}, true
}

// Not implements unary 'not' / '!': truthiness-based logical negation of
// any value, always succeeding.
func Not(v Value) Value {
	return &Bool{Val: !Truthy(v)}
}

// And implements the 'and' / '&&' operator. Both operands are evaluated
// eagerly by the caller; the combinator returns the left operand if falsy,
// otherwise the right one, so the result's identity is always one of the
// two evaluated operands rather than a fresh Bool.
func And(a, b Value) Value {
	if !Truthy(a) {
		return a
	}
	return b
}

// Or implements the 'or' / '|' operator: returns the left operand if
// truthy, otherwise the right one.
func Or(a, b Value) Value {
	if Truthy(a) {
		return a
	}
	return b
}
