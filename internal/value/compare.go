package value

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator is a single shared collator for lexicographic String ordering
// (collate.New + language.Und, no particular locale favoured).
var collator = collate.New(language.Und)

// Less, Greater, LessEq, GreaterEq implement '<' '>' '<=' '>=': numeric
// ordering for two Numbers, lexicographic ordering for two Strings. Any
// other pairing, including Bool on either side, is a type mismatch.
func Less(a, b Value) (Value, bool) {
	switch av := a.(type) {
	case *Number:
		bv, ok := b.(*Number)
		if !ok {
			return nil, false
		}
		return &Bool{Val: av.Val < bv.Val}, true
	case *String:
		bv, ok := b.(*String)
		if !ok {
			return nil, false
		}
		return &Bool{Val: collator.CompareString(av.Val, bv.Val) < 0}, true
	default:
		return nil, false
	}
}

func Greater(a, b Value) (Value, bool) {
	switch av := a.(type) {
	case *Number:
		bv, ok := b.(*Number)
		if !ok {
			return nil, false
		}
		return &Bool{Val: av.Val > bv.Val}, true
	case *String:
		bv, ok := b.(*String)
		if !ok {
			return nil, false
		}
		return &Bool{Val: collator.CompareString(av.Val, bv.Val) > 0}, true
	default:
		return nil, false
	}
}

func LessEq(a, b Value) (Value, bool) {
	switch av := a.(type) {
	case *Number:
		bv, ok := b.(*Number)
		if !ok {
			return nil, false
		}
		return &Bool{Val: av.Val <= bv.Val}, true
	case *String:
		bv, ok := b.(*String)
		if !ok {
			return nil, false
		}
		return &Bool{Val: collator.CompareString(av.Val, bv.Val) <= 0}, true
	default:
		return nil, false
	}
}

func GreaterEq(a, b Value) (Value, bool) {
	switch av := a.(type) {
	case *Number:
		bv, ok := b.(*Number)
		if !ok {
			return nil, false
		}
		return &Bool{Val: av.Val >= bv.Val}, true
	case *String:
		bv, ok := b.(*String)
		if !ok {
			return nil, false
		}
		return &Bool{Val: collator.CompareString(av.Val, bv.Val) >= 0}, true
	default:
		return nil, false
	}
}

// Equal and NotEqual implement '==' and '!=': a nil operand stands for the
// absent/null sentinel, against which == is always false and != always
// true. Otherwise, differing dataTypes compare unequal rather than
// erroring (equality never raises InvalidTypeError, unlike ordering).
func Equal(a, b Value) Value {
	if a == nil || b == nil {
		return &Bool{Val: a == nil && b == nil}
	}
	if a.Type() != b.Type() {
		return &Bool{Val: false}
	}
	switch av := a.(type) {
	case *Number:
		return &Bool{Val: av.Val == b.(*Number).Val}
	case *String:
		return &Bool{Val: av.Val == b.(*String).Val}
	case *Bool:
		return &Bool{Val: av.Val == b.(*Bool).Val}
	default:
		return &Bool{Val: false}
	}
}

func NotEqual(a, b Value) Value {
	eq := Equal(a, b).(*Bool)
	return &Bool{Val: !eq.Val}
}
