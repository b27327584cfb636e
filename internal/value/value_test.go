package value

import "testing"

func TestAddNumbersStaysIntegral(t *testing.T) {
	got, ok := Add(Int(2), Int(3))
	if !ok {
		t.Fatal("expected ok")
	}
	n := got.(*Number)
	if !n.IsInt || n.Val != 5 {
		t.Errorf("got %#v, want int 5", n)
	}
}

func TestAddMixedIntFloatYieldsFloat(t *testing.T) {
	got, ok := Add(Int(2), Float(0.5))
	if !ok {
		t.Fatal("expected ok")
	}
	n := got.(*Number)
	if n.IsInt || n.Val != 2.5 {
		t.Errorf("got %#v, want float 2.5", n)
	}
}

func TestAddStringsConcatenates(t *testing.T) {
	got, ok := Add(&String{Val: "foo"}, &String{Val: "bar"})
	if !ok || got.String() != "foobar" {
		t.Errorf("got %v, ok=%v", got, ok)
	}
}

func TestAddTypeMismatch(t *testing.T) {
	if _, ok := Add(Int(1), &String{Val: "x"}); ok {
		t.Error("expected type mismatch")
	}
}

func TestSubMulDivPow(t *testing.T) {
	if got, _ := Sub(Int(5), Int(2)); got.String() != "3" {
		t.Errorf("Sub = %v", got)
	}
	if got, _ := Mul(Int(5), Int(2)); got.String() != "10" {
		t.Errorf("Mul = %v", got)
	}
	if got, _ := Div(Float(5), Float(2)); got.String() != "2.5" {
		t.Errorf("Div = %v", got)
	}
	if got, _ := Pow(Int(2), Int(3)); got.String() != "8" {
		t.Errorf("Pow = %v", got)
	}
}

func TestDivisionLeavesIntegersWhenInexact(t *testing.T) {
	if got, _ := Div(Int(10), Int(2)); got.String() != "5" {
		t.Errorf("10/2 = %v, want 5", got)
	}
	exact, _ := Div(Int(10), Int(4))
	if n := exact.(*Number); n.IsInt || n.String() != "2.5" {
		t.Errorf("10/4 = %#v, want float 2.5", n)
	}
	byZero, _ := Div(Int(1), Int(0))
	if n := byZero.(*Number); n.IsInt {
		t.Errorf("1/0 should not present as an integer, got %#v", n)
	}
	frac, _ := Pow(Int(2), &Number{Val: -1, IsInt: true})
	if n := frac.(*Number); n.IsInt || n.String() != "0.5" {
		t.Errorf("2^-1 = %#v, want float 0.5", n)
	}
}

func TestNegateAndNot(t *testing.T) {
	n, ok := Negate(Int(5))
	if !ok || n.String() != "-5" {
		t.Errorf("Negate = %v, ok=%v", n, ok)
	}
	if Not(&Bool{Val: false}).(*Bool).Val != true {
		t.Error("Not(false) should be true")
	}
	if Not(&String{Val: ""}).(*Bool).Val != true {
		t.Error("Not(empty string) should be true")
	}
}

func TestAndOrReturnOperandIdentity(t *testing.T) {
	left := &Bool{Val: false}
	right := Int(9)
	if And(left, right) != Value(left) {
		t.Error("And should short-circuit to the falsy left operand")
	}

	truthyLeft := Int(1)
	if Or(truthyLeft, right) != Value(truthyLeft) {
		t.Error("Or should short-circuit to the truthy left operand")
	}
	if Or(&Bool{Val: false}, right) != Value(right) {
		t.Error("Or should fall through to the right operand when left is falsy")
	}
}

func TestOrderingStringsAndNumbers(t *testing.T) {
	lt, ok := Less(Int(1), Int(2))
	if !ok || !lt.(*Bool).Val {
		t.Errorf("1 < 2 should be true")
	}
	lt, ok = Less(&String{Val: "apple"}, &String{Val: "banana"})
	if !ok || !lt.(*Bool).Val {
		t.Errorf("'apple' < 'banana' should be true")
	}
}

func TestOrderingRejectsBoolAndCrossType(t *testing.T) {
	if _, ok := Less(&Bool{Val: true}, &Bool{Val: false}); ok {
		t.Error("ordering on Bool should be rejected")
	}
	if _, ok := Less(Int(1), &String{Val: "1"}); ok {
		t.Error("ordering across types should be rejected")
	}
}

func TestEqualityNeverErrorsAcrossTypes(t *testing.T) {
	if Equal(Int(1), &String{Val: "1"}).(*Bool).Val {
		t.Error("cross-type equality should be false, not an error")
	}
	if !NotEqual(Int(1), &String{Val: "1"}).(*Bool).Val {
		t.Error("cross-type inequality should be true")
	}
}

func TestEqualityAgainstNilSentinel(t *testing.T) {
	if Equal(Int(1), nil).(*Bool).Val {
		t.Error("x == null should be false")
	}
	if !NotEqual(Int(1), nil).(*Bool).Val {
		t.Error("x != null should be true")
	}
}

func TestTruthiness(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{&Bool{Val: true}, true},
		{&Bool{Val: false}, false},
		{Int(0), false},
		{Int(1), true},
		{&String{Val: ""}, false},
		{&String{Val: "x"}, true},
	}
	for _, c := range cases {
		if got := Truthy(c.v); got != c.want {
			t.Errorf("Truthy(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestCallMethodStringTable(t *testing.T) {
	s := &String{Val: "Hello"}
	if got, ok := CallMethod(s, "upper"); !ok || got.String() != "HELLO" {
		t.Errorf("upper() = %v, ok=%v", got, ok)
	}
	if got, ok := CallMethod(s, "lower"); !ok || got.String() != "hello" {
		t.Errorf("lower() = %v, ok=%v", got, ok)
	}
	if got, ok := CallMethod(s, "length"); !ok || got.String() != "5" {
		t.Errorf("length() = %v, ok=%v", got, ok)
	}
	if _, ok := CallMethod(s, "reverse"); ok {
		t.Error("unknown method should report ok=false")
	}
	if _, ok := CallMethod(Int(5), "upper"); ok {
		t.Error("methods on Number should report ok=false")
	}
}
