package value

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// CallMethod dispatches a chained method call on a primitive value through
// an explicit, enumerated table. Numbers and bools have no methods, so any
// chained call on them falls through to ok=false and the caller reports
// UndefinedNameError on the chained identifier.
func CallMethod(receiver Value, name string) (Value, bool) {
	s, ok := receiver.(*String)
	if !ok {
		return nil, false
	}
	switch name {
	case "upper":
		return &String{Val: upperCaser.String(s.Val)}, true
	case "lower":
		return &String{Val: lowerCaser.String(s.Val)}, true
	case "length":
		return Int(int64(utf8.RuneCountInString(norm.NFC.String(s.Val)))), true
	default:
		return nil, false
	}
}
