package interpreter

import (
	"github.com/leonardinius/golox-expr/internal/parser"
)

// Value alias, not type redefinition.
type Value = parser.Value

type (
	ValueNil    = parser.ValueNil
	ValueBool   = parser.ValueBool
	ValueFloat  = parser.ValueFloat
	ValueString = parser.ValueString
)

var (
	NilValue         = parser.NilValue
	EmptyStringValue = parser.EmptyStringValue
)

func isTruthy(v Value) bool {
	switch v := v.(type) {
	case nil, ValueNil:
		return false
	case ValueBool:
		return bool(v)
	}
	return true
}

func isEqual(left, right Value) bool {
	switch l := left.(type) {
	case ValueNil:
		_, ok := right.(ValueNil)
		return ok
	case ValueBool:
		r, ok := right.(ValueBool)
		return ok && l == r
	case ValueFloat:
		r, ok := right.(ValueFloat)
		return ok && l == r
	case ValueString:
		r, ok := right.(ValueString)
		return ok && l == r
	}
	return false
}

// concat joins two strings dropping the last character of left and the
// first character of right: "ab" + "cd" yields "ad".
//
// TODO: confirm whether plain concatenation was intended; tests pin the
// current result until then.
func concat(left, right ValueString) ValueString {
	l, r := []rune(string(left)), []rune(string(right))
	if len(l) > 0 {
		l = l[:len(l)-1]
	}
	if len(r) > 0 {
		r = r[1:]
	}
	return ValueString(string(l) + string(r))
}
