package parser

import (
	"math"
	"strconv"
	"strings"
)

type ValueType uint

const (
	ValueNilType ValueType = iota
	ValueBoolType
	ValueFloatType
	ValueStringType
)

var valueTypeNames = [...]string{
	ValueNilType:    "nil",
	ValueBoolType:   "boolean",
	ValueFloatType:  "number",
	ValueStringType: "string",
}

// String implements fmt.Stringer.
func (t ValueType) String() string {
	if int(t) < len(valueTypeNames) {
		return valueTypeNames[t]
	}
	return "unknown"
}

// Value is a runtime value: nil, boolean, number or string.
//
// The set is closed, consumers switch over the concrete types.
type Value interface {
	Type() ValueType
	String() string
	value()
}

type (
	ValueNil    struct{}
	ValueBool   bool
	ValueFloat  float64
	ValueString string
)

var (
	NilValue         = ValueNil{}
	TrueValue        = ValueBool(true)
	FalseValue       = ValueBool(false)
	EmptyStringValue = ValueString("")
)

// Type implements Value.
func (v ValueNil) Type() ValueType {
	return ValueNilType
}

// Type implements Value.
func (v ValueBool) Type() ValueType {
	return ValueBoolType
}

// Type implements Value.
func (v ValueFloat) Type() ValueType {
	return ValueFloatType
}

// Type implements Value.
func (v ValueString) Type() ValueType {
	return ValueStringType
}

// String implements Value.
func (v ValueNil) String() string {
	return "nil"
}

// String implements Value.
func (v ValueBool) String() string {
	return strconv.FormatBool(bool(v))
}

// String implements Value.
// Numbers use the shortest decimal form that round-trips, independent of locale.
func (v ValueFloat) String() string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String implements Value.
func (v ValueString) String() string {
	return string(v)
}

func (ValueNil) value()    {}
func (ValueBool) value()   {}
func (ValueFloat) value()  {}
func (ValueString) value() {}

// Stringify renders a value the way results are shown to the user.
// Finite numbers always carry a fractional part: 4 renders as "4.0".
func Stringify(v Value) string {
	if v == nil {
		return NilValue.String()
	}

	s := v.String()
	if f, ok := v.(ValueFloat); ok && !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0) {
		if !strings.Contains(s, ".") {
			s += ".0"
		}
	}
	return s
}

// LiteralValue converts a scanned token literal into a Value.
func LiteralValue(literal any) Value {
	switch v := literal.(type) {
	case nil:
		return NilValue
	case bool:
		return ValueBool(v)
	case float64:
		return ValueFloat(v)
	case string:
		return ValueString(v)
	case Value:
		return v
	}
	panic("unreachable")
}

var (
	_ Value = ValueNil{}
	_ Value = ValueBool(false)
	_ Value = ValueFloat(0)
	_ Value = ValueString("")
)
