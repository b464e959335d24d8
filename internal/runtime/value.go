// Package runtime provides the shared value model for the brio
// interpreter and bytecode VM: a small tagged union over integers,
// floats, booleans and strings, plus the operator semantics, truthiness
// convention and textual forms both back-ends must agree on.
package runtime

import (
	"strconv"
)

// ValueType represents the type tag for a Value.
type ValueType byte

const (
	// ValueUnset is the zero Value; it marks uninitialized variable slots
	// and never escapes into a program's observable state.
	ValueUnset ValueType = iota
	ValueInt
	ValueFloat
	ValueBool
	ValueString
)

// valueTypeNames maps value types to their names for error messages.
var valueTypeNames = [...]string{
	ValueUnset:  "unset",
	ValueInt:    "int",
	ValueFloat:  "float",
	ValueBool:   "bool",
	ValueString: "string",
}

// String returns the name of the value type.
func (vt ValueType) String() string {
	if int(vt) < len(valueTypeNames) {
		return valueTypeNames[vt]
	}
	return "unknown"
}

// Value represents a runtime value. Strings are immutable and carry value
// semantics; copying a Value copies the value.
type Value struct {
	str  string
	num  int64
	flt  float64
	Type ValueType
}

// Helper constructors

func IntValue(i int64) Value {
	return Value{Type: ValueInt, num: i}
}

func FloatValue(f float64) Value {
	return Value{Type: ValueFloat, flt: f}
}

func BoolValue(b bool) Value {
	v := Value{Type: ValueBool}
	if b {
		v.num = 1
	}
	return v
}

func StringValue(s string) Value {
	return Value{Type: ValueString, str: s}
}

// Type checking methods
func (v Value) IsUnset() bool  { return v.Type == ValueUnset }
func (v Value) IsInt() bool    { return v.Type == ValueInt }
func (v Value) IsFloat() bool  { return v.Type == ValueFloat }
func (v Value) IsBool() bool   { return v.Type == ValueBool }
func (v Value) IsString() bool { return v.Type == ValueString }
func (v Value) IsNumber() bool { return v.Type == ValueInt || v.Type == ValueFloat }

// AsInt returns the integer payload (0 for non-ints).
func (v Value) AsInt() int64 {
	if v.Type == ValueInt {
		return v.num
	}
	return 0
}

// AsFloat returns the value as a float, widening an int payload.
func (v Value) AsFloat() float64 {
	switch v.Type {
	case ValueFloat:
		return v.flt
	case ValueInt:
		return float64(v.num)
	}
	return 0
}

// AsBool returns the boolean payload (false for non-bools).
func (v Value) AsBool() bool {
	return v.Type == ValueBool && v.num != 0
}

// AsString returns the string payload ("" for non-strings).
func (v Value) AsString() string {
	if v.Type == ValueString {
		return v.str
	}
	return ""
}

// IsTruthy reports the value's truthiness: zero numbers, the empty
// string, false and unset are falsy; everything else is truthy.
func (v Value) IsTruthy() bool {
	switch v.Type {
	case ValueInt:
		return v.num != 0
	case ValueFloat:
		return v.flt != 0
	case ValueBool:
		return v.num != 0
	case ValueString:
		return v.str != ""
	default:
		return false
	}
}

// Text returns the value's textual form, shared by print and TO_STRING:
// integers in decimal, floats in Go's shortest round-trip form, booleans
// as true/false, strings verbatim.
func (v Value) Text() string {
	switch v.Type {
	case ValueInt:
		return strconv.FormatInt(v.num, 10)
	case ValueFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case ValueBool:
		return strconv.FormatBool(v.num != 0)
	case ValueString:
		return v.str
	default:
		return "unset"
	}
}

// String returns a debug representation: like Text, but with strings
// quoted so constants-pool dumps stay readable.
func (v Value) String() string {
	if v.Type == ValueString {
		return strconv.Quote(v.str)
	}
	return v.Text()
}

// Equal reports value equality. Strings equal only strings with the same
// text; ints, floats and bools compare numerically across those three types (so
// 1 == 1.0 and true == 1); values of unrelated types are unequal without
// error.
func (v Value) Equal(other Value) bool {
	if v.Type == ValueString || other.Type == ValueString {
		return v.Type == ValueString && other.Type == ValueString && v.str == other.str
	}
	if v.Type == ValueUnset || other.Type == ValueUnset {
		return v.Type == other.Type
	}
	if v.Type == ValueInt && other.Type == ValueInt {
		return v.num == other.num
	}
	if v.Type == ValueBool && other.Type == ValueBool {
		return v.num == other.num
	}
	return v.numeric() == other.numeric()
}

// numeric returns the value as a float64 for mixed-type comparison,
// promoting booleans to 0/1.
func (v Value) numeric() float64 {
	switch v.Type {
	case ValueInt:
		return float64(v.num)
	case ValueFloat:
		return v.flt
	case ValueBool:
		return float64(v.num)
	}
	return 0
}
