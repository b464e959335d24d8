package runtime

import (
	"github.com/cwbudde/go-brio/internal/errors"
)

// Operator semantics shared by the AST interpreter and the bytecode VM.
// Numeric promotion: an operation on two ints stays in the integers; any
// float operand widens the other side to float. Booleans participate in
// comparisons as 0/1 but not in arithmetic.

// Add implements '+': integer add, float add (widening), or string
// concatenation.
func Add(left, right Value) (Value, error) {
	switch {
	case left.IsInt() && right.IsInt():
		return IntValue(left.AsInt() + right.AsInt()), nil
	case left.IsNumber() && right.IsNumber():
		return FloatValue(left.AsFloat() + right.AsFloat()), nil
	case left.IsString() && right.IsString():
		return StringValue(left.AsString() + right.AsString()), nil
	}
	return Value{}, errors.Newf(errors.TypeError, "unsupported operand types for +: %s and %s", left.Type, right.Type)
}

// Subtract implements '-' on numbers.
func Subtract(left, right Value) (Value, error) {
	switch {
	case left.IsInt() && right.IsInt():
		return IntValue(left.AsInt() - right.AsInt()), nil
	case left.IsNumber() && right.IsNumber():
		return FloatValue(left.AsFloat() - right.AsFloat()), nil
	}
	return Value{}, errors.Newf(errors.TypeError, "unsupported operand types for -: %s and %s", left.Type, right.Type)
}

// Multiply implements '*' on numbers.
func Multiply(left, right Value) (Value, error) {
	switch {
	case left.IsInt() && right.IsInt():
		return IntValue(left.AsInt() * right.AsInt()), nil
	case left.IsNumber() && right.IsNumber():
		return FloatValue(left.AsFloat() * right.AsFloat()), nil
	}
	return Value{}, errors.Newf(errors.TypeError, "unsupported operand types for *: %s and %s", left.Type, right.Type)
}

// Divide implements '/': floor division on two ints (rounding toward
// negative infinity), IEEE-754 division otherwise. Only integer division
// by zero is an error.
func Divide(left, right Value) (Value, error) {
	switch {
	case left.IsInt() && right.IsInt():
		if right.AsInt() == 0 {
			return Value{}, errors.New(errors.ArithmeticError, "integer division by zero")
		}
		return IntValue(floorDiv(left.AsInt(), right.AsInt())), nil
	case left.IsNumber() && right.IsNumber():
		return FloatValue(left.AsFloat() / right.AsFloat()), nil
	}
	return Value{}, errors.Newf(errors.TypeError, "unsupported operand types for /: %s and %s", left.Type, right.Type)
}

// floorDiv divides rounding toward negative infinity. Go's integer
// division truncates toward zero, so negative mixed-sign quotients with a
// remainder need one step down.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// UnaryPlus implements unary '+' (numeric identity).
func UnaryPlus(v Value) (Value, error) {
	if v.IsNumber() {
		return v, nil
	}
	return Value{}, errors.Newf(errors.TypeError, "unsupported operand type for unary +: %s", v.Type)
}

// UnaryMinus implements unary '-' (numeric negation).
func UnaryMinus(v Value) (Value, error) {
	switch v.Type {
	case ValueInt:
		return IntValue(-v.AsInt()), nil
	case ValueFloat:
		return FloatValue(-v.AsFloat()), nil
	}
	return Value{}, errors.Newf(errors.TypeError, "unsupported operand type for unary -: %s", v.Type)
}

// Not implements '!': the boolean negation of the operand's truthiness.
func Not(v Value) Value {
	return BoolValue(!v.IsTruthy())
}

// And implements '&&' without short-circuiting: both operands are already
// evaluated, and the deciding operand is returned (left if falsy,
// otherwise right).
func And(left, right Value) Value {
	if !left.IsTruthy() {
		return left
	}
	return right
}

// Or implements '||' without short-circuiting: the deciding operand is
// returned (left if truthy, otherwise right).
func Or(left, right Value) Value {
	if left.IsTruthy() {
		return left
	}
	return right
}

// Equals implements '=='. Values of unrelated types compare unequal
// rather than failing.
func Equals(left, right Value) Value {
	return BoolValue(left.Equal(right))
}

// NotEquals implements '!='.
func NotEquals(left, right Value) Value {
	return BoolValue(!left.Equal(right))
}

// compare returns -1, 0 or 1 for an ordered pair. Numbers (and booleans
// as 0/1) order numerically; strings order lexicographically. Ordering
// across unrelated types is a TypeError.
func compare(left, right Value) (int, error) {
	if left.IsString() && right.IsString() {
		switch {
		case left.AsString() < right.AsString():
			return -1, nil
		case left.AsString() > right.AsString():
			return 1, nil
		}
		return 0, nil
	}

	leftOrdered := left.IsNumber() || left.IsBool()
	rightOrdered := right.IsNumber() || right.IsBool()
	if !leftOrdered || !rightOrdered {
		return 0, errors.Newf(errors.TypeError, "cannot compare %s and %s", left.Type, right.Type)
	}

	if left.IsInt() && right.IsInt() {
		switch {
		case left.AsInt() < right.AsInt():
			return -1, nil
		case left.AsInt() > right.AsInt():
			return 1, nil
		}
		return 0, nil
	}

	lf, rf := left.numeric(), right.numeric()
	switch {
	case lf < rf:
		return -1, nil
	case lf > rf:
		return 1, nil
	}
	return 0, nil
}

// Less implements '<'.
func Less(left, right Value) (Value, error) {
	c, err := compare(left, right)
	if err != nil {
		return Value{}, err
	}
	return BoolValue(c < 0), nil
}

// Greater implements '>'.
func Greater(left, right Value) (Value, error) {
	c, err := compare(left, right)
	if err != nil {
		return Value{}, err
	}
	return BoolValue(c > 0), nil
}

// LessEqual implements '<='.
func LessEqual(left, right Value) (Value, error) {
	c, err := compare(left, right)
	if err != nil {
		return Value{}, err
	}
	return BoolValue(c <= 0), nil
}

// GreaterEqual implements '>='.
func GreaterEqual(left, right Value) (Value, error) {
	c, err := compare(left, right)
	if err != nil {
		return Value{}, err
	}
	return BoolValue(c >= 0), nil
}

// Concat joins two strings. Both operands must already be strings; the
// compiler inserts TO_STRING conversions where needed.
func Concat(left, right Value) (Value, error) {
	if !left.IsString() || !right.IsString() {
		return Value{}, errors.Newf(errors.TypeError, "cannot concatenate %s and %s", left.Type, right.Type)
	}
	return StringValue(left.AsString() + right.AsString()), nil
}

// ToString converts any value to its textual form.
func ToString(v Value) Value {
	return StringValue(v.Text())
}
