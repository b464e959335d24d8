// Package errors defines the typed error kinds surfaced by the brio
// toolchain. Propagation is fail-fast: the first error aborts the current
// run and is returned to the host as-is.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an error by the pipeline stage or rule that produced it.
type Kind int

const (
	// LexError reports an invalid character, unterminated string or
	// interpolation, or a lone '&' / '|'.
	LexError Kind = iota
	// ParseError reports an unexpected token or premature EOF.
	ParseError
	// NameError reports a variable referenced before declaration, or an
	// uninitialized VM slot.
	NameError
	// TypeError reports an operator applied to incompatible operand types.
	TypeError
	// ArithmeticError reports integer division by zero.
	ArithmeticError
	// VMError reports an unknown opcode, stack underflow, or an
	// out-of-range jump. Unreachable for correctly emitted programs.
	VMError
)

var kindNames = map[Kind]string{
	LexError:        "lex error",
	ParseError:      "parse error",
	NameError:       "name error",
	TypeError:       "type error",
	ArithmeticError: "arithmetic error",
	VMError:         "vm error",
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "error"
}

// Error is a classified toolchain error with a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Message
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is (or wraps) an Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
