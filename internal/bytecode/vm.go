package bytecode

import (
	"io"
	"os"

	"github.com/cwbudde/go-brio/internal/errors"
	"github.com/cwbudde/go-brio/internal/runtime"
)

// VM executes a compiled Program. Each VM owns its program counter,
// operand stack and variable array; the Program itself is shared and
// never mutated, so one Program can back many VMs.
type VM struct {
	out       io.Writer
	program   *Program
	stack     []runtime.Value
	variables []runtime.Value
	pc        int
}

// Option configures a VM.
type Option func(*VM)

// WithOutput directs print output to the given writer instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(vm *VM) {
		vm.out = w
	}
}

// NewVM creates a VM for the given program with all variable slots unset
// and an empty operand stack.
func NewVM(program *Program, opts ...Option) *VM {
	vm := &VM{
		out:       os.Stdout,
		program:   program,
		stack:     make([]runtime.Value, 0, 16),
		variables: make([]runtime.Value, program.SlotCount()),
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// push appends a value to the operand stack.
func (vm *VM) push(v runtime.Value) {
	vm.stack = append(vm.stack, v)
}

// pop removes and returns the top of stack.
func (vm *VM) pop() (runtime.Value, error) {
	if len(vm.stack) == 0 {
		return runtime.Value{}, errors.New(errors.VMError, "stack underflow")
	}
	v := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return v, nil
}

// popTwo removes the two topmost values, returning them in push order.
func (vm *VM) popTwo() (left, right runtime.Value, err error) {
	right, err = vm.pop()
	if err != nil {
		return
	}
	left, err = vm.pop()
	return
}

// binary applies a fallible binary operation to the two topmost values.
func (vm *VM) binary(apply func(left, right runtime.Value) (runtime.Value, error)) error {
	left, right, err := vm.popTwo()
	if err != nil {
		return err
	}
	result, err := apply(left, right)
	if err != nil {
		return err
	}
	vm.push(result)
	return nil
}

// binaryValue applies an infallible binary operation to the two topmost
// values.
func (vm *VM) binaryValue(apply func(left, right runtime.Value) runtime.Value) error {
	left, right, err := vm.popTwo()
	if err != nil {
		return err
	}
	vm.push(apply(left, right))
	return nil
}

// Run executes the program until HALT or until pc walks past the last
// instruction. Excess values left on the stack are discarded.
func (vm *VM) Run() error {
	code := vm.program.Code

	for vm.pc < len(code) {
		inst := code[vm.pc]
		vm.pc++

		switch inst.Op {
		case OpLoadConst:
			if int(inst.Operand) >= len(vm.program.Constants) {
				return errors.Newf(errors.VMError, "constant index %d out of range", inst.Operand)
			}
			vm.push(vm.program.Constants[inst.Operand])

		case OpLoadVar:
			if int(inst.Operand) >= len(vm.variables) {
				return errors.Newf(errors.VMError, "variable slot %d out of range", inst.Operand)
			}
			value := vm.variables[inst.Operand]
			if value.IsUnset() {
				return errors.Newf(errors.NameError, "variable %q not initialized", vm.program.SlotName(int(inst.Operand)))
			}
			vm.push(value)

		case OpStoreVar:
			if int(inst.Operand) >= len(vm.variables) {
				return errors.Newf(errors.VMError, "variable slot %d out of range", inst.Operand)
			}
			value, err := vm.pop()
			if err != nil {
				return err
			}
			vm.variables[inst.Operand] = value

		case OpPop:
			if _, err := vm.pop(); err != nil {
				return err
			}

		case OpAdd:
			if err := vm.binary(runtime.Add); err != nil {
				return err
			}

		case OpSubtract:
			if err := vm.binary(runtime.Subtract); err != nil {
				return err
			}

		case OpMultiply:
			if err := vm.binary(runtime.Multiply); err != nil {
				return err
			}

		case OpDivide:
			if err := vm.binary(runtime.Divide); err != nil {
				return err
			}

		case OpUnaryPlus:
			value, err := vm.pop()
			if err != nil {
				return err
			}
			result, err := runtime.UnaryPlus(value)
			if err != nil {
				return err
			}
			vm.push(result)

		case OpUnaryMinus:
			value, err := vm.pop()
			if err != nil {
				return err
			}
			result, err := runtime.UnaryMinus(value)
			if err != nil {
				return err
			}
			vm.push(result)

		case OpNot:
			value, err := vm.pop()
			if err != nil {
				return err
			}
			vm.push(runtime.Not(value))

		case OpAnd:
			if err := vm.binaryValue(runtime.And); err != nil {
				return err
			}

		case OpOr:
			if err := vm.binaryValue(runtime.Or); err != nil {
				return err
			}

		case OpConcat:
			if err := vm.binary(runtime.Concat); err != nil {
				return err
			}

		case OpToString:
			value, err := vm.pop()
			if err != nil {
				return err
			}
			vm.push(runtime.ToString(value))

		case OpEquals:
			if err := vm.binaryValue(runtime.Equals); err != nil {
				return err
			}

		case OpNotEquals:
			if err := vm.binaryValue(runtime.NotEquals); err != nil {
				return err
			}

		case OpLessThan:
			if err := vm.binary(runtime.Less); err != nil {
				return err
			}

		case OpGreaterThan:
			if err := vm.binary(runtime.Greater); err != nil {
				return err
			}

		case OpLessEqual:
			if err := vm.binary(runtime.LessEqual); err != nil {
				return err
			}

		case OpGreaterEqual:
			if err := vm.binary(runtime.GreaterEqual); err != nil {
				return err
			}

		case OpJump:
			if int(inst.Operand) > len(code) {
				return errors.Newf(errors.VMError, "jump target %d out of range", inst.Operand)
			}
			vm.pc = int(inst.Operand)

		case OpJumpIfFalse:
			if int(inst.Operand) > len(code) {
				return errors.Newf(errors.VMError, "jump target %d out of range", inst.Operand)
			}
			condition, err := vm.pop()
			if err != nil {
				return err
			}
			if !condition.IsTruthy() {
				vm.pc = int(inst.Operand)
			}

		case OpPrint:
			value, err := vm.pop()
			if err != nil {
				return err
			}
			if _, err := io.WriteString(vm.out, value.Text()+"\n"); err != nil {
				return err
			}

		case OpHalt:
			return nil

		default:
			return errors.Newf(errors.VMError, "unknown opcode %d", inst.Op)
		}
	}
	return nil
}
