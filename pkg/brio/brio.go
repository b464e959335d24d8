// Package brio is the public embedding API for the brio toy language.
//
// An Engine exposes the two execution surfaces: Interpret runs source
// through the tree-walking interpreter, CompileAndRun lowers it to
// bytecode and executes it on a fresh VM. Both produce identical output
// for every well-formed program.
//
// Example:
//
//	engine, err := brio.New(brio.WithOutput(os.Stdout))
//	if err != nil { ... }
//	if err := engine.Interpret(`var name = "World"; print "Hello, ${name}!";`); err != nil { ... }
package brio

import (
	"io"
	"os"

	"github.com/cwbudde/go-brio/internal/bytecode"
	"github.com/cwbudde/go-brio/internal/interp"
	"github.com/cwbudde/go-brio/internal/parser"
)

// Engine runs brio programs.
type Engine struct {
	out io.Writer
}

// Option configures an Engine.
type Option func(*Engine) error

// WithOutput directs print output to the given writer instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) error {
		e.out = w
		return nil
	}
}

// New creates a new Engine.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{out: os.Stdout}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Interpret parses the source and executes it with the AST interpreter.
// Print output goes to the engine's writer; the first error aborts the
// run.
func (e *Engine) Interpret(source string) error {
	program, err := parser.Parse(source)
	if err != nil {
		return err
	}
	return interp.New(interp.WithOutput(e.out)).Interpret(program)
}

// Compile parses the source and lowers it to bytecode without running it.
func (e *Engine) Compile(source string) (*bytecode.Program, error) {
	program, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return bytecode.Compile(program)
}

// CompileAndRun compiles the source and executes it on a fresh VM. Same
// output contract as Interpret.
func (e *Engine) CompileAndRun(source string) error {
	compiled, err := e.Compile(source)
	if err != nil {
		return err
	}
	return bytecode.NewVM(compiled, bytecode.WithOutput(e.out)).Run()
}

// Interpret runs source through the AST interpreter with output on
// stdout.
func Interpret(source string) error {
	engine, err := New()
	if err != nil {
		return err
	}
	return engine.Interpret(source)
}

// CompileAndRun runs source through the bytecode back-end with output on
// stdout.
func CompileAndRun(source string) error {
	engine, err := New()
	if err != nil {
		return err
	}
	return engine.CompileAndRun(source)
}
