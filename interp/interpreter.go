// Package interp implements the GILL tree-walking interpreter: a single
// visitor holding a mutable pointer to the current environment, with one
// method per AST node variant (spec.md §4.3).
//
// Grounded on akashmaji946/go-mix's eval/evaluator.go (Evaluator struct
// holding Scp *scope.Scope, Writer io.Writer, CreateError embedding
// lexer position) and its eval_*.go split by concern. Control-flow
// propagation (errors, function returns) follows go-mix's value-based
// approach: every Eval call returns a value.Value, and callers check
// IsError/IsReturn before continuing — never a Go panic for language-level
// control flow.
package interp

import (
	"io"
	"os"

	"github.com/gill-lang/gill/ast"
	"github.com/gill-lang/gill/environment"
	"github.com/gill-lang/gill/native"
	"github.com/gill-lang/gill/value"
)

// ModuleLoader resolves an import by name to a fully-built module
// environment. The interpreter calls it at most once per distinct module
// name (spec.md §3: "a module once loaded has a stable handle for program
// life, re-importing same name returns cached handle" — the cache itself
// lives on the Environment.Modules registry, this loader is only consulted
// on a cache miss).
type ModuleLoader interface {
	Load(name string) (*environment.Environment, error)
}

// Interpreter walks an AST and produces runtime values.
type Interpreter struct {
	Global  *environment.Environment
	Current *environment.Environment
	Writer  io.Writer
	Loader  ModuleLoader
}

// New creates an interpreter with a fresh global environment.
func New(loader ModuleLoader) *Interpreter {
	global := environment.NewGlobal()
	return &Interpreter{
		Global:  global,
		Current: global,
		Writer:  os.Stdout,
		Loader:  loader,
	}
}

func (it *Interpreter) SetWriter(w io.Writer) { it.Writer = w }

// Eval dispatches a node through the Visitor and asserts the result back
// to value.Value — the only type Accept ever actually returns.
func (it *Interpreter) Eval(n ast.Node) value.Value {
	if n == nil {
		return &value.Null{}
	}
	result := n.Accept(it)
	if v, ok := result.(value.Value); ok {
		return v
	}
	return &value.Null{}
}

// Run evaluates a full program (top-level Block) against the global
// environment, per spec.md §2: full parse completes before any
// evaluation begins, then the whole top-level block is evaluated. A
// ReturnSignal that escapes all the way out here means `return` was used
// outside any function call, which spec.md §4.3/§7 makes a RuntimeError.
func (it *Interpreter) Run(program *ast.BlockNode) value.Value {
	it.Current = it.Global
	result := it.Eval(program)
	if value.IsReturn(result) {
		return it.createError(value.RuntimeError, "'return' used outside of a function")
	}
	return result
}

func (it *Interpreter) createError(code value.ErrorCode, format string, args ...any) *value.Error {
	return value.NewError(code, format, args...)
}

func (it *Interpreter) createErrorAt(code value.ErrorCode, pos ast.Pos, format string, args ...any) *value.Error {
	return value.NewErrorAt(code, pos.Line, pos.Column, format, args...)
}

func firstError(vals ...value.Value) value.Value {
	for _, v := range vals {
		if value.IsError(v) {
			return v
		}
	}
	return nil
}

// bindingForDefine builds a Binding after verifying v matches
// declared, or returns an error (spec.md §4.3 type-check table).
func bindingForDefine(v value.Value, declared string, pos ast.Pos) (*value.Binding, *value.Error) {
	tag := value.TypeTag(declared)
	if arr, ok := v.(*value.Array); ok {
		for i, el := range arr.Elements {
			if !value.CheckType(el, tag) {
				return nil, value.NewErrorAt(value.TypeError, pos.Line, pos.Column,
					"array element %d: expected %s, got %s", i, declared, el.Kind())
			}
		}
		arr.ElementType = tag
		return &value.Binding{DeclaredType: value.ArrayTypeTag(tag), Value: arr}, nil
	}
	if !value.CheckType(v, tag) {
		return nil, value.NewErrorAt(value.TypeError, pos.Line, pos.Column,
			"type mismatch: expected %s, got %s", declared, v.Kind())
	}
	return &value.Binding{DeclaredType: tag, Value: v}, nil
}

func dispatchCallback(fn native.Callback, args []value.Value) value.Value {
	return fn(args)
}

func formatMismatch(name string, expected, got int) *value.Error {
	return value.NewError(value.TypeError,
		"argument count mismatch in call to '%s': expected %d, got %d", name, expected, got)
}
