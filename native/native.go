// Package native defines the descriptor shapes a native module uses to
// expose functions and variables to GILL code (spec.md §6 Module loader
// interface).
//
// Grounded on two sources: akashmaji946/go-mix's std/builtins.go
// (Runtime interface, CallbackFunc, Builtin{Name, Callback}) for the
// callback-registration shape, and original_source/proto/src/rts.py
// (NativeVariable, ParameterSpec with POSITIONAL/VARARGS/KEYWORDS/KWARGS
// kinds and a NO_DEFAULT sentinel, NativeFunction) for the parameter
// descriptor GILL's spec calls for. GILL's core only executes positional
// and varargs parameters; keywords/kwargs are accepted syntactically but
// raise NotImplementedError when invoked, per spec.md §6.
package native

import "github.com/gill-lang/gill/value"

// ParameterKind classifies a native parameter's binding behavior.
type ParameterKind string

const (
	Positional ParameterKind = "positional"
	Varargs    ParameterKind = "varargs"
	Keywords   ParameterKind = "keywords"
	Kwargs     ParameterKind = "kwargs"
)

// ParameterSpec describes one parameter of a native function.
type ParameterSpec struct {
	Name         string
	DeclaredType string
	Default      value.Value // nil means no default
	Kind         ParameterKind
}

func Param(name, declaredType string) ParameterSpec {
	return ParameterSpec{Name: name, DeclaredType: declaredType, Kind: Positional}
}

func ParamWithDefault(name, declaredType string, def value.Value) ParameterSpec {
	return ParameterSpec{Name: name, DeclaredType: declaredType, Default: def, Kind: Positional}
}

func VarargsParam(name string) ParameterSpec {
	return ParameterSpec{Name: name, DeclaredType: "varargs", Kind: Varargs}
}

// Callback is a native function's Go implementation: it receives the
// already-evaluated positional argument list (varargs collected into a
// trailing slice by the caller) and returns the call's value.
type Callback func(args []value.Value) value.Value

// Function is a stable descriptor for a native function: name, parameter
// specs, and the Go callback that implements it.
type Function struct {
	Name       string
	Parameters []ParameterSpec
	Callback   Callback
}

// Variable is a named native value exposed read-only to GILL code.
type Variable struct {
	Name         string
	DeclaredType string
	Value        value.Value
}
