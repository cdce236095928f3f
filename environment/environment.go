// Package environment implements GILL's scope chain: bindings, user and
// native functions, and the shared module registry (spec.md §3 Environment
// / ModuleEnv, §4.4).
//
// Grounded on akashmaji946/go-mix's scope/scope.go (Scope{Variables,
// Parent}, LookUp/Bind/Assign walking the parent chain), trimmed to
// GILL's simpler single-declared-type Binding model — GILL has no
// separate const/let-vars/let-types tracking, since spec.md's Binding
// carries exactly one declared_type per name, and a user function keeps
// only a reference to the environment that was current when it was
// defined (UserFunction.Defined).
package environment

import (
	"github.com/gill-lang/gill/ast"
	"github.com/gill-lang/gill/native"
	"github.com/gill-lang/gill/value"
)

// UserFunction pairs a FunctionDefinition AST node with the environment it
// was defined in (spec.md §3: "FunctionObject is either a user
// FunctionDefinition AST node bound to its defining environment, or a
// NativeFunction").
type UserFunction struct {
	Node    *ast.FunctionDefinitionNode
	Defined *Environment
}

// FunctionObject is the closed union of callables an Environment's
// Functions map can hold.
type FunctionObject interface {
	functionObject()
}

func (*UserFunction) functionObject() {}

// NativeFunctionObject wraps a native.Function so it can satisfy
// FunctionObject — native.Function is defined in package native and
// cannot have methods attached to it from here.
type NativeFunctionObject struct {
	*native.Function
}

func (*NativeFunctionObject) functionObject() {}

// Environment is a node in the scope chain. Every Environment's Modules
// map is the same map instance as the root's (shared by reference), so
// any environment can resolve an imported or namespaced module regardless
// of nesting depth (spec.md §3 invariant: "top of env chain always holds
// the authoritative module table").
type Environment struct {
	Bindings  map[string]*value.Binding
	Functions map[string]FunctionObject
	Modules   map[string]*Environment
	Parent    *Environment

	// ModuleName is non-empty when this Environment is itself a module
	// (imported or namespace-registered) scope.
	ModuleName string
}

// NewGlobal creates the program's root environment with a fresh module
// registry.
func NewGlobal() *Environment {
	return &Environment{
		Bindings:  map[string]*value.Binding{},
		Functions: map[string]FunctionObject{},
		Modules:   map[string]*Environment{},
	}
}

// NewChild creates a nested scope (function call frame, loop body)
// sharing the parent's module registry.
func NewChild(parent *Environment) *Environment {
	return &Environment{
		Bindings:  map[string]*value.Binding{},
		Functions: map[string]FunctionObject{},
		Modules:   parent.Modules,
		Parent:    parent,
	}
}

// NewModule creates a module-backed environment (import or namespace),
// sharing parent's module registry the same way NewChild does.
func NewModule(name string, parent *Environment) *Environment {
	env := NewChild(parent)
	env.ModuleName = name
	return env
}

// Get walks the parent chain looking for a variable binding.
func (e *Environment) Get(name string) (*value.Binding, bool) {
	for env := e; env != nil; env = env.Parent {
		if b, ok := env.Bindings[name]; ok {
			return b, true
		}
	}
	return nil, false
}

// Define inserts a new binding in this exact scope (spec.md §4.4).
func (e *Environment) Define(name string, binding *value.Binding) {
	e.Bindings[name] = binding
}

// Set walks the chain to find the binding owning name and mutates its
// value in place, preserving the declared type. Returns false if no such
// binding exists anywhere in the chain.
func (e *Environment) Set(name string, v value.Value) bool {
	for env := e; env != nil; env = env.Parent {
		if b, ok := env.Bindings[name]; ok {
			b.Value = v
			return true
		}
	}
	return false
}

// GetFunction walks the chain looking for a function registered under
// name. Functions and bindings are separate namespaces (spec.md §3).
func (e *Environment) GetFunction(name string) (FunctionObject, bool) {
	for env := e; env != nil; env = env.Parent {
		if f, ok := env.Functions[name]; ok {
			return f, true
		}
	}
	return nil, false
}

// DefineFunction registers a callable in this exact scope.
func (e *Environment) DefineFunction(name string, fn FunctionObject) {
	e.Functions[name] = fn
}

// GetModule looks up a loaded/namespaced module by name in the shared
// registry.
func (e *Environment) GetModule(name string) (*Environment, bool) {
	m, ok := e.Modules[name]
	return m, ok
}

// RegisterModule caches a module environment under name in the shared
// registry (spec.md §3 invariant: re-importing the same name returns the
// cached handle).
func (e *Environment) RegisterModule(name string, env *Environment) {
	e.Modules[name] = env
}
