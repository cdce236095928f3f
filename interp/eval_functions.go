package interp

import (
	"github.com/gill-lang/gill/ast"
	"github.com/gill-lang/gill/environment"
	"github.com/gill-lang/gill/native"
	"github.com/gill-lang/gill/value"
)

// VisitFunctionDefinition registers the node under its name in the current
// environment's Functions map and records the defining environment on it
// (spec.md §4.3 FunctionDefinition). The body is not evaluated here.
func (it *Interpreter) VisitFunctionDefinition(n *ast.FunctionDefinitionNode) any {
	it.Current.DefineFunction(n.Name, &environment.UserFunction{Node: n, Defined: it.Current})
	return &value.Null{}
}

// VisitReturn evaluates its expression and yields a ReturnSignal, which
// propagates up through enclosing blocks/loops until the FunctionCall
// evaluation point absorbs it (spec.md §4.3 Return, §5).
func (it *Interpreter) VisitReturn(n *ast.ReturnNode) any {
	v := it.Eval(n.Expr)
	if value.IsError(v) {
		return v
	}
	return &value.ReturnSignal{Value: v}
}

// VisitFunctionCall resolves, arity-checks, and invokes a user or native
// function (spec.md §4.3 FunctionCall).
func (it *Interpreter) VisitFunctionCall(n *ast.FunctionCallNode) any {
	if n.ModuleName != "" {
		mod, ok := it.Current.GetModule(n.ModuleName)
		if !ok {
			return it.createErrorAt(value.NameError, n.Pos, "module '%s' is not imported", n.ModuleName)
		}
		fn, ok := mod.Functions[n.Name]
		if !ok {
			return it.createErrorAt(value.NameError, n.Pos, "function '%s' not found in module '%s'", n.Name, n.ModuleName)
		}
		return it.callFunction(fn, n.Args, n.Pos, it.Current)
	}

	fn, ok := it.Current.GetFunction(n.Name)
	if !ok {
		return it.createErrorAt(value.NameError, n.Pos, "undefined function '%s'", n.Name)
	}
	return it.callFunction(fn, n.Args, n.Pos, it.Current)
}

// callFunction dispatches to the native or user-function invocation path.
// callerEnv is the environment native-call argument expressions are
// evaluated in: the caller's current scope, for both unqualified and
// qualified exec module::name(...) calls.
func (it *Interpreter) callFunction(fn environment.FunctionObject, argNodes []ast.Node, pos ast.Pos, callerEnv *environment.Environment) value.Value {
	switch f := fn.(type) {
	case *environment.UserFunction:
		return it.callUserFunction(f, argNodes, pos)
	case *environment.NativeFunctionObject:
		return it.callNativeFunction(f.Function, argNodes, pos, callerEnv)
	default:
		return it.createErrorAt(value.RuntimeError, pos, "unrecognized function object")
	}
}

// callUserFunction implements spec.md §4.3's call protocol: a fresh call
// environment parented on the function's *defining* environment (not the
// caller's — spec.md §1 Non-goals rules out closures over anything else),
// parameters bound positionally (with default-value expressions evaluated
// in the defining environment when an argument is omitted), the body run
// with that environment made current, and the previous environment always
// restored on exit.
func (it *Interpreter) callUserFunction(f *environment.UserFunction, argNodes []ast.Node, pos ast.Pos) value.Value {
	params := f.Node.Params
	required := 0
	for _, p := range params {
		if p.Default == nil {
			required++
		}
	}
	if len(argNodes) < required || len(argNodes) > len(params) {
		return formatMismatch(f.Node.Name, len(params), len(argNodes))
	}

	args := make([]value.Value, len(params))
	for i := range params {
		if i < len(argNodes) {
			v := it.Eval(argNodes[i])
			if value.IsError(v) {
				return v
			}
			args[i] = v
			continue
		}
		// caller omitted a trailing optional argument: evaluate its
		// default in the function's defining environment.
		savedForDefault := it.Current
		it.Current = f.Defined
		v := it.Eval(params[i].Default)
		it.Current = savedForDefault
		if value.IsError(v) {
			return v
		}
		args[i] = v
	}

	callEnv := environment.NewChild(f.Defined)
	for i, p := range params {
		binding, err := bindingForDefine(args[i], p.DeclaredType, pos)
		if err != nil {
			return err
		}
		callEnv.Define(p.Name, binding)
	}

	outer := it.Current
	it.Current = callEnv
	result := it.Eval(f.Node.Body)
	it.Current = outer

	if value.IsError(result) {
		return result
	}
	if rs, ok := result.(*value.ReturnSignal); ok {
		return rs.Value
	}
	return result
}

// callNativeFunction evaluates arguments in the caller's environment and
// hands them positionally to the registered callback; trailing arguments
// beyond a Varargs parameter are collected into an Array (spec.md §4.3
// FunctionCall "Native function dispatch").
func (it *Interpreter) callNativeFunction(f *native.Function, argNodes []ast.Node, pos ast.Pos, callerEnv *environment.Environment) value.Value {
	varargsIdx := -1
	for i, p := range f.Parameters {
		if p.Kind == native.Varargs && varargsIdx < 0 {
			varargsIdx = i
			continue
		}
		if p.Kind == native.Keywords || p.Kind == native.Kwargs {
			return it.createErrorAt(value.NotImplError, pos,
				"parameter kind '%s' is not implemented by this runtime", p.Kind)
		}
	}

	minRequired := 0
	for _, p := range f.Parameters {
		if p.Kind == native.Positional && p.Default == nil {
			minRequired++
		}
	}
	if varargsIdx < 0 && len(argNodes) > len(f.Parameters) {
		return formatMismatch(f.Name, len(f.Parameters), len(argNodes))
	}
	if len(argNodes) < minRequired {
		return formatMismatch(f.Name, len(f.Parameters), len(argNodes))
	}

	outer := it.Current
	it.Current = callerEnv
	evaluated := make([]value.Value, len(argNodes))
	for i, an := range argNodes {
		v := it.Eval(an)
		if value.IsError(v) {
			it.Current = outer
			return v
		}
		evaluated[i] = v
	}
	it.Current = outer

	if varargsIdx < 0 {
		return dispatchCallback(f.Callback, evaluated)
	}

	fixed := evaluated
	var rest []value.Value
	if len(evaluated) > varargsIdx {
		fixed = evaluated[:varargsIdx]
		rest = evaluated[varargsIdx:]
	}
	args := append(append([]value.Value{}, fixed...), &value.Array{Elements: rest})
	return dispatchCallback(f.Callback, args)
}
