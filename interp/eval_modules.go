package interp

import (
	"github.com/gill-lang/gill/ast"
	"github.com/gill-lang/gill/environment"
	"github.com/gill-lang/gill/value"
)

// VisitImport resolves a module by name through the configured
// ModuleLoader, caching it in the shared module registry and binding a
// Module value under the same name in the current scope (spec.md §4.3
// Import). Re-importing an already-cached name is a no-op lookup, never a
// second Loader.Load call (spec.md §3 invariant: stable handle, cached
// re-import).
func (it *Interpreter) VisitImport(n *ast.ImportNode) any {
	if env, ok := it.Current.GetModule(n.ModuleName); ok {
		it.Current.Define(n.ModuleName, &value.Binding{
			DeclaredType: "module",
			Value:        &value.Module{Name: n.ModuleName, Env: env},
		})
		return &value.Null{}
	}

	if it.Loader == nil {
		return it.createErrorAt(value.ImportError, n.Pos, "no module loader configured; cannot import '%s'", n.ModuleName)
	}
	modEnv, err := it.Loader.Load(n.ModuleName)
	if err != nil {
		return it.createErrorAt(value.ImportError, n.Pos, "%s", err.Error())
	}
	if modEnv == nil {
		return it.createErrorAt(value.ImportError, n.Pos, "module '%s' exports no environment", n.ModuleName)
	}

	it.Global.RegisterModule(n.ModuleName, modEnv)
	it.Current.Define(n.ModuleName, &value.Binding{
		DeclaredType: "module",
		Value:        &value.Module{Name: n.ModuleName, Env: modEnv},
	})
	return &value.Null{}
}

// VisitNamespace evaluates the body in a fresh child environment, then
// registers that environment both as a module (so `name::member` resolves
// via the same path as an import) and as a Module value bound in the
// enclosing scope. This is the spec.md §9(d) resolution of the source's
// broken namespace handling: the original builds a namespace_env but
// evaluates the body against the outer environment directly, so nothing
// inside was ever actually scoped to it.
func (it *Interpreter) VisitNamespace(n *ast.NamespaceNode) any {
	outer := it.Current
	nsEnv := environment.NewModule(n.Name, outer)

	it.Current = nsEnv
	result := it.Eval(n.Body)
	it.Current = outer
	if value.IsError(result) || value.IsReturn(result) {
		return result
	}

	outer.RegisterModule(n.Name, nsEnv)
	outer.Define(n.Name, &value.Binding{
		DeclaredType: "module",
		Value:        &value.Module{Name: n.Name, Env: nsEnv},
	})
	return &value.Null{}
}

// VisitScopeRef resolves a bare `module::identifier` expression. Per
// spec.md §4.3 BinOp, SCOPERESOP on a module operand always yields a
// NativeRef naming the member, regardless of member kind — it is the
// caller (FunctionCall/exec, or a bound variable's subsequent use) that
// decides what to do with a NativeRef, not ScopeRef itself. Matches
// original_source/proto/src/interpreter.py:308-315, whose eval_binop
// SCOPERESOP case returns a MemberRef for both variable and function
// members alike.
func (it *Interpreter) VisitScopeRef(n *ast.ScopeRefNode) any {
	mod, ok := it.Current.GetModule(n.ScopeName)
	if !ok {
		return it.createErrorAt(value.NameError, n.Pos, "module '%s' is not imported", n.ScopeName)
	}
	if _, ok := mod.Bindings[n.Identifier]; ok {
		return &value.NativeRef{
			ModuleHandle: mod,
			ModuleName:   n.ScopeName,
			MemberName:   n.Identifier,
			MemberKind:   value.NativeRefVariable,
		}
	}
	if _, ok := mod.Functions[n.Identifier]; ok {
		return &value.NativeRef{
			ModuleHandle: mod,
			ModuleName:   n.ScopeName,
			MemberName:   n.Identifier,
			MemberKind:   value.NativeRefFunction,
		}
	}
	return it.createErrorAt(value.NameError, n.Pos, "'%s' not found in module '%s'", n.Identifier, n.ScopeName)
}
