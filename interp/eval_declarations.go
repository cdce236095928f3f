package interp

import (
	"github.com/gill-lang/gill/ast"
	"github.com/gill-lang/gill/value"
)

func (it *Interpreter) VisitDefine(n *ast.DefineNode) any {
	v := it.Eval(n.Value)
	if value.IsError(v) {
		return v
	}
	binding, err := bindingForDefine(v, n.DeclaredType, n.Pos)
	if err != nil {
		return err
	}
	it.Current.Define(n.Name, binding)
	return v
}

func (it *Interpreter) VisitAssign(n *ast.AssignNode) any {
	v := it.Eval(n.Value)
	if value.IsError(v) {
		return v
	}
	if ok := it.Current.Set(n.Name, v); !ok {
		return it.createErrorAt(value.NameError, n.Pos, "undefined variable '%s'", n.Name)
	}
	return v
}
