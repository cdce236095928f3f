package interp

import (
	"github.com/gill-lang/gill/ast"
	"github.com/gill-lang/gill/value"
)

func (it *Interpreter) VisitNumber(n *ast.NumberNode) any {
	if n.IsFloat {
		return &value.Float{Value: n.FloatVal}
	}
	return &value.Int{Value: n.IntVal}
}

func (it *Interpreter) VisitString(n *ast.StringNode) any {
	return &value.Text{Value: n.Value}
}

func (it *Interpreter) VisitChar(n *ast.CharNode) any {
	return &value.Char{Value: n.Value}
}

func (it *Interpreter) VisitBoolean(n *ast.BooleanNode) any {
	return &value.Bool{Value: n.Value}
}

// VisitIdentifier walks the environment chain for a variable binding; if
// none is found, it falls back to a module lookup by the same name before
// raising NameError (spec.md §4.3 Identifier).
func (it *Interpreter) VisitIdentifier(n *ast.IdentifierNode) any {
	if b, ok := it.Current.Get(n.Name); ok {
		return b.Value
	}
	if env, ok := it.Current.GetModule(n.Name); ok {
		return &value.Module{Name: n.Name, Env: env}
	}
	return it.createErrorAt(value.NameError, n.Pos, "undefined variable '%s'", n.Name)
}

func (it *Interpreter) VisitArrayAccess(n *ast.ArrayAccessNode) any {
	b, ok := it.Current.Get(n.ArrayName)
	if !ok {
		return it.createErrorAt(value.NameError, n.Pos, "undefined variable '%s'", n.ArrayName)
	}
	arr, ok := b.Value.(*value.Array)
	if !ok {
		return it.createErrorAt(value.TypeError, n.Pos, "'%s' is not an array", n.ArrayName)
	}
	idxVal := it.Eval(n.Index)
	if value.IsError(idxVal) {
		return idxVal
	}
	idx, ok := idxVal.(*value.Int)
	if !ok {
		return it.createErrorAt(value.TypeError, n.Pos, "array index must be an integer, got %s", idxVal.Kind())
	}
	i := int(idx.Value)
	if i < 0 || i >= len(arr.Elements) {
		return it.createErrorAt(value.IndexError, n.Pos,
			"array index %d out of bounds for array '%s' of size %d", i, n.ArrayName, len(arr.Elements))
	}
	return arr.Elements[i]
}

func (it *Interpreter) VisitArray(n *ast.ArrayNode) any {
	elements := make([]value.Value, 0, len(n.Elements))
	for _, elemNode := range n.Elements {
		v := it.Eval(elemNode)
		if value.IsError(v) {
			return v
		}
		elements = append(elements, v)
	}
	if len(elements) != n.DeclaredSize {
		return it.createErrorAt(value.ValueError, n.Pos,
			"array size mismatch: expected %d, got %d", n.DeclaredSize, len(elements))
	}
	return &value.Array{Elements: elements}
}
