package interp

import (
	"math"
	"strings"

	"github.com/gill-lang/gill/ast"
	"github.com/gill-lang/gill/token"
	"github.com/gill-lang/gill/value"
)

func numericValue(v value.Value) (float64, bool) {
	switch x := v.(type) {
	case *value.Int:
		return float64(x.Value), true
	case *value.Float:
		return x.Value, true
	default:
		return 0, false
	}
}

func bothInt(a, b value.Value) (int64, int64, bool) {
	ai, aok := a.(*value.Int)
	bi, bok := b.(*value.Int)
	if aok && bok {
		return ai.Value, bi.Value, true
	}
	return 0, 0, false
}

func isTextLike(v value.Value) bool {
	switch v.(type) {
	case *value.Text, *value.Char:
		return true
	}
	return false
}

func textOf(v value.Value) string { return v.String() }

// pythonFloorDivInt implements floor division (rounds toward negative
// infinity), matching the original Python implementation's `//` operator.
func pythonFloorDivInt(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func pythonModInt(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

// VisitBinOp evaluates both operands unconditionally (spec.md §9 open
// question (a): AND/OR are not short-circuited, matching the original
// Python implementation, which evaluates left and right before ever
// looking at the operator).
func (it *Interpreter) VisitBinOp(n *ast.BinOpNode) any {
	left := it.Eval(n.Left)
	if value.IsError(left) {
		return left
	}
	right := it.Eval(n.Right)
	if value.IsError(right) {
		return right
	}
	return it.evalBinOp(left, n.Op, right, n.Pos)
}

func (it *Interpreter) evalBinOp(left value.Value, op token.Kind, right value.Value, pos ast.Pos) value.Value {
	switch op {
	case token.ADD:
		if isTextLike(left) || isTextLike(right) {
			return &value.Text{Value: textOf(left) + textOf(right)}
		}
		return it.numericBinOp(left, right, pos, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })

	case token.SUB:
		return it.numericBinOp(left, right, pos, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })

	case token.MUL:
		return it.numericBinOp(left, right, pos, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })

	case token.MOD:
		return it.numericBinOp(left, right, pos, pythonModInt, math.Mod)

	case token.DIV:
		lf, lok := numericValue(left)
		rf, rok := numericValue(right)
		if !lok || !rok {
			return it.createErrorAt(value.TypeError, pos, "'/' requires numeric operands, got %s and %s", left.Kind(), right.Kind())
		}
		if rf == 0 {
			return it.createErrorAt(value.ValueError, pos, "division by zero")
		}
		return &value.Float{Value: lf / rf}

	case token.FDIV:
		if ai, bi, ok := bothInt(left, right); ok {
			if bi == 0 {
				return it.createErrorAt(value.ValueError, pos, "division by zero")
			}
			return &value.Int{Value: pythonFloorDivInt(ai, bi)}
		}
		lf, lok := numericValue(left)
		rf, rok := numericValue(right)
		if !lok || !rok {
			return it.createErrorAt(value.TypeError, pos, "'//' requires numeric operands, got %s and %s", left.Kind(), right.Kind())
		}
		if rf == 0 {
			return it.createErrorAt(value.ValueError, pos, "division by zero")
		}
		return &value.Float{Value: math.Floor(lf / rf)}

	case token.POW:
		return it.numericBinOp(left, right, pos, func(a, b int64) int64 { return int64(math.Pow(float64(a), float64(b))) }, math.Pow)

	case token.EQ:
		return &value.Bool{Value: valuesEqual(left, right)}
	case token.NEQ:
		return &value.Bool{Value: !valuesEqual(left, right)}

	case token.LT, token.LTE, token.GT, token.GTE:
		return it.compareOp(left, op, right, pos)

	case token.AND:
		return &value.Bool{Value: value.Truthy(left) && value.Truthy(right)}
	case token.OR:
		return &value.Bool{Value: value.Truthy(left) || value.Truthy(right)}

	default:
		return it.createErrorAt(value.ValueError, pos, "unknown operator")
	}
}

func (it *Interpreter) numericBinOp(left, right value.Value, pos ast.Pos, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) value.Value {
	if ai, bi, ok := bothInt(left, right); ok {
		return &value.Int{Value: intOp(ai, bi)}
	}
	lf, lok := numericValue(left)
	rf, rok := numericValue(right)
	if !lok || !rok {
		return it.createErrorAt(value.TypeError, pos, "operator requires numeric operands, got %s and %s", left.Kind(), right.Kind())
	}
	return &value.Float{Value: floatOp(lf, rf)}
}

func valuesEqual(left, right value.Value) bool {
	if lf, lok := numericValue(left); lok {
		if rf, rok := numericValue(right); rok {
			return lf == rf
		}
	}
	if isTextLike(left) && isTextLike(right) {
		return textOf(left) == textOf(right)
	}
	if lb, ok := left.(*value.Bool); ok {
		if rb, ok := right.(*value.Bool); ok {
			return lb.Value == rb.Value
		}
	}
	if _, ok := left.(*value.Null); ok {
		_, ok2 := right.(*value.Null)
		return ok2
	}
	if la, ok := left.(*value.Array); ok {
		ra, ok2 := right.(*value.Array)
		if !ok2 || len(la.Elements) != len(ra.Elements) {
			return false
		}
		for i := range la.Elements {
			if !valuesEqual(la.Elements[i], ra.Elements[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func (it *Interpreter) compareOp(left value.Value, op token.Kind, right value.Value, pos ast.Pos) value.Value {
	var cmp int
	switch {
	case isTextLike(left) && isTextLike(right):
		cmp = strings.Compare(textOf(left), textOf(right))
	default:
		lf, lok := numericValue(left)
		rf, rok := numericValue(right)
		if !lok || !rok {
			return it.createErrorAt(value.TypeError, pos, "comparison requires two numbers or two strings, got %s and %s", left.Kind(), right.Kind())
		}
		switch {
		case lf < rf:
			cmp = -1
		case lf > rf:
			cmp = 1
		default:
			cmp = 0
		}
	}
	switch op {
	case token.LT:
		return &value.Bool{Value: cmp < 0}
	case token.LTE:
		return &value.Bool{Value: cmp <= 0}
	case token.GT:
		return &value.Bool{Value: cmp > 0}
	default: // GTE
		return &value.Bool{Value: cmp >= 0}
	}
}

func (it *Interpreter) VisitUnaryOp(n *ast.UnaryOpNode) any {
	operand := it.Eval(n.Operand)
	if value.IsError(operand) {
		return operand
	}
	switch n.Op {
	case token.NOT:
		return &value.Bool{Value: !value.Truthy(operand)}
	default:
		return it.createErrorAt(value.ValueError, n.Pos, "unknown unary operator")
	}
}

func (it *Interpreter) VisitCast(n *ast.CastNode) any {
	operand := it.Eval(n.Expr)
	if value.IsError(operand) {
		return operand
	}
	return castValue(operand, n.TargetType, n.Pos)
}

func castValue(operand value.Value, target string, pos ast.Pos) value.Value {
	switch target {
	case "int":
		switch x := operand.(type) {
		case *value.Int:
			return x
		case *value.Float:
			return &value.Int{Value: int64(x.Value)}
		case *value.Bool:
			if x.Value {
				return &value.Int{Value: 1}
			}
			return &value.Int{Value: 0}
		case *value.Text:
			return &value.Int{Value: parseIntLoose(x.Value)}
		case *value.Char:
			return &value.Int{Value: int64(x.Value)}
		}
	case "float":
		switch x := operand.(type) {
		case *value.Float:
			return x
		case *value.Int:
			return &value.Float{Value: float64(x.Value)}
		case *value.Bool:
			if x.Value {
				return &value.Float{Value: 1}
			}
			return &value.Float{Value: 0}
		}
	case "string":
		return &value.Text{Value: operand.String()}
	case "char":
		s := operand.String()
		r := []rune(s)
		if len(r) == 0 {
			return &value.Char{Value: 0}
		}
		return &value.Char{Value: r[0]}
	case "bool":
		return &value.Bool{Value: value.Truthy(operand)}
	case "void":
		return &value.Null{}
	}
	return value.NewErrorAt(value.ValueError, pos.Line, pos.Column, "cannot cast %s to '%s'", operand.Kind(), target)
}

func parseIntLoose(s string) int64 {
	var n int64
	neg := false
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int64(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n
}

func (it *Interpreter) VisitInc(n *ast.IncNode) any {
	return it.stepInPlace(n.Name, 1, n.Pos)
}

func (it *Interpreter) VisitDec(n *ast.DecNode) any {
	return it.stepInPlace(n.Name, -1, n.Pos)
}

func (it *Interpreter) stepInPlace(name string, delta int64, pos ast.Pos) value.Value {
	b, ok := it.Current.Get(name)
	if !ok {
		return it.createErrorAt(value.NameError, pos, "undefined variable '%s'", name)
	}
	switch x := b.Value.(type) {
	case *value.Int:
		x.Value += delta
		return x
	case *value.Float:
		x.Value += float64(delta)
		return x
	default:
		return it.createErrorAt(value.TypeError, pos, "'%s' is not numeric", name)
	}
}
