package interp

import (
	"github.com/gill-lang/gill/ast"
	"github.com/gill-lang/gill/value"
)

func (it *Interpreter) VisitIf(n *ast.IfNode) any {
	cond := it.Eval(n.Condition)
	if value.IsError(cond) {
		return cond
	}
	if value.Truthy(cond) {
		return it.Eval(n.Then)
	}
	if n.Else != nil {
		return it.Eval(n.Else)
	}
	return &value.Null{}
}

// VisitSwitch evaluates the scrutinee once, executes the first matching
// case body, and falls to default only when nothing matched — no
// fallthrough (spec.md §4.3 Switch; this is a deliberate divergence from
// go-mix's eval_conditionals.go, whose switch falls through to subsequent
// cases unless it sees a Break).
func (it *Interpreter) VisitSwitch(n *ast.SwitchNode) any {
	scrutinee := it.Eval(n.Expr)
	if value.IsError(scrutinee) {
		return scrutinee
	}
	for _, c := range n.Cases {
		caseVal := it.Eval(c.Value)
		if value.IsError(caseVal) {
			return caseVal
		}
		if valuesEqual(scrutinee, caseVal) {
			return it.Eval(c.Body)
		}
	}
	if n.Default != nil {
		return it.Eval(n.Default.Body)
	}
	return &value.Null{}
}

func (it *Interpreter) VisitCase(n *ast.CaseNode) any    { return it.Eval(n.Body) }
func (it *Interpreter) VisitDefault(n *ast.DefaultNode) any { return it.Eval(n.Body) }

// VisitTryCatch evaluates the try block; any recoverable runtime error
// (never a ReturnSignal — that must pass through untouched, spec.md §5)
// routes to the catch block. The finally block, if present, always runs.
func (it *Interpreter) VisitTryCatch(n *ast.TryCatchNode) any {
	result := it.Eval(n.Try)
	if value.IsError(result) {
		result = it.Eval(n.Catch)
	}
	if n.Finally != nil {
		finallyResult := it.Eval(n.Finally)
		if value.IsError(finallyResult) || value.IsReturn(finallyResult) {
			return finallyResult
		}
	}
	return result
}
