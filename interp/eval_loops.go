package interp

import (
	"github.com/gill-lang/gill/ast"
	"github.com/gill-lang/gill/environment"
	"github.com/gill-lang/gill/value"
)

// VisitWhile executes the body in a fresh child environment for the
// duration of the loop (spec.md §4.3 While), restoring the outer
// environment on exit so anything the body defines does not leak.
func (it *Interpreter) VisitWhile(n *ast.WhileNode) any {
	outer := it.Current
	loopEnv := environment.NewChild(outer)
	defer func() { it.Current = outer }()

	for {
		it.Current = loopEnv
		cond := it.Eval(n.Condition)
		if value.IsError(cond) {
			return cond
		}
		if !value.Truthy(cond) {
			return &value.Null{}
		}
		result := it.Eval(n.Body)
		if value.IsError(result) || value.IsReturn(result) {
			return result
		}
	}
}

// VisitFor seeds the initializer binding in a loop environment that
// persists across iterations, then repeats {body; step} while the
// condition holds. Each iteration's body runs in its own child scope so
// the loop index remains visible to step/condition but anything the body
// defines is discarded per iteration (spec.md §8: "loop iterator not
// visible after loop ends").
func (it *Interpreter) VisitFor(n *ast.ForNode) any {
	outer := it.Current
	loopEnv := environment.NewChild(outer)
	defer func() { it.Current = outer }()

	it.Current = loopEnv
	initVal := it.Eval(n.InitValue)
	if value.IsError(initVal) {
		return initVal
	}
	binding, err := bindingForDefine(initVal, n.InitType, n.Pos)
	if err != nil {
		return err
	}
	loopEnv.Define(n.InitName, binding)

	for {
		it.Current = loopEnv
		cond := it.Eval(n.Condition)
		if value.IsError(cond) {
			return cond
		}
		if !value.Truthy(cond) {
			return &value.Null{}
		}

		iterEnv := environment.NewChild(loopEnv)
		it.Current = iterEnv
		result := it.Eval(n.Body)
		if value.IsError(result) || value.IsReturn(result) {
			return result
		}

		it.Current = loopEnv
		stepResult := it.Eval(n.Step)
		if value.IsError(stepResult) {
			return stepResult
		}
	}
}

// VisitForEach evaluates the iterable once, binds the iterator name once
// in the loop environment, and reassigns it in place each iteration
// (spec.md §4.3 ForEach).
func (it *Interpreter) VisitForEach(n *ast.ForEachNode) any {
	outer := it.Current
	iterableVal := it.Eval(n.Iterable)
	if value.IsError(iterableVal) {
		return iterableVal
	}
	arr, ok := iterableVal.(*value.Array)
	if !ok {
		return it.createErrorAt(value.TypeError, n.Pos, "foreach requires an array, got %s", iterableVal.Kind())
	}

	loopEnv := environment.NewChild(outer)
	defer func() { it.Current = outer }()
	loopEnv.Define(n.IterName, &value.Binding{DeclaredType: value.TypeTag(n.IterType), Value: &value.Null{}})

	for _, item := range arr.Elements {
		binding, _ := loopEnv.Get(n.IterName)
		binding.Value = item

		iterEnv := environment.NewChild(loopEnv)
		it.Current = iterEnv
		result := it.Eval(n.Body)
		if value.IsError(result) || value.IsReturn(result) {
			return result
		}
	}
	return &value.Null{}
}
