package interp

import (
	"fmt"

	"github.com/gill-lang/gill/ast"
	"github.com/gill-lang/gill/value"
)

// VisitBlock evaluates statements in order; the block's value is the last
// statement's value (spec.md §4.3 Block). Propagates the first error or
// return signal immediately.
func (it *Interpreter) VisitBlock(n *ast.BlockNode) any {
	var last value.Value = &value.Null{}
	for _, stmt := range n.Statements {
		last = it.Eval(stmt)
		if value.IsError(last) || value.IsReturn(last) {
			return last
		}
	}
	return last
}

// VisitOutput writes the canonical string form of expr to the configured
// writer followed by a line terminator (spec.md §6 Output channel); the
// statement's value is the emitted value.
func (it *Interpreter) VisitOutput(n *ast.OutputNode) any {
	v := it.Eval(n.Expr)
	if value.IsError(v) {
		return v
	}
	fmt.Fprintln(it.Writer, v.String())
	return v
}
