package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gill-lang/gill/ast"
	"github.com/gill-lang/gill/lexer"
	"github.com/gill-lang/gill/token"
)

func mustParse(t *testing.T, src string) *ast.BlockNode {
	t.Helper()
	toks, err := lexer.New(src).Tokenize()
	require.NoError(t, err)
	block, err := Parse(toks)
	require.NoError(t, err)
	return block
}

func TestAdditiveBindsLooserThanMultiplicative(t *testing.T) {
	block := mustParse(t, "out 1 + 2 * 3")
	out := block.Statements[0].(*ast.OutputNode)
	bin := out.Expr.(*ast.BinOpNode)
	assert.Equal(t, token.ADD, bin.Op)
	assert.Equal(t, int64(1), bin.Left.(*ast.NumberNode).IntVal)
	rhs := bin.Right.(*ast.BinOpNode)
	assert.Equal(t, token.MUL, rhs.Op)
}

func TestAndBindsLooserThanComparison(t *testing.T) {
	block := mustParse(t, "out a == b && c < d")
	out := block.Statements[0].(*ast.OutputNode)
	top := out.Expr.(*ast.BinOpNode)
	assert.Equal(t, token.AND, top.Op)
	left := top.Left.(*ast.BinOpNode)
	assert.Equal(t, token.EQ, left.Op)
	right := top.Right.(*ast.BinOpNode)
	assert.Equal(t, token.LT, right.Op)
}

func TestLeftAssociativeSubtraction(t *testing.T) {
	block := mustParse(t, "out 10 - 3 - 2")
	out := block.Statements[0].(*ast.OutputNode)
	top := out.Expr.(*ast.BinOpNode)
	assert.Equal(t, token.SUB, top.Op)
	assert.Equal(t, int64(2), top.Right.(*ast.NumberNode).IntVal)
	left := top.Left.(*ast.BinOpNode)
	assert.Equal(t, token.SUB, left.Op)
	assert.Equal(t, int64(10), left.Left.(*ast.NumberNode).IntVal)
	assert.Equal(t, int64(3), left.Right.(*ast.NumberNode).IntVal)
}

func TestDefineArrayWithDeclaredSize(t *testing.T) {
	block := mustParse(t, "define a[3] int [1, 2, 3]")
	def := block.Statements[0].(*ast.DefineNode)
	require.NotNil(t, def.DeclaredSize)
	assert.Equal(t, 3, *def.DeclaredSize)
	arr := def.Value.(*ast.ArrayNode)
	assert.Equal(t, 3, arr.DeclaredSize)
	assert.Len(t, arr.Elements, 3)
}

func TestForLoopHeader(t *testing.T) {
	block := mustParse(t, "for (define i int 0, i < 3, i++) { out i }")
	forNode := block.Statements[0].(*ast.ForNode)
	assert.Equal(t, "i", forNode.InitName)
	assert.Equal(t, "int", forNode.InitType)
	_, isInc := forNode.Step.(*ast.IncNode)
	assert.True(t, isInc)
}

func TestForEachLoopHeader(t *testing.T) {
	block := mustParse(t, "foreach (define x int : a) { out x }")
	fe := block.Statements[0].(*ast.ForEachNode)
	assert.Equal(t, "x", fe.IterName)
	assert.Equal(t, "a", fe.Iterable.(*ast.IdentifierNode).Name)
}

func TestFunctionDefinitionAndCall(t *testing.T) {
	block := mustParse(t, "function int add(int a, int b) { return a + b } out exec add(2, 3)")
	fn := block.Statements[0].(*ast.FunctionDefinitionNode)
	assert.Equal(t, "add", fn.Name)
	assert.Len(t, fn.Params, 2)
	out := block.Statements[1].(*ast.OutputNode)
	call := out.Expr.(*ast.FunctionCallNode)
	assert.Equal(t, "add", call.Name)
	assert.Len(t, call.Args, 2)
}

func TestModuleQualifiedCall(t *testing.T) {
	block := mustParse(t, "import mathx exec mathx::sqrt(9)")
	call := block.Statements[1].(*ast.FunctionCallNode)
	assert.Equal(t, "mathx", call.ModuleName)
	assert.Equal(t, "sqrt", call.Name)
}

func TestSwitchDefaultMustBeLast(t *testing.T) {
	_, err := New(mustTokens(t, "switch (1) { default { out 1 } case (2) { out 2 } }")).parseStatement()
	require.Error(t, err)
}

func mustTokens(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := lexer.New(src).Tokenize()
	require.NoError(t, err)
	return toks
}

func TestTryCatchFinally(t *testing.T) {
	block := mustParse(t, `try { define x int "bad" } catch { out "caught" } finally { out "fin" }`)
	tc := block.Statements[0].(*ast.TryCatchNode)
	require.NotNil(t, tc.Finally)
}

func TestCastStandaloneAndParenthesized(t *testing.T) {
	block := mustParse(t, `define x int 1 out (int)x out ((int)x)`)
	out1 := block.Statements[1].(*ast.OutputNode)
	_, ok := out1.Expr.(*ast.CastNode)
	assert.True(t, ok)
	out2 := block.Statements[2].(*ast.OutputNode)
	_, ok = out2.Expr.(*ast.CastNode)
	assert.True(t, ok)
}
