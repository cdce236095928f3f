package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gill-lang/gill/ast"
	"github.com/gill-lang/gill/environment"
	"github.com/gill-lang/gill/lexer"
	"github.com/gill-lang/gill/parser"
	"github.com/gill-lang/gill/value"
)

// fakeLoader satisfies ModuleLoader for import-related tests without
// depending on the stdlib package (which would create an import cycle:
// stdlib imports interp, so interp's own tests cannot import stdlib; this
// also keeps them from coupling to any particular native module's
// contents).
type fakeLoader struct {
	envs map[string]*environment.Environment
}

func (l *fakeLoader) Load(name string) (*environment.Environment, error) {
	if env, ok := l.envs[name]; ok {
		return env, nil
	}
	return nil, assertErr(name)
}

type assertErr string

func (e assertErr) Error() string { return "module not found: " + string(e) }

func run(t *testing.T, src string) (string, value.Value) {
	t.Helper()
	toks, err := lexer.New(src).Tokenize()
	require.NoError(t, err)
	program, err := parser.Parse(toks)
	require.NoError(t, err)

	var buf bytes.Buffer
	it := New(nil)
	it.SetWriter(&buf)
	result := it.Run(program)
	return buf.String(), result
}

func TestScenarioReassignAndOutput(t *testing.T) {
	out, result := run(t, "define n int 21 assign n n * 2 out n")
	assert.False(t, value.IsError(result))
	assert.Equal(t, "42\n", out)
}

func TestScenarioStringConcat(t *testing.T) {
	out, _ := run(t, `define s string "hi" define t string s + " there" out t`)
	assert.Equal(t, "hi there\n", out)
}

func TestScenarioFunctionCallReturn(t *testing.T) {
	out, _ := run(t, "function int add(int a, int b) { return a + b } out exec add(2, 3)")
	assert.Equal(t, "5\n", out)
}

func TestScenarioForEachOverArray(t *testing.T) {
	out, _ := run(t, "define a[3] int [10, 20, 30] foreach (define x int : a) { out x }")
	assert.Equal(t, "10\n20\n30\n", out)
}

func TestScenarioForLoop(t *testing.T) {
	out, _ := run(t, "for (define i int 0, i < 3, i++) { out i }")
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestScenarioIfElse(t *testing.T) {
	out, _ := run(t, `define x int 1 if x == 1 { out "y" } else { out "n" }`)
	assert.Equal(t, "y\n", out)
}

func TestScenarioTryCatchFinally(t *testing.T) {
	out, _ := run(t, `try { define x int "bad" } catch { out "caught" } finally { out "fin" }`)
	assert.Equal(t, "caught\nfin\n", out)
}

func TestAssignToUndefinedFailsNameError(t *testing.T) {
	_, result := run(t, "assign n 2")
	require.True(t, value.IsError(result))
	assert.Equal(t, value.NameError, result.(*value.Error).Code)
}

func TestDefineTypeMismatchFailsTypeError(t *testing.T) {
	_, result := run(t, `define x int "hi"`)
	require.True(t, value.IsError(result))
	assert.Equal(t, value.TypeError, result.(*value.Error).Code)
}

func TestDefineCharRequiresSingleCharacter(t *testing.T) {
	_, result := run(t, `define c char "ab"`)
	require.True(t, value.IsError(result))
	assert.Equal(t, value.TypeError, result.(*value.Error).Code)

	_, result2 := run(t, `define c char "a"`)
	assert.False(t, value.IsError(result2))
}

func TestArrayOutOfBoundsIsIndexError(t *testing.T) {
	_, result := run(t, "define a[3] int [1,2,3] out a[3]")
	require.True(t, value.IsError(result))
	assert.Equal(t, value.IndexError, result.(*value.Error).Code)
}

func TestArrayElementTypeMismatch(t *testing.T) {
	_, result := run(t, `define a[3] int [1,2,"x"]`)
	require.True(t, value.IsError(result))
	assert.Equal(t, value.TypeError, result.(*value.Error).Code)
}

func TestLoopIteratorNotVisibleAfterLoop(t *testing.T) {
	_, result := run(t, "for (define i int 0, i < 3, i++) { out i } assign i 9")
	require.True(t, value.IsError(result))
	assert.Equal(t, value.NameError, result.(*value.Error).Code)
}

func TestFunctionMissingArgumentFailsTypeError(t *testing.T) {
	_, result := run(t, "function int add(int a, int b) { return a + b } out exec add(2)")
	require.True(t, value.IsError(result))
	assert.Equal(t, value.TypeError, result.(*value.Error).Code)
}

func TestFunctionWithoutReturnYieldsLastStatement(t *testing.T) {
	out, _ := run(t, "function int last(int a) { assign a a + 1 } out exec last(4)")
	assert.Equal(t, "5\n", out)
}

func TestNonLocalReturnEscapesLoopInsideFunction(t *testing.T) {
	src := `
function int firstOver(int n) {
	for (define i int 0, i < 10, i++) {
		if i == n { return i }
	}
	return 0 - 1
}
out exec firstOver(3)
`
	out, _ := run(t, src)
	assert.Equal(t, "3\n", out)
}

func TestTopLevelReturnIsRuntimeError(t *testing.T) {
	_, result := run(t, "return 1")
	require.True(t, value.IsError(result))
	assert.Equal(t, value.RuntimeError, result.(*value.Error).Code)
}

func TestModuleFunctionOnlyCallableQualified(t *testing.T) {
	modEnv := environment.NewGlobal()
	modEnv.ModuleName = "m"
	modEnv.DefineFunction("f", &environment.UserFunction{
		Node:    mustFunctionNode(t, "function int f() { return 1 }"),
		Defined: modEnv,
	})

	loader := &fakeLoader{envs: map[string]*environment.Environment{"m": modEnv}}

	toks, err := lexer.New("import m out exec m::f()").Tokenize()
	require.NoError(t, err)
	program, err := parser.Parse(toks)
	require.NoError(t, err)

	var buf bytes.Buffer
	it := New(loader)
	it.SetWriter(&buf)
	result := it.Run(program)
	assert.False(t, value.IsError(result))
	assert.Equal(t, "1\n", buf.String())

	_, unqualified := run(t, "out exec f()")
	require.True(t, value.IsError(unqualified))
	assert.Equal(t, value.NameError, unqualified.(*value.Error).Code)
}

func mustFunctionNode(t *testing.T, src string) *ast.FunctionDefinitionNode {
	t.Helper()
	toks, err := lexer.New(src).Tokenize()
	require.NoError(t, err)
	block, err := parser.Parse(toks)
	require.NoError(t, err)
	return block.Statements[0].(*ast.FunctionDefinitionNode)
}

func TestTopLevelReturnDoesNotFalseCatch(t *testing.T) {
	out, _ := run(t, `try { return 1 } catch { out "caught" }`)
	assert.False(t, strings.Contains(out, "caught"))
}
