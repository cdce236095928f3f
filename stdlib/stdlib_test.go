package stdlib_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gill-lang/gill/interp"
	"github.com/gill-lang/gill/lexer"
	"github.com/gill-lang/gill/parser"
	"github.com/gill-lang/gill/stdlib"
	"github.com/gill-lang/gill/value"
)

func run(t *testing.T, src string) (string, value.Value) {
	t.Helper()
	toks, err := lexer.New(src).Tokenize()
	require.NoError(t, err)
	program, err := parser.Parse(toks)
	require.NoError(t, err)

	var buf bytes.Buffer
	it := interp.New(stdlib.NewLoader())
	it.SetWriter(&buf)
	result := it.Run(program)
	return buf.String(), result
}

func TestMathxSqrt(t *testing.T) {
	out, result := run(t, `import mathx define x float exec mathx::sqrt(9.0) out x`)
	require.False(t, value.IsError(result), out)
	assert.Equal(t, "3\n", out)
}

func TestMathxMax(t *testing.T) {
	out, result := run(t, `import mathx out exec mathx::max(1.0, 2.0)`)
	require.False(t, value.IsError(result))
	assert.Equal(t, "2\n", out)
}

func TestStrsUpper(t *testing.T) {
	out, result := run(t, `import strs out exec strs::upper("hi")`)
	require.False(t, value.IsError(result))
	assert.Equal(t, "HI\n", out)
}

func TestStrsJoin(t *testing.T) {
	out, result := run(t, `import strs define parts[2] string ["a", "b"] out exec strs::join(parts, "-")`)
	require.False(t, value.IsError(result))
	assert.Equal(t, "a-b\n", out)
}

func TestStdlibStrLenAndPow(t *testing.T) {
	out, result := run(t, `import stdlib out exec stdlib::str_len("hello")`)
	require.False(t, value.IsError(result))
	assert.Equal(t, "5\n", out)

	out2, result2 := run(t, `import stdlib out exec stdlib::pow(2.0, 10.0)`)
	require.False(t, value.IsError(result2))
	assert.Equal(t, "1024\n", out2)
}

func TestEncodingYamlEncode(t *testing.T) {
	out, result := run(t, `import encoding define s string exec encoding::yaml_encode(5) out s`)
	require.False(t, value.IsError(result), out)
	assert.Equal(t, "5\n\n", out)
}

func TestFileioWriteReadRoundTrip(t *testing.T) {
	tmp, err := os.CreateTemp("", "gill-fileio-*.txt")
	require.NoError(t, err)
	tmp.Close()
	defer os.Remove(tmp.Name())

	src := `
import fileio
define wf file exec fileio::fopen("` + tmp.Name() + `", "w")
exec fileio::fwrite(wf, "hello")
exec fileio::fclose(wf)
define rf file exec fileio::fopen("` + tmp.Name() + `", "r")
define content string exec fileio::fread(rf, 5)
exec fileio::fclose(rf)
out content
`
	out, result := run(t, src)
	require.False(t, value.IsError(result), out)
	assert.Equal(t, "hello\n", out)
}

func TestUnknownModuleIsImportError(t *testing.T) {
	_, result := run(t, "import nope")
	require.True(t, value.IsError(result))
	assert.Equal(t, value.ImportError, result.(*value.Error).Code)
}
