package stdlib

import (
	"io"
	"os"

	"github.com/gill-lang/gill/environment"
	"github.com/gill-lang/gill/native"
	"github.com/gill-lang/gill/value"
)

// FileioModule builds the "fileio" native module, adapted from go-mix's
// file/file.go: the same fopen/fclose/fread/fwrite/fseek/ftell set, ported
// from go-mix's FileObject (wrapping *os.File) to value.File.
func FileioModule() *environment.Environment {
	env := newModuleEnv("fileio")

	register(env, "fopen",
		[]native.ParameterSpec{native.Param("path", "string"), native.Param("mode", "string")},
		fopenFn)
	register(env, "fclose",
		[]native.ParameterSpec{native.Param("f", "file")},
		fcloseFn)
	register(env, "fread",
		[]native.ParameterSpec{native.Param("f", "file"), native.Param("size", "int")},
		freadFn)
	register(env, "fwrite",
		[]native.ParameterSpec{native.Param("f", "file"), native.Param("content", "string")},
		fwriteFn)
	register(env, "fseek",
		[]native.ParameterSpec{native.Param("f", "file"), native.Param("offset", "int")},
		fseekFn)
	register(env, "ftell",
		[]native.ParameterSpec{native.Param("f", "file")},
		ftellFn)

	return env
}

func asFile(v value.Value) (*value.File, *os.File, bool) {
	f, ok := v.(*value.File)
	if !ok {
		return nil, nil, false
	}
	h, ok := f.Handle.(*os.File)
	return f, h, ok
}

func fopenFn(args []value.Value) value.Value {
	if len(args) != 2 {
		return value.NewError(value.TypeError, "fopen requires exactly two arguments (path, mode)")
	}
	pathVal, ok1 := args[0].(*value.Text)
	modeVal, ok2 := args[1].(*value.Text)
	if !ok1 || !ok2 {
		return value.NewError(value.TypeError, "fopen requires string arguments")
	}

	var flag int
	switch modeVal.Value {
	case "r":
		flag = os.O_RDONLY
	case "w":
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case "a":
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case "r+":
		flag = os.O_RDWR
	case "w+":
		flag = os.O_RDWR | os.O_CREATE | os.O_TRUNC
	default:
		return value.NewError(value.ValueError, "invalid file mode '%s'", modeVal.Value)
	}

	handle, err := os.OpenFile(pathVal.Value, flag, 0644)
	if err != nil {
		return value.NewError(value.RuntimeError, "could not open file '%s': %v", pathVal.Value, err)
	}
	return &value.File{Handle: handle, Path: pathVal.Value}
}

func fcloseFn(args []value.Value) value.Value {
	if len(args) != 1 {
		return value.NewError(value.TypeError, "fclose requires exactly one argument")
	}
	f, h, ok := asFile(args[0])
	if !ok {
		return value.NewError(value.TypeError, "fclose requires a file handle")
	}
	if err := h.Close(); err != nil {
		return value.NewError(value.RuntimeError, "failed to close file: %v", err)
	}
	f.Closed = true
	return &value.Null{}
}

func freadFn(args []value.Value) value.Value {
	if len(args) != 2 {
		return value.NewError(value.TypeError, "fread requires exactly two arguments (handle, size)")
	}
	_, h, ok := asFile(args[0])
	if !ok {
		return value.NewError(value.TypeError, "fread requires a file handle as its first argument")
	}
	size, ok := args[1].(*value.Int)
	if !ok {
		return value.NewError(value.TypeError, "fread requires an int size as its second argument")
	}
	buf := make([]byte, size.Value)
	n, err := h.Read(buf)
	if err != nil && err != io.EOF {
		return value.NewError(value.RuntimeError, "read failed: %v", err)
	}
	return &value.Text{Value: string(buf[:n])}
}

func fwriteFn(args []value.Value) value.Value {
	if len(args) != 2 {
		return value.NewError(value.TypeError, "fwrite requires exactly two arguments (handle, content)")
	}
	_, h, ok := asFile(args[0])
	if !ok {
		return value.NewError(value.TypeError, "fwrite requires a file handle as its first argument")
	}
	content, ok := args[1].(*value.Text)
	if !ok {
		return value.NewError(value.TypeError, "fwrite requires a string as its second argument")
	}
	n, err := h.WriteString(content.Value)
	if err != nil {
		return value.NewError(value.RuntimeError, "write failed: %v", err)
	}
	return &value.Int{Value: int64(n)}
}

func fseekFn(args []value.Value) value.Value {
	if len(args) != 2 {
		return value.NewError(value.TypeError, "fseek requires exactly two arguments (handle, offset)")
	}
	_, h, ok := asFile(args[0])
	if !ok {
		return value.NewError(value.TypeError, "fseek requires a file handle as its first argument")
	}
	offset, ok := args[1].(*value.Int)
	if !ok {
		return value.NewError(value.TypeError, "fseek requires an int offset")
	}
	pos, err := h.Seek(offset.Value, io.SeekStart)
	if err != nil {
		return value.NewError(value.RuntimeError, "seek failed: %v", err)
	}
	return &value.Int{Value: pos}
}

func ftellFn(args []value.Value) value.Value {
	if len(args) != 1 {
		return value.NewError(value.TypeError, "ftell requires exactly one argument")
	}
	_, h, ok := asFile(args[0])
	if !ok {
		return value.NewError(value.TypeError, "ftell requires a file handle")
	}
	pos, err := h.Seek(0, io.SeekCurrent)
	if err != nil {
		return value.NewError(value.RuntimeError, "tell failed: %v", err)
	}
	return &value.Int{Value: pos}
}
