// Package stdlib implements GILL's native modules: concrete content for
// the module interface spec.md §1 deliberately leaves unspecified ("the
// actual file contents of the standard library module" is named only as
// an external collaborator). Each file here is one module, built the way
// akashmaji946/go-mix's std/*.go files build one module per file, but
// registered against GILL's native.Function/native.Variable descriptors
// instead of go-mix's Builtin/Package.
//
// This file is a direct port of original_source/proto/src/packages/stdlib.py,
// the one native module the original GILL implementation ships — its
// functions and their registration shape (ModuleEnv with a functions map
// of NativeFunction(name, [ParameterSpec], impl) and a variables map of
// NativeVariable(name, type, value)) are reproduced here in Go idiom.
package stdlib

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/gill-lang/gill/environment"
	"github.com/gill-lang/gill/native"
	"github.com/gill-lang/gill/value"
)

// newModuleEnv builds a standalone module environment: its own bindings,
// functions, and module registry, named but with no parent (native
// modules don't nest further modules of their own).
func newModuleEnv(name string) *environment.Environment {
	env := environment.NewGlobal()
	env.ModuleName = name
	return env
}

func register(env *environment.Environment, name string, params []native.ParameterSpec, cb native.Callback) {
	env.DefineFunction(name, &environment.NativeFunctionObject{Function: &native.Function{Name: name, Parameters: params, Callback: cb}})
}

func registerVar(env *environment.Environment, name, declaredType string, v value.Value) {
	env.Define(name, &value.Binding{DeclaredType: value.TypeTag(declaredType), Value: v})
}

// Module builds the "stdlib" native module.
func Module() *environment.Environment {
	env := newModuleEnv("stdlib")

	register(env, "printf",
		[]native.ParameterSpec{native.Param("format", "string"), native.VarargsParam("args")},
		printfFn)
	register(env, "printfr",
		[]native.ParameterSpec{native.Param("format", "string"), native.VarargsParam("args")},
		printfrFn)
	register(env, "str_len",
		[]native.ParameterSpec{native.Param("s", "string")},
		strLenFn)
	register(env, "sizeof",
		[]native.ParameterSpec{native.Param("object", "var")},
		sizeofFn)
	register(env, "pow",
		[]native.ParameterSpec{native.Param("base", "float"), native.Param("exponent", "float")},
		powFn)

	registerVar(env, "version", "string", &value.Text{Value: "0.0.1"})
	return env
}

// formatArgs renders args.v (the trailing varargs array) positionally into
// format, mirroring the original's `main_string.format(*place_holder_values)`
// via %v-driven substitution of each `{}` occurrence in order.
func formatArgs(format string, args []value.Value) string {
	vals := make([]any, len(args))
	for i, a := range args {
		vals[i] = a.String()
	}
	out := ""
	argIdx := 0
	for i := 0; i < len(format); i++ {
		if format[i] == '{' && i+1 < len(format) && format[i+1] == '}' {
			if argIdx < len(vals) {
				out += fmt.Sprintf("%v", vals[argIdx])
				argIdx++
			} else {
				out += "{}"
			}
			i++
			continue
		}
		out += string(format[i])
	}
	return out
}

// varargsOf unwraps the trailing Array native functions receive when
// their last ParameterSpec is Varargs (spec.md §4.3/§6).
func varargsOf(args []value.Value, fixedCount int) []value.Value {
	if len(args) <= fixedCount {
		return nil
	}
	if arr, ok := args[fixedCount].(*value.Array); ok {
		return arr.Elements
	}
	return args[fixedCount:]
}

func printfFn(args []value.Value) value.Value {
	if len(args) < 1 {
		return value.NewError(value.TypeError, "printf requires at least a format string")
	}
	format := args[0].String()
	rest := varargsOf(args, 1)
	fmt.Println(formatArgs(format, rest))
	return &value.Null{}
}

func printfrFn(args []value.Value) value.Value {
	if len(args) < 1 {
		return value.NewError(value.TypeError, "printfr requires at least a format string")
	}
	format := args[0].String()
	rest := varargsOf(args, 1)
	formatted := formatArgs(format, rest)
	fmt.Println(formatted)
	return &value.Text{Value: formatted}
}

func strLenFn(args []value.Value) value.Value {
	if len(args) != 1 {
		return value.NewError(value.TypeError, "str_len requires exactly one argument")
	}
	s, ok := args[0].(*value.Text)
	if !ok {
		return value.NewError(value.TypeError, "str_len requires a string, got %s", args[0].Kind())
	}
	return &value.Int{Value: int64(len([]rune(s.Value)))}
}

// sizeofFn approximates an object's footprint: a structural estimate for
// compound values (arrays sum their elements), unsafe.Sizeof for scalars
// — Go has no exact equivalent of CPython's sys.getsizeof, so this is a
// deliberate approximation, not a byte-for-byte port.
func sizeofFn(args []value.Value) value.Value {
	if len(args) != 1 {
		return value.NewError(value.TypeError, "sizeof requires exactly one argument")
	}
	return &value.Int{Value: int64(structuralSize(args[0]))}
}

func structuralSize(v value.Value) uintptr {
	switch x := v.(type) {
	case *value.Int:
		return unsafe.Sizeof(x.Value)
	case *value.Float:
		return unsafe.Sizeof(x.Value)
	case *value.Bool:
		return unsafe.Sizeof(x.Value)
	case *value.Char:
		return unsafe.Sizeof(x.Value)
	case *value.Text:
		return uintptr(len(x.Value))
	case *value.Array:
		var total uintptr
		for _, el := range x.Elements {
			total += structuralSize(el)
		}
		return total
	default:
		return 0
	}
}

func powFn(args []value.Value) value.Value {
	if len(args) != 2 {
		return value.NewError(value.TypeError, "pow requires exactly two arguments")
	}
	base, ok1 := numericFloat(args[0])
	exp, ok2 := numericFloat(args[1])
	if !ok1 || !ok2 {
		return value.NewError(value.TypeError, "pow requires numeric arguments")
	}
	return &value.Float{Value: math.Pow(base, exp)}
}

func numericFloat(v value.Value) (float64, bool) {
	switch x := v.(type) {
	case *value.Int:
		return float64(x.Value), true
	case *value.Float:
		return x.Value, true
	default:
		return 0, false
	}
}
