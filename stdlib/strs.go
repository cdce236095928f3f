package stdlib

import (
	"strings"

	"github.com/gill-lang/gill/environment"
	"github.com/gill-lang/gill/native"
	"github.com/gill-lang/gill/value"
)

// StrsModule builds the "strs" native module, adapted from go-mix's
// std/strings.go builtin table, trimmed to the subset spec.md's Text/Char
// values can carry (no ord/chr pair since GILL's Char is already a rune,
// not an integer code point requiring conversion helpers).
func StrsModule() *environment.Environment {
	env := newModuleEnv("strs")

	register(env, "upper", []native.ParameterSpec{native.Param("s", "string")}, oneTextFn(strings.ToUpper))
	register(env, "lower", []native.ParameterSpec{native.Param("s", "string")}, oneTextFn(strings.ToLower))
	register(env, "trim", []native.ParameterSpec{native.Param("s", "string")}, oneTextFn(strings.TrimSpace))

	register(env, "split", []native.ParameterSpec{native.Param("s", "string"), native.Param("sep", "string")}, func(args []value.Value) value.Value {
		s, sep, ok := twoTexts(args)
		if !ok {
			return value.NewError(value.TypeError, "split requires two string arguments")
		}
		parts := strings.Split(s, sep)
		elements := make([]value.Value, len(parts))
		for i, p := range parts {
			elements[i] = &value.Text{Value: p}
		}
		return &value.Array{Elements: elements, ElementType: value.TypeString}
	})

	register(env, "join", []native.ParameterSpec{native.Param("parts", "string"), native.Param("sep", "string")}, func(args []value.Value) value.Value {
		if len(args) != 2 {
			return value.NewError(value.TypeError, "join requires exactly two arguments")
		}
		arr, ok := args[0].(*value.Array)
		if !ok {
			return value.NewError(value.TypeError, "join requires an array of strings as its first argument")
		}
		sep, ok := args[1].(*value.Text)
		if !ok {
			return value.NewError(value.TypeError, "join requires a string separator")
		}
		parts := make([]string, len(arr.Elements))
		for i, el := range arr.Elements {
			t, ok := el.(*value.Text)
			if !ok {
				return value.NewError(value.TypeError, "join requires every element to be a string, got %s at index %d", el.Kind(), i)
			}
			parts[i] = t.Value
		}
		return &value.Text{Value: strings.Join(parts, sep.Value)}
	})

	register(env, "contains", []native.ParameterSpec{native.Param("s", "string"), native.Param("sub", "string")}, func(args []value.Value) value.Value {
		s, sub, ok := twoTexts(args)
		if !ok {
			return value.NewError(value.TypeError, "contains requires two string arguments")
		}
		return &value.Bool{Value: strings.Contains(s, sub)}
	})

	register(env, "index_of", []native.ParameterSpec{native.Param("s", "string"), native.Param("sub", "string")}, func(args []value.Value) value.Value {
		s, sub, ok := twoTexts(args)
		if !ok {
			return value.NewError(value.TypeError, "index_of requires two string arguments")
		}
		return &value.Int{Value: int64(strings.Index(s, sub))}
	})

	return env
}

func oneTextFn(f func(string) string) native.Callback {
	return func(args []value.Value) value.Value {
		if len(args) != 1 {
			return value.NewError(value.TypeError, "expected exactly one string argument")
		}
		t, ok := args[0].(*value.Text)
		if !ok {
			return value.NewError(value.TypeError, "expected a string, got %s", args[0].Kind())
		}
		return &value.Text{Value: f(t.Value)}
	}
}

func twoTexts(args []value.Value) (string, string, bool) {
	if len(args) != 2 {
		return "", "", false
	}
	a, ok1 := args[0].(*value.Text)
	b, ok2 := args[1].(*value.Text)
	if !ok1 || !ok2 {
		return "", "", false
	}
	return a.Value, b.Value, true
}
