package stdlib

import (
	"gopkg.in/yaml.v3"

	"github.com/gill-lang/gill/environment"
	"github.com/gill-lang/gill/native"
	"github.com/gill-lang/gill/value"
)

// EncodingModule builds the "encoding" native module. None of go-mix's
// std/*.go files touch serialization, so this module has no direct
// teacher file to adapt — it exists to exercise gopkg.in/yaml.v3, the one
// domain dependency none of the other native modules reach, the same way
// config/modules.go uses it for the module search-path table.
func EncodingModule() *environment.Environment {
	env := newModuleEnv("encoding")

	register(env, "yaml_encode", []native.ParameterSpec{native.Param("v", "var")}, func(args []value.Value) value.Value {
		if len(args) != 1 {
			return value.NewError(value.TypeError, "yaml_encode requires exactly one argument")
		}
		out, err := yaml.Marshal(toNative(args[0]))
		if err != nil {
			return value.NewError(value.RuntimeError, "yaml_encode failed: %v", err)
		}
		return &value.Text{Value: string(out)}
	})

	register(env, "yaml_decode", []native.ParameterSpec{native.Param("s", "string")}, func(args []value.Value) value.Value {
		if len(args) != 1 {
			return value.NewError(value.TypeError, "yaml_decode requires exactly one argument")
		}
		s, ok := args[0].(*value.Text)
		if !ok {
			return value.NewError(value.TypeError, "yaml_decode requires a string argument")
		}
		var decoded any
		if err := yaml.Unmarshal([]byte(s.Value), &decoded); err != nil {
			return value.NewError(value.ValueError, "yaml_decode failed: %v", err)
		}
		return fromNative(decoded)
	})

	return env
}

// toNative converts a GILL Value into a plain Go value yaml.Marshal can
// walk: scalars map directly, arrays become []any.
func toNative(v value.Value) any {
	switch x := v.(type) {
	case *value.Int:
		return x.Value
	case *value.Float:
		return x.Value
	case *value.Text:
		return x.Value
	case *value.Char:
		return string(x.Value)
	case *value.Bool:
		return x.Value
	case *value.Null:
		return nil
	case *value.Array:
		out := make([]any, len(x.Elements))
		for i, el := range x.Elements {
			out[i] = toNative(el)
		}
		return out
	default:
		return v.String()
	}
}

// fromNative converts a yaml.Unmarshal result back into a GILL Value.
// Maps (and any other shape not handled above) come back as their
// re-marshalled YAML text, since spec.md's closed Value union has no
// map/object variant
// (Non-goals: GILL has no compound type beyond homogeneous arrays).
func fromNative(v any) value.Value {
	switch x := v.(type) {
	case int:
		return &value.Int{Value: int64(x)}
	case int64:
		return &value.Int{Value: x}
	case float64:
		return &value.Float{Value: x}
	case string:
		return &value.Text{Value: x}
	case bool:
		return &value.Bool{Value: x}
	case nil:
		return &value.Null{}
	case []any:
		elements := make([]value.Value, len(x))
		for i, el := range x {
			elements[i] = fromNative(el)
		}
		return &value.Array{Elements: elements}
	default:
		out, err := yaml.Marshal(x)
		if err != nil {
			return value.NewError(value.RuntimeError, "yaml_decode: unrepresentable value: %v", err)
		}
		return &value.Text{Value: string(out)}
	}
}
