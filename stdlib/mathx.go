package stdlib

import (
	"math"

	"github.com/gill-lang/gill/environment"
	"github.com/gill-lang/gill/native"
	"github.com/gill-lang/gill/value"
)

// MathxModule builds the "mathx" native module, adapted from go-mix's
// std/math.go builtin table — GILL keeps the same function-per-entry
// registration shape but trims the set to what spec.md's numeric types
// (int, float) can exercise without a richer numeric tower.
func MathxModule() *environment.Environment {
	env := newModuleEnv("mathx")

	register(env, "sqrt", []native.ParameterSpec{native.Param("x", "float")}, func(args []value.Value) value.Value {
		x, ok := numericFloat(firstArg(args))
		if !ok {
			return value.NewError(value.TypeError, "sqrt requires a numeric argument")
		}
		return &value.Float{Value: math.Sqrt(x)}
	})

	register(env, "floor", []native.ParameterSpec{native.Param("x", "float")}, func(args []value.Value) value.Value {
		x, ok := numericFloat(firstArg(args))
		if !ok {
			return value.NewError(value.TypeError, "floor requires a numeric argument")
		}
		return &value.Int{Value: int64(math.Floor(x))}
	})

	register(env, "ceil", []native.ParameterSpec{native.Param("x", "float")}, func(args []value.Value) value.Value {
		x, ok := numericFloat(firstArg(args))
		if !ok {
			return value.NewError(value.TypeError, "ceil requires a numeric argument")
		}
		return &value.Int{Value: int64(math.Ceil(x))}
	})

	register(env, "abs_f", []native.ParameterSpec{native.Param("x", "float")}, func(args []value.Value) value.Value {
		x, ok := numericFloat(firstArg(args))
		if !ok {
			return value.NewError(value.TypeError, "abs_f requires a numeric argument")
		}
		return &value.Float{Value: math.Abs(x)}
	})

	register(env, "abs_i", []native.ParameterSpec{native.Param("x", "int")}, func(args []value.Value) value.Value {
		if len(args) != 1 {
			return value.NewError(value.TypeError, "abs_i requires exactly one argument")
		}
		n, ok := args[0].(*value.Int)
		if !ok {
			return value.NewError(value.TypeError, "abs_i requires an int, got %s", args[0].Kind())
		}
		v := n.Value
		if v < 0 {
			v = -v
		}
		return &value.Int{Value: v}
	})

	register(env, "max", []native.ParameterSpec{native.Param("a", "float"), native.Param("b", "float")}, func(args []value.Value) value.Value {
		a, b, ok := twoFloats(args)
		if !ok {
			return value.NewError(value.TypeError, "max requires two numeric arguments")
		}
		if a > b {
			return &value.Float{Value: a}
		}
		return &value.Float{Value: b}
	})

	register(env, "min", []native.ParameterSpec{native.Param("a", "float"), native.Param("b", "float")}, func(args []value.Value) value.Value {
		a, b, ok := twoFloats(args)
		if !ok {
			return value.NewError(value.TypeError, "min requires two numeric arguments")
		}
		if a < b {
			return &value.Float{Value: a}
		}
		return &value.Float{Value: b}
	})

	registerVar(env, "pi", "float", &value.Float{Value: math.Pi})
	registerVar(env, "e", "float", &value.Float{Value: math.E})
	return env
}

func firstArg(args []value.Value) value.Value {
	if len(args) == 0 {
		return &value.Null{}
	}
	return args[0]
}

func twoFloats(args []value.Value) (float64, float64, bool) {
	if len(args) != 2 {
		return 0, 0, false
	}
	a, ok1 := numericFloat(args[0])
	b, ok2 := numericFloat(args[1])
	return a, b, ok1 && ok2
}
