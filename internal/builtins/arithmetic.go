package builtins

import (
	"math"
	"strconv"

	"github.com/ivangav/rr/internal/env"
	"github.com/ivangav/rr/internal/token"
	"github.com/ivangav/rr/internal/value"
)

// registerArithmetic installs "=", "+", "*" and "round" with their
// priorities and every overload of "+"/"*"/"round" listed in spec §6.
func registerArithmetic(e *env.Environment) {
	e.RegisterAssignOperator("=", 0)

	e.RegisterOperator("+", 10, []token.Type{token.Int, token.Int}, token.Int,
		func(args []value.Value, _ *env.Environment) (value.Value, error) {
			return value.NewInt(args[0].Int + args[1].Int), nil
		})
	e.RegisterOperator("+", 10, []token.Type{token.Float, token.Float}, token.Float,
		func(args []value.Value, _ *env.Environment) (value.Value, error) {
			return value.NewFloat(args[0].Float + args[1].Float), nil
		})
	e.RegisterOperator("+", 10, []token.Type{token.Float, token.Int}, token.Float,
		func(args []value.Value, _ *env.Environment) (value.Value, error) {
			return value.NewFloat(args[0].Float + float64(args[1].Int)), nil
		})
	e.RegisterOperator("+", 10, []token.Type{token.Int, token.Float}, token.Float,
		func(args []value.Value, _ *env.Environment) (value.Value, error) {
			return value.NewFloat(float64(args[0].Int) + args[1].Float), nil
		})
	e.RegisterOperator("+", 10, []token.Type{token.Str, token.Str}, token.Str,
		func(args []value.Value, _ *env.Environment) (value.Value, error) {
			return value.NewStr(args[0].Str + args[1].Str), nil
		})
	e.RegisterOperator("+", 10, []token.Type{token.Str, token.Int}, token.Str,
		func(args []value.Value, _ *env.Environment) (value.Value, error) {
			return value.NewStr(args[0].Str + strconv.FormatInt(args[1].Int, 10)), nil
		})

	e.RegisterOperator("*", 11, []token.Type{token.Int, token.Int}, token.Int,
		func(args []value.Value, _ *env.Environment) (value.Value, error) {
			return value.NewInt(args[0].Int * args[1].Int), nil
		})

	e.RegisterOperator("round", 16, []token.Type{token.Float}, token.Int,
		func(args []value.Value, _ *env.Environment) (value.Value, error) {
			return value.NewInt(roundTiesAwayFromZero(args[0].Float)), nil
		})

	e.RegisterFunction("max", []token.Type{token.Int, token.Int}, token.Int,
		func(args []value.Value, _ *env.Environment) (value.Value, error) {
			if args[0].Int > args[1].Int {
				return value.NewInt(args[0].Int), nil
			}
			return value.NewInt(args[1].Int), nil
		})
}

// roundTiesAwayFromZero rounds to the nearest integer, with ties (the
// fractional part exactly .5) rounding away from zero — round 0.5 -> 1,
// round -0.5 -> -1 (spec §6, §8).
func roundTiesAwayFromZero(f float64) int64 {
	if f >= 0 {
		return int64(math.Floor(f + 0.5))
	}
	return int64(math.Ceil(f - 0.5))
}

