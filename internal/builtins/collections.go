package builtins

import (
	"fmt"

	"github.com/ivangav/rr/internal/env"
	"github.com/ivangav/rr/internal/rrerr"
	"github.com/ivangav/rr/internal/token"
	"github.com/ivangav/rr/internal/value"
)

// registerCollections installs both required overloads of "index"
// (spec §6): element access by a single Int, and gather-by-list-of-Int.
// Both are declared with return type Any in the signature table, but
// spec §9 is explicit that the (List,List) overload's declared Any is a
// signature placeholder only — it must return a concrete List, not a
// wildcard-typed value.
func registerCollections(e *env.Environment) {
	e.RegisterFunction("index", []token.Type{token.List, token.Int}, token.Any,
		func(args []value.Value, _ *env.Environment) (value.Value, error) {
			list := args[0].List
			i := int(args[1].Int)
			if i < 0 || i >= len(list) {
				return value.Value{}, rrerr.New(rrerr.IndexOutOfRange, token.Position{}, "",
					fmt.Sprintf("index %d out of range for List of length %d", i, len(list)))
			}
			return list[i].Borrow(), nil
		})

	e.RegisterFunction("index", []token.Type{token.List, token.List}, token.Any,
		func(args []value.Value, _ *env.Environment) (value.Value, error) {
			list := args[0].List
			gathered := make([]value.Value, len(args[1].List))
			for i, idxVal := range args[1].List {
				idx := int(idxVal.Int)
				if idx < 0 || idx >= len(list) {
					return value.Value{}, rrerr.New(rrerr.IndexOutOfRange, token.Position{}, "",
						fmt.Sprintf("index %d out of range for List of length %d", idx, len(list)))
				}
				gathered[i] = list[idx]
			}
			return value.NewList(gathered), nil
		})
}
