// This file also wires golang.org/x/text into RR's string handling,
// grounded on the teacher's internal/interp/builtins/strings.go, which
// imports golang.org/x/text/collate, golang.org/x/text/language and
// golang.org/x/text/unicode/norm for the same purpose: locale-aware
// string comparison and Unicode normalization. See SPEC_FULL.md's
// "Domain stack wiring" section.
package builtins

import (
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ivangav/rr/internal/env"
	"github.com/ivangav/rr/internal/token"
	"github.com/ivangav/rr/internal/value"
)

// registerText installs "repeat" (priority 3) and "concat", plus the
// additive, non-spec "localecmp" overload used for locale-aware string
// comparison.
func registerText(e *env.Environment) {
	e.RegisterOperator("repeat", 3, []token.Type{token.Str, token.Int}, token.Str,
		func(args []value.Value, _ *env.Environment) (value.Value, error) {
			n := args[1].Int
			if n <= 0 {
				return value.NewStr(""), nil
			}
			return value.NewStr(strings.Repeat(args[0].Str, int(n))), nil
		})

	e.RegisterFunction("concat", []token.Type{token.List, token.Str}, token.Str,
		func(args []value.Value, _ *env.Environment) (value.Value, error) {
			glue := args[1].Str
			var parts []string
			for _, elem := range args[0].List {
				switch elem.Tag {
				case token.Int:
					parts = append(parts, strconv.FormatInt(elem.Int, 10))
				case token.Str:
					parts = append(parts, elem.Str)
				default:
					// Other element types are skipped, per spec §6.
				}
			}
			return value.NewStr(strings.Join(parts, glue)), nil
		})

	collator := collate.New(language.Und)
	e.RegisterFunction("localecmp", []token.Type{token.Str, token.Str}, token.Int,
		func(args []value.Value, _ *env.Environment) (value.Value, error) {
			return value.NewInt(int64(collator.CompareString(args[0].Str, args[1].Str))), nil
		})
}
