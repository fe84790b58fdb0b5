// Package builtins installs RR's default environment registrations
// (spec §6): the operator priority table and every required overload of
// +, *, ==, repeat, round, max, print, concat, and index.
//
// Grounded on the teacher's per-theme builtin-registration files
// (internal/interp/builtins/*.go, each a RegisterXxx(env) group) — RR
// mirrors that split across arithmetic.go, comparison.go, text.go,
// collections.go and io.go rather than one long Register function.
package builtins

import "github.com/ivangav/rr/internal/env"

// Register installs the complete default environment: the operator
// priority table (= 0, == 2, repeat 3, + 10, * 11, round 16) and every
// overload listed in spec §6.
func Register(e *env.Environment) {
	registerArithmetic(e)
	registerComparison(e)
	registerText(e)
	registerCollections(e)
	registerIO(e)
}
