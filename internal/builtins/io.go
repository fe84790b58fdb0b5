package builtins

import (
	"github.com/ivangav/rr/internal/env"
	"github.com/ivangav/rr/internal/token"
	"github.com/ivangav/rr/internal/value"
)

// registerIO installs "print", which accepts any single value, writes
// its rendering followed by a newline to the environment's output sink,
// and returns None (spec §4.4, §6).
func registerIO(e *env.Environment) {
	e.RegisterFunction("print", []token.Type{token.Any}, token.None,
		func(args []value.Value, environment *env.Environment) (value.Value, error) {
			if environment.Output != nil {
				environment.Output.WriteString(args[0].Render())
				environment.Output.WriteString("\n")
			}
			return value.None(), nil
		})
}
