// Package trace implements the diagnostic phase markers required by
// spec §6's CLI contract: "--start <phase>:" / "--end <phase>." lines
// interleaved with token/AST/evaluator dumps when tracing is enabled.
//
// Grounded on the teacher's --trace/--dump-ast flags (cmd/dwscript/cmd/run.go),
// reworked into the delimiter-marker format spec §6 requires instead of
// the teacher's plain "AST:\n<dump>" banner.
package trace

import "io"

// Tracer writes phase-delimited diagnostic output. A nil *Tracer, like
// a disabled one from New(w, false), is a valid no-op.
type Tracer struct {
	w       io.Writer
	enabled bool
}

// New creates a Tracer writing to w when enabled is true; otherwise every
// method is a no-op.
func New(w io.Writer, enabled bool) *Tracer {
	return &Tracer{w: w, enabled: enabled}
}

// Enabled reports whether this tracer emits output.
func (t *Tracer) Enabled() bool { return t != nil && t.enabled }

// Start emits the "--start <phase>:" marker line.
func (t *Tracer) Start(phase string) {
	if !t.Enabled() {
		return
	}
	io.WriteString(t.w, "--start "+phase+":\n")
}

// End emits "--end <phase>."
func (t *Tracer) End(phase string) {
	if !t.Enabled() {
		return
	}
	io.WriteString(t.w, "--end "+phase+".\n")
}

// Line writes a single diagnostic line inside a Start/End block.
func (t *Tracer) Line(s string) {
	if !t.Enabled() {
		return
	}
	io.WriteString(t.w, s+"\n")
}

// Phase runs body between a Start/End marker pair for phase.
func (t *Tracer) Phase(phase string, body func()) {
	t.Start(phase)
	body()
	t.End(phase)
}
