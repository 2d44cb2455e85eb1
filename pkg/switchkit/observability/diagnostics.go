package observability

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Diagnostics writes the human-readable transition line emitted once per
// observed state change:
//
//	<identifier> is now <on|off>
//
// The line format is observational, not machine-parsed. The default
// destination is the standard diagnostic stream (stderr); tests inject a
// buffer instead.
type Diagnostics struct {
	mu sync.Mutex
	w  io.Writer
}

// NewDiagnostics creates a Diagnostics writing to w.
// A nil w falls back to os.Stderr.
func NewDiagnostics(w io.Writer) *Diagnostics {
	if w == nil {
		w = os.Stderr
	}
	return &Diagnostics{w: w}
}

// StateChange emits exactly one line reporting the identifier and its new
// state. Write errors are discarded; the diagnostic stream is best-effort.
func (d *Diagnostics) StateChange(switchID, state string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.w, "%s is now %s\n", switchID, state)
}
