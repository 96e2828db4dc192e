package check

// Trace receives a human-readable narration of every check for operator
// visibility. It is write-only reporting layered on top of the outcome
// data: nothing in the computed Summary may depend on a Trace call.
type Trace interface {
	// Section marks the start of a named check phase.
	Section(title string)
	// Pass narrates a successful check.
	Pass(format string, args ...any)
	// Fail narrates a failed check.
	Fail(format string, args ...any)
	// Warn narrates a non-fatal absence (background root, basis vectors).
	Warn(format string, args ...any)
	// Info narrates counts and sightings with no verdict attached.
	Info(format string, args ...any)
}

// NopTrace returns a Trace that discards everything.
func NopTrace() Trace { return nopTrace{} }

type nopTrace struct{}

func (nopTrace) Section(string)      {}
func (nopTrace) Pass(string, ...any) {}
func (nopTrace) Fail(string, ...any) {}
func (nopTrace) Warn(string, ...any) {}
func (nopTrace) Info(string, ...any) {}
