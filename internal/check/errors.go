package check

import "fmt"

// StructuralError is the fatal discovery condition: the base directory or
// the primary signal root is missing, or discovery produced no signal
// process directories at all. No meaningful validation is possible, so the
// whole run aborts.
type StructuralError struct {
	Path   string
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("check: %s: %s", e.Path, e.Reason)
}
