// Package check validates the event-generation artifact tree against the
// pipeline's fixed directory schema. It discovers process directories,
// verifies required files in every run directory, and aggregates the
// results into a Summary. The package never writes to the filesystem;
// re-running against an unchanged tree yields an identical Summary.
package check

import "mgcheck/internal/schema"

// ProcessDir is one discovered physics-process directory. Created during
// discovery, immutable afterwards.
type ProcessDir struct {
	Path string      `json:"path"`
	Kind schema.Kind `json:"kind"`
	// Name is the operator-facing identifier. For basis-vector variants it
	// is composed as "<signal_supp_dir>/<morphing_dir>".
	Name string `json:"name"`
}

// RunDir is one run_* subdirectory of a process directory's Events folder.
type RunDir struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// Outcome records everything found wrong (or notable) in one process
// directory. An empty Missing and AccessErrors means the process passed.
type Outcome struct {
	Process string      `json:"process"`
	Kind    schema.Kind `json:"kind"`
	// Missing lists required items that are absent, in check order:
	// "Events/", "Events/run_*", or "<run_name>/<file_name>".
	Missing []string `json:"missing,omitempty"`
	// AccessErrors lists items that could not be read for a reason other
	// than non-existence. Failure severity, but reported apart from Missing
	// so operators can tell "not generated yet" from "inaccessible".
	AccessErrors []string `json:"access_errors,omitempty"`
	// OptionalFound lists optional artifacts that were present. Absence of
	// an optional artifact is never recorded anywhere.
	OptionalFound []string `json:"optional_found,omitempty"`
}

// Passed reports whether every required artifact was present and readable.
func (o Outcome) Passed() bool {
	return len(o.Missing) == 0 && len(o.AccessErrors) == 0
}

// Downstream is the result of the downstream-stage structure check: the
// layout the Delphes-reading stage expects under its configured input root.
type Downstream struct {
	Root string `json:"root"`
	// OK is false when the root is missing or unreadable. Absent category
	// directories are informational only and do not clear it.
	OK           bool     `json:"ok"`
	Present      []string `json:"present,omitempty"`
	Absent       []string `json:"absent,omitempty"`
	MBVectors    []string `json:"mb_vectors,omitempty"`
	AccessErrors []string `json:"access_errors,omitempty"`
}

// Summary aggregates one full validation run. It is the structured value
// callers consume; rendering it for humans is the display package's job.
type Summary struct {
	TotalChecked int        `json:"total_checked"`
	TotalFailed  int        `json:"total_failed"`
	Signal       []Outcome  `json:"signal"`
	Background   []Outcome  `json:"background"`
	Warnings     []string   `json:"warnings,omitempty"`
	Downstream   Downstream `json:"downstream"`
	// Pass is true when no process had missing or unreadable required
	// artifacts and the downstream structure check succeeded.
	Pass bool `json:"pass"`
}
