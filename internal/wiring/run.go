// Package wiring assembles one validation run end to end: configuration
// load, tree validation, downstream check. The CLI and the MCP server both
// go through Run so they cannot drift apart.
package wiring

import (
	"mgcheck/internal/check"
	"mgcheck/internal/workflow"
)

// Options selects what to validate.
type Options struct {
	// BaseDir is the generation tree root; empty means current directory.
	BaseDir string
	// WorkflowPath is the workflow configuration file; empty means
	// workflow.DefaultFilename.
	WorkflowPath string
	// Parallel is the number of process directories validated concurrently.
	Parallel int
	// Trace receives per-check narration; nil discards it.
	Trace check.Trace
}

// Run loads the workflow configuration and validates the artifact tree.
// Configuration failures abort before any filesystem traversal.
func Run(opts Options) (*check.Summary, error) {
	path := opts.WorkflowPath
	if path == "" {
		path = workflow.DefaultFilename
	}
	cfg, err := workflow.LoadFromPath(path)
	if err != nil {
		return nil, err
	}

	return check.Run(check.RunConfig{
		BaseDir:  opts.BaseDir,
		Config:   *cfg,
		Parallel: opts.Parallel,
		Trace:    opts.Trace,
	})
}
