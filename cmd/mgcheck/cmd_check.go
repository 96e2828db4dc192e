package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mgcheck/internal/check"
	"mgcheck/internal/display"
	"mgcheck/internal/format"
	"mgcheck/internal/logging"
	"mgcheck/internal/wiring"
	"mgcheck/internal/workflow"
)

var checkFlags struct {
	baseDir  string
	workflow string
	parallel int
	format   string
	jsonOut  bool
	quiet    bool
	logLevel string
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that all expected event-generation artifacts are present",
	RunE:  runCheck,
}

// errChecksFailed maps a failed (but successfully computed) validation to a
// non-zero exit status without re-printing the report.
var errChecksFailed = errors.New("validation failed")

func init() {
	f := checkCmd.Flags()
	f.StringVar(&checkFlags.baseDir, "base-dir", ".", "Base directory to check")
	f.StringVar(&checkFlags.workflow, "workflow", workflow.DefaultFilename, "Workflow configuration file")
	f.IntVar(&checkFlags.parallel, "parallel", 1, "Process directories to validate concurrently")
	f.StringVar(&checkFlags.format, "format", "ascii", "Summary table format (ascii or markdown)")
	f.BoolVar(&checkFlags.jsonOut, "json", false, "Emit the structured summary as JSON instead of the report")
	f.BoolVar(&checkFlags.quiet, "quiet", false, "Suppress the per-check trace; print only the final report")
	f.StringVar(&checkFlags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(checkFlags.logLevel)
	if err != nil {
		return err
	}
	logging.Init(level, "text")

	var mode format.Mode
	switch checkFlags.format {
	case "ascii":
		mode = format.ASCII
	case "markdown":
		mode = format.Markdown
	default:
		return fmt.Errorf("unknown --format %q (want ascii or markdown)", checkFlags.format)
	}

	out := cmd.OutOrStdout()
	var tr check.Trace = display.NewConsoleTrace(out)
	if checkFlags.quiet || checkFlags.jsonOut {
		tr = check.NopTrace()
	}

	sum, err := wiring.Run(wiring.Options{
		BaseDir:      checkFlags.baseDir,
		WorkflowPath: checkFlags.workflow,
		Parallel:     checkFlags.parallel,
		Trace:        tr,
	})
	if err != nil {
		return err
	}

	if checkFlags.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sum); err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
	} else {
		display.Render(out, sum, mode)
	}

	if !sum.Pass {
		return errChecksFailed
	}
	return nil
}
