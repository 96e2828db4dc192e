package check

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"mgcheck/internal/match"
	"mgcheck/internal/schema"
	"mgcheck/internal/workflow"
)

// RunConfig holds everything one validation run needs. One value per run;
// not mutated after construction.
type RunConfig struct {
	// BaseDir is the tree root to validate. Empty means the current directory.
	BaseDir string
	// Config supplies the downstream input root for the structure check.
	Config workflow.Config
	// Files overrides the per-run file expectations; nil means the current
	// stage's defaults (schema.StageFiles).
	Files []schema.FileSpec
	// Parallel is how many process directories to validate concurrently.
	// Values below 2 mean serial. Outcomes merge at a single join point, so
	// the Summary is identical either way.
	Parallel int
	// Trace receives the per-check narration; nil discards it.
	Trace Trace
}

// Run performs one full validation pass: discovery, per-process file
// checks, and the downstream structure check. It returns an error only for
// fatal conditions (missing base or signal root, zero signal processes);
// everything else accumulates into the Summary.
func Run(rc RunConfig) (*Summary, error) {
	tr := rc.Trace
	if tr == nil {
		tr = NopTrace()
	}
	files := rc.Files
	if files == nil {
		files = schema.StageFiles()
	}
	base := rc.BaseDir
	if base == "" {
		base = "."
	}

	tr.Section("CHECKING DIRECTORY STRUCTURE")
	ok, err := match.Exists(base)
	if err != nil {
		return nil, fmt.Errorf("check: base directory: %w", err)
	}
	if !ok {
		tr.Fail("base directory %s does not exist", base)
		return nil, &StructuralError{Path: base, Reason: "base directory does not exist"}
	}
	tr.Pass("base directory %s exists", base)

	sum := &Summary{}

	tr.Section("CHECKING SIGNAL DIRECTORIES")
	signal, sigAccess, err := DiscoverSignal(base, tr)
	if err != nil {
		return nil, err
	}

	tr.Section("CHECKING BACKGROUND DIRECTORIES")
	background, warnings, bgAccess := DiscoverBackground(base, tr)
	sum.Warnings = append(sum.Warnings, warnings...)

	tr.Section("CHECKING REQUIRED FILES IN ALL PROCESSES")
	all := make([]ProcessDir, 0, len(signal)+len(background))
	all = append(all, signal...)
	all = append(all, background...)
	outcomes := checkAll(all, files, rc.Parallel, tr)

	for _, o := range outcomes {
		if o.Kind == schema.Background {
			sum.Background = append(sum.Background, o)
		} else {
			sum.Signal = append(sum.Signal, o)
		}
	}
	// Discovery-time access failures become synthetic failed outcomes so
	// they count against the verdict without aborting sibling subtrees.
	if len(sigAccess) > 0 {
		sum.Signal = append(sum.Signal, Outcome{
			Process:      schema.SignalRoot,
			Kind:         schema.Signal,
			AccessErrors: sigAccess,
		})
	}
	if len(bgAccess) > 0 {
		sum.Background = append(sum.Background, Outcome{
			Process:      schema.BackgroundRoot,
			Kind:         schema.Background,
			AccessErrors: bgAccess,
		})
	}

	for _, o := range sum.Signal {
		sum.TotalChecked++
		if !o.Passed() {
			sum.TotalFailed++
		}
	}
	for _, o := range sum.Background {
		sum.TotalChecked++
		if !o.Passed() {
			sum.TotalFailed++
		}
	}

	sum.Downstream = CheckDownstream(rc.Config, tr)
	sum.Pass = sum.TotalFailed == 0 && sum.Downstream.OK
	return sum, nil
}

// checkAll validates every process directory, optionally with a bounded
// worker pool. Results land in an index-addressed slice so ordering (and
// therefore the Summary) does not depend on scheduling; narration happens
// after the join point.
func checkAll(dirs []ProcessDir, files []schema.FileSpec, parallel int, tr Trace) []Outcome {
	outcomes := make([]Outcome, len(dirs))

	if parallel > 1 {
		var g errgroup.Group
		g.SetLimit(parallel)
		for i, p := range dirs {
			g.Go(func() error {
				outcomes[i] = CheckProcess(p, files)
				return nil
			})
		}
		_ = g.Wait()
		for _, o := range outcomes {
			traceOutcome(tr, o)
		}
		return outcomes
	}

	for i, p := range dirs {
		outcomes[i] = CheckProcess(p, files)
		traceOutcome(tr, outcomes[i])
	}
	return outcomes
}
