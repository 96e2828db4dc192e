package check

import (
	"path/filepath"

	"mgcheck/internal/match"
	"mgcheck/internal/schema"
)

// CheckProcess validates one process directory against the stage's file
// requirements. The outcome is the union of misses across all of the
// directory's runs: N runs each missing the same required file yield N
// distinct entries. CheckProcess is pure bookkeeping over read-only
// filesystem probes; narration happens in the caller.
func CheckProcess(p ProcessDir, files []schema.FileSpec) Outcome {
	out := Outcome{Process: p.Name, Kind: p.Kind}

	events := filepath.Join(p.Path, schema.EventsDir)
	ok, err := match.Exists(events)
	if err != nil {
		out.AccessErrors = append(out.AccessErrors, schema.EventsDir+"/: "+err.Error())
		return out
	}
	if !ok {
		out.Missing = append(out.Missing, schema.EventsDir+"/")
		return out
	}

	paths, err := match.Glob(events, schema.RunPattern)
	if err != nil {
		out.AccessErrors = append(out.AccessErrors, schema.EventsDir+"/"+schema.RunPattern+": "+err.Error())
		return out
	}
	if len(paths) == 0 {
		out.Missing = append(out.Missing, schema.EventsDir+"/"+schema.RunPattern)
		return out
	}

	for _, rp := range paths {
		run := RunDir{Path: rp, Name: filepath.Base(rp)}
		for _, f := range files {
			item := run.Name + "/" + f.Name
			ok, err := match.Exists(filepath.Join(run.Path, f.Name))
			switch {
			case err != nil && f.Requirement == schema.Required:
				out.AccessErrors = append(out.AccessErrors, item+": "+err.Error())
			case err != nil:
				// An unreadable optional artifact stays invisible: optional
				// files may only ever add informational lines, never failures.
			case f.Requirement == schema.Required && !ok:
				out.Missing = append(out.Missing, item)
			case f.Requirement == schema.Optional && ok:
				out.OptionalFound = append(out.OptionalFound, item)
			}
		}
	}
	return out
}

// traceOutcome narrates one process outcome after the fact, keeping the
// trace ordered even when outcomes were computed concurrently.
func traceOutcome(tr Trace, o Outcome) {
	for _, item := range o.OptionalFound {
		tr.Info("optional file found: %s", item)
	}
	for _, e := range o.AccessErrors {
		tr.Fail("%s: access error: %s", o.Process, e)
	}
	if o.Passed() {
		tr.Pass("%s: all required files present", o.Process)
		return
	}
	if len(o.Missing) > 0 {
		tr.Fail("%s: missing files:", o.Process)
		for _, m := range o.Missing {
			tr.Fail("  - %s", m)
		}
	}
}
