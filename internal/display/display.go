// Package display renders structured check results for operators.
//
// Rule: code is for machines, words are for humans. The Summary keeps raw
// identifiers and counts; everything printed here is the human rendering,
// and nothing here feeds back into the computed results.
package display

import (
	"fmt"
	"io"
	"strings"

	"mgcheck/internal/check"
	"mgcheck/internal/format"
)

const (
	bannerWidth = 60

	// Basis-expanded process names (parent/child) can get long; cap them
	// in failure headings so the report stays scannable.
	maxNameWidth = 70
)

// ConsoleTrace implements check.Trace, writing the per-check narration as
// it happens.
type ConsoleTrace struct {
	W io.Writer
}

// NewConsoleTrace returns a trace writing to w.
func NewConsoleTrace(w io.Writer) *ConsoleTrace {
	return &ConsoleTrace{W: w}
}

func (t *ConsoleTrace) Section(title string) {
	bar := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(t.W, "\n%s\n%s\n%s\n", bar, title, bar)
}

func (t *ConsoleTrace) Pass(f string, args ...any) { t.line("[ok]  ", f, args...) }
func (t *ConsoleTrace) Fail(f string, args ...any) { t.line("[FAIL]", f, args...) }
func (t *ConsoleTrace) Warn(f string, args ...any) { t.line("[warn]", f, args...) }
func (t *ConsoleTrace) Info(f string, args ...any) { t.line("      ", f, args...) }

func (t *ConsoleTrace) line(tag, f string, args ...any) {
	fmt.Fprintf(t.W, "%s %s\n", tag, fmt.Sprintf(f, args...))
}

var _ check.Trace = (*ConsoleTrace)(nil)

// Render writes the final report: a per-category summary table, failing
// processes itemized with their missing artifacts, warnings, the downstream
// structure result, and a one-line verdict.
func Render(w io.Writer, s *check.Summary, mode format.Mode) {
	bar := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(w, "\n%s\nFINAL SUMMARY\n%s\n", bar, bar)

	tb := format.NewTable(mode)
	tb.Header("Category", "Checked", "Passed", "Failed")
	sigPass, sigFail := tally(s.Signal)
	bgPass, bgFail := tally(s.Background)
	tb.Row("signal", len(s.Signal), sigPass, sigFail)
	tb.Row("background", len(s.Background), bgPass, bgFail)
	tb.Footer("total", s.TotalChecked, s.TotalChecked-s.TotalFailed, s.TotalFailed)
	fmt.Fprintln(w, tb.String())

	renderFailures(w, "signal", s.Signal)
	renderFailures(w, "background", s.Background)

	for _, warn := range s.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}

	renderDownstream(w, s.Downstream)

	fmt.Fprintf(w, "\nVerdict: %s\n", format.Verdict(s.Pass))
	if s.Pass {
		fmt.Fprintln(w, "All checks passed. The event generation directory is ready for the next stage.")
	} else {
		fmt.Fprintln(w, "Some issues were found. See the report above.")
	}
}

func tally(outcomes []check.Outcome) (passed, failed int) {
	for _, o := range outcomes {
		if o.Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

func renderFailures(w io.Writer, category string, outcomes []check.Outcome) {
	for _, o := range outcomes {
		if o.Passed() {
			continue
		}
		fmt.Fprintf(w, "\n%s %s:\n", category, format.Truncate(o.Process, maxNameWidth))
		for _, m := range o.Missing {
			fmt.Fprintf(w, "  missing: %s\n", m)
		}
		for _, e := range o.AccessErrors {
			fmt.Fprintf(w, "  inaccessible: %s\n", e)
		}
	}
}

func renderDownstream(w io.Writer, d check.Downstream) {
	fmt.Fprintf(w, "\nDownstream structure (%s): %s\n", d.Root, format.Verdict(d.OK))
	if len(d.Present) > 0 {
		fmt.Fprintf(w, "  present: %s\n", strings.Join(d.Present, ", "))
	}
	if len(d.Absent) > 0 {
		fmt.Fprintf(w, "  not yet present: %s\n", strings.Join(d.Absent, ", "))
	}
	if len(d.MBVectors) > 0 {
		fmt.Fprintf(w, "  %s in signal_supp\n", format.Count(len(d.MBVectors), "mb_vector directory", "mb_vector directories"))
	}
	for _, e := range d.AccessErrors {
		fmt.Fprintf(w, "  inaccessible: %s\n", e)
	}
}
