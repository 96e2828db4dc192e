package display

import (
	"bytes"
	"strings"
	"testing"

	"mgcheck/internal/check"
	"mgcheck/internal/format"
	"mgcheck/internal/schema"
)

func sampleSummary() *check.Summary {
	return &check.Summary{
		TotalChecked: 3,
		TotalFailed:  1,
		Signal: []check.Outcome{
			{Process: "signal_sm", Kind: schema.Signal},
			{Process: "signal_supp_A/morphing_basis_vector_1", Kind: schema.SignalSuppBasis,
				Missing: []string{"run_01/unweighted_events.lhe"}},
		},
		Background: []check.Outcome{
			{Process: "background_ttbar", Kind: schema.Background,
				OptionalFound: []string{"run_01/unweighted_events.lhe.gz"}},
		},
		Warnings:   []string{"no background_* directories found in x"},
		Downstream: check.Downstream{Root: "/data/delphes", OK: true, Present: []string{"signal_sm"}},
		Pass:       false,
	}
}

func TestRender_FailureReport(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, sampleSummary(), format.ASCII)
	out := buf.String()

	for _, want := range []string{
		"FINAL SUMMARY",
		"signal_supp_A/morphing_basis_vector_1",
		"missing: run_01/unweighted_events.lhe",
		"warning: no background_* directories found in x",
		"Downstream structure (/data/delphes): PASS",
		"Verdict: FAIL",
		"Some issues were found",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}

	// signal_sm passed; it must not be itemized as a failure
	if strings.Contains(out, "signal signal_sm:") {
		t.Errorf("passing process itemized as failure:\n%s", out)
	}
}

func TestRender_TruncatesLongProcessNames(t *testing.T) {
	s := sampleSummary()
	long := "signal_supp_" + strings.Repeat("x", 80) + "/morphing_basis_vector_1"
	s.Signal = append(s.Signal, check.Outcome{
		Process: long,
		Kind:    schema.SignalSuppBasis,
		Missing: []string{"Events/"},
	})

	var buf bytes.Buffer
	Render(&buf, s, format.ASCII)
	out := buf.String()

	if strings.Contains(out, long) {
		t.Errorf("over-long process name rendered unshortened:\n%s", out)
	}
	if !strings.Contains(out, "signal "+long[:67]+"...:") {
		t.Errorf("expected truncated failure heading:\n%s", out)
	}
	// Names within the cap stay untouched.
	if !strings.Contains(out, "signal signal_supp_A/morphing_basis_vector_1:") {
		t.Errorf("short name must not be truncated:\n%s", out)
	}
}

func TestRender_PassVerdict(t *testing.T) {
	s := sampleSummary()
	s.Signal[1].Missing = nil
	s.TotalFailed = 0
	s.Pass = true

	var buf bytes.Buffer
	Render(&buf, s, format.ASCII)
	out := buf.String()

	if !strings.Contains(out, "Verdict: PASS") {
		t.Errorf("expected PASS verdict:\n%s", out)
	}
	if !strings.Contains(out, "ready for the next stage") {
		t.Errorf("expected ready line:\n%s", out)
	}
}

func TestRender_Markdown(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, sampleSummary(), format.Markdown)
	out := buf.String()

	if !strings.Contains(out, "| Category") {
		t.Errorf("expected markdown table header:\n%s", out)
	}
}

func TestConsoleTrace(t *testing.T) {
	var buf bytes.Buffer
	tr := NewConsoleTrace(&buf)

	tr.Section("CHECKING SIGNAL DIRECTORIES")
	tr.Pass("found %d directories", 3)
	tr.Fail("%s: missing files:", "signal_sm")
	tr.Warn("background root does not exist yet")
	tr.Info("optional file found: %s", "run_01/unweighted_events.lhe.gz")

	out := buf.String()
	for _, want := range []string{
		"CHECKING SIGNAL DIRECTORIES",
		"[ok]   found 3 directories",
		"[FAIL] signal_sm: missing files:",
		"[warn] background root does not exist yet",
		"optional file found: run_01/unweighted_events.lhe.gz",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("trace missing %q:\n%s", want, out)
		}
	}
}
