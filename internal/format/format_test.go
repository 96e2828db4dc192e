package format_test

import (
	"strings"
	"testing"

	"mgcheck/internal/format"
)

func TestASCII_BasicTable(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("Category", "Checked", "Failed")
	tb.Row("signal", 5, 1)
	tb.Row("background", 2, 0)
	tb.Footer("total", 7, 1)
	out := tb.String()

	if !strings.Contains(out, "Category") {
		t.Errorf("expected header 'Category' in output:\n%s", out)
	}
	if !strings.Contains(out, "background") {
		t.Errorf("expected 'background' row in output:\n%s", out)
	}
	// ASCII mode uses StyleLight which has box-drawing chars
	if !strings.Contains(out, "───") {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", out)
	}
}

func TestMarkdown_BasicTable(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Header("Category", "Checked", "Failed")
	tb.Row("signal", 5, 1)
	out := tb.String()

	if !strings.Contains(out, "| Category") {
		t.Errorf("expected markdown header with '| Category':\n%s", out)
	}
	if !strings.Contains(out, "---") {
		t.Errorf("expected markdown separator '---':\n%s", out)
	}
}

func TestVerdict(t *testing.T) {
	if format.Verdict(true) != "PASS" || format.Verdict(false) != "FAIL" {
		t.Error("Verdict words wrong")
	}
}

func TestCount(t *testing.T) {
	if got := format.Count(1, "run directory", "run directories"); got != "1 run directory" {
		t.Errorf("Count(1) = %q", got)
	}
	if got := format.Count(3, "run directory", "run directories"); got != "3 run directories" {
		t.Errorf("Count(3) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := format.Truncate("signal_supp_A/morphing_basis_vector_1", 20); got != "signal_supp_A/mor..." {
		t.Errorf("Truncate = %q", got)
	}
	if got := format.Truncate("short", 20); got != "short" {
		t.Errorf("Truncate should leave short strings alone, got %q", got)
	}
}
