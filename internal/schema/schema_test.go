package schema

import "testing"

func TestSignalRules_Order(t *testing.T) {
	rules := SignalRules()
	if len(rules) != 3 {
		t.Fatalf("expected 3 signal rules, got %d", len(rules))
	}
	if !rules[0].Exact || rules[0].Pattern != "signal_sm" {
		t.Errorf("rule 0 should be exact signal_sm, got %+v", rules[0])
	}
	if rules[1].Pattern != "signal_sm_*" || rules[1].Exact {
		t.Errorf("rule 1 should be glob signal_sm_*, got %+v", rules[1])
	}
	if rules[2].Pattern != "signal_supp_*" || rules[2].Child != "morphing_basis_vector_*" {
		t.Errorf("rule 2 should expand signal_supp_* via morphing_basis_vector_*, got %+v", rules[2])
	}
	if rules[2].Kind != SignalSuppBasis {
		t.Errorf("rule 2 kind = %q, want %q", rules[2].Kind, SignalSuppBasis)
	}
}

func TestStageFiles_RequiredAndOptional(t *testing.T) {
	var required, optional []string
	for _, f := range StageFiles() {
		switch f.Requirement {
		case Required:
			required = append(required, f.Name)
		case Optional:
			optional = append(optional, f.Name)
		default:
			t.Errorf("file %q has unknown requirement %q", f.Name, f.Requirement)
		}
	}

	if len(required) != 1 || required[0] != "unweighted_events.lhe" {
		t.Errorf("required files = %v, want only unweighted_events.lhe", required)
	}
	if len(optional) != 3 {
		t.Errorf("expected 3 optional files, got %v", optional)
	}
}

func TestBackgroundRule(t *testing.T) {
	r := BackgroundRule()
	if r.Kind != Background || r.Pattern != "background_*" || r.Exact || r.Child != "" {
		t.Errorf("unexpected background rule: %+v", r)
	}
}
