// Package schema declares the on-disk convention the event-generation
// pipeline writes and the checker validates. The layout is fixed by
// convention; nothing here is inferred or discovered at runtime.
package schema

// Kind classifies a discovered process directory.
type Kind string

const (
	Signal          Kind = "signal"
	SignalVariant   Kind = "signal_variant"
	SignalSuppBasis Kind = "signal_supp_basis"
	Background      Kind = "background"
)

// Requirement tags a per-run artifact as required or optional.
type Requirement string

const (
	Required Requirement = "required"
	Optional Requirement = "optional"
)

// FileSpec names one artifact expected inside a run directory.
type FileSpec struct {
	Name        string      `json:"name"`
	Requirement Requirement `json:"requirement"`
}

// Rule describes one step of process-directory discovery.
type Rule struct {
	Kind    Kind
	Pattern string // glob under the rule's root, or a literal name when Exact
	Exact   bool   // Pattern is an exact directory name, not a glob
	Child   string // non-empty: each match expands one level via this pattern
}

// Generation-tree layout constants.
const (
	SignalRoot     = "02_mg_processes"
	BackgroundRoot = "02_mg_processes_2"
	EventsDir      = "Events"
	RunPattern     = "run_*"
)

// SignalRules returns the ordered discovery sequence for the signal tree:
// the exact signal_sm directory, cloned signal_sm_* variants, then
// signal_supp_* benchmarks expanded into their morphing basis vectors.
func SignalRules() []Rule {
	return []Rule{
		{Kind: Signal, Pattern: "signal_sm", Exact: true},
		{Kind: SignalVariant, Pattern: "signal_sm_*"},
		{Kind: SignalSuppBasis, Pattern: "signal_supp_*", Child: "morphing_basis_vector_*"},
	}
}

// BackgroundRule returns the discovery rule for the background tree.
func BackgroundRule() Rule {
	return Rule{Kind: Background, Pattern: "background_*"}
}

// StageFiles returns the per-run artifact expectations for this pipeline
// stage: event generation has run, shower and detector simulation may not
// have yet.
func StageFiles() []FileSpec {
	return []FileSpec{
		{Name: "unweighted_events.lhe", Requirement: Required},
		{Name: "unweighted_events.lhe.gz", Requirement: Optional},
		{Name: "tag_1_pythia8_events.hepmc.gz", Requirement: Optional},
		{Name: "tag_1_pythia8_events_delphes.root", Requirement: Optional},
	}
}

// Downstream-stage layout: what the Delphes-reading stage expects under the
// configured input root. The supp naming differs from the generation tree
// (mb_vector_* vs morphing_basis_vector_*); the two conventions belong to
// different pipeline stages and are checked independently.
var DownstreamCategories = []string{"signal_sm", "signal_supp", "background"}

const (
	DownstreamSupp  = "signal_supp"
	MBVectorPattern = "mb_vector_*"
)
