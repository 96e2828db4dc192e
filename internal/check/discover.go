package check

import (
	"fmt"
	"path/filepath"

	"mgcheck/internal/match"
	"mgcheck/internal/schema"
)

// DiscoverSignal applies the signal discovery rules in order under
// <baseDir>/02_mg_processes. A missing signal root, or zero discovered
// directories overall, is a *StructuralError. Access failures on
// individual rule applications are collected and returned so the caller
// can surface them without aborting sibling rules.
func DiscoverSignal(baseDir string, tr Trace) ([]ProcessDir, []string, error) {
	root := filepath.Join(baseDir, schema.SignalRoot)
	ok, err := match.Exists(root)
	if err != nil {
		return nil, nil, fmt.Errorf("check: signal root: %w", err)
	}
	if !ok {
		return nil, nil, &StructuralError{Path: root, Reason: "signal process root not found"}
	}
	tr.Pass("%s directory found: %s", schema.SignalRoot, root)

	var dirs []ProcessDir
	var accessErrs []string

	for _, rule := range schema.SignalRules() {
		switch {
		case rule.Exact:
			p := filepath.Join(root, rule.Pattern)
			ok, err := match.Exists(p)
			if err != nil {
				accessErrs = append(accessErrs, err.Error())
				tr.Fail("%s: %v", rule.Pattern, err)
				continue
			}
			if ok {
				dirs = append(dirs, ProcessDir{Path: p, Kind: rule.Kind, Name: rule.Pattern})
				tr.Info("found %s directory", rule.Pattern)
			}

		case rule.Child != "":
			parents, err := match.Glob(root, rule.Pattern)
			if err != nil {
				accessErrs = append(accessErrs, err.Error())
				tr.Fail("%s: %v", rule.Pattern, err)
				continue
			}
			tr.Info("found %d %s directories", len(parents), rule.Pattern)
			for _, parent := range parents {
				children, err := match.Glob(parent, rule.Child)
				if err != nil {
					accessErrs = append(accessErrs, err.Error())
					tr.Fail("%s: %v", filepath.Base(parent), err)
					continue
				}
				tr.Info("  %s: found %d %s directories", filepath.Base(parent), len(children), rule.Child)
				for _, c := range children {
					dirs = append(dirs, ProcessDir{
						Path: c,
						Kind: rule.Kind,
						Name: filepath.Base(parent) + "/" + filepath.Base(c),
					})
				}
			}

		default:
			matches, err := match.Glob(root, rule.Pattern)
			if err != nil {
				accessErrs = append(accessErrs, err.Error())
				tr.Fail("%s: %v", rule.Pattern, err)
				continue
			}
			tr.Info("found %d %s directories", len(matches), rule.Pattern)
			for _, m := range matches {
				dirs = append(dirs, ProcessDir{Path: m, Kind: rule.Kind, Name: filepath.Base(m)})
			}
		}
	}

	if len(dirs) == 0 {
		return nil, accessErrs, &StructuralError{Path: root, Reason: "no signal process directories found"}
	}
	tr.Pass("total signal process directories found: %d", len(dirs))
	return dirs, accessErrs, nil
}

// DiscoverBackground enumerates background_* directories under
// <baseDir>/02_mg_processes_2. The background tree may legitimately not
// exist yet, so absence (of the root or of any matches) produces warnings,
// never an error. Access failures come back separately with
// failure severity.
func DiscoverBackground(baseDir string, tr Trace) (dirs []ProcessDir, warnings, accessErrs []string) {
	root := filepath.Join(baseDir, schema.BackgroundRoot)
	ok, err := match.Exists(root)
	if err != nil {
		tr.Fail("background root: %v", err)
		return nil, nil, []string{err.Error()}
	}
	if !ok {
		w := fmt.Sprintf("background root does not exist yet (OK if backgrounds not generated): %s", root)
		tr.Warn("%s", w)
		return nil, []string{w}, nil
	}
	tr.Pass("%s directory found: %s", schema.BackgroundRoot, root)

	rule := schema.BackgroundRule()
	matches, err := match.Glob(root, rule.Pattern)
	if err != nil {
		tr.Fail("%s: %v", rule.Pattern, err)
		return nil, nil, []string{err.Error()}
	}
	if len(matches) == 0 {
		w := fmt.Sprintf("no %s directories found in %s (OK if backgrounds not generated)", rule.Pattern, root)
		tr.Warn("%s", w)
		return nil, []string{w}, nil
	}

	for _, m := range matches {
		dirs = append(dirs, ProcessDir{Path: m, Kind: rule.Kind, Name: filepath.Base(m)})
	}
	tr.Pass("found %d background directories", len(dirs))
	return dirs, nil, nil
}
