package check

import (
	"path/filepath"

	"mgcheck/internal/match"
	"mgcheck/internal/schema"
	"mgcheck/internal/workflow"
)

// CheckDownstream verifies the directory layout the Delphes-reading stage
// expects under the configured input root. Only the root's existence (and
// readability) decides the boolean: absent category directories and absent
// mb_vector_* subdirectories are reported as informational warnings, since
// earlier pipeline stages may simply not have produced them yet.
func CheckDownstream(cfg workflow.Config, tr Trace) Downstream {
	d := Downstream{Root: cfg.Delphes.InputDirPrefix}
	tr.Section("CHECKING EXPECTED STRUCTURE FOR DELPHES STAGE")

	ok, err := match.Exists(d.Root)
	if err != nil {
		d.AccessErrors = append(d.AccessErrors, err.Error())
		tr.Fail("input directory: %v", err)
		return d
	}
	if !ok {
		tr.Fail("expected input directory does not exist: %s", d.Root)
		return d
	}
	d.OK = true
	tr.Pass("input directory exists: %s", d.Root)

	for _, cat := range schema.DownstreamCategories {
		p := filepath.Join(d.Root, cat)
		ok, err := match.Exists(p)
		if err != nil {
			d.AccessErrors = append(d.AccessErrors, cat+": "+err.Error())
			d.OK = false
			tr.Fail("%s: %v", cat, err)
			continue
		}
		if !ok {
			d.Absent = append(d.Absent, cat)
			tr.Warn("%s directory not found: %s", cat, p)
			continue
		}
		d.Present = append(d.Present, cat)
		tr.Pass("found %s directory: %s", cat, p)

		if cat != schema.DownstreamSupp {
			continue
		}
		mbs, err := match.Glob(p, schema.MBVectorPattern)
		if err != nil {
			d.AccessErrors = append(d.AccessErrors, cat+": "+err.Error())
			d.OK = false
			tr.Fail("%s: %v", cat, err)
			continue
		}
		for _, mb := range mbs {
			d.MBVectors = append(d.MBVectors, filepath.Base(mb))
		}
		if len(d.MBVectors) == 0 {
			tr.Warn("no %s subdirectories found in %s", schema.MBVectorPattern, cat)
			continue
		}
		tr.Info("found %d %s subdirectories", len(d.MBVectors), schema.MBVectorPattern)
		for i, name := range d.MBVectors {
			if i == 5 {
				tr.Info("  ... and %d more", len(d.MBVectors)-5)
				break
			}
			tr.Info("  - %s", name)
		}
	}
	return d
}
