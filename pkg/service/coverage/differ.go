package coverage

import (
	"github.com/LambdaTest/covcompare/pkg/core"
	"github.com/LambdaTest/covcompare/pkg/global"
)

// Diff compares current against baseline. Changes list the files of the
// baseline first, in baseline order, followed by the files only current has.
// Files that disappeared are not reported, and neither are new files that
// are fully covered.
func Diff(baseline, current core.Coverage) core.Comparison {
	currentPct := make(map[string]float64, len(current.Files))
	for _, f := range current.Files {
		currentPct[f.Path] = f.Pct
	}

	seen := make(map[string]struct{}, len(baseline.Files)+len(current.Files))
	changes := make([]core.Change, 0)

	for _, f := range baseline.Files {
		if _, ok := seen[f.Path]; ok {
			continue
		}
		seen[f.Path] = struct{}{}

		newPct, ok := currentPct[f.Path]
		if !ok {
			continue
		}
		if Round(f.Pct) != Round(newPct) {
			old := f.Pct
			changes = append(changes, core.Change{Path: f.Path, Old: &old, New: newPct})
		}
	}

	for _, f := range current.Files {
		if _, ok := seen[f.Path]; ok {
			continue
		}
		seen[f.Path] = struct{}{}

		newPct := currentPct[f.Path]
		if newPct != global.FullCoverage {
			changes = append(changes, core.Change{Path: f.Path, New: newPct})
		}
	}

	return core.Comparison{
		BaselineTotal: baseline.Total,
		CurrentTotal:  current.Total,
		Changes:       changes,
	}
}
