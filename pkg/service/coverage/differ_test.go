package coverage

import (
	"testing"

	"github.com/LambdaTest/covcompare/pkg/core"
	"github.com/LambdaTest/covcompare/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pct(v float64) *float64 {
	return &v
}

func files(pairs ...interface{}) []core.FileCoverage {
	out := make([]core.FileCoverage, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, core.FileCoverage{Path: pairs[i].(string), Pct: pairs[i+1].(float64)})
	}
	return out
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		baseline core.Coverage
		current  core.Coverage
		want     []core.Change
	}{
		{
			"improved file",
			core.Coverage{Files: files("a.js", 50.0)},
			core.Coverage{Files: files("a.js", 80.0)},
			[]core.Change{{Path: "a.js", Old: pct(50), New: 80}},
		},
		{
			"regressed file",
			core.Coverage{Total: 62.94, Files: files("index.js", 100.0)},
			core.Coverage{Total: 54.55, Files: files("index.js", 86.67)},
			[]core.Change{{Path: "index.js", Old: pct(100), New: 86.67}},
		},
		{
			"identical inputs",
			core.Coverage{Total: 10, Files: files("a.js", 10.0, "b.js", 20.0)},
			core.Coverage{Total: 10, Files: files("a.js", 10.0, "b.js", 20.0)},
			[]core.Change{},
		},
		{
			"new file below full coverage",
			core.Coverage{Files: files("a.js", 10.0)},
			core.Coverage{Files: files("a.js", 10.0, "b.js", 98.85)},
			[]core.Change{{Path: "b.js", Old: nil, New: 98.85}},
		},
		{
			"new file at full coverage is ignored",
			core.Coverage{Files: files("a.js", 10.0)},
			core.Coverage{Files: files("a.js", 10.0, "b.js", 100.0)},
			[]core.Change{},
		},
		{
			"removed file is ignored",
			core.Coverage{Files: files("a.js", 10.0, "gone.js", 50.0)},
			core.Coverage{Files: files("a.js", 10.0)},
			[]core.Change{},
		},
		{
			"differences below a hundredth are not changes",
			core.Coverage{Files: files("a.js", 10.001)},
			core.Coverage{Files: files("a.js", 10.004)},
			[]core.Change{},
		},
		{
			"baseline order first then current only files",
			core.Coverage{Files: files("z.js", 1.0, "m.js", 1.0, "a.js", 1.0)},
			core.Coverage{Files: files("new2.js", 5.0, "a.js", 2.0, "z.js", 3.0, "new1.js", 6.0, "m.js", 1.0)},
			[]core.Change{
				{Path: "z.js", Old: pct(1), New: 3},
				{Path: "a.js", Old: pct(1), New: 2},
				{Path: "new2.js", Old: nil, New: 5},
				{Path: "new1.js", Old: nil, New: 6},
			},
		},
		{
			"a path is reported once",
			core.Coverage{Files: files("a.js", 1.0, "a.js", 1.0)},
			core.Coverage{Files: files("a.js", 2.0, "b.js", 3.0, "b.js", 3.0)},
			[]core.Change{
				{Path: "a.js", Old: pct(1), New: 2},
				{Path: "b.js", Old: nil, New: 3},
			},
		},
		{
			"empty inputs",
			core.Coverage{},
			core.Coverage{},
			[]core.Change{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.baseline, tt.current)
			assert.Equal(t, tt.baseline.Total, got.BaselineTotal)
			assert.Equal(t, tt.current.Total, got.CurrentTotal)
			assert.Equal(t, tt.want, got.Changes)
		})
	}
}

func TestDiff_Deterministic(t *testing.T) {
	baseline := core.Coverage{Total: 40, Files: files("c.js", 1.0, "b.js", 2.0, "a.js", 3.0)}
	current := core.Coverage{Total: 41, Files: files("a.js", 4.0, "d.js", 5.0, "b.js", 6.0, "c.js", 7.0, "e.js", 8.0)}

	first := Diff(baseline, current)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Diff(baseline, current))
	}
}

func TestDiff_DoesNotMutateInputs(t *testing.T) {
	baseline := core.Coverage{Total: 1, Files: files("a.js", 1.0)}
	current := core.Coverage{Total: 2, Files: files("a.js", 2.0)}

	got := Diff(baseline, current)
	*got.Changes[0].Old = 99

	assert.Equal(t, 1.0, baseline.Files[0].Pct)
}

func TestDiff_Fixtures(t *testing.T) {
	load := func(path string) core.Coverage {
		raw, err := testutils.LoadFile(path)
		require.NoError(t, err)
		cov, err := Parse(raw)
		require.NoError(t, err)
		return cov
	}

	got := Diff(load(testutils.BaselineSummaryPath), load(testutils.CurrentSummaryPath))
	assert.Equal(t, core.Comparison{
		BaselineTotal: 62.94,
		CurrentTotal:  54.55,
		Changes:       []core.Change{{Path: "index.js", Old: pct(100), New: 86.67}},
	}, got)
}
