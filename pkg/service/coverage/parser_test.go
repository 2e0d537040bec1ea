package coverage

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/LambdaTest/covcompare/pkg/core"
	"github.com/LambdaTest/covcompare/pkg/errs"
	"github.com/LambdaTest/covcompare/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(pct interface{}) string {
	return fmt.Sprintf(`{"lines":{"pct":1},"statements":{"total":10,"covered":5,"skipped":0,"pct":%v},"branches":{"pct":100}}`, pct)
}

func summary(pairs ...string) []byte {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, fmt.Sprintf("%q:%s", pairs[i], pairs[i+1]))
	}
	return []byte("{" + strings.Join(parts, ",") + "}")
}

func TestParse(t *testing.T) {
	prefix := "/Users/evan/dev/code/compare-coverage-to-main/"
	tests := []struct {
		name string
		raw  []byte
		want core.Coverage
	}{
		{
			"strips the shared prefix and keeps document order",
			summary(
				"total", entry(0),
				prefix+"index.js", entry(0),
				prefix+"bin/cmd.js", entry(0),
				prefix+"lib/get-prefix.js", entry(0),
				prefix+"lib/parse-coverage.js", entry(0),
				prefix+"lib/queries.js", entry(0),
			),
			core.Coverage{Total: 0, Files: []core.FileCoverage{
				{Path: "index.js", Pct: 0},
				{Path: "bin/cmd.js", Pct: 0},
				{Path: "lib/get-prefix.js", Pct: 0},
				{Path: "lib/parse-coverage.js", Pct: 0},
				{Path: "lib/queries.js", Pct: 0},
			}},
		},
		{
			"total may appear anywhere",
			summary(prefix+"a.js", entry(50), "total", entry(75.5), prefix+"b.js", entry(100)),
			core.Coverage{Total: 75.5, Files: []core.FileCoverage{
				{Path: "a.js", Pct: 50},
				{Path: "b.js", Pct: 100},
			}},
		},
		{
			"single file normalizes to an empty path",
			summary("total", entry(42), prefix+"index.js", entry(42)),
			core.Coverage{Total: 42, Files: []core.FileCoverage{{Path: "", Pct: 42}}},
		},
		{
			"only total",
			summary("total", entry(12.5)),
			core.Coverage{Total: 12.5, Files: []core.FileCoverage{}},
		},
		{
			"percentages are rounded to two decimals",
			summary("total", entry(33.333333), "/a/x.js", entry(66.666666), "/a/y.js", entry(0.125)),
			core.Coverage{Total: 33.33, Files: []core.FileCoverage{
				{Path: "x.js", Pct: 66.67},
				{Path: "y.js", Pct: 0.13},
			}},
		},
		{
			"later duplicate wins and keeps the first position",
			[]byte(`{"total":` + entry(1) + `,"/a/x.js":` + entry(10) + `,"/a/y.js":` + entry(20) + `,"/a/x.js":` + entry(30) + `}`),
			core.Coverage{Total: 1, Files: []core.FileCoverage{
				{Path: "x.js", Pct: 30},
				{Path: "y.js", Pct: 20},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     []byte
		wantErr error
		message string
	}{
		{"empty document", []byte(""), errs.Err{Code: errs.CodeMalformedJSON}, ""},
		{"invalid json", []byte(`{"total":`), errs.Err{Code: errs.CodeMalformedJSON}, ""},
		{"array document", []byte(`[1,2]`), errs.Err{Code: errs.CodeMalformedJSON}, ""},
		{"missing total", summary("/a/x.js", entry(10)), errs.ErrMissingTotal, ""},
		{
			"record without statements",
			[]byte(`{"total":` + entry(1) + `,"/a/x.js":{"lines":{"pct":10}}}`),
			errs.Err{Code: errs.CodeMalformedRecord},
			`coverage record "/a/x.js" has no numeric statements.pct`,
		},
		{
			"non numeric pct",
			summary("total", entry(`"Unknown"`)),
			errs.Err{Code: errs.CodeMalformedRecord},
			`coverage record "total" has no numeric statements.pct`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "unexpected error %v", err)
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestParse_Fixtures(t *testing.T) {
	raw, err := testutils.LoadFile(testutils.CurrentSummaryPath)
	require.NoError(t, err)

	got, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, 54.55, got.Total)
	paths := make([]string, 0, len(got.Files))
	for _, f := range got.Files {
		assert.NotEqual(t, "total", f.Path)
		assert.False(t, strings.HasPrefix(f.Path, "/"), f.Path)
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{
		"index.js",
		"bin/cmd.js",
		"lib/get-prefix.js",
		"lib/parse-coverage.js",
		"lib/queries.js",
	}, paths)
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.234, 1.23},
		{2.675001, 2.68},
		{86.666666, 86.67},
		{-13.33, -13.33},
		{-0.125, -0.13},
		{100, 100},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, Round(tt.in))
		})
	}
}
