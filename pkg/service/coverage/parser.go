// Package coverage turns coverage summaries into normalized coverage and
// compares two of them.
package coverage

import (
	"math"
	"strings"

	"github.com/LambdaTest/covcompare/pkg/core"
	"github.com/LambdaTest/covcompare/pkg/errs"
	"github.com/LambdaTest/covcompare/pkg/fileutils"
	"github.com/LambdaTest/covcompare/pkg/global"
	"github.com/tidwall/gjson"
)

// Round rounds x half away from zero to two decimals.
func Round(x float64) float64 {
	return math.Round(x*100) / 100
}

type record struct {
	key   string
	value gjson.Result
}

// Parse reads a coverage summary and returns its statement coverage. File
// keys are stripped of the prefix they all share.
func Parse(raw []byte) (core.Coverage, error) {
	if !gjson.ValidBytes(raw) {
		return core.Coverage{}, errs.ErrMalformedJSON("document is not valid json")
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return core.Coverage{}, errs.ErrMalformedJSON("top level value is not an object")
	}

	records := make([]record, 0)
	keys := make([]string, 0)
	doc.ForEach(func(key, value gjson.Result) bool {
		records = append(records, record{key: key.String(), value: value})
		if key.String() != global.TotalKey {
			keys = append(keys, key.String())
		}
		return true
	})
	prefix := fileutils.LongestCommonPrefix(keys)

	var (
		cov      = core.Coverage{Files: make([]core.FileCoverage, 0, len(keys))}
		position = make(map[string]int, len(keys))
		hasTotal bool
	)
	for _, r := range records {
		pct := r.value.Get(global.StatementsPctField)
		if pct.Type != gjson.Number {
			return core.Coverage{}, errs.ErrMalformedRecord(r.key, global.StatementsPctField)
		}

		if r.key == global.TotalKey {
			cov.Total = Round(pct.Float())
			hasTotal = true
			continue
		}

		path := strings.TrimPrefix(r.key, prefix)
		if i, ok := position[path]; ok {
			cov.Files[i].Pct = Round(pct.Float())
			continue
		}
		position[path] = len(cov.Files)
		cov.Files = append(cov.Files, core.FileCoverage{Path: path, Pct: Round(pct.Float())})
	}

	if !hasTotal {
		return core.Coverage{}, errs.ErrMissingTotal
	}
	return cov, nil
}
