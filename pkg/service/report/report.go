// Package report renders a coverage comparison as a pull request comment.
package report

import (
	"fmt"
	"strings"

	"github.com/LambdaTest/covcompare/pkg/core"
	"github.com/LambdaTest/covcompare/pkg/global"
	"github.com/LambdaTest/covcompare/pkg/service/coverage"
)

// Unchanged is the whole report when no file changed.
const Unchanged = "Coverage remained the same"

const (
	tableHeader  = "| Change | File | Coverage |"
	tableDivider = "| ------ | ---- | -------- |"
	warningMark  = ":warning:"
	successMark  = ":white_check_mark:"
)

// Render returns the markdown body for c.
func Render(c core.Comparison) string {
	if len(c.Changes) == 0 {
		return Unchanged
	}

	lines := []string{
		global.CommentHeader,
		"",
		Title(c),
		"",
		tableHeader,
		tableDivider,
	}
	for _, change := range c.Changes {
		lines = append(lines, Row(change))
	}
	// body ends with a newline
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// Title summarizes the movement of the total. Equal totals read as going down by zero.
func Title(c core.Comparison) string {
	if c.CurrentTotal > c.BaselineTotal {
		return fmt.Sprintf(":tada: Total coverage went up by %s%%", twoDecimals(c.CurrentTotal-c.BaselineTotal))
	}
	return fmt.Sprintf(":warning: Total coverage went down by %s%%", twoDecimals(c.BaselineTotal-c.CurrentTotal))
}

// Row renders one table row.
func Row(change core.Change) string {
	mark, message := describe(change)
	return fmt.Sprintf("| %s | `%s` | %s |", mark, change.Path, message)
}

func describe(change core.Change) (mark, message string) {
	switch change.Status() {
	case core.Added:
		return warningMark, fmt.Sprintf("new file (%s%%)", twoDecimals(change.New))
	case core.Regressed:
		return warningMark, fmt.Sprintf("-%s%%", twoDecimals(*change.Old-change.New))
	default:
		return successMark, fmt.Sprintf("%s%%", twoDecimals(change.New-*change.Old))
	}
}

func twoDecimals(x float64) string {
	r := coverage.Round(x)
	if r == 0 {
		// avoid printing -0.00
		r = 0
	}
	return fmt.Sprintf("%.2f", r)
}
