// Package core holds the data model and the collaborator contracts of covcompare.
package core

// FileCoverage is the statement coverage of one file.
type FileCoverage struct {
	Path string  `json:"path" yaml:"path"`
	Pct  float64 `json:"pct" yaml:"pct"`
}

// Coverage is a normalized coverage summary. Files keeps the key order of
// the summary it was parsed from.
type Coverage struct {
	Total float64        `json:"total" yaml:"total"`
	Files []FileCoverage `json:"files" yaml:"files"`
}

// Change is the coverage delta of a single file. Old is nil for a file that
// only exists in the current run.
type Change struct {
	Path string   `json:"path" yaml:"path"`
	Old  *float64 `json:"old" yaml:"old"`
	New  float64  `json:"new" yaml:"new"`
}

// Status classifies the change.
func (c Change) Status() ChangeStatus {
	return Classify(c.Old, &c.New)
}

// Comparison is the outcome of diffing a baseline against a current run.
type Comparison struct {
	BaselineTotal float64  `json:"baseline_total" yaml:"baseline_total"`
	CurrentTotal  float64  `json:"current_total" yaml:"current_total"`
	Changes       []Change `json:"changes" yaml:"changes"`
}

// ChangeStatus is the kind of a per file change
type ChangeStatus string

// All values of ChangeStatus
const (
	Unchanged ChangeStatus = "unchanged"
	Improved  ChangeStatus = "improved"
	Regressed ChangeStatus = "regressed"
	Added     ChangeStatus = "new"
	Removed   ChangeStatus = "removed"
)

// Classify returns the status of a file given its baseline and current
// percentages; nil means the file is absent on that side.
func Classify(old, new *float64) ChangeStatus {
	switch {
	case old == nil && new == nil:
		return Unchanged
	case old == nil:
		return Added
	case new == nil:
		return Removed
	case *new > *old:
		return Improved
	case *new < *old:
		return Regressed
	default:
		return Unchanged
	}
}

// Comment is a pull request comment.
type Comment struct {
	ID          string `json:"id"`
	Body        string `json:"body"`
	IsMinimized bool   `json:"isMinimized"`
}
