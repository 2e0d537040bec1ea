package testutils

// Fixture paths, relative to the module root
const (
	BaselineSummaryPath = "testutils/testdata/coverage/baseline-summary.json" // latest release summary
	CurrentSummaryPath  = "testutils/testdata/coverage/current-summary.json"  // summary of the pull request run
)

// Values used by the fake GitHub API
const (
	Owner     = "answerbook"
	Repo      = "compare-coverage-to-main"
	PRNumber  = 9
	Token     = "biscuits"
	AssetID   = 1234
	AssetName = "coverage-summary.json"
)
