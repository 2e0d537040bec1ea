package global

import "time"

// BinaryVersion is overridden at build time with -ldflags.
var BinaryVersion = "dev"

// All constants related to covcompare
const (
	CommentHeader         = "<!-- COMPARE_COV_TO_MAIN COMMENT HEADER -->"
	DefaultAssetName      = "coverage-summary.json"
	DefaultGitHubAPIURL   = "https://api.github.com"
	DefaultGraphQLURL     = "https://api.github.com/graphql"
	DefaultAPITimeout     = 45 * time.Second
	TotalKey              = "total"
	StatementsPctField    = "statements.pct"
	FullCoverage          = 100.0
	MinimizeClassifier    = "OUTDATED"
	CommentPageSize       = 100
	GitHubAPIVersion      = "2022-11-28"
	OctetStreamMIMEType   = "application/octet-stream"
	GitHubJSONMIMEType    = "application/vnd.github+json"
	ConfigFileName        = ".covcompare"
	DefaultOutputFormat   = "markdown"
	DefaultBaselineSource = "github"
)

// Baseline sources
const (
	GitHubBaseline = "github"
	AzureBaseline  = "azure"
)

// Dry run output formats
const (
	MarkdownOutput = "markdown"
	TableOutput    = "table"
	JSONOutput     = "json"
	YAMLOutput     = "yaml"
)
