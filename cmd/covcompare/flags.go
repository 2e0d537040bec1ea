package main

import (
	"github.com/LambdaTest/covcompare/pkg/global"
	"github.com/spf13/cobra"
)

// AttachCLIFlags attaches command line flags to command
func AttachCLIFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringP("config", "c", "", "the config file to use")
	rootCmd.PersistentFlags().StringP("coverage-filepath", "f", "", "Path to the coverage-summary.json of the current run")
	rootCmd.PersistentFlags().BoolP("dry-run", "d", false, "Print the report instead of commenting on the pull request")
	rootCmd.PersistentFlags().StringP("owner", "o", "", "The github organization or user owning the repository")
	rootCmd.PersistentFlags().IntP("pr-id", "p", 0, "The pull request number to comment on")
	rootCmd.PersistentFlags().StringP("repo", "r", "", "The repository name")

	rootCmd.PersistentFlags().String("output", global.DefaultOutputFormat, "Dry run output format: markdown, table, json or yaml")
	rootCmd.PersistentFlags().StringSlice("ignore", nil, "Glob of file paths left out of the comparison, repeatable")
	rootCmd.PersistentFlags().String("baseline-source", global.DefaultBaselineSource, "Where the baseline summary lives: github or azure")
	rootCmd.PersistentFlags().String("asset-name", global.DefaultAssetName, "Name of the release asset holding the baseline summary")
	rootCmd.PersistentFlags().String("github-api-url", global.DefaultGitHubAPIURL, "Base url of the GitHub REST API")
	rootCmd.PersistentFlags().String("github-graphql-url", global.DefaultGraphQLURL, "Url of the GitHub GraphQL API")
	rootCmd.PersistentFlags().BoolP("verbose", "", false, "Run in verbose mode")
	rootCmd.PersistentFlags().String("log-file", "", "Also write logs to this file")
}
