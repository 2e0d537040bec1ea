package config

import "github.com/LambdaTest/covcompare/pkg/lumber"

// Model definition for configuration

// ComparerConfig is the application's configuration
type ComparerConfig struct {
	Config           string
	CoverageFilePath string   `json:"coverage-filepath" validate:"required"`
	DryRun           bool     `json:"dry-run"`
	Owner            string   `json:"owner" validate:"required"`
	Repo             string   `json:"repo" validate:"required"`
	PRID             int      `json:"pr-id" validate:"required_unless=DryRun true,gte=0"`
	Token            string   `env:"GITHUB_TOKEN"`
	Output           string   `json:"output" validate:"oneof=markdown table json yaml"`
	Ignore           []string `json:"ignore"`
	BaselineSource   string   `json:"baseline-source" validate:"oneof=github azure"`
	AssetName        string   `json:"asset-name" validate:"required"`
	GitHubAPIURL     string   `json:"github-api-url" validate:"url"`
	GitHubGraphQLURL string   `json:"github-graphql-url" validate:"url"`
	Verbose          bool
	LogFile          string `json:"log-file"`
	LogConfig        lumber.LoggingConfig
	Azure            Azure `env:"AZURE"`
}

// Azure providers the storage configuration of the blob baseline.
type Azure struct {
	ContainerName      string `env:"CONTAINER_NAME"`
	StorageAccountName string `env:"STORAGE_ACCOUNT"`
	StorageAccessKey   string `env:"STORAGE_ACCESS_KEY"`
	BlobPath           string `env:"BLOB_PATH"`
	ServiceURL         string `env:"SERVICE_URL"`
}
