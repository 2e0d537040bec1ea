package config

import (
	"strings"

	"github.com/LambdaTest/covcompare/pkg/errs"
	"github.com/LambdaTest/covcompare/pkg/global"
	"github.com/LambdaTest/covcompare/pkg/utils"
)

const prIDField = "pr-id"

// missingInputMessages words the error for each required flag.
var missingInputMessages = map[string]string{
	"repo":              "missing --repo flag. Please pass the repository name",
	"owner":             "missing --owner flag. Please pass the github organization or user.",
	"coverage-filepath": "missing --coverage-filepath flag. Please pass the path to the coverage-summary.json file.",
	"asset-name":        "missing --asset-name flag. Please pass the name of the release asset.",
}

// ValidateCfg checks the validity of the config. Checks run in the order
// token, required inputs, pull request id, then the remaining rules.
func ValidateCfg(cfg *ComparerConfig) error {
	if cfg.Token == "" && (cfg.BaselineSource == global.GitHubBaseline || !cfg.DryRun) {
		return errs.ErrMissingToken
	}

	fieldErrs, err := utils.ValidateStruct(cfg)
	if err != nil {
		return err
	}

	var (
		missing []string
		invalid []string
		noPRID  bool
	)
	for _, fe := range fieldErrs {
		switch {
		case fe.Field == prIDField && fe.Tag == "required_unless":
			noPRID = true
		case fe.Tag == "required":
			msg, ok := missingInputMessages[fe.Field]
			if !ok {
				msg = fe.Message
			}
			missing = append(missing, msg)
		default:
			invalid = append(invalid, fe.Message)
		}
	}
	if cfg.BaselineSource == global.AzureBaseline {
		missing = append(missing, missingAzureInputs(cfg.Azure)...)
	}

	if len(missing) > 0 {
		return errs.ErrMissingInput(missing)
	}
	if noPRID {
		return errs.ErrMissingPRID
	}
	if len(invalid) > 0 {
		return errs.ErrInvalidConfig(strings.Join(invalid, "\n"))
	}
	return nil
}

func missingAzureInputs(azure Azure) []string {
	var missing []string
	for _, in := range []struct {
		value string
		env   string
	}{
		{azure.ContainerName, "AZURE_CONTAINER_NAME"},
		{azure.StorageAccountName, "AZURE_STORAGE_ACCOUNT"},
		{azure.StorageAccessKey, "AZURE_STORAGE_ACCESS_KEY"},
		{azure.BlobPath, "AZURE_BLOB_PATH"},
	} {
		if in.value == "" {
			missing = append(missing, "missing "+in.env+" env var for the azure baseline.")
		}
	}
	return missing
}
