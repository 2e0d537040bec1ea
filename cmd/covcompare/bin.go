package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/LambdaTest/covcompare/config"
	"github.com/LambdaTest/covcompare/pkg/azure"
	"github.com/LambdaTest/covcompare/pkg/comparer"
	"github.com/LambdaTest/covcompare/pkg/core"
	"github.com/LambdaTest/covcompare/pkg/github"
	"github.com/LambdaTest/covcompare/pkg/global"
	"github.com/LambdaTest/covcompare/pkg/localsource"
	"github.com/LambdaTest/covcompare/pkg/lumber"
	"github.com/LambdaTest/covcompare/pkg/requestutils"
	"github.com/cenkalti/backoff/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// RootCommand will setup and return the root command
func RootCommand() *cobra.Command {
	rootCmd := cobra.Command{
		Use:           "covcompare",
		Short:         "Compare coverage against the latest release and report it on a pull request",
		Long:          `covcompare compares the statement coverage of a run with the summary published on the latest release, then comments the difference on the pull request`,
		Version:       global.BinaryVersion,
		Args:          cobra.NoArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// define flags used for this command
	AttachCLIFlags(&rootCmd)

	return &rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: unable to load .env: %v\n", err)
	}

	cfg, err := config.LoadComparerConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[Error] Failed to load config: %v\n", err)
		return err
	}

	// You can also use logrus implementation
	// by using lumber.InstanceLogrusLogger
	logger, err := lumber.NewLogger(cfg.LogConfig, cfg.Verbose, lumber.InstanceZapLogger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[Error] Could not instantiate logger: %v\n", err)
		return err
	}

	if err := config.ValidateCfg(cfg); err != nil {
		logger.Errorf("%v", err)
		return err
	}

	if _, err := execute(context.Background(), cfg, logger, cmd.OutOrStdout()); err != nil {
		logger.Errorf("%v", err)
		return err
	}
	return nil
}

// execute wires the collaborators named by cfg and runs one comparison.
func execute(ctx context.Context, cfg *config.ComparerConfig, logger lumber.Logger, out io.Writer) (core.Comparison, error) {
	requests := requestutils.New(logger, global.DefaultAPITimeout, &backoff.StopBackOff{})
	gh := github.New(cfg, logger, requests)

	var baseline core.CoverageSource
	switch cfg.BaselineSource {
	case global.AzureBaseline:
		store, err := azure.NewAzureBlobEnv(cfg.Azure, logger)
		if err != nil {
			return core.Comparison{}, err
		}
		baseline = store
	default:
		baseline = gh.LatestReleaseAsset(cfg.AssetName)
	}

	var sink core.CommentSink
	if !cfg.DryRun {
		sink = gh.PullRequest(cfg.PRID)
	}

	c := comparer.New(baseline, localsource.New(cfg.CoverageFilePath, logger), sink, comparer.Options{
		DryRun: cfg.DryRun,
		Output: cfg.Output,
		Ignore: cfg.Ignore,
		Out:    out,
	}, logger)
	return c.Run(ctx)
}
