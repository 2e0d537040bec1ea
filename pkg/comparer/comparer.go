// Package comparer runs one coverage comparison: it loads the baseline and the
// current summaries, diffs them and publishes the report.
package comparer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/LambdaTest/covcompare/pkg/core"
	"github.com/LambdaTest/covcompare/pkg/global"
	"github.com/LambdaTest/covcompare/pkg/lumber"
	"github.com/LambdaTest/covcompare/pkg/service/coverage"
	"github.com/LambdaTest/covcompare/pkg/service/report"
	"github.com/LambdaTest/covcompare/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// Options tune a Comparer.
type Options struct {
	// DryRun prints the report to Out instead of commenting on the pull request.
	DryRun bool
	// Output is the dry run format.
	Output string
	// Ignore lists globs of normalized paths left out of the comparison.
	Ignore []string
	Out    io.Writer
}

// Comparer compares a baseline source with a current source. It keeps no
// state between runs.
type Comparer struct {
	baseline core.CoverageSource
	current  core.CoverageSource
	sink     core.CommentSink
	opts     Options
	logger   lumber.Logger
}

// New returns a Comparer. sink may be nil when opts.DryRun is set.
func New(baseline, current core.CoverageSource, sink core.CommentSink, opts Options, logger lumber.Logger) *Comparer {
	if opts.Output == "" {
		opts.Output = global.DefaultOutputFormat
	}
	return &Comparer{
		baseline: baseline,
		current:  current,
		sink:     sink,
		opts:     opts,
		logger:   logger,
	}
}

// Compare loads both summaries concurrently and diffs them. Either side
// failing fails the comparison.
func (c *Comparer) Compare(ctx context.Context) (core.Comparison, error) {
	return c.compare(ctx, c.logger)
}

func (c *Comparer) compare(ctx context.Context, logger lumber.Logger) (core.Comparison, error) {
	var baseline, current core.Coverage

	g, errCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cov, err := c.load(errCtx, logger, "baseline", c.baseline)
		if err != nil {
			return err
		}
		baseline = cov
		return nil
	})
	g.Go(func() error {
		cov, err := c.load(errCtx, logger, "current", c.current)
		if err != nil {
			return err
		}
		current = cov
		return nil
	})
	if err := g.Wait(); err != nil {
		return core.Comparison{}, err
	}

	return coverage.Diff(baseline, current), nil
}

func (c *Comparer) load(ctx context.Context, logger lumber.Logger, side string, src core.CoverageSource) (core.Coverage, error) {
	raw, err := src.Fetch(ctx)
	if err != nil {
		logger.Debugf("unable to fetch %s coverage: %v", side, err)
		return core.Coverage{}, fmt.Errorf("fetch %s coverage: %w", side, err)
	}
	logger.Debugf("fetched %s coverage, %d bytes, md5 %s", side, len(raw), utils.ComputeChecksum(raw))

	cov, err := coverage.Parse(raw)
	if err != nil {
		return core.Coverage{}, fmt.Errorf("parse %s coverage: %w", side, err)
	}
	return coverage.Filter(cov, c.opts.Ignore)
}

// Run compares and publishes the result: printed in dry run, otherwise posted
// on the pull request after the reports of earlier runs are hidden.
func (c *Comparer) Run(ctx context.Context) (core.Comparison, error) {
	logger := c.logger.WithFields(lumber.Fields{"run": utils.GenerateUUID()})
	logger.Infof("running...")

	cmp, err := c.compare(ctx, logger)
	if err != nil {
		return core.Comparison{}, err
	}
	logger.Infof("done, old %.2f%% new %.2f%%, %d changed files", cmp.BaselineTotal, cmp.CurrentTotal, len(cmp.Changes))

	if c.opts.DryRun {
		if err := report.Write(c.opts.Out, cmp, c.opts.Output); err != nil {
			return core.Comparison{}, err
		}
		return cmp, nil
	}

	if err := c.hideOldComments(ctx, logger); err != nil {
		return core.Comparison{}, err
	}
	if err := c.sink.PostComment(ctx, commentBody(cmp)); err != nil {
		logger.Debugf("unable to post comment: %v", err)
		return core.Comparison{}, fmt.Errorf("post comment: %w", err)
	}
	logger.Infof("posted coverage report")
	return cmp, nil
}

func (c *Comparer) hideOldComments(ctx context.Context, logger lumber.Logger) error {
	comments, err := c.sink.ListComments(ctx)
	if err != nil {
		return fmt.Errorf("list comments: %w", err)
	}
	for _, comment := range comments {
		if comment.IsMinimized || !strings.Contains(comment.Body, global.CommentHeader) {
			continue
		}
		logger.Infof("minimize comment %s", comment.ID)
		if err := c.sink.HideComment(ctx, comment.ID); err != nil {
			return fmt.Errorf("hide comment %s: %w", comment.ID, err)
		}
	}
	return nil
}

// commentBody renders cmp with the comment marker present exactly once.
func commentBody(cmp core.Comparison) string {
	body := report.Render(cmp)
	if strings.Contains(body, global.CommentHeader) {
		return body
	}
	return global.CommentHeader + "\n\n" + body
}
