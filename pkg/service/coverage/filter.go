package coverage

import (
	"fmt"

	"github.com/LambdaTest/covcompare/pkg/core"
	"github.com/LambdaTest/covcompare/pkg/errs"
	"github.com/bmatcuk/doublestar/v4"
)

// Filter drops the files whose path matches one of the glob patterns.
func Filter(cov core.Coverage, patterns []string) (core.Coverage, error) {
	if len(patterns) == 0 {
		return cov, nil
	}
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return core.Coverage{}, errs.ErrInvalidConfig(fmt.Sprintf("invalid ignore pattern %q", pattern))
		}
	}

	files := make([]core.FileCoverage, 0, len(cov.Files))
	for _, f := range cov.Files {
		if ignored(f.Path, patterns) {
			continue
		}
		files = append(files, f)
	}
	return core.Coverage{Total: cov.Total, Files: files}, nil
}

func ignored(path string, patterns []string) bool {
	for _, pattern := range patterns {
		// patterns were validated so Match can only fail on bad input
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}
