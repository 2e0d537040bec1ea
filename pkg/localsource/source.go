// Package localsource reads the current coverage summary from disk.
package localsource

import (
	"context"
	"errors"

	"github.com/LambdaTest/covcompare/pkg/errs"
	"github.com/LambdaTest/covcompare/pkg/fileutils"
	"github.com/LambdaTest/covcompare/pkg/lumber"
)

var errFileNotExist = errors.New("file does not exist")

// File is a core.CoverageSource backed by a file path.
type File struct {
	path   string
	logger lumber.Logger
}

// New returns a source reading path.
func New(path string, logger lumber.Logger) *File {
	return &File{path: path, logger: logger}
}

// Fetch reads the file, decompressing it according to its extension.
func (f *File) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	exists, err := fileutils.CheckIfExists(f.path)
	if err != nil {
		return nil, errs.ErrReadCoverage(f.path, err)
	}
	if !exists {
		return nil, errs.ErrReadCoverage(f.path, errFileNotExist)
	}

	data, err := fileutils.ReadFile(f.path)
	if err != nil {
		var coded errs.Err
		if errors.As(err, &coded) {
			return nil, err
		}
		return nil, errs.ErrReadCoverage(f.path, err)
	}
	f.logger.Debugf("read %d bytes of coverage from %s", len(data), f.path)
	return data, nil
}
