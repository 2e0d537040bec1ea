// Package fileutils reads coverage artifacts from disk and memory.
package fileutils

import (
	"bytes"
	"os"

	"github.com/LambdaTest/covcompare/pkg/errs"
	"github.com/mholt/archiver/v3"
)

// CheckIfExists checks if file or directory exists in the given path.
func CheckIfExists(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// format returns the archiver format registered for the extension of name,
// or nil when name carries no known compression or archive extension.
func format(name string) interface{} {
	f, err := archiver.ByExtension(name)
	if err == nil {
		return f
	}
	// ByExtension knows .br but has no constructor for it.
	if br := archiver.NewBrotli(); br.CheckExt(name) == nil {
		return br
	}
	return nil
}

// Decompress inflates data according to the extension of name. Names without
// a compression extension are returned unchanged. Multi file archives such as
// zip or tar are rejected since a summary is a single document.
func Decompress(name string, data []byte) ([]byte, error) {
	f := format(name)
	if f == nil {
		return data, nil
	}
	decompressor, ok := f.(archiver.Decompressor)
	if !ok {
		return nil, errs.ErrUnsupportedArchive(name)
	}

	var out bytes.Buffer
	if err := decompressor.Decompress(bytes.NewReader(data), &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// ReadFile reads the file at path, decompressing it when needed.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decompress(path, data)
}
