// Package testutils holds fixtures, fakes and mocks shared by tests.
package testutils

import (
	"fmt"
	"os"
	"path"
	"runtime"

	"github.com/LambdaTest/covcompare/pkg/errs"
	"github.com/LambdaTest/covcompare/pkg/lumber"
)

// getCurrentWorkingDir give the module root derived from the path of this file
func getCurrentWorkingDir() (string, error) {
	_, filename, _, ok := runtime.Caller(1)
	if !ok {
		return "", errs.New("runtime.Calller(1) was unable to recover information")
	}
	filepath := path.Join(path.Dir(filename), "../")
	return filepath, nil
}

// GetLogger returns a dummy lumber.Logger.
func GetLogger() (lumber.Logger, error) {
	logger, err := lumber.NewLogger(lumber.LoggingConfig{EnableConsole: true, ConsoleLevel: lumber.Debug}, true, lumber.InstanceLogrusLogger)
	if err != nil {
		return nil, err
	}

	return logger, nil
}

// FixturePath returns the absolute path of a file relative to the module root.
func FixturePath(relativePath string) (string, error) {
	cwd, err := getCurrentWorkingDir()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", cwd, relativePath), nil
}

// LoadFile reads a file relative to the module root.
func LoadFile(relativePath string) ([]byte, error) {
	absPath, err := FixturePath(relativePath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}
	return data, err
}
