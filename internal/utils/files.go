package utils

import (
	"io"
	"os"

	"github.com/devconf/devconf/internal/log"
)

// CloseOrWarn closes the given resource, logging a warning on failure.
func CloseOrWarn(file io.Closer) {
	if err := file.Close(); err != nil {
		log.Warnf("Failed to close file: %v", err)
	}
}

// FileExists reports whether the given path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
