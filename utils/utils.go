package utils

import (
	"os"
)

// If the directory doesn't exist creates it. If it is impossible returns an
// error or panics if the second argument is true.
func EnsureDirExists(path string, shouldPanic bool) error {
	err := os.MkdirAll(path, 0700)
	if err != nil && !os.IsExist(err) {
		if shouldPanic {
			panic(err)
		}
		return err
	}
	return nil
}
