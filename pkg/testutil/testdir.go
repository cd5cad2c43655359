package testutil

import (
	"os"
	"path/filepath"

	"src.repoman.dev/pkg/env"
)

// TempDir creates a temporary directory for testing that will be removed
// after the test finishes. Symlinks in the returned path are resolved, so it
// can be compared against paths computed by the code under test.
func TempDir(c Cleanuper) string {
	dir, err := os.MkdirTemp("", "repomantest")
	if err != nil {
		panic(err)
	}
	dir, err = filepath.EvalSymlinks(dir)
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() {
		err := os.RemoveAll(dir)
		if err != nil {
			println("failed to remove temp dir", dir)
		}
	})
	return dir
}

// TempHome is like TempDir, but it also sets HOME to the temporary directory
// for the duration of the test.
func TempHome(c Cleanuper) string {
	return Setenv(c, env.HOME, TempDir(c))
}
