package testutil

import (
	"os"

	"src.repoman.dev/pkg/env"
)

// Setenv sets an environment variable until the test finishes, and returns
// value.
func Setenv(c Cleanuper, name, value string) string {
	restoreEnvOnCleanup(c, name)
	os.Setenv(name, value)
	return value
}

// Unsetenv unsets environment variables until the test finishes.
func Unsetenv(c Cleanuper, names ...string) {
	for _, name := range names {
		restoreEnvOnCleanup(c, name)
		os.Unsetenv(name)
	}
}

// TempConfigHome points XDG_CONFIG_HOME at a new temporary directory and
// returns it.
func TempConfigHome(c Cleanuper) string {
	return Setenv(c, env.XDG_CONFIG_HOME, TempDir(c))
}

func restoreEnvOnCleanup(c Cleanuper, name string) {
	if old, ok := os.LookupEnv(name); ok {
		c.Cleanup(func() { os.Setenv(name, old) })
	} else {
		c.Cleanup(func() { os.Unsetenv(name) })
	}
}
