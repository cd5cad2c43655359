// Package fsutil contains utilities for locating files of the current user.
package fsutil

import (
	"fmt"
	"os"
	"os/user"
	"strings"

	"src.repoman.dev/pkg/env"
)

// GetHome returns the home directory of the current user. $HOME is preferred
// when set.
func GetHome() (string, error) {
	if home := os.Getenv(env.HOME); home != "" {
		return trimTrailingSlash(home), nil
	}
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("can't resolve home directory: %w", err)
	}
	return trimTrailingSlash(u.HomeDir), nil
}

func trimTrailingSlash(s string) string {
	if s == "/" {
		return s
	}
	return strings.TrimRight(s, "/")
}

// TildeAbbr abbreviates the user's home directory to ~.
func TildeAbbr(path string) string {
	home, err := GetHome()
	if err != nil || home == "" || home == "/" {
		// Abbreviating "/" would make the path longer.
		return path
	}
	if path == home {
		return "~"
	} else if strings.HasPrefix(path, home+"/") {
		return "~" + path[len(home):]
	}
	return path
}
