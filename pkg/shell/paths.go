package shell

import (
	"os"
	"path/filepath"

	"src.repoman.dev/pkg/fsutil"
	"src.repoman.dev/pkg/prog"
)

// HistoryPath returns the path of the history file: the configured one, or
// ~/.repoman_history.
func HistoryPath(cfg *prog.Config) (string, error) {
	if cfg.History.Path != "" {
		return cfg.History.Path, nil
	}
	home, err := fsutil.GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".repoman_history"), nil
}

// ReposDir returns the directory whose subdirectories are the repositories:
// the configured one, or the "repos" directory next to the executable.
func ReposDir(cfg *prog.Config) (string, error) {
	if cfg.ReposDir != "" {
		return cfg.ReposDir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), "repos"), nil
}
