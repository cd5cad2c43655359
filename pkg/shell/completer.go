package shell

import (
	"os"

	"src.repoman.dev/pkg/edit/complete"
)

// NewCompleter returns a completer that completes the first word of the line
// from commands, and any other word from the names of subdirectories of
// reposDir. The directory is read on each completion, so repositories created
// during the session are seen.
func NewCompleter(commands []string, reposDir string) complete.Completer {
	return func(buffer string, dot int) []string {
		start := complete.SeedStart(complete.CodeBuffer{Content: buffer, Dot: dot})
		seed := buffer[start:dot]
		if start == 0 {
			return complete.FilterPrefix(seed, commands)
		}
		return complete.FilterPrefix(seed, listRepos(reposDir))
	}
}

func listRepos(dir string) []string {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Println("list repos:", err)
		return nil
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names
}
