package shell

import (
	"fmt"
	"os"
	"slices"

	"src.repoman.dev/pkg/cli/histutil"
)

// Commands are the command names known to the REPL, offered for completion.
var Commands = []string{
	"help", "history", "exit", "quit",
	"init", "use", "add", "list", "index", "remove", "rename",
	"list-repos", "delete-repo", "rename-repo",
	"gh-login", "gh-list", "gh-clone", "gh-pull", "gh-push", "gh-delete",
	"gh-visibility", "verify", "gh-token-check",
}

// Handler runs one command line, split into words; there is at least one
// word. Output goes to fds[1] and fds[2].
type Handler func(fds [3]*os.File, hist *histutil.History, words []string)

// DefaultHandler implements the help and history commands, and reports other
// known commands as unavailable.
func DefaultHandler(fds [3]*os.File, hist *histutil.History, words []string) {
	switch name := words[0]; name {
	case "help":
		fmt.Fprintln(fds[1], "Commands:")
		for _, cmd := range Commands {
			fmt.Fprintln(fds[1], "  "+cmd)
		}
	case "history":
		for i, entry := range hist.Entries() {
			fmt.Fprintf(fds[1], "%5d  %s\n", i+1, entry)
		}
	default:
		if slices.Contains(Commands, name) {
			fmt.Fprintf(fds[2], "%s: not available in this build\n", name)
		} else {
			fmt.Fprintf(fds[2], "unknown command: %s (type help for a list)\n", name)
		}
	}
}
