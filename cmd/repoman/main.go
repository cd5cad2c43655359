// Repoman is the interactive shell of the repoman content repository manager.
// It reads commands with a line editor supporting history recall and tab
// completion of command and repository names.
package main

import (
	"os"

	"src.repoman.dev/pkg/buildinfo"
	"src.repoman.dev/pkg/prog"
	"src.repoman.dev/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(
			buildinfo.Program{},
			shell.Program{Handler: shell.DefaultHandler})))
}
