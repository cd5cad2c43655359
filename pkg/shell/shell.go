// Package shell implements the interactive REPL of repoman on top of the line
// editor.
package shell

import (
	"os"

	"src.repoman.dev/pkg/logutil"
	"src.repoman.dev/pkg/prog"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the REPL program.
type Program struct {
	// Runs command lines other than exit and quit. DefaultHandler is used if
	// nil.
	Handler Handler
}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("arguments are not supported")
	}
	cfg, err := prog.LoadConfigForFlags(f)
	if err != nil {
		return err
	}
	handler := p.Handler
	if handler == nil {
		handler = DefaultHandler
	}
	Interact(fds, &InteractConfig{Config: cfg, Handler: handler})
	return nil
}
