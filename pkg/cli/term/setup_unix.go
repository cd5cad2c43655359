//go:build unix

package term

import (
	"errors"
	"fmt"
	"os"

	"src.repoman.dev/pkg/sys"
	"src.repoman.dev/pkg/sys/eunix"
)

func setup(in *os.File) (func() error, error) {
	if !sys.IsFileATTY(in) {
		return nil, ErrNotTerminal
	}
	// All fds pointing to the same terminal are equivalent, so the input file
	// is used for changing termios.
	fd := int(in.Fd())
	term, err := eunix.TermiosForFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't get terminal attribute: %w", err)
	}

	savedTermios := term.Copy()

	term.SetICanon(false)
	term.SetEcho(false)
	term.SetISig(false)
	term.SetVMin(1)
	term.SetVTime(0)
	// Enforcing crnl translation on readline. Assuming user won't set
	// inlcr or -onlcr, otherwise we have to hardcode all of them here.
	term.SetICRNL(true)

	err = term.ApplyToFd(fd)
	if err != nil {
		return nil, errors.Join(
			fmt.Errorf("can't set up terminal attribute: %w", err),
			savedTermios.ApplyToFd(fd))
	}

	restore := func() error {
		if err := savedTermios.ApplyToFd(fd); err != nil {
			return fmt.Errorf("can't restore terminal attribute: %w", err)
		}
		return nil
	}
	return restore, nil
}
