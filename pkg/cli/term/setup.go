package term

import (
	"errors"
	"os"
)

// ErrNotTerminal is returned by Setup when the input is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Setup puts the terminal referred to by in into raw mode: input is delivered
// byte by byte, without echo, line buffering or signal generation. It returns
// a function that restores the original configuration.
//
// The terminal configuration is process-wide state; only one raw-mode session
// should be active at a time.
func Setup(in *os.File) (func() error, error) {
	return setup(in)
}

// WithRawMode calls body with the terminal in raw mode, and restores the
// terminal afterwards, including when body panics. It returns the error from
// Setup without calling body if raw mode can't be acquired; otherwise it
// returns the errors from body and from restoring the terminal, if any.
func WithRawMode(in *os.File, body func() error) (err error) {
	restore, err := Setup(in)
	if err != nil {
		return err
	}
	defer func() {
		if errRestore := restore(); errRestore != nil {
			err = errors.Join(err, errRestore)
		}
	}()
	return body()
}
