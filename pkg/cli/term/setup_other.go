//go:build !unix

package term

import (
	"errors"
	"os"
)

var errUnsupported = errors.New("raw mode is not supported on this platform")

// The console on other platforms does its own line editing, so callers use
// buffered input there.
func setup(*os.File) (func() error, error) {
	return nil, errUnsupported
}
