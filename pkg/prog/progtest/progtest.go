// Package progtest contains utilities for testing [prog.Program]
// implementations with real files as their standard streams.
package progtest

import (
	"io"
	"os"
	"testing"

	"src.repoman.dev/pkg/must"
	"src.repoman.dev/pkg/prog"
	"src.repoman.dev/pkg/testutil"
)

// Fixture is a test fixture suitable for testing programs.
type Fixture struct {
	pipes  [3][2]*os.File
	output [3]chan string
}

// Setup sets up a test fixture. Stdout and stderr are read continuously, so
// the program never blocks writing to them. All pipes are closed when the test
// finishes.
func Setup(c testutil.Cleanuper) *Fixture {
	f := &Fixture{}
	for i := range f.pipes {
		r, w := must.Pipe()
		f.pipes[i] = [2]*os.File{r, w}
		c.Cleanup(func() { r.Close(); w.Close() })
	}
	for i := 1; i <= 2; i++ {
		ch := make(chan string, 1)
		r := f.pipes[i][0]
		go func() {
			b, _ := io.ReadAll(r)
			ch <- string(b)
		}()
		f.output[i] = ch
	}
	return f
}

// Fds returns the file descriptors to pass to the program.
func (f *Fixture) Fds() [3]*os.File {
	return [3]*os.File{f.pipes[0][0], f.pipes[1][1], f.pipes[2][1]}
}

// FeedIn writes s to the stdin of the program and closes it, so that the
// program sees end of input after s.
func (f *Fixture) FeedIn(s string) {
	must.OK1(f.pipes[0][1].WriteString(s))
	f.pipes[0][1].Close()
}

// Output closes the stdout and stderr of the program and returns everything
// that has been written to them. It must be called at most once, after the
// program has finished.
func (f *Fixture) Output() (stdout, stderr string) {
	f.pipes[1][1].Close()
	f.pipes[2][1].Close()
	return <-f.output[1], <-f.output[2]
}

// TestOutput checks that stdout and stderr of the program are exactly the
// given values.
func (f *Fixture) TestOutput(t *testing.T, wantStdout, wantStderr string) {
	t.Helper()
	stdout, stderr := f.Output()
	if stdout != wantStdout {
		t.Errorf("got stdout %q, want %q", stdout, wantStdout)
	}
	if stderr != wantStderr {
		t.Errorf("got stderr %q, want %q", stderr, wantStderr)
	}
}

// Run runs p with the given stdin and command-line arguments, and returns its
// exit status with everything written to stdout and stderr.
func Run(c testutil.Cleanuper, p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	f := Setup(c)
	f.FeedIn(stdin)
	exit = prog.Run(f.Fds(), Args(args...), p)
	stdout, stderr = f.Output()
	return exit, stdout, stderr
}

// Args returns a command line that invokes repoman with the given arguments.
func Args(args ...string) []string {
	return append([]string{"repoman"}, args...)
}
