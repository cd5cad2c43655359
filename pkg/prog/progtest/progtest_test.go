package progtest

import (
	"os"
	"testing"

	"src.repoman.dev/pkg/prog"
)

// Verify we don't deadlock if more output is written to stdout than can be
// buffered by a pipe.
func TestOutputCaptureDoesNotDeadlock(t *testing.T) {
	exit, stdout, _ := Run(t, noisyProgram{}, "")
	if exit != 0 {
		t.Errorf("exit = %d, want 0", exit)
	}
	if want := 128*1024 + len("hello"); len(stdout) != want {
		t.Errorf("got %d bytes of stdout, want %d", len(stdout), want)
	}
}

func TestFeedIn(t *testing.T) {
	exit, stdout, stderr := Run(t, catProgram{}, "add foo\n")
	if exit != 0 || stdout != "add foo\n" || stderr != "" {
		t.Errorf("got (%d, %q, %q), want (0, \"add foo\\n\", \"\")", exit, stdout, stderr)
	}
}

type noisyProgram struct{}

func (noisyProgram) Run(fds [3]*os.File, _ *prog.Flags, args []string) error {
	// Pipes typically buffer 8 to 128 KiB.
	bytes := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	for i := 0; i < 128*1024/len(bytes); i++ {
		fds[1].Write(bytes)
	}
	fds[1].WriteString("hello")
	return nil
}

type catProgram struct{}

func (catProgram) Run(fds [3]*os.File, _ *prog.Flags, args []string) error {
	buf := make([]byte, 64)
	n, _ := fds[0].Read(buf)
	fds[1].Write(buf[:n])
	return nil
}
