package logutil

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"src.repoman.dev/pkg/must"
	"src.repoman.dev/pkg/testutil"
)

func TestSetOutputFile(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard) })
	fname := filepath.Join(testutil.TempDir(t), "log")
	logger := GetLogger("[test] ")

	logger.Println("dropped")
	if err := SetOutputFile(fname); err != nil {
		t.Fatal(err)
	}
	logger.Println("kept")
	GetLogger("[later] ").Println("also kept")
	if err := SetOutputFile(""); err != nil {
		t.Fatal(err)
	}
	logger.Println("dropped again")

	content := must.ReadFileString(fname)
	for _, want := range []string{"[test] ", "kept", "[later] ", "also kept"} {
		if !strings.Contains(content, want) {
			t.Errorf("log file %q doesn't contain %q", content, want)
		}
	}
	for _, unwanted := range []string{"dropped"} {
		if strings.Contains(content, unwanted) {
			t.Errorf("log file %q contains %q", content, unwanted)
		}
	}
}

func TestSetOutputFile_BadPath(t *testing.T) {
	dir := testutil.TempDir(t)
	if err := SetOutputFile(dir); err == nil {
		t.Errorf("SetOutputFile(dir) -> nil error, want error")
	}
}
