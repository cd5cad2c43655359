package histutil

import (
	"bufio"
	"io"
	"os"

	"src.repoman.dev/pkg/strutil"
)

// Store is a persistent backend for History.
type Store interface {
	// LoadCmds returns up to the most recent max stored commands, oldest
	// first.
	LoadCmds(max int) ([]string, error)
	// SaveCmds replaces the stored commands with the most recent max of
	// cmds.
	SaveCmds(cmds []string, max int) error
}

// Appender is implemented by stores that can record a single command. The
// returned int is the sequence number of the new command.
type Appender interface {
	AddCmd(cmd string) (int, error)
}

// FileStore is a Store backed by a plain text file with one command per line.
// Lines are written without escaping.
type FileStore string

// LoadCmds implements Store. Empty lines are skipped; lines may be of any
// length.
func (fname FileStore) LoadCmds(max int) ([]string, error) {
	file, err := os.Open(string(fname))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cmds []string
	r := bufio.NewReader(file)
	for {
		line, err := r.ReadString('\n')
		if line = strutil.ChopLineEnding(line); line != "" {
			cmds = append(cmds, line)
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
	}
	return lastN(cmds, max), nil
}

// SaveCmds implements Store. The file is truncated first.
func (fname FileStore) SaveCmds(cmds []string, max int) error {
	file, err := os.OpenFile(string(fname), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(file)
	for _, cmd := range lastN(cmds, max) {
		w.WriteString(cmd)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
