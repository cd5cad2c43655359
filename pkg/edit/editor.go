// Package edit implements the interactive line editor of the REPL.
//
// The editor has two tiers. When the input is a terminal, it is put into raw
// mode and the editor provides in-line editing, history recall with Up/Down
// and completion with Tab. Otherwise, or when raw mode can't be acquired, the
// editor reads whole lines with buffered I/O; the line is accepted as typed
// and only added to history afterwards.
package edit

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"src.repoman.dev/pkg/cli/histutil"
	"src.repoman.dev/pkg/cli/term"
	"src.repoman.dev/pkg/edit/complete"
	"src.repoman.dev/pkg/logutil"
	"src.repoman.dev/pkg/strutil"
)

var logger = logutil.GetLogger("[edit] ")

// Editor reads lines from the user.
type Editor struct {
	in        *os.File
	out       io.Writer
	hist      *histutil.History
	completer complete.Completer

	// Set once raw mode has failed; the editor then stays in the buffered
	// tier so that input held by the bufio.Reader is not skipped.
	buffered *bufio.Reader
}

// NewEditor creates an Editor reading from in and writing to out. Submitted
// lines are added to hist, which is also used for recall; a nil hist is
// replaced by an empty History. The completer may be nil.
func NewEditor(in *os.File, out io.Writer, hist *histutil.History, completer complete.Completer) *Editor {
	if hist == nil {
		hist = histutil.New()
	}
	return &Editor{in: in, out: out, hist: hist, completer: completer}
}

// History returns the history used by the editor.
func (ed *Editor) History() *histutil.History { return ed.hist }

// ReadLine prints the prompt and reads one line. It returns false on end of
// input, or when the user presses Ctrl-C or Ctrl-D; the caller should stop
// reading then. The returned line never contains a line break.
func (ed *Editor) ReadLine(prompt string) (string, bool) {
	fmt.Fprint(ed.out, prompt)
	if ed.buffered != nil {
		return ed.readBuffered()
	}

	var (
		line string
		ok   bool
		ran  bool
	)
	err := term.WithRawMode(ed.in, func() error {
		ran = true
		line, ok = ed.readRaw(prompt, ed.in)
		return nil
	})
	if !ran {
		logger.Println("raw mode unavailable, falling back to buffered input:", err)
		ed.buffered = bufio.NewReader(ed.in)
		return ed.readBuffered()
	}
	if err != nil {
		logger.Println(err)
	}
	return line, ok
}

func (ed *Editor) readBuffered() (string, bool) {
	s, err := ed.buffered.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			logger.Println("read:", err)
		}
		if s == "" {
			return "", false
		}
	}
	line := strutil.ChopLineEnding(s)
	ed.hist.Commit(line)
	return line, true
}

// readRaw runs the editing loop on input from a terminal in raw mode. The
// prompt has already been written.
func (ed *Editor) readRaw(prompt string, in io.Reader) (string, bool) {
	rd := term.NewReader(in)
	s := newSession(prompt, ed.out)
	defer s.flush()
	ed.hist.ResetNavigation()

	for {
		if err := s.flush(); err != nil {
			logger.Println("write:", err)
		}
		ev, err := rd.ReadEvent()
		if err != nil {
			if err != io.EOF {
				logger.Println("read:", err)
			}
			s.newline()
			return "", false
		}
		if line, done, ok := ed.handleEvent(s, ev); done {
			return line, ok
		}
	}
}

// handleEvent applies one event to the session. Its second return value is
// true when the session is over; the first and third are then the result of
// ReadLine.
func (ed *Editor) handleEvent(s *session, ev term.Event) (string, bool, bool) {
	switch ev := ev.(type) {
	case term.CharEvent:
		s.insert(string([]byte{byte(ev)}))
		ed.hist.ResetNavigation()
	case term.KeyEvent:
		switch term.Key(ev) {
		case term.Submit:
			s.newline()
			line := s.String()
			ed.hist.Commit(line)
			return line, true, true
		case term.Cancel, term.EndOfInput:
			s.newline()
			return "", true, false
		case term.Backspace:
			if s.deleteBefore() {
				ed.hist.ResetNavigation()
			}
		case term.DeleteForward:
			if s.deleteAt() {
				ed.hist.ResetNavigation()
			}
		case term.MoveLeft:
			s.moveLeft()
		case term.MoveRight:
			s.moveRight()
		case term.MoveHome:
			s.moveHome()
		case term.MoveEnd:
			s.moveEnd()
		case term.HistoryPrev:
			if line, ok := ed.hist.Prev(s.String()); ok {
				s.replaceAll(line)
			}
		case term.HistoryNext:
			if line, ok := ed.hist.Next(); ok {
				s.replaceAll(line)
			}
		case term.Completion:
			ed.complete(s)
		}
	}
	return "", false, false
}

func (ed *Editor) complete(s *session) {
	result := complete.Complete(
		complete.CodeBuffer{Content: s.String(), Dot: s.dot}, ed.completer)
	switch result.Action {
	case complete.Insert:
		s.insert(result.Insert)
		ed.hist.ResetNavigation()
	case complete.List:
		s.list(result.Items)
	}
}
