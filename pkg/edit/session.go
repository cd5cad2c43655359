package edit

import (
	"bufio"
	"io"
)

// session is the state of one line being edited in raw mode. The terminal
// cursor is kept at the column of dot, and every method writes the output
// needed to keep the visible line in sync with buf.
//
// Output relies only on printable bytes, "\b", and "\n" (translated to "\r\n"
// by the terminal), so lines longer than the terminal width are not redrawn
// correctly.
type session struct {
	prompt string
	buf    []byte
	dot    int
	w      *bufio.Writer
}

func newSession(prompt string, out io.Writer) *session {
	return &session{prompt: prompt, w: bufio.NewWriter(out)}
}

func (s *session) String() string { return string(s.buf) }

func (s *session) flush() error { return s.w.Flush() }

func (s *session) backspaces(n int) {
	for i := 0; i < n; i++ {
		s.w.WriteByte('\b')
	}
}

// insert inserts text at the dot and moves the dot after it.
func (s *session) insert(text string) {
	if text == "" {
		return
	}
	tail := s.buf[s.dot:]
	s.w.WriteString(text)
	s.w.Write(tail)
	s.backspaces(len(tail))

	buf := make([]byte, 0, len(s.buf)+len(text))
	buf = append(buf, s.buf[:s.dot]...)
	buf = append(buf, text...)
	s.buf = append(buf, tail...)
	s.dot += len(text)
}

// deleteBefore deletes the byte before the dot. It returns whether anything
// was deleted.
func (s *session) deleteBefore() bool {
	if s.dot == 0 {
		return false
	}
	s.w.WriteByte('\b')
	s.dot--
	s.buf = append(s.buf[:s.dot], s.buf[s.dot+1:]...)
	s.redrawTail()
	return true
}

// deleteAt deletes the byte at the dot. It returns whether anything was
// deleted.
func (s *session) deleteAt() bool {
	if s.dot == len(s.buf) {
		return false
	}
	s.buf = append(s.buf[:s.dot], s.buf[s.dot+1:]...)
	s.redrawTail()
	return true
}

// redrawTail rewrites the text after the dot after a byte has been removed,
// erasing the column the line no longer occupies.
func (s *session) redrawTail() {
	tail := s.buf[s.dot:]
	s.w.Write(tail)
	s.w.WriteByte(' ')
	s.backspaces(len(tail) + 1)
}

func (s *session) moveLeft() {
	if s.dot > 0 {
		s.w.WriteByte('\b')
		s.dot--
	}
}

func (s *session) moveRight() {
	if s.dot < len(s.buf) {
		s.w.WriteByte(s.buf[s.dot])
		s.dot++
	}
}

func (s *session) moveHome() {
	s.backspaces(s.dot)
	s.dot = 0
}

func (s *session) moveEnd() {
	s.w.Write(s.buf[s.dot:])
	s.dot = len(s.buf)
}

// replaceAll replaces the whole line with text and moves the dot to its end.
func (s *session) replaceAll(text string) {
	s.moveEnd()
	for range s.buf {
		s.w.WriteString("\b \b")
	}
	s.buf = []byte(text)
	s.w.Write(s.buf)
	s.dot = len(s.buf)
}

// list writes items one per line below the current line, and then repaints
// the prompt and the line with the cursor at the dot.
func (s *session) list(items []string) {
	s.w.WriteByte('\n')
	for _, item := range items {
		s.w.WriteString(item)
		s.w.WriteByte('\n')
	}
	s.w.WriteString(s.prompt)
	s.w.Write(s.buf)
	s.backspaces(len(s.buf) - s.dot)
}

// newline moves the terminal cursor to the start of the next line, leaving the
// line as it is.
func (s *session) newline() {
	s.w.WriteByte('\n')
}
