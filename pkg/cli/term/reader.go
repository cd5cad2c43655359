// Package term provides the terminal side of the line editor: acquiring and
// releasing raw mode, and decoding raw input bytes into editing events.
package term

import (
	"io"
)

// Reader reads events from a byte stream, typically a terminal in raw mode.
type Reader struct {
	in  io.Reader
	dec Decoder
	buf [1]byte
}

// NewReader creates a new Reader reading from in. Bytes are read one at a
// time, so in should not be buffered by the caller if it is shared.
func NewReader(in io.Reader) *Reader {
	return &Reader{in: in}
}

// Number of consecutive empty reads tolerated before giving up.
const maxNoProgress = 10

// ReadEvent blocks until a complete event has been read. It returns the error
// from the underlying reader, such as io.EOF, when no more bytes are
// available; a partial escape sequence is discarded in that case.
func (rd *Reader) ReadEvent() (Event, error) {
	for {
		b, err := rd.readByte()
		if err != nil {
			return nil, err
		}
		if ev := rd.dec.Feed(b); ev != nil {
			return ev, nil
		}
	}
}

func (rd *Reader) readByte() (byte, error) {
	for i := 0; i < maxNoProgress; i++ {
		n, err := rd.in.Read(rd.buf[:])
		if n == 1 {
			return rd.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
	return 0, io.ErrNoProgress
}
