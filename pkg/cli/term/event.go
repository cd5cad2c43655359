package term

import "fmt"

// Event represents a logical editing event decoded from terminal input. It is
// either a KeyEvent or a CharEvent.
type Event interface {
	isEvent()
}

// CharEvent is a printable byte to insert into the buffer.
type CharEvent byte

// KeyEvent is an editing action.
type KeyEvent Key

// IsPrintable reports whether b is inserted as a CharEvent. Bytes of multi-byte
// UTF-8 sequences are.
func IsPrintable(b byte) bool { return b >= 0x20 && b != 0x7f }

func (CharEvent) isEvent() {}
func (KeyEvent) isEvent()  {}

func (e CharEvent) String() string { return fmt.Sprintf("Char(%q)", byte(e)) }
func (e KeyEvent) String() string  { return Key(e).String() }

// Key identifies an editing action.
type Key int

// Editing actions.
const (
	Submit Key = iota
	Cancel
	EndOfInput
	Backspace
	DeleteForward
	MoveLeft
	MoveRight
	MoveHome
	MoveEnd
	HistoryPrev
	HistoryNext
	Completion
)

var keyNames = [...]string{
	Submit:        "Submit",
	Cancel:        "Cancel",
	EndOfInput:    "EndOfInput",
	Backspace:     "Backspace",
	DeleteForward: "DeleteForward",
	MoveLeft:      "MoveLeft",
	MoveRight:     "MoveRight",
	MoveHome:      "MoveHome",
	MoveEnd:       "MoveEnd",
	HistoryPrev:   "HistoryPrev",
	HistoryNext:   "HistoryNext",
	Completion:    "Completion",
}

func (k Key) String() string {
	if 0 <= k && int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// K returns the KeyEvent for a Key.
func K(k Key) Event { return KeyEvent(k) }

// C returns the CharEvent for a byte.
func C(b byte) Event { return CharEvent(b) }
