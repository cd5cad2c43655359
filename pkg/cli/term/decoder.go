package term

// DecoderState is the state of a Decoder between two bytes.
type DecoderState int

// Possible values of DecoderState.
const (
	// Idle is the state between complete events.
	Idle DecoderState = iota
	// EscSeq1 follows an ESC.
	EscSeq1
	// EscSeq2 follows "ESC [", the start of a CSI-style sequence.
	EscSeq2
	// EscG3 follows "ESC O", the start of a G3-style sequence.
	EscG3
	// EscExtended follows "ESC [" and at least one digit. It lasts until a
	// byte that is neither a digit nor ';'.
	EscExtended
)

var stateNames = [...]string{
	Idle: "Idle", EscSeq1: "EscSeq1", EscSeq2: "EscSeq2", EscG3: "EscG3",
	EscExtended: "EscExtended",
}

func (s DecoderState) String() string { return stateNames[s] }

// Keys of CSI sequences identified by the last byte, like "ESC [ A" for Up.
// G3-style sequences like "ESC O A" use the same table.
var csiSeqByLast = map[byte]Key{
	'A': HistoryPrev, 'B': HistoryNext, 'C': MoveRight, 'D': MoveLeft,
	'H': MoveHome, 'F': MoveEnd,
}

// Keys of CSI sequences ending in '~', identified by the first numeric
// argument, like "ESC [ 3 ~" for Delete. 1/4 are sent by xterm and tmux, 7/8
// by urxvt.
var csiSeqTilde = map[int]Key{
	1: MoveHome, 7: MoveHome,
	4: MoveEnd, 8: MoveEnd,
	3: DeleteForward,
}

// Numeric arguments stop accumulating digits beyond this value; no known key
// uses one that large.
const maxParam = 1000

// Decoder turns a stream of bytes into events. The zero value is ready to use.
//
// Bytes that don't complete a known sequence are dropped silently, and the
// decoder returns to Idle.
type Decoder struct {
	state DecoderState
	// First numeric argument of the current CSI sequence.
	param int
	// Number of ';' seen in the current CSI sequence.
	nsep int
}

// State returns the current state of the decoder.
func (d *Decoder) State() DecoderState { return d.state }

// Feed consumes one byte and returns the event it completes, or nil.
func (d *Decoder) Feed(b byte) Event {
	var ev Event
	*d, ev = d.next(b)
	return ev
}

// next is the transition function of the decoder.
func (d Decoder) next(b byte) (Decoder, Event) {
	switch d.state {
	case Idle:
		return decodeIdle(b)
	case EscSeq1:
		switch b {
		case '[':
			return Decoder{state: EscSeq2}, nil
		case 'O':
			return Decoder{state: EscG3}, nil
		}
	case EscSeq2:
		if '0' <= b && b <= '9' {
			return Decoder{state: EscExtended, param: int(b - '0')}, nil
		}
		if k, ok := csiSeqByLast[b]; ok {
			return Decoder{}, KeyEvent(k)
		}
	case EscG3:
		if k, ok := csiSeqByLast[b]; ok {
			return Decoder{}, KeyEvent(k)
		}
	case EscExtended:
		switch {
		case '0' <= b && b <= '9':
			if d.nsep == 0 && d.param < maxParam {
				d.param = d.param*10 + int(b-'0')
			}
			return d, nil
		case b == ';':
			d.nsep++
			return d, nil
		case b == '~':
			if k, ok := csiSeqTilde[d.param]; ok && d.nsep <= 1 {
				return Decoder{}, KeyEvent(k)
			}
		default:
			// Modified form of a CSI key, like "ESC [ 1 ; 5 A" for Ctrl-Up.
			// The modifier is ignored.
			if k, ok := csiSeqByLast[b]; ok && d.param == 1 && d.nsep == 1 {
				return Decoder{}, KeyEvent(k)
			}
		}
	}
	return Decoder{}, nil
}

func decodeIdle(b byte) (Decoder, Event) {
	switch b {
	case '\n', '\r':
		return Decoder{}, KeyEvent(Submit)
	case 0x03: // ^C
		return Decoder{}, KeyEvent(Cancel)
	case 0x04: // ^D
		return Decoder{}, KeyEvent(EndOfInput)
	case 0x7f, 0x08: // ^? ^H
		return Decoder{}, KeyEvent(Backspace)
	case '\t':
		return Decoder{}, KeyEvent(Completion)
	case 0x1b: // ^[
		return Decoder{state: EscSeq1}, nil
	}
	if IsPrintable(b) {
		return Decoder{}, CharEvent(b)
	}
	return Decoder{}, nil
}
