package term

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "src.repoman.dev/pkg/tt"
)

var decodeTests = []struct {
	input string
	want  []Event
}{
	// Printable bytes.
	{"x", []Event{C('x')}},
	{"X ~", []Event{C('X'), C(' '), C('~')}},
	{"\xe4", []Event{C(0xe4)}},

	// Control bytes.
	{"\n", []Event{K(Submit)}},
	{"\r", []Event{K(Submit)}},
	{"\x03", []Event{K(Cancel)}},
	{"\x04", []Event{K(EndOfInput)}},
	{"\x7f", []Event{K(Backspace)}},
	{"\x08", []Event{K(Backspace)}},
	{"\t", []Event{K(Completion)}},
	// Other control bytes are ignored.
	{"\x01\x02\x1f", nil},

	// CSI-sequence keys identified by the last byte.
	{"\033[A", []Event{K(HistoryPrev)}},
	{"\033[B", []Event{K(HistoryNext)}},
	{"\033[C", []Event{K(MoveRight)}},
	{"\033[D", []Event{K(MoveLeft)}},
	{"\033[H", []Event{K(MoveHome)}},
	{"\033[F", []Event{K(MoveEnd)}},

	// G3-style keys.
	{"\033OA", []Event{K(HistoryPrev)}},
	{"\033OH", []Event{K(MoveHome)}},
	{"\033OF", []Event{K(MoveEnd)}},

	// CSI-sequence keys ending in '~'.
	{"\033[3~", []Event{K(DeleteForward)}},
	{"\033[1~", []Event{K(MoveHome)}},
	{"\033[7~", []Event{K(MoveHome)}},
	{"\033[4~", []Event{K(MoveEnd)}},
	{"\033[8~", []Event{K(MoveEnd)}},
	// Modified forms.
	{"\033[3;5~", []Event{K(DeleteForward)}},
	{"\033[1;5C", []Event{K(MoveRight)}},

	// Unknown sequences are dropped whole.
	{"\033[5~", nil},
	{"\033[15~", nil},
	{"\033[200~a", []Event{C('a')}},
	{"\033[Z", nil},
	{"\033OP", nil},
	{"\033[2;5A", nil},
	// The byte after an incomplete sequence is consumed too.
	{"\033x", nil},
	{"\033[3x", nil},
	{"\033\033[A", []Event{C('['), C('A')}},

	// Sequences mixed with other input.
	{"ab\033[Dc\n", []Event{C('a'), C('b'), K(MoveLeft), C('c'), K(Submit)}},
}

func TestDecoder(t *testing.T) {
	for _, test := range decodeTests {
		var d Decoder
		var got []Event
		for i := 0; i < len(test.input); i++ {
			if ev := d.Feed(test.input[i]); ev != nil {
				got = append(got, ev)
			}
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("decoding %q (-want +got):\n%s", test.input, diff)
		}
		if d.State() != Idle {
			t.Errorf("decoding %q leaves state %v, want Idle", test.input, d.State())
		}
	}
}

func TestDecoder_States(t *testing.T) {
	var d Decoder
	steps := []struct {
		b    byte
		want DecoderState
	}{
		{0x1b, EscSeq1},
		{'[', EscSeq2},
		{'1', EscExtended},
		{'5', EscExtended},
		{';', EscExtended},
		{'2', EscExtended},
		{'~', Idle},
		{0x1b, EscSeq1},
		{'O', EscG3},
		{'A', Idle},
	}
	for _, step := range steps {
		d.Feed(step.b)
		if d.State() != step.want {
			t.Errorf("after %q, state = %v, want %v", step.b, d.State(), step.want)
		}
	}
}

func TestIsPrintable(t *testing.T) {
	Test(t, Fn("IsPrintable", IsPrintable), Table{
		Args(byte('a')).Rets(true),
		Args(byte(' ')).Rets(true),
		Args(byte('~')).Rets(true),
		Args(byte(0xc3)).Rets(true),
		Args(byte('\t')).Rets(false),
		Args(byte('\n')).Rets(false),
		Args(byte(0x1b)).Rets(false),
		Args(byte(0x7f)).Rets(false),
	})
}

func TestKey_String(t *testing.T) {
	if s := Completion.String(); s != "Completion" {
		t.Errorf("Completion.String() = %q", s)
	}
	if s := Key(100).String(); s != "Key(100)" {
		t.Errorf("Key(100).String() = %q", s)
	}
	if s := C('a').(CharEvent).String(); s != "Char('a')" {
		t.Errorf("CharEvent.String() = %q", s)
	}
}
