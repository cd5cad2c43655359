//go:build unix

package eunix

import (
	"testing"

	"github.com/creack/pty"
)

func TestTermios_ApplyToFd(t *testing.T) {
	ptm, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptm.Close()
	defer tty.Close()
	fd := int(tty.Fd())

	term, err := TermiosForFd(fd)
	if err != nil {
		t.Fatal("TermiosForFd:", err)
	}
	if term.Raw() {
		t.Fatalf("fresh pty is already raw")
	}

	raw := term.Copy()
	raw.SetICanon(false)
	raw.SetEcho(false)
	raw.SetVMin(1)
	raw.SetVTime(0)
	if err := raw.ApplyToFd(fd); err != nil {
		t.Fatal("ApplyToFd:", err)
	}

	got, err := TermiosForFd(fd)
	if err != nil {
		t.Fatal("TermiosForFd:", err)
	}
	if !got.Raw() {
		t.Errorf("after applying raw attributes, Raw() -> false")
	}
	if term.Raw() {
		t.Errorf("Copy shares state with the original")
	}
}

func TestTermiosForFd_NotTerminal(t *testing.T) {
	_, err := TermiosForFd(-1)
	if err == nil {
		t.Errorf("TermiosForFd(-1) -> nil error, want error")
	}
}
