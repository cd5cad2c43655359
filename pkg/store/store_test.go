package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"src.repoman.dev/pkg/testutil"
)

func mustGetTempStore(t *testing.T) *DBStore {
	t.Helper()
	st, err := NewStore(filepath.Join(testutil.TempDir(t), "db"))
	if err != nil {
		t.Fatal("NewStore:", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestNewStore_BadPath(t *testing.T) {
	_, err := NewStore(filepath.Join(testutil.TempDir(t), "no", "such", "db"))
	if err == nil {
		t.Errorf("NewStore -> nil error, want error")
	}
}

func TestNewStore_Reopen(t *testing.T) {
	fname := filepath.Join(testutil.TempDir(t), "db")
	st, err := NewStore(fname)
	if err != nil {
		t.Fatal(err)
	}
	st.AddCmd("persisted")
	st.Close()

	st, err = NewStore(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	got, err := st.LastCmds(10)
	if want := []Cmd{{"persisted", 1}}; !reflect.DeepEqual(got, want) || err != nil {
		t.Errorf("LastCmds(10) -> (%v, %v), want (%v, nil)", got, err, want)
	}
}
