// Package histutil provides the command history used by the line editor.
package histutil

import "src.repoman.dev/pkg/logutil"

var logger = logutil.GetLogger("[histutil] ")

// DefaultMaxEntries is the number of entries kept when persisting history if
// no other limit is given.
const DefaultMaxEntries = 1000

// History is an ordered list of submitted lines, oldest first, with a cursor
// for recalling them while editing.
//
// The navigation cursor is an index into the entries; len(entries) means the
// user is not navigating and is editing a fresh line. History is not safe for
// concurrent use; the REPL shares one History with the editor sessions it
// runs one after another.
type History struct {
	entries []string
	cursor  int
	// Line being edited when navigation started.
	draft string
	// Whether moving past the newest entry restores draft.
	restoreDraft bool
	appender     Appender
}

// New creates a History containing the given entries.
func New(entries ...string) *History {
	h := &History{entries: append([]string(nil), entries...)}
	h.ResetNavigation()
	return h
}

// SetRestoreDraft sets whether Next, when moving past the newest entry,
// restores the line that was being edited before navigation started. When
// false, it yields an empty line.
func (h *History) SetRestoreDraft(v bool) { h.restoreDraft = v }

// SetAppender sets a store that receives each line as it is committed, so
// that it is persisted even if the session never reaches Save. A nil Appender
// turns this off.
func (h *History) SetAppender(a Appender) { h.appender = a }

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// Navigating reports whether the cursor is on an entry.
func (h *History) Navigating() bool { return h.cursor < len(h.entries) }

// ResetNavigation moves the cursor to one past the newest entry. It is called
// when an editing session starts and when the user edits a recalled line.
func (h *History) ResetNavigation() {
	h.cursor = len(h.entries)
	h.draft = ""
}

// Prev moves the cursor one entry toward the oldest and returns that entry.
// The current line is remembered as the draft if navigation is just starting.
// It returns false, leaving the cursor unchanged, at the oldest entry or when
// the history is empty.
func (h *History) Prev(current string) (string, bool) {
	if h.cursor > len(h.entries) {
		h.cursor = len(h.entries)
	}
	if h.cursor == 0 {
		return "", false
	}
	if !h.Navigating() {
		h.draft = current
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next moves the cursor one entry toward the newest and returns that entry.
// Moving past the newest entry ends navigation and returns an empty line, or
// the draft if SetRestoreDraft(true) was called. It returns false when not
// navigating.
func (h *History) Next() (string, bool) {
	if !h.Navigating() {
		return "", false
	}
	h.cursor++
	if h.cursor < len(h.entries) {
		return h.entries[h.cursor], true
	}
	line := ""
	if h.restoreDraft {
		line = h.draft
	}
	h.draft = ""
	return line, true
}

// Commit appends a submitted line. Empty lines are not recorded; consecutive
// duplicates are. Navigation is reset.
func (h *History) Commit(line string) {
	if line != "" {
		h.entries = append(h.entries, line)
		if h.appender != nil {
			if _, err := h.appender.AddCmd(line); err != nil {
				logger.Println("append to history store:", err)
			}
		}
	}
	h.ResetNavigation()
}

// Load reads entries from the store and appends them, keeping only the most
// recent maxEntries in total. A non-positive maxEntries means
// DefaultMaxEntries. On error, the history is unchanged.
func (h *History) Load(st Store, maxEntries int) error {
	maxEntries = normalizeMax(maxEntries)
	loaded, err := st.LoadCmds(maxEntries)
	if err != nil {
		return err
	}
	h.entries = lastN(append(h.entries, loaded...), maxEntries)
	h.ResetNavigation()
	return nil
}

// Save writes the most recent maxEntries entries to the store. A non-positive
// maxEntries means DefaultMaxEntries.
func (h *History) Save(st Store, maxEntries int) error {
	maxEntries = normalizeMax(maxEntries)
	return st.SaveCmds(lastN(h.entries, maxEntries), maxEntries)
}

func normalizeMax(n int) int {
	if n <= 0 {
		return DefaultMaxEntries
	}
	return n
}

func lastN(s []string, n int) []string {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}
