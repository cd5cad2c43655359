// Package complete implements the completion algorithm of the line editor.
//
// The candidates come from a caller-supplied Completer; this package finds
// the token being completed and decides whether to extend it or to list the
// candidates.
package complete

import (
	"strings"
	"unicode"

	"src.repoman.dev/pkg/cli/term"
)

// Completer returns candidates for completing the token that ends at dot.
// Candidates are whole tokens, not just the missing suffix; their order is
// kept when listed. It runs synchronously on the Tab key, so it should return
// promptly.
type Completer func(buffer string, dot int) []string

// CodeBuffer is the content of the line being edited with the position of the
// dot (cursor), as a byte index into Content.
type CodeBuffer struct {
	Content string
	Dot     int
}

// Action is what the editor should do with a Result.
type Action int

// Possible values of Action.
const (
	// NoCompletion means there are no candidates, or nothing to insert.
	NoCompletion Action = iota
	// Insert means Result.Insert should be inserted at the dot.
	Insert
	// List means Result.Items should be shown to the user.
	List
)

// Result keeps the result of the completion algorithm.
type Result struct {
	Action Action
	// The token being completed.
	Seed string
	// Text to insert at the dot, when Action is Insert.
	Insert string
	// All candidates, when Action is List.
	Items []string
}

// SeedStart returns the start of the token that ends at the dot: the maximal
// run of non-whitespace bytes before it.
func SeedStart(code CodeBuffer) int {
	start := code.Dot
	for start > 0 && !isSpace(code.Content[start-1]) {
		start--
	}
	return start
}

func isSpace(b byte) bool {
	return b < 0x80 && unicode.IsSpace(rune(b))
}

// CommonPrefix returns the longest common prefix of all items, comparing byte
// by byte.
func CommonPrefix(items []string) string {
	if len(items) == 0 {
		return ""
	}
	prefix := items[0]
	for _, item := range items[1:] {
		i := 0
		for i < len(prefix) && i < len(item) && prefix[i] == item[i] {
			i++
		}
		prefix = prefix[:i]
	}
	return prefix
}

// FilterPrefix returns the items that start with seed, keeping their order.
func FilterPrefix(seed string, items []string) []string {
	var filtered []string
	for _, item := range items {
		if strings.HasPrefix(item, seed) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Complete runs the completer on code and decides what to do with the
// candidates:
//
//   - No candidates: NoCompletion.
//   - One candidate extending the seed, or several whose common prefix is
//     longer than the seed: Insert the missing suffix.
//   - Several candidates that can't extend the seed: List them.
//
// Candidates are cut at their first control character, so completion only
// inserts what could have been typed. A completer may be nil.
func Complete(code CodeBuffer, completer Completer) Result {
	if completer == nil {
		return Result{}
	}
	seed := code.Content[SeedStart(code):code.Dot]
	var items []string
	for _, item := range completer(code.Content, code.Dot) {
		items = append(items, printablePrefix(item))
	}
	switch len(items) {
	case 0:
		return Result{Seed: seed}
	case 1:
		if strings.HasPrefix(items[0], seed) && len(items[0]) > len(seed) {
			return Result{Action: Insert, Seed: seed, Insert: items[0][len(seed):]}
		}
		// The only candidate is the seed itself, or doesn't match it.
		return Result{Seed: seed}
	}
	prefix := CommonPrefix(items)
	if strings.HasPrefix(prefix, seed) && len(prefix) > len(seed) {
		return Result{Action: Insert, Seed: seed, Insert: prefix[len(seed):]}
	}
	return Result{Action: List, Seed: seed, Items: items}
}

func printablePrefix(s string) string {
	for i := 0; i < len(s); i++ {
		if !term.IsPrintable(s[i]) {
			return s[:i]
		}
	}
	return s
}
