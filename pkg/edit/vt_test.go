package edit

import (
	"strings"
)

// vt is a minimal model of a terminal: it understands printable bytes, "\b",
// "\r", and "\n" (with the usual output translation to "\r\n").
type vt struct {
	lines    [][]byte
	row, col int
}

func (v *vt) Write(p []byte) (int, error) {
	for _, b := range p {
		switch b {
		case '\b':
			if v.col > 0 {
				v.col--
			}
		case '\r':
			v.col = 0
		case '\n':
			v.row++
			v.col = 0
		default:
			v.put(b)
		}
	}
	return len(p), nil
}

func (v *vt) put(b byte) {
	for len(v.lines) <= v.row {
		v.lines = append(v.lines, nil)
	}
	line := v.lines[v.row]
	for len(line) <= v.col {
		line = append(line, ' ')
	}
	line[v.col] = b
	v.lines[v.row] = line
	v.col++
}

// line returns the visible content of a row, without trailing spaces.
func (v *vt) line(row int) string {
	if row >= len(v.lines) {
		return ""
	}
	return strings.TrimRight(string(v.lines[row]), " ")
}

// screen returns the visible content of all rows.
func (v *vt) screen() []string {
	var lines []string
	for i := 0; i <= v.row || i < len(v.lines); i++ {
		lines = append(lines, v.line(i))
	}
	return lines
}
