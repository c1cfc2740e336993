package document

import (
	"strings"
	"unicode/utf8"
)

// FindNext scans for the next occurrence of query at or after from. On the
// starting row only matches with column strictly greater than from.Col
// qualify; after the last row the scan wraps to row 0 and gives up once it
// returns to the starting row. Columns are rune indices.
func (d *Document) FindNext(query string, from Pos) (Pos, bool) {
	if query == "" || len(d.lines) == 0 {
		return Pos{}, false
	}

	start := clampInt(from.Row, 0, len(d.lines)-1)

	// Matches must sort strictly after this barrier. Rows below the start
	// qualify wholesale; once the scan wraps, everything does.
	barrier := Pos{Row: start, Col: from.Col}
	if from.Row != start {
		barrier.Col = -1
	}

	row := start
	for {
		if p, ok := findInRowAfter(d.LineContent(row), query, row, barrier); ok {
			return p, true
		}

		row++
		if row >= len(d.lines) {
			row = 0
			barrier = Pos{Row: -1, Col: -1}
		}
		if row == start {
			return Pos{}, false
		}
	}
}

// findInRowAfter returns the position of the first occurrence of query in
// line sorting strictly after barrier. Columns are rune indices.
func findInRowAfter(line, query string, row int, barrier Pos) (Pos, bool) {
	from := 0
	for from <= len(line) {
		idx := strings.Index(line[from:], query)
		if idx < 0 {
			return Pos{}, false
		}
		byteIdx := from + idx
		col := utf8.RuneCountInString(line[:byteIdx])
		if p := (Pos{Row: row, Col: col}); ComparePos(p, barrier) > 0 {
			return p, true
		}
		_, size := utf8.DecodeRuneInString(line[byteIdx:])
		if size == 0 {
			return Pos{}, false
		}
		from = byteIdx + size
	}
	return Pos{}, false
}
