package document

import "strings"

// IndentUnit is the indentation size policy: 4 columns per unit.
const IndentUnit = 4

// maxHeaderLevel caps SetHeader at the Markdown ceiling.
const maxHeaderLevel = 6

// Insert inserts r at p. A '\n' splits the line instead of inserting a
// literal character. Row == LineCount appends a fresh row; rows beyond
// that are a silent no-op, and the column is clamped into the line.
func (d *Document) Insert(p Pos, r rune) {
	if p.Row < 0 || p.Row > len(d.lines) {
		return
	}

	if r == '\n' {
		d.insertNewline(p)
		return
	}

	if p.Row == len(d.lines) {
		d.lines = append(d.lines, []rune{r})
		d.markEdit()
		return
	}

	col := clampInt(p.Col, 0, d.LineLen(p.Row))
	line := d.lines[p.Row]
	next := make([]rune, 0, len(line)+1)
	next = append(next, line[:col]...)
	next = append(next, r)
	next = append(next, line[col:]...)
	d.lines[p.Row] = next
	d.markEdit()
}

func (d *Document) insertNewline(p Pos) {
	if p.Row == len(d.lines) {
		d.lines = append(d.lines, nil)
		d.markEdit()
		return
	}

	col := clampInt(p.Col, 0, d.LineLen(p.Row))
	line := d.lines[p.Row]
	left := append([]rune(nil), line[:col]...)
	right := append([]rune(nil), line[col:]...)

	out := make([][]rune, 0, len(d.lines)+1)
	out = append(out, d.lines[:p.Row]...)
	out = append(out, left, right)
	out = append(out, d.lines[p.Row+1:]...)
	d.lines = out
	d.markEdit()
}

// InsertString inserts s rune by rune starting at p, splitting lines on
// embedded newlines. Used by markup insertion and paste.
func (d *Document) InsertString(p Pos, s string) {
	if s == "" || p.Row < 0 || p.Row > len(d.lines) {
		return
	}

	at := p
	for _, r := range s {
		d.Insert(at, r)
		if r == '\n' {
			at = Pos{Row: at.Row + 1, Col: 0}
			continue
		}
		at.Col = clampInt(at.Col, 0, d.LineLen(at.Row)) + 1
	}
}

// Delete removes the character at p. At the end of a line with a following
// line, the two lines merge (a trailing CR on the first line goes with the
// terminator). At the true end of the document it is a no-op.
func (d *Document) Delete(p Pos) {
	if p.Row < 0 || p.Row >= len(d.lines) {
		return
	}

	ll := d.LineLen(p.Row)
	col := clampInt(p.Col, 0, ll)

	if col < ll {
		line := d.lines[p.Row]
		next := append([]rune(nil), line[:col]...)
		next = append(next, line[col+1:]...)
		d.lines[p.Row] = next
		d.markEdit()
		return
	}

	if p.Row >= len(d.lines)-1 {
		return
	}

	merged := append([]rune(nil), d.lines[p.Row][:ll]...)
	merged = append(merged, d.lines[p.Row+1]...)
	out := make([][]rune, 0, len(d.lines)-1)
	out = append(out, d.lines[:p.Row]...)
	out = append(out, merged)
	out = append(out, d.lines[p.Row+2:]...)
	d.lines = out
	d.markEdit()
}

// DeleteLine removes an entire row. Removing the only line leaves one empty
// line, keeping the document non-empty.
func (d *Document) DeleteLine(row int) {
	if row < 0 || row >= len(d.lines) {
		return
	}

	if len(d.lines) == 1 {
		if len(d.lines[0]) == 0 {
			return
		}
		d.lines[0] = nil
		d.markEdit()
		return
	}

	out := make([][]rune, 0, len(d.lines)-1)
	out = append(out, d.lines[:row]...)
	out = append(out, d.lines[row+1:]...)
	d.lines = out
	d.markEdit()
}

// ReplaceAll substitutes every occurrence of target in the whole document
// and returns the occurrence count. Implemented as a full-content rebuild;
// O(document size) is accepted for interactive sizes.
func (d *Document) ReplaceAll(target, replacement string) int {
	if target == "" {
		return 0
	}

	text := d.Text()
	count := strings.Count(text, target)
	if count == 0 {
		return 0
	}

	d.lines = splitLines(strings.ReplaceAll(text, target, replacement))
	d.markEdit()
	return count
}

// SetHeader strips any leading run of '#' markers and following whitespace
// from row, then reinserts level markers plus one space. Level <= 0 strips
// only; level is capped at 6.
func (d *Document) SetHeader(row, level int) {
	if row < 0 || row >= len(d.lines) {
		return
	}
	if level > maxHeaderLevel {
		level = maxHeaderLevel
	}

	line := []rune(d.LineContent(row))
	i := 0
	for i < len(line) && line[i] == '#' {
		i++
	}
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}

	next := make([]rune, 0, level+1+len(line)-i)
	if level > 0 {
		for j := 0; j < level; j++ {
			next = append(next, '#')
		}
		next = append(next, ' ')
	}
	next = append(next, line[i:]...)

	raw := d.lines[row]
	if n := len(raw); n > 0 && raw[n-1] == '\r' {
		next = append(next, '\r')
	}
	if string(next) == string(raw) {
		return
	}
	d.lines[row] = next
	d.markEdit()
}

// Indent inserts count indentation units (4 spaces each) at line start.
func (d *Document) Indent(row, count int) {
	if row < 0 || row >= len(d.lines) || count <= 0 {
		return
	}

	pad := make([]rune, count*IndentUnit, count*IndentUnit+len(d.lines[row]))
	for i := range pad {
		pad[i] = ' '
	}
	d.lines[row] = append(pad, d.lines[row]...)
	d.markEdit()
}
