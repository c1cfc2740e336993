package document

import "strings"

type Options struct {
	HistoryLimit int // default: 1000
}

// Document is the in-memory document state: lines, filename, dirty flag,
// and the undo/redo snapshot stacks.
//
// Lines are stored raw, split strictly on '\n'. A trailing '\r' stays with
// its line so CRLF content survives a save/load round trip, but it is
// invisible to LineLen, LineContent, and every cursor-facing operation.
type Document struct {
	lines   [][]rune
	version uint64

	filename string
	dirty    bool

	opt  Options
	hist historyState
}

func New(text string, opt Options) *Document {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Document{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (d *Document) Text() string {
	var sb strings.Builder
	for i, line := range d.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

func (d *Document) Version() uint64 { return d.version }

func (d *Document) LineCount() int { return len(d.lines) }

// LineLen returns the rune length of row excluding the trailing terminator
// sequence: a trailing '\r' does not count, so mixed line endings keep
// column arithmetic stable.
func (d *Document) LineLen(row int) int {
	if row < 0 || row >= len(d.lines) {
		return 0
	}
	line := d.lines[row]
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return n - 1
	}
	return len(line)
}

// LineContent returns row's text without the trailing terminator sequence.
func (d *Document) LineContent(row int) string {
	if row < 0 || row >= len(d.lines) {
		return ""
	}
	return string(d.lines[row][:d.LineLen(row)])
}

func (d *Document) IsDirty() bool { return d.dirty }

func (d *Document) Filename() string { return d.filename }

// ClampToLine bounds p to valid document coordinates. Row may equal
// LineCount (end-of-document sentinel).
func (d *Document) ClampToLine(p Pos) Pos {
	return ClampPos(p, len(d.lines), d.LineLen)
}

func (d *Document) markEdit() {
	d.dirty = true
	d.version++
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
