package document

// ContentLen returns the logical content length in runes, counting one
// terminator after every line (the persistence format always emits a
// trailing terminator).
func (d *Document) ContentLen() int {
	total := 0
	for row := 0; row < len(d.lines); row++ {
		total += d.LineLen(row) + 1
	}
	return total
}

// OffsetForPos converts p to a linear rune offset: the (length+1) sum of
// all lines before p.Row, plus p.Col. Row == LineCount is the
// end-of-document sentinel and maps to ContentLen. p is clamped first.
func (d *Document) OffsetForPos(p Pos) int {
	p = d.ClampToLine(p)

	off := 0
	for row := 0; row < p.Row; row++ {
		off += d.LineLen(row) + 1
	}
	return off + p.Col
}

// PosForOffset is the inverse of OffsetForPos, clamping out-of-range
// offsets into [0, ContentLen].
func (d *Document) PosForOffset(off int) Pos {
	if off < 0 {
		off = 0
	}

	for row := 0; row < len(d.lines); row++ {
		ll := d.LineLen(row)
		if off <= ll {
			return Pos{Row: row, Col: off}
		}
		off -= ll + 1
	}
	return Pos{Row: len(d.lines), Col: 0}
}
