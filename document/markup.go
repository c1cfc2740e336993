package document

// WrapSelection surrounds the word under p with marker on p.Row only: word
// start is the column after the nearest preceding space (or line start),
// word end the column of the nearest following space (or line end). The end
// marker is inserted first so the start insertion cannot shift its index.
// Returns the cursor position just past the wrapped word.
func (d *Document) WrapSelection(p Pos, marker string) Pos {
	if marker == "" || p.Row < 0 || p.Row >= len(d.lines) {
		return p
	}

	line := []rune(d.LineContent(p.Row))
	col := clampInt(p.Col, 0, len(line))

	start := 0
	for i := col - 1; i >= 0; i-- {
		if line[i] == ' ' {
			start = i + 1
			break
		}
	}

	end := len(line)
	for i := col; i < len(line); i++ {
		if line[i] == ' ' {
			end = i
			break
		}
	}

	d.InsertString(Pos{Row: p.Row, Col: end}, marker)
	d.InsertString(Pos{Row: p.Row, Col: start}, marker)

	return Pos{Row: p.Row, Col: end + 2*len([]rune(marker))}
}
