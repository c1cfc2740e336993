package editor

import "strings"

// render paints the visible fragments into a newline-joined screen of
// exactly viewport-height rows.
func (m Model) render() string {
	height := m.view.Height
	if height <= 0 {
		return ""
	}

	st := m.cfg.Style
	wrapWidth := m.wrapWidth()
	lineCount := m.doc.LineCount()
	digits := gutterDigits(lineCount)
	frags := VisibleRows(m.doc, m.view.Top, height, wrapWidth)

	kindCache := make(map[int][]HighlightKind)
	rows := make([]string, 0, len(frags))
	for _, f := range frags {
		var sb strings.Builder

		if f.Row >= lineCount {
			if m.cfg.ShowLineNums {
				sb.WriteString(st.LineNum.Render(gutterCell(f, lineCount, digits)))
			} else {
				sb.WriteString(st.EmptyRow.Render("~"))
			}
			rows = append(rows, sb.String())
			continue
		}

		if m.cfg.ShowLineNums {
			numStyle := st.LineNum
			if m.focused && f.Row == m.cursor.Row && !f.Continuation {
				numStyle = st.LineNumActive
			}
			sb.WriteString(numStyle.Render(gutterCell(f, lineCount, digits)))
		}
		if f.Continuation {
			sb.WriteString(st.WrapMarker.Render(WrapPrefix))
		}

		kinds, ok := kindCache[f.Row]
		if !ok {
			kinds = HighlightLine(m.doc.LineContent(f.Row))
			kindCache[f.Row] = kinds
		}
		sb.WriteString(m.renderFragment(f, kinds))
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

// renderFragment paints one fragment's runes, grouping consecutive runes
// of the same highlight kind into a single styled chunk and overlaying the
// cursor cell when it lands in this fragment.
func (m Model) renderFragment(f Fragment, kinds []HighlightKind) string {
	st := m.cfg.Style
	line := []rune(m.doc.LineContent(f.Row))
	end := f.End
	if end > len(line) {
		end = len(line)
	}

	cursorIdx := -1
	if m.focused && f.Row == m.cursor.Row {
		if m.cursor.Col >= f.Start && m.cursor.Col < end {
			cursorIdx = m.cursor.Col
		}
	}

	var sb strings.Builder
	flush := func(start, stop int, kind HighlightKind) {
		if stop > start {
			sb.WriteString(st.forKind(kind).Render(string(line[start:stop])))
		}
	}

	runStart := f.Start
	for i := f.Start; i < end; i++ {
		if i == cursorIdx {
			flush(runStart, i, kinds[runStart])
			sb.WriteString(st.Cursor.Render(string(line[i])))
			runStart = i + 1
			continue
		}
		if i > runStart && kinds[i] != kinds[runStart] {
			flush(runStart, i, kinds[runStart])
			runStart = i
		}
	}
	flush(runStart, end, pickKind(kinds, runStart))

	// Cursor resting at the end of the line gets a phantom cell on the
	// line's last fragment.
	if m.focused && f.Row == m.cursor.Row && m.cursor.Col == end && end == len(line) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func pickKind(kinds []HighlightKind, i int) HighlightKind {
	if i < len(kinds) {
		return kinds[i]
	}
	return HighlightNone
}
