package editor

import "github.com/vellumtext/vellum/document"

// Viewport is the camera over the document: the topmost visible logical
// row plus the visible height in terminal rows.
type Viewport struct {
	Top    int
	Height int
}

// Follow scrolls the minimum amount needed to reveal pos. Scrolling works
// on logical rows and deliberately ignores how many visual rows a wrapped
// line occupies.
func (v *Viewport) Follow(pos document.Pos) {
	if v.Height <= 0 {
		return
	}
	if pos.Row < v.Top {
		v.Top = pos.Row
	}
	if pos.Row >= v.Top+v.Height {
		v.Top = pos.Row - v.Height + 1
	}
	if v.Top < 0 {
		v.Top = 0
	}
}

// VisibleRows produces exactly height fragments starting at the first
// fragment of row top. Once the document runs out, the tail is padded with
// empty placeholder fragments so callers always paint a full screen.
func VisibleRows(doc *document.Document, top, height, wrapWidth int) []Fragment {
	if height <= 0 {
		return nil
	}
	if top < 0 {
		top = 0
	}

	out := make([]Fragment, 0, height)
	row := top
	for len(out) < height && row < doc.LineCount() {
		for _, f := range FragmentsForRow(row, doc.LineLen(row), wrapWidth) {
			out = append(out, f)
			if len(out) == height {
				break
			}
		}
		row++
	}
	for len(out) < height {
		out = append(out, Fragment{Row: row})
		row++
	}
	return out
}

// CursorProjection is a cursor position in visual cells relative to the
// viewport top, before any gutter offset.
type CursorProjection struct {
	VisualRow int
	VisualCol int
}

// ProjectCursor maps a document position to visual coordinates relative to
// top. The visual row sums the fragment counts of every row above the
// cursor, then adds the fragment index of the cursor column. Continuation
// fragments shift the visual column right by the wrap marker width.
func ProjectCursor(doc *document.Document, pos document.Pos, top, wrapWidth int) CursorProjection {
	pos = doc.ClampToLine(pos)
	if top < 0 {
		top = 0
	}

	visualRow := 0
	for row := top; row < pos.Row; row++ {
		visualRow += FragmentCount(doc.LineLen(row), wrapWidth)
	}

	idx, rel := FragmentIndexForCol(pos.Col, wrapWidth)
	col := rel
	if idx > 0 {
		col += WrapPrefixLen
	}
	return CursorProjection{VisualRow: visualRow + idx, VisualCol: col}
}
