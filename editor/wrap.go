package editor

// WrapPrefix is the visual-only marker drawn at the start of every
// continuation fragment. It is never part of the document.
const WrapPrefix = "↪ "

// WrapPrefixLen is the fixed cell width of WrapPrefix.
const WrapPrefixLen = 2

// Fragment is a contiguous rune slice [Start, End) of one logical row
// assigned to one visual row. Rows at or past the end of the document
// produce empty placeholder fragments.
type Fragment struct {
	Row          int
	Start        int
	End          int
	Continuation bool
}

// continuationBudget is the content width left to continuation fragments
// once the wrap marker has taken its cells.
func continuationBudget(wrapWidth int) int {
	b := wrapWidth - WrapPrefixLen
	if b < 1 {
		b = 1
	}
	return b
}

// FragmentCount returns the number of visual rows a logical row of length
// lineLen occupies at wrapWidth: one full-width fragment plus however many
// continuation budgets the overflow needs.
func FragmentCount(lineLen, wrapWidth int) int {
	if wrapWidth < 1 {
		return 1
	}
	over := lineLen - wrapWidth
	if over <= 0 {
		return 1
	}
	b := continuationBudget(wrapWidth)
	return 1 + (over+b-1)/b
}

// FragmentsForRow slices a logical row of length lineLen into its visual
// fragments. The fragments cover [0, lineLen) exactly, with no overlap.
func FragmentsForRow(row, lineLen, wrapWidth int) []Fragment {
	if wrapWidth < 1 {
		return []Fragment{{Row: row, Start: 0, End: lineLen}}
	}

	first := lineLen
	if first > wrapWidth {
		first = wrapWidth
	}
	out := make([]Fragment, 0, FragmentCount(lineLen, wrapWidth))
	out = append(out, Fragment{Row: row, Start: 0, End: first})

	b := continuationBudget(wrapWidth)
	for start := first; start < lineLen; start += b {
		end := start + b
		if end > lineLen {
			end = lineLen
		}
		out = append(out, Fragment{Row: row, Start: start, End: end, Continuation: true})
	}
	return out
}

// FragmentIndexForCol locates col within its fragment by integer division:
// first against the full-width budget, then against the continuation
// budget. rel is the column relative to the fragment's content start.
func FragmentIndexForCol(col, wrapWidth int) (idx, rel int) {
	if col < 0 {
		col = 0
	}
	if wrapWidth < 1 || col < wrapWidth {
		return 0, col
	}
	b := continuationBudget(wrapWidth)
	return 1 + (col-wrapWidth)/b, (col - wrapWidth) % b
}
