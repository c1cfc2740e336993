package document

type historyState struct {
	undo []string
	redo []string
}

// Snapshot pushes the current content onto the undo stack and clears the
// redo stack. Callers decide batching granularity: the document never
// coalesces snapshots on its own.
func (d *Document) Snapshot() {
	limit := d.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	d.hist.undo = append(d.hist.undo, d.Text())
	if len(d.hist.undo) > limit {
		d.hist.undo = d.hist.undo[len(d.hist.undo)-limit:]
	}
	d.hist.redo = nil
}

func (d *Document) CanUndo() bool { return len(d.hist.undo) > 0 }

func (d *Document) CanRedo() bool { return len(d.hist.redo) > 0 }

// Undo restores the most recent undo snapshot, moving the current content
// onto the redo stack. Returns false (and mutates nothing) when the undo
// stack is empty.
func (d *Document) Undo() bool {
	if len(d.hist.undo) == 0 {
		return false
	}

	i := len(d.hist.undo) - 1
	prev := d.hist.undo[i]
	d.hist.undo = d.hist.undo[:i]
	d.hist.redo = append(d.hist.redo, d.Text())

	d.restoreText(prev)
	return true
}

// Redo is the symmetric inverse of Undo.
func (d *Document) Redo() bool {
	if len(d.hist.redo) == 0 {
		return false
	}

	i := len(d.hist.redo) - 1
	next := d.hist.redo[i]
	d.hist.redo = d.hist.redo[:i]

	limit := d.opt.HistoryLimit
	if limit > 0 {
		d.hist.undo = append(d.hist.undo, d.Text())
		if len(d.hist.undo) > limit {
			d.hist.undo = d.hist.undo[len(d.hist.undo)-limit:]
		}
	}

	d.restoreText(next)
	return true
}

func (d *Document) restoreText(text string) {
	d.lines = splitLines(text)
	d.dirty = true
	d.version++
}
