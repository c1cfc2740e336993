package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vellumtext/vellum/document"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.moveLeft()
	case key.Matches(msg, km.Right):
		m.moveRight()
	case key.Matches(msg, km.Up):
		m.moveVertical(-1)
	case key.Matches(msg, km.Down):
		m.moveVertical(1)
	case key.Matches(msg, km.Home):
		m.cursor.Col = 0
	case key.Matches(msg, km.End):
		m.cursor.Col = m.doc.LineLen(m.cursor.Row)
	case key.Matches(msg, km.PageUp):
		m.moveVertical(-m.pageStride())
	case key.Matches(msg, km.PageDown):
		m.moveVertical(m.pageStride())
	case key.Matches(msg, km.Backspace):
		m.backspace()
	case key.Matches(msg, km.Delete):
		m.deleteForward()
	case key.Matches(msg, km.Enter):
		m.insertText("\n")
	case key.Matches(msg, km.Tab):
		m.insertText(strings.Repeat(" ", document.IndentUnit))
	case key.Matches(msg, km.Undo):
		if m.doc.Undo() {
			m.cursor = m.doc.ClampToLine(m.cursor)
		}
	case key.Matches(msg, km.Redo):
		if m.doc.Redo() {
			m.cursor = m.doc.ClampToLine(m.cursor)
		}
	case key.Matches(msg, km.CutLine):
		m.cutLine()
	case key.Matches(msg, km.Paste):
		m.paste()
	default:
		if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0 {
			m.insertText(string(msg.Runes))
		} else if msg.Type == tea.KeySpace {
			m.insertText(" ")
		}
	}

	m.view.Follow(m.cursor)
	return m, nil
}

func (m *Model) moveLeft() {
	if m.cursor.Col > 0 {
		m.cursor.Col--
		return
	}
	if m.cursor.Row > 0 {
		m.cursor.Row--
		m.cursor.Col = m.doc.LineLen(m.cursor.Row)
	}
}

func (m *Model) moveRight() {
	if m.cursor.Col < m.doc.LineLen(m.cursor.Row) {
		m.cursor.Col++
		return
	}
	if m.cursor.Row < m.doc.LineCount()-1 {
		m.cursor.Row++
		m.cursor.Col = 0
	}
}

// moveVertical keeps the cursor column where possible, snapping to the
// target line's end when it is shorter.
func (m *Model) moveVertical(delta int) {
	row := m.cursor.Row + delta
	if row < 0 {
		row = 0
	}
	if max := m.doc.LineCount() - 1; row > max {
		row = max
	}
	m.cursor.Row = row
	if ll := m.doc.LineLen(row); m.cursor.Col > ll {
		m.cursor.Col = ll
	}
}

func (m *Model) pageStride() int {
	if m.view.Height > 1 {
		return m.view.Height
	}
	return 1
}

// insertText snapshots once, inserts, and advances the cursor past the
// inserted text.
func (m *Model) insertText(s string) {
	if s == "" {
		return
	}
	m.cursor = m.doc.ClampToLine(m.cursor)
	m.doc.Snapshot()
	m.doc.InsertString(m.cursor, s)
	m.cursor = advancePos(m.cursor, s)
}

func advancePos(p document.Pos, s string) document.Pos {
	for _, r := range s {
		if r == '\n' {
			p.Row++
			p.Col = 0
		} else {
			p.Col++
		}
	}
	return p
}

func (m *Model) backspace() {
	switch {
	case m.cursor.Col > 0:
		m.doc.Snapshot()
		m.cursor.Col--
		m.doc.Delete(m.cursor)
	case m.cursor.Row > 0:
		m.doc.Snapshot()
		m.cursor.Row--
		m.cursor.Col = m.doc.LineLen(m.cursor.Row)
		m.doc.Delete(m.cursor)
	}
}

func (m *Model) deleteForward() {
	lastRow := m.doc.LineCount() - 1
	if m.cursor.Row >= lastRow && m.cursor.Col >= m.doc.LineLen(lastRow) {
		return
	}
	m.doc.Snapshot()
	m.doc.Delete(m.cursor)
}

func (m *Model) cutLine() {
	line := m.doc.LineContent(m.cursor.Row)
	if err := m.cfg.Clipboard.WriteText(line + "\n"); err != nil {
		return
	}
	m.doc.Snapshot()
	m.doc.DeleteLine(m.cursor.Row)
	if max := m.doc.LineCount() - 1; m.cursor.Row > max {
		m.cursor.Row = max
	}
	if ll := m.doc.LineLen(m.cursor.Row); m.cursor.Col > ll {
		m.cursor.Col = ll
	}
}

func (m *Model) paste() {
	text, err := m.cfg.Clipboard.ReadText()
	if err != nil || text == "" {
		return
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	m.insertText(text)
}
