package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vellumtext/vellum/document"
	"github.com/vellumtext/vellum/internal/logging"
)

// execute runs one command line entered at the prompt. Mutating commands
// push a single history snapshot so one command undoes in one step.
func (a *app) execute(input string) (tea.Model, tea.Cmd) {
	if input == "" {
		return a, nil
	}
	logging.Debug("command", "input", input)

	doc := a.ed.Doc()
	cursor := a.ed.Cursor()

	name, arg := splitCommand(input)
	switch name {
	case "q":
		if doc.IsDirty() {
			a.setMessage("unsaved changes (use q! to discard, w to save)")
			return a, nil
		}
		return a, tea.Quit

	case "q!":
		return a, tea.Quit

	case "w":
		a.saveCurrent()

	case "!w":
		if arg == "" {
			a.setMessage("usage: !w NAME")
			return a, nil
		}
		if err := doc.SaveAs(arg); err != nil {
			logging.Error("save failed", "file", arg, "error", err)
			a.setMessage(fmt.Sprintf("save failed: %v", err))
			return a, nil
		}
		a.setMessage(fmt.Sprintf("saved %s", arg))

	case "head":
		level, err := strconv.Atoi(arg)
		if err != nil {
			a.setMessage("usage: head N")
			return a, nil
		}
		doc.Snapshot()
		doc.SetHeader(cursor.Row, level)
		a.ed = a.ed.SetCursor(doc.ClampToLine(cursor))

	case "bold":
		a.wrapWord("**")

	case "italic":
		a.wrapWord("*")

	case "t":
		count, err := strconv.Atoi(arg)
		if err != nil || count < 0 {
			a.setMessage("usage: t N")
			return a, nil
		}
		doc.Snapshot()
		doc.Indent(cursor.Row, count)
		a.ed = a.ed.SetCursor(document.Pos{Row: cursor.Row, Col: cursor.Col + count*document.IndentUnit})

	case "find":
		if arg == "" {
			a.setMessage("usage: find QUERY")
			return a, nil
		}
		pos, found := doc.FindNext(arg, cursor)
		if !found {
			a.setMessage(fmt.Sprintf("not found: %s", arg))
			return a, nil
		}
		a.ed = a.ed.SetCursor(pos)

	case "ln":
		show := !a.ed.LineNumsShown()
		a.ed = a.ed.ShowLineNums(show)
		if show {
			a.setMessage("line numbers on")
		} else {
			a.setMessage("line numbers off")
		}

	default:
		if strings.HasPrefix(input, "s/") {
			return a.replaceAll(strings.TrimPrefix(input, "s/"))
		}
		a.setMessage(fmt.Sprintf("unknown command: %s", name))
	}
	return a, nil
}

func (a *app) replaceAll(expr string) (tea.Model, tea.Cmd) {
	parts := strings.SplitN(expr, "/", 2)
	if len(parts) != 2 || parts[0] == "" {
		a.setMessage("usage: s/old/new")
		return a, nil
	}

	doc := a.ed.Doc()
	cursor := a.ed.Cursor()
	doc.Snapshot()
	n := doc.ReplaceAll(parts[0], parts[1])
	a.ed = a.ed.SetCursor(doc.ClampToLine(cursor))
	a.setMessage(fmt.Sprintf("%d replaced", n))
	return a, nil
}

// wrapWord wraps the word under the cursor with marker and moves the
// cursor past the closing marker.
func (a *app) wrapWord(marker string) {
	doc := a.ed.Doc()
	doc.Snapshot()
	pos := doc.WrapSelection(a.ed.Cursor(), marker)
	a.ed = a.ed.SetCursor(pos)
}

// splitCommand separates the command word from its argument, keeping
// interior spaces of the argument intact for searches.
func splitCommand(input string) (name, arg string) {
	name, arg, _ = strings.Cut(input, " ")
	return name, strings.TrimSpace(arg)
}
