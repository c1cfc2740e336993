package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/vellumtext/vellum/document"
	"github.com/vellumtext/vellum/editor"
	"github.com/vellumtext/vellum/internal/clip"
	"github.com/vellumtext/vellum/internal/config"
	"github.com/vellumtext/vellum/internal/grapheme"
	"github.com/vellumtext/vellum/internal/logging"
)

// messageTTL is how long a status message stays on screen.
const messageTTL = 5 * time.Second

// chromeRows is the screen space reserved below the editor: one row for
// the status bar and one for the message or command line.
const chromeRows = 2

type appMode int

const (
	modeEdit appMode = iota
	modeCommand
	modeHelp
)

type appStyles struct {
	status  lipgloss.Style
	message lipgloss.Style
	help    lipgloss.Style
}

func stylesForTheme(theme string) appStyles {
	status := lipgloss.NewStyle().Reverse(true)
	if theme == "plain" {
		status = lipgloss.NewStyle()
	}
	return appStyles{
		status:  status,
		message: lipgloss.NewStyle().Bold(true),
		help: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2),
	}
}

type app struct {
	cfg *config.Config
	ed  editor.Model

	mode    appMode
	cmdline textinput.Model

	message   string
	messageAt time.Time

	width  int
	height int
	styles appStyles
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func newApp(cfg *config.Config, filename string) (*app, error) {
	doc, err := document.Open(filename, document.Options{HistoryLimit: cfg.Editor.HistoryLimit})
	if err != nil {
		return nil, err
	}

	edCfg := editor.Config{
		ShowLineNums: cfg.UI.LineNumbers,
		Style:        styleForTheme(cfg.UI.Theme),
		HistoryLimit: cfg.Editor.HistoryLimit,
	}
	if sys, err := clip.New(); err == nil {
		edCfg.Clipboard = sys
	} else {
		logging.Warn("system clipboard unavailable, using in-process fallback")
	}

	cmdline := textinput.New()
	cmdline.Prompt = ":"
	cmdline.CharLimit = 256

	return &app{
		cfg:     cfg,
		ed:      editor.NewWithDocument(edCfg, doc),
		cmdline: cmdline,
		styles:  stylesForTheme(cfg.UI.Theme),
	}, nil
}

func styleForTheme(theme string) editor.Style {
	if theme == "plain" {
		return editor.Style{}
	}
	return editor.DefaultStyle()
}

func (a *app) Init() tea.Cmd {
	return tick()
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		edHeight := msg.Height - chromeRows
		if edHeight < 1 {
			edHeight = 1
		}
		a.ed = a.ed.SetSize(msg.Width, edHeight)
		return a, nil

	case tickMsg:
		// Wakes the render loop so expired messages disappear.
		return a, tick()

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	var cmd tea.Cmd
	a.ed, cmd = a.ed.Update(msg)
	return a, cmd
}

func (a *app) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.mode {
	case modeHelp:
		a.mode = modeEdit
		a.ed = a.ed.Focus()
		return a, nil

	case modeCommand:
		switch msg.Type {
		case tea.KeyEsc:
			a.closeCommandBar()
			return a, nil
		case tea.KeyEnter:
			input := strings.TrimSpace(a.cmdline.Value())
			a.closeCommandBar()
			return a.execute(input)
		}
		var cmd tea.Cmd
		a.cmdline, cmd = a.cmdline.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "esc":
		a.mode = modeCommand
		a.ed = a.ed.Blur()
		a.cmdline.SetValue("")
		a.cmdline.Focus()
		return a, textinput.Blink
	case "ctrl+g":
		a.mode = modeHelp
		a.ed = a.ed.Blur()
		return a, nil
	case "ctrl+q", "ctrl+c":
		if a.ed.Doc().IsDirty() {
			a.setMessage("unsaved changes (use q! to discard, w to save)")
			return a, nil
		}
		return a, tea.Quit
	case "ctrl+s":
		a.saveCurrent()
		return a, nil
	}

	var cmd tea.Cmd
	a.ed, cmd = a.ed.Update(msg)
	return a, cmd
}

func (a *app) closeCommandBar() {
	a.mode = modeEdit
	a.cmdline.Blur()
	a.ed = a.ed.Focus()
}

func (a *app) setMessage(text string) {
	a.message = text
	a.messageAt = time.Now()
}

func (a *app) saveCurrent() {
	doc := a.ed.Doc()
	if err := doc.Save(); err != nil {
		logging.Error("save failed", "error", err)
		a.setMessage(saveErrorMessage(err))
		return
	}
	logging.Info("saved", "file", doc.Filename(), "lines", doc.LineCount())
	a.setMessage(fmt.Sprintf("saved %s", doc.Filename()))
}

func saveErrorMessage(err error) string {
	if err == document.ErrNoFilename {
		return "no file name (use !w NAME)"
	}
	return fmt.Sprintf("save failed: %v", err)
}

func (a *app) View() string {
	base := a.ed.View() + "\n" + a.statusBar() + "\n" + a.bottomBar()
	if a.mode != modeHelp {
		return base
	}

	help := a.styles.help.Render(helpText())
	return overlay.Composite(help, base, overlay.Center, overlay.Center, 0, 0)
}

// statusBar mirrors the classic layout: file name and line count on the
// left, cursor position on the right.
func (a *app) statusBar() string {
	doc := a.ed.Doc()

	name := doc.Filename()
	if name == "" {
		name = "[No Name]"
	}
	name = grapheme.Truncate(name, a.width/2)
	left := fmt.Sprintf("%s - %d lines", name, doc.LineCount())
	if doc.IsDirty() {
		left += " (modified)"
	}
	right := fmt.Sprintf("%d/%d", a.ed.Cursor().Row+1, doc.LineCount())

	avail := a.width - grapheme.Width(right)
	if min := grapheme.Width(left) + 1; avail < min {
		avail = min
	}
	return a.styles.status.Render(grapheme.PadRight(left, avail) + right)
}

func (a *app) bottomBar() string {
	if a.mode == modeCommand {
		return a.cmdline.View()
	}
	if a.message != "" && time.Since(a.messageAt) < messageTTL {
		return a.styles.message.Render(a.message)
	}
	return "esc: command  ctrl+g: help  ctrl+q: quit"
}

func helpText() string {
	return strings.Join([]string{
		"Vellum",
		"",
		"esc          open command line",
		"ctrl+s       save",
		"ctrl+q       quit",
		"ctrl+z/y     undo / redo",
		"ctrl+k/v     cut line / paste",
		"",
		"Commands",
		"  q, q!          quit, discard changes",
		"  w, !w NAME     save, save as",
		"  head N         set header level N",
		"  bold, italic   wrap word at cursor",
		"  t N            indent line N units",
		"  find QUERY     find next match",
		"  s/old/new      replace all",
		"  ln             toggle line numbers",
		"",
		"press any key to close",
	}, "\n")
}
