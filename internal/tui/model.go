// Package tui is the interactive terminal theme editor. It is a bubbletea
// view over an editor.Editor: every keypress maps to one controller call and
// the preview or export pane is re-rendered from the controller afterwards.
package tui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/dkoosis/rtheme/internal/editor"
	"github.com/dkoosis/rtheme/internal/highlight"
	"github.com/dkoosis/rtheme/pkg/codec"
	"github.com/dkoosis/rtheme/pkg/preview"
	"github.com/dkoosis/rtheme/pkg/theme"
)

// Options configures the terminal editor.
type Options struct {
	// OutDir is where Download writes theme files.
	OutDir string
	// NoColor disables ANSI color in the preview, export and chrome.
	NoColor bool
	// Renderer is used for chrome and the preview. Nil means the default.
	Renderer *lipgloss.Renderer
	// External edits the custom logo. Nil keeps logo editing inline.
	External *editor.External
	Logger   zerolog.Logger
}

// Run starts the editor and blocks until the user quits or ctx is done.
func Run(ctx context.Context, ed *editor.Editor, opts Options) error {
	program := tea.NewProgram(New(ed, opts), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}

type pane int

const (
	panePreview pane = iota
	paneExport
)

// row is one line of the left panel: a form field, or a color on the colors tab.
type row struct {
	field editor.Field
	color string
}

// target is the value currently being typed into the input.
type target struct {
	field string
	color string
	attr  string // "hex" or "base" when color is set
}

type dismissMsg struct{ id int }

type logoEditedMsg struct {
	path string
	err  error
}

// Model is the bubbletea model.
type Model struct {
	ed       *editor.Editor
	opts     Options
	keys     keyMap
	help     help.Model
	style    chrome
	renderer preview.Renderer

	cursor   int
	pane     pane
	preset   int
	input    textinput.Model
	editing  *target
	viewport viewport.Model
	err      error

	ready       bool
	width       int
	height      int
	listWidth   int
	detailWidth int
}

// New creates the model.
func New(ed *editor.Editor, opts Options) Model {
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	if opts.NoColor {
		r := lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.Ascii)
		opts.Renderer = r
	}
	if opts.OutDir == "" {
		opts.OutDir = "."
	}

	var renderer preview.Renderer = preview.NewTerminal(opts.Renderer)
	if opts.NoColor {
		renderer = preview.NewPlain()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 0

	m := Model{
		ed:       ed,
		opts:     opts,
		keys:     defaultKeys(),
		help:     help.New(),
		style:    PaletteFor(ed.Mode()).compile(opts.Renderer),
		renderer: renderer,
		input:    ti,
		viewport: viewport.New(0, 0),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Editor returns the controller the model drives.
func (m Model) Editor() *editor.Editor { return m.ed }

// Err returns the last operation error shown in the status line.
func (m Model) Err() error { return m.err }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.refresh()
		return m, nil

	case dismissMsg:
		m.ed.Dismiss(msg.id)
		return m, nil

	case logoEditedMsg:
		m.finishLogoEdit(msg)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.editing != nil {
			return m.updateInput(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) resize(w, h int) {
	m.width = w
	m.height = h
	m.listWidth = w * 2 / 5
	if m.listWidth < 36 {
		m.listWidth = 36
	}
	if m.listWidth > w/2 {
		m.listWidth = w / 2
	}
	m.detailWidth = w - m.listWidth - 4 // two bordered panels
	m.viewport.Width = m.detailWidth - 2
	m.viewport.Height = h - 9 // title, tabs, header, status, help, borders
	if m.viewport.Height < 3 {
		m.viewport.Height = 3
	}
	m.help.Width = w
	m.ready = true
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextTab):
		m.moveTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		m.moveTab(-1)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Edit):
		cmd = m.activate()
	case key.Matches(msg, m.keys.Base):
		if r, ok := m.current(); ok && r.color != "" {
			c, _ := m.ed.Colors().Lookup(r.color)
			cmd = m.startEdit(target{color: r.color, attr: "base"}, c.Base)
		}

	case key.Matches(msg, m.keys.Bold):
		m.toggle(theme.EffectBold)
	case key.Matches(msg, m.keys.Italic):
		m.toggle(theme.EffectItalic)
	case key.Matches(msg, m.keys.Under):
		m.toggle(theme.EffectUnderline)
	case key.Matches(msg, m.keys.Glow):
		m.toggle(theme.EffectGlow)

	case key.Matches(msg, m.keys.Pane):
		if m.pane == panePreview {
			m.pane = paneExport
		} else {
			m.pane = panePreview
		}
	case key.Matches(msg, m.keys.Format):
		m.err = m.ed.SetFormat(nextFormat(m.ed.Format()))
	case key.Matches(msg, m.keys.Preset):
		names := theme.PresetNames()
		m.preset = (m.preset + 1) % len(names)
		m.err = m.ed.LoadPreset(names[m.preset])

	case key.Matches(msg, m.keys.Generate):
		_, m.err = m.ed.Generate()
		m.pane = paneExport
		cmd = m.dismissLater()
	case key.Matches(msg, m.keys.Refresh):
		m.ed.Refresh(m.renderer)
		m.pane = panePreview
		cmd = m.dismissLater()
	case key.Matches(msg, m.keys.Download):
		var path string
		path, m.err = m.ed.Download(m.opts.OutDir)
		if m.err == nil {
			m.opts.Logger.Debug().Str("path", path).Msg("downloaded")
		}
		cmd = m.dismissLater()
	case key.Matches(msg, m.keys.Copy):
		m.err = m.ed.Copy()
		cmd = m.dismissLater()
	case key.Matches(msg, m.keys.Mode):
		var mode string
		mode, m.err = m.ed.ToggleMode()
		m.style = PaletteFor(mode).compile(m.opts.Renderer)
	}

	m.refresh()
	return m, cmd
}

func (m *Model) moveTab(delta int) {
	cur := 0
	for i, t := range editor.Tabs {
		if t == m.ed.Tab() {
			cur = i
		}
	}
	next := (cur + delta + len(editor.Tabs)) % len(editor.Tabs)
	m.err = m.ed.SetTab(editor.Tabs[next])
	m.cursor = 0
}

func (m *Model) toggle(effect string) {
	if r, ok := m.current(); ok && r.color != "" {
		m.err = m.ed.ToggleEffect(r.color, effect)
	}
}

// activate acts on the selected row: text opens the input, booleans flip,
// choices advance and the custom logo goes to the external editor.
func (m *Model) activate() tea.Cmd {
	r, ok := m.current()
	if !ok {
		return nil
	}
	if r.color != "" {
		c, _ := m.ed.Colors().Lookup(r.color)
		return m.startEdit(target{color: r.color, attr: "hex"}, c.Hex())
	}

	form := m.ed.Form()
	value, err := form.Get(r.field.Key)
	if err != nil {
		m.err = err
		return nil
	}
	switch r.field.Kind {
	case editor.KindBool:
		on, _ := strconv.ParseBool(value)
		m.err = m.ed.SetField(r.field.Key, strconv.FormatBool(!on))
		return nil
	case editor.KindChoice:
		m.err = m.ed.SetField(r.field.Key, nextChoice(r.field.Choices, value))
		return nil
	case editor.KindMultiline:
		if m.opts.External != nil {
			return m.editExternally(value)
		}
	}
	return m.startEdit(target{field: r.field.Key}, value)
}

func (m *Model) startEdit(t target, value string) tea.Cmd {
	m.editing = &t
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = nil
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.err = m.commit(*m.editing, m.input.Value())
		m.editing = nil
		m.input.Blur()
		m.refresh()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) commit(t target, value string) error {
	switch {
	case t.color != "" && t.attr == "hex":
		return m.ed.SetColorHex(t.color, value)
	case t.color != "":
		return m.ed.SetColorBase(t.color, value)
	}
	return m.ed.SetField(t.field, value)
}

func (m *Model) editExternally(content string) tea.Cmd {
	cmd, path, err := m.opts.External.Prepare(content)
	if err != nil {
		m.err = err
		return nil
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return logoEditedMsg{path: path, err: err}
	})
}

func (m *Model) finishLogoEdit(msg logoEditedMsg) {
	text, err := m.opts.External.Collect(msg.path)
	if msg.err != nil {
		m.err = fmt.Errorf("editor %q failed: %w", m.opts.External.Command(), msg.err)
		m.opts.Logger.Warn().Err(msg.err).Msg("external editor failed")
		return
	}
	if err != nil {
		m.err = err
		return
	}
	m.err = m.ed.SetField("custom_logo", text)
}

// dismissLater schedules removal of the notification just shown.
func (m Model) dismissLater() tea.Cmd {
	n, ok := m.ed.Notification()
	if !ok {
		return nil
	}
	return tea.Tick(editor.NotificationTTL, func(time.Time) tea.Msg {
		return dismissMsg{id: n.ID}
	})
}

func (m Model) rows() []row {
	tab := m.ed.Tab()
	if tab == "colors" {
		rows := make([]row, len(theme.ColorNames))
		for i, name := range theme.ColorNames {
			rows[i] = row{color: name}
		}
		return rows
	}
	fields := editor.FieldsFor(tab)
	rows := make([]row, len(fields))
	for i, f := range fields {
		rows[i] = row{field: f}
	}
	return rows
}

func (m Model) current() (row, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.cursor], true
}

// refresh re-renders the right pane from the controller.
func (m *Model) refresh() {
	if m.pane == paneExport {
		out, err := m.ed.Export()
		if err != nil {
			m.viewport.SetContent(err.Error())
			return
		}
		if !m.opts.NoColor {
			out = highlight.Code(out, m.ed.Format(), highlight.StyleFor(m.ed.Mode()))
		}
		m.viewport.SetContent(out)
		return
	}
	m.viewport.SetContent(m.ed.Preview(m.renderer))
}

func nextFormat(f codec.Format) codec.Format {
	for i, v := range codec.Formats {
		if v == f {
			return codec.Formats[(i+1)%len(codec.Formats)]
		}
	}
	return codec.Formats[0]
}

func nextChoice(choices []string, cur string) string {
	for i, c := range choices {
		if c == cur {
			return choices[(i+1)%len(choices)]
		}
	}
	if len(choices) == 0 {
		return cur
	}
	return choices[0]
}

func (m Model) View() string {
	if !m.ready {
		return "Loading editor..."
	}

	doc := m.ed.Snapshot()
	title := m.style.Title.Render("🎨 rtheme") + " " +
		m.style.Muted.Render(fmt.Sprintf("%s · %s · %s mode", doc.Meta.Name, m.ed.Format(), m.ed.Mode()))

	tabs := make([]string, len(editor.Tabs))
	for i, t := range editor.Tabs {
		if t == m.ed.Tab() {
			tabs[i] = m.style.ActiveTab.Render(preview.Label(t))
		} else {
			tabs[i] = m.style.Tab.Render(preview.Label(t))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	contentHeight := m.viewport.Height + 1
	list := m.style.List.
		Width(m.listWidth).
		Height(contentHeight).
		Render(m.renderRows())

	header := "Preview"
	if m.pane == paneExport {
		header = "Export · " + m.ed.Filename()
	}
	detail := m.style.Detail.
		Width(m.detailWidth).
		Height(contentHeight).
		Render(m.style.Header.Render(header) + "\n" + m.viewport.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, list, detail)

	return lipgloss.JoinVertical(lipgloss.Left, title, tabBar, panels, m.statusLine(), m.help.View(m.keys))
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.style.Error.Render("✗ " + m.err.Error())
	}
	n, ok := m.ed.Notification()
	if !ok {
		return ""
	}
	if n.Kind == editor.KindError {
		return m.style.Error.Render("✗ " + n.Message)
	}
	return m.style.Success.Render("✓ " + n.Message)
}

func (m Model) renderRows() string {
	rows := m.rows()
	form := m.ed.Form()
	colors := m.ed.Colors()

	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		var label, value string
		if r.color != "" {
			label = r.color
			value = m.colorValue(colors, r.color)
		} else {
			label = r.field.Label
			value = fieldValue(&form, r.field)
		}

		if i == m.cursor && m.editing != nil {
			lines = append(lines, label+" "+m.input.View())
			continue
		}
		line := fmt.Sprintf("%-14s %s", label, value)
		if i == m.cursor {
			lines = append(lines, m.style.Selected.Render("▶ "+line))
		} else {
			lines = append(lines, m.style.Row.Render("  "+line))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) colorValue(colors theme.Colors, name string) string {
	c, _ := colors.Lookup(name)
	hex := c.Hex()
	swatch := "  "
	if hex == "" {
		hex = "-------"
	} else {
		swatch = m.opts.Renderer.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
	}
	marks := make([]string, len(theme.EffectNames))
	for i, e := range theme.EffectNames {
		mark := strings.ToUpper(e[:1])
		if !c.Has(e) {
			mark = "·"
		}
		marks[i] = mark
	}
	return fmt.Sprintf("%s %s %-12s %s", swatch, hex, c.Base, strings.Join(marks, ""))
}

func fieldValue(form *editor.Form, f editor.Field) string {
	v, _ := form.Get(f.Key)
	switch f.Kind {
	case editor.KindBool:
		if v == "true" {
			return "[x]"
		}
		return "[ ]"
	case editor.KindMultiline:
		if v == "" {
			return "(empty)"
		}
		first, _, more := strings.Cut(v, "\n")
		if more {
			return first + " …"
		}
		return first
	}
	return v
}
