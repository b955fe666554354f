package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab  key.Binding
	PrevTab  key.Binding
	Up       key.Binding
	Down     key.Binding
	Edit     key.Binding
	Base     key.Binding
	Cancel   key.Binding
	Bold     key.Binding
	Italic   key.Binding
	Under    key.Binding
	Glow     key.Binding
	Pane     key.Binding
	Format   key.Binding
	Preset   key.Binding
	Generate key.Binding
	Refresh  key.Binding
	Download key.Binding
	Copy     key.Binding
	Mode     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextTab:  key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next section")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev section")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Edit:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "edit")),
		Base:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "base name")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Bold:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1-4", "bold/italic/underline/glow")),
		Italic:   key.NewBinding(key.WithKeys("2")),
		Under:    key.NewBinding(key.WithKeys("3")),
		Glow:     key.NewBinding(key.WithKeys("4")),
		Pane:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "preview/export")),
		Format:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "format")),
		Preset:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preset")),
		Generate: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Download: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download")),
		Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Mode:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "light/dark")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Edit, k.Bold, k.Pane, k.Format, k.Download, k.Copy, k.Mode, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Up, k.Down},
		{k.Edit, k.Base, k.Cancel, k.Bold},
		{k.Pane, k.Format, k.Preset, k.Generate, k.Refresh},
		{k.Download, k.Copy, k.Mode, k.Quit},
	}
}
