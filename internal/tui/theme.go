package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/rtheme/internal/prefs"
)

// Palette is the editor chrome color set for one mode.
type Palette struct {
	Primary   string // title, active tab, borders
	Success   string
	Error     string
	Muted     string // help, unselected tabs
	Text      string
	Border    string
	Highlight string // selected row background
	OnPrimary string // text drawn on Primary/Highlight
}

// DarkPalette is used in dark mode.
func DarkPalette() Palette {
	return Palette{
		Primary:   "#7D56F4",
		Success:   "#04B575",
		Error:     "#FF5F56",
		Muted:     "#626262",
		Text:      "#CCCCCC",
		Border:    "#444444",
		Highlight: "#7D56F4",
		OnPrimary: "#FAFAFA",
	}
}

// LightPalette is used in light mode.
func LightPalette() Palette {
	return Palette{
		Primary:   "#5A3FC0",
		Success:   "#067D52",
		Error:     "#C62828",
		Muted:     "#8A8A8A",
		Text:      "#222222",
		Border:    "#BBBBBB",
		Highlight: "#D9D0FF",
		OnPrimary: "#1A1A1A",
	}
}

// PaletteFor returns the palette for an editor mode.
func PaletteFor(mode string) Palette {
	if mode == prefs.Light {
		return LightPalette()
	}
	return DarkPalette()
}

// chrome holds the compiled lipgloss styles for the editor frame.
type chrome struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	List      lipgloss.Style
	Selected  lipgloss.Style
	Row       lipgloss.Style
	Detail    lipgloss.Style
	Header    lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Help      lipgloss.Style
}

func (p Palette) compile(r *lipgloss.Renderer) chrome {
	primary := lipgloss.Color(p.Primary)
	border := lipgloss.Color(p.Border)
	on := lipgloss.Color(p.OnPrimary)

	return chrome{
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(primary).
			Padding(0, 1),
		Tab: r.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			Padding(0, 1),
		ActiveTab: r.NewStyle().
			Bold(true).
			Foreground(primary).
			Underline(true).
			Padding(0, 1),
		List: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Selected: r.NewStyle().
			Bold(true).
			Foreground(on).
			Background(lipgloss.Color(p.Highlight)),
		Row: r.NewStyle().
			Foreground(lipgloss.Color(p.Text)),
		Detail: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),
		Header: r.NewStyle().
			Bold(true).
			Foreground(on).
			Background(lipgloss.Color(p.Highlight)).
			Padding(0, 1),
		Success: r.NewStyle().Foreground(lipgloss.Color(p.Success)).Bold(true),
		Error:   r.NewStyle().Foreground(lipgloss.Color(p.Error)).Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		Help:    r.NewStyle().Foreground(lipgloss.Color(p.Muted)),
	}
}
