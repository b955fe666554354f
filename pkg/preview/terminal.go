package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/rtheme/pkg/theme"
)

// maxGlowBlend caps how far glow pushes a color toward white.
const maxGlowBlend = 0.5

// Terminal renders the preview with ANSI styling via lipgloss.
type Terminal struct {
	r *lipgloss.Renderer
}

// NewTerminal creates a terminal renderer. A nil renderer uses lipgloss's
// default, which detects the color profile of stdout.
func NewTerminal(r *lipgloss.Renderer) *Terminal {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Terminal{r: r}
}

// Render formats the preview for terminal display.
func (t *Terminal) Render(doc *theme.Document, info theme.SampleInfo) string {
	return layout(doc, info, func(text string, c *theme.Color) string {
		if c == nil {
			return t.r.NewStyle().Faint(true).Render(text)
		}
		return t.style(*c, doc.Effects).Render(text)
	}, func(hex, text string) string {
		return t.r.NewStyle().Foreground(lipgloss.Color(hex)).Render(text)
	})
}

func (t *Terminal) style(c theme.Color, fx theme.EffectFlags) lipgloss.Style {
	s := t.r.NewStyle()
	if c.RGB != nil {
		rgb := *c.RGB
		if c.Has(theme.EffectGlow) {
			rgb = glow(rgb, fx.GlowIntensity)
		}
		s = s.Foreground(lipgloss.Color(rgb.Hex()))
	}
	return s.
		Bold(c.Has(theme.EffectBold)).
		Italic(c.Has(theme.EffectItalic)).
		Underline(c.Has(theme.EffectUnderline))
}

// glow brightens a color toward white in proportion to the intensity.
// Terminals have no text-shadow, so this stands in for it.
func glow(rgb theme.RGB, intensity float64) theme.RGB {
	if intensity <= 0 {
		return rgb
	}
	amount := intensity / 20
	if amount > maxGlowBlend {
		amount = maxGlowBlend
	}
	c := colorful.Color{R: float64(rgb[0]) / 255, G: float64(rgb[1]) / 255, B: float64(rgb[2]) / 255}
	r, g, b := c.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, amount).Clamped().RGB255()
	return theme.RGB{int(r), int(g), int(b)}
}

// Plain renders the preview without any styling, for NO_COLOR and pipes.
type Plain struct{}

// NewPlain creates a plain renderer.
func NewPlain() *Plain {
	return &Plain{}
}

// Render formats the preview as plain text.
func (p *Plain) Render(doc *theme.Document, info theme.SampleInfo) string {
	identity := func(text string, _ *theme.Color) string { return text }
	return layout(doc, info, identity, func(_, text string) string { return text })
}

// paintFunc styles text in a theme color. A nil color means chrome.
type paintFunc func(text string, c *theme.Color) string

// swatchFunc styles a color bar block.
type swatchFunc func(hex, text string) string

// layout assembles the shared line structure for Terminal and Plain:
// prompt, logo, borders, info lines and color bar, with display.padding
// indentation and display.alignment applied to the logo.
func layout(doc *theme.Document, info theme.SampleInfo, paint paintFunc, sw swatchFunc) string {
	sep := separator(doc)

	type row struct {
		text  string
		width int
	}
	rows := make([]row, 0, len(info))
	width := 0
	for _, e := range info {
		label := Label(e.Key)
		plain := label + sep + e.Value
		text := paint(label, &doc.Colors.Key) + paint(sep, &doc.Colors.Separator) + paint(e.Value, &doc.Colors.Value)
		w := runewidth.StringWidth(plain)
		rows = append(rows, row{text: text, width: w})
		width = max(width, w)
	}
	if doc.Display.ShowBorders {
		width = max(width, BorderWidth)
	}

	logo := LogoLines(doc)
	logoWidth := 0
	for _, l := range logo {
		logoWidth = max(logoWidth, runewidth.StringWidth(l))
	}
	// The logo block keeps its internal shape; only the block is shifted.
	shift := 0
	switch doc.Display.Alignment {
	case theme.AlignCenter:
		shift = max(0, (width-logoWidth)/2)
	case theme.AlignRight:
		shift = max(0, width-logoWidth)
	}

	pad := strings.Repeat(" ", max(0, doc.Display.Padding))
	var lines []string
	lines = append(lines, paint(Prompt, nil))
	for _, l := range logo {
		lines = append(lines, pad+strings.Repeat(" ", shift)+paint(l, &doc.Colors.Logo))
	}
	if len(logo) > 0 {
		lines = append(lines, "")
	}

	border := strings.Repeat(borderChar, BorderWidth)
	if doc.Display.ShowBorders {
		lines = append(lines, pad+paint(border, &doc.Colors.Accent))
	}
	for _, r := range rows {
		lines = append(lines, pad+r.text)
	}
	if doc.Display.ShowBorders {
		lines = append(lines, pad+paint(border, &doc.Colors.Accent))
	}

	if doc.Display.ShowColorBar {
		var bar strings.Builder
		for _, hex := range Swatches {
			bar.WriteString(sw(hex, swatch))
		}
		lines = append(lines, "", pad+bar.String())
	}
	return strings.Join(lines, "\n") + "\n"
}
