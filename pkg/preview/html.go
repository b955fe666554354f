package preview

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/dkoosis/rtheme/pkg/theme"
)

// HTML renders the preview as markup for the browser editor. All text is
// escaped.
type HTML struct{}

// NewHTML creates an HTML renderer.
func NewHTML() *HTML {
	return &HTML{}
}

// Render produces the terminal-content fragment.
func (h *HTML) Render(doc *theme.Document, info theme.SampleInfo) string {
	var out strings.Builder

	if logo := h.logo(doc); logo != "" {
		out.WriteString(logo)
		out.WriteString("\n")
	}

	border := strings.Repeat(borderChar, BorderWidth)
	if doc.Display.ShowBorders {
		fmt.Fprintf(&out, `<div style="%s">%s</div>`, withColor(doc.Colors.Accent, "margin-bottom: 0.5rem;"), border)
	}

	sep := separator(doc)
	lines := make([]string, 0, len(info))
	for _, e := range info {
		lines = append(lines,
			h.span(Label(e.Key), doc.Colors.Key, doc.Effects)+
				h.span(sep, doc.Colors.Separator, doc.Effects)+
				h.span(e.Value, doc.Colors.Value, doc.Effects))
	}
	out.WriteString(strings.Join(lines, "\n"))

	if doc.Display.ShowBorders {
		fmt.Fprintf(&out, `<div style="%s">%s</div>`, withColor(doc.Colors.Accent, "margin-top: 0.5rem;"), border)
	}

	if doc.Display.ShowColorBar {
		out.WriteString("\n\n")
		for _, c := range Swatches {
			fmt.Fprintf(&out, `<span style="background: %s; color: %s;">%s</span>`, c, c, swatch)
		}
	}

	return `<div class="terminal-content">` + "\n" +
		`<div class="terminal-prompt">` + Prompt + `</div>` + "\n" +
		`<pre style="margin: 0; font-family: inherit; white-space: pre-wrap;">` + out.String() + `</pre>` + "\n" +
		`<span class="terminal-cursor"></span>` + "\n" +
		`</div>`
}

func (h *HTML) logo(doc *theme.Document) string {
	lines := LogoLines(doc)
	if lines == nil {
		return ""
	}
	if LogoKind(doc) == theme.LogoSmall {
		return fmt.Sprintf(`<div style="%s">%s</div>`,
			withColor(doc.Colors.Logo, "text-align: center; font-size: 2rem; margin-bottom: 1rem;"),
			html.EscapeString(lines[0]))
	}
	decl := colorDecl(doc.Colors.Logo)
	spans := make([]string, len(lines))
	for i, l := range lines {
		if l == "" {
			l = " "
		}
		spans[i] = fmt.Sprintf(`<span style="%s">%s</span>`, decl, html.EscapeString(l))
	}
	return strings.Join(spans, "\n")
}

func (h *HTML) span(text string, c theme.Color, fx theme.EffectFlags) string {
	return `<span style="` + Style(c, fx) + `">` + html.EscapeString(text) + `</span>`
}

// Style returns the inline CSS for text in color c.
func Style(c theme.Color, fx theme.EffectFlags) string {
	parts := make([]string, 0, 6)
	if d := colorDecl(c); d != "" {
		parts = append(parts, d)
	}
	if c.Has(theme.EffectBold) {
		parts = append(parts, "font-weight: bold;")
	}
	if c.Has(theme.EffectItalic) {
		parts = append(parts, "font-style: italic;")
	}
	if c.Has(theme.EffectUnderline) {
		parts = append(parts, "text-decoration: underline;")
	}
	if c.Has(theme.EffectGlow) && fx.GlowIntensity > 0 && c.RGB != nil {
		css := c.RGB.CSS()
		parts = append(parts, fmt.Sprintf("text-shadow: 0 0 %spx %s, 0 0 %spx %s;",
			px(fx.GlowIntensity*5), css, px(fx.GlowIntensity*10), css))
	}
	if fx.Transitions {
		parts = append(parts, "transition: all 0.3s ease;")
	}
	return strings.Join(parts, " ")
}

// colorDecl is empty when the color has no RGB value.
func colorDecl(c theme.Color) string {
	if c.RGB == nil {
		return ""
	}
	return "color: " + c.RGB.CSS() + ";"
}

func withColor(c theme.Color, css string) string {
	if d := colorDecl(c); d != "" {
		return d + " " + css
	}
	return css
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
