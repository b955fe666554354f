package preview

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/rtheme/pkg/theme"
)

var twoLines = theme.SampleInfo{{Key: "os", Value: "Arch"}, {Key: "cpu", Value: "Zen"}}

func TestLabel_CapitalizesFirstLetter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Os", Label("os"))
	assert.Equal(t, "Cpu", Label("cpu"))
	assert.Equal(t, "Gpu", Label("gpu"))
}

func TestLogoKind(t *testing.T) {
	t.Parallel()

	doc := theme.Default()
	assert.Equal(t, theme.LogoAuto, LogoKind(doc))

	doc.Display.LogoType = theme.LogoASCII
	doc.ASCII.CustomLogo = "  \n "
	assert.Equal(t, theme.LogoNone, LogoKind(doc), "blank custom logo shows nothing")

	doc.ASCII.CustomLogo = "art"
	assert.Equal(t, theme.LogoASCII, LogoKind(doc))

	doc.Display.LogoType = "sideways"
	assert.Equal(t, theme.LogoNone, LogoKind(doc))
}

func TestPlain_Render_When_NoLogo(t *testing.T) {
	t.Parallel()

	doc := theme.Default()
	doc.Display.LogoType = theme.LogoNone
	doc.Display.Padding = 1

	out := NewPlain().Render(doc, twoLines)
	assert.Equal(t, "rfetch\n Os: Arch\n Cpu: Zen\n", out)
}

func TestPlain_Render_WithBordersAndColorBar(t *testing.T) {
	t.Parallel()

	doc := theme.Default()
	doc.Display.LogoType = theme.LogoNone
	doc.Display.Padding = 0
	doc.Display.Separator = " > "
	doc.Display.ShowBorders = true
	doc.Display.ShowColorBar = true

	border := strings.Repeat("─", 50)
	want := "rfetch\n" +
		border + "\n" +
		"Os > Arch\n" +
		"Cpu > Zen\n" +
		border + "\n" +
		"\n" +
		strings.Repeat("██", 16) + "\n"
	assert.Equal(t, want, NewPlain().Render(doc, twoLines))
}

func TestPlain_Render_AlignsLogo(t *testing.T) {
	t.Parallel()

	doc := theme.Default()
	doc.Display.LogoType = theme.LogoASCII
	doc.ASCII.CustomLogo = "ab\ncd"
	doc.Display.Padding = 0

	doc.Display.Alignment = theme.AlignCenter
	out := NewPlain().Render(doc, twoLines)
	assert.Equal(t, "rfetch\n   ab\n   cd\n\nOs: Arch\nCpu: Zen\n", out)

	doc.Display.Alignment = theme.AlignRight
	out = NewPlain().Render(doc, twoLines)
	assert.True(t, strings.HasPrefix(out, "rfetch\n      ab\n      cd\n"), out)
}

func TestPlain_Render_DefaultShowsBuiltinLogo(t *testing.T) {
	t.Parallel()

	out := NewPlain().Render(theme.Default(), theme.DefaultSampleInfo())
	assert.Contains(t, out, "╚═╝  ╚═╝╚═╝")
	assert.Contains(t, out, "  Memory: 8.2GB / 32.0GB (26%)")
}

func TestStyle_AppliesEffects(t *testing.T) {
	t.Parallel()

	key := theme.NewColor("yellow", theme.RGB{255, 255, 0}, theme.EffectBold, theme.EffectItalic, theme.EffectUnderline)
	assert.Equal(t,
		"color: rgb(255, 255, 0); font-weight: bold; font-style: italic; text-decoration: underline;",
		Style(key, theme.EffectFlags{}))

	logo := theme.NewColor("cyan", theme.RGB{0, 255, 255}, theme.EffectGlow)
	assert.Equal(t, "color: rgb(0, 255, 255);", Style(logo, theme.EffectFlags{}), "glow needs intensity")
	assert.Equal(t,
		"color: rgb(0, 255, 255); text-shadow: 0 0 7.5px rgb(0, 255, 255), 0 0 15px rgb(0, 255, 255); transition: all 0.3s ease;",
		Style(logo, theme.EffectFlags{GlowIntensity: 1.5, Transitions: true}))
}

func TestStyle_OmitsColor_When_RGBNil(t *testing.T) {
	t.Parallel()

	c := theme.Color{Base: "yellow", Effects: []string{theme.EffectBold}}
	assert.Equal(t, "font-weight: bold;", Style(c, theme.EffectFlags{GlowIntensity: 3}))
}

func TestHTML_Render_Structure(t *testing.T) {
	t.Parallel()

	doc := theme.Default()
	doc.Display.ShowBorders = true
	doc.Display.ShowColorBar = true

	out := NewHTML().Render(doc, twoLines)
	assert.True(t, strings.HasPrefix(out, "<div class=\"terminal-content\">\n<div class=\"terminal-prompt\">rfetch</div>\n<pre"), out)
	assert.True(t, strings.HasSuffix(out, "<span class=\"terminal-cursor\"></span>\n</div>"), out)
	assert.Contains(t, out, `<span style="color: rgb(0, 255, 255);">  ██████╗ ███████╗`)
	assert.Contains(t, out, `<div style="color: rgb(255, 0, 255); margin-bottom: 0.5rem;">`+strings.Repeat("─", 50)+`</div>`)
	assert.Contains(t, out,
		`<span style="color: rgb(255, 255, 0); font-weight: bold;">Os</span>`+
			`<span style="color: rgb(255, 255, 255);">: </span>`+
			`<span style="color: rgb(255, 255, 255);">Arch</span>`)
	assert.Equal(t, 16, strings.Count(out, `<span style="background: `))
	assert.Contains(t, out, `<span style="background: #c0c0c0; color: #c0c0c0;">██</span>`)
}

func TestHTML_Render_EscapesText(t *testing.T) {
	t.Parallel()

	doc := theme.Default()
	doc.Display.LogoType = theme.LogoASCII
	doc.ASCII.CustomLogo = "<script>"
	doc.Display.Separator = " & "

	out := NewHTML().Render(doc, theme.SampleInfo{{Key: "os", Value: `"<b>"`}})
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "> &amp; <")
	assert.Contains(t, out, "&#34;&lt;b&gt;&#34;")
}

func TestHTML_Render_SmallLogo(t *testing.T) {
	t.Parallel()

	doc := theme.Default()
	doc.Display.LogoType = theme.LogoSmall

	out := NewHTML().Render(doc, twoLines)
	assert.Contains(t, out, `<div style="color: rgb(0, 255, 255); text-align: center; font-size: 2rem; margin-bottom: 1rem;">🎨</div>`)
}

func TestTerminal_Render_UsesTrueColor(t *testing.T) {
	t.Parallel()

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	doc := theme.Default()
	doc.Display.LogoType = theme.LogoNone
	out := NewTerminal(r).Render(doc, twoLines)

	assert.Contains(t, out, "38;2;255;255;0", "key color")
	assert.Contains(t, out, "Arch")
	assert.Contains(t, out, "Cpu")
}

func TestGlow_BlendsTowardWhite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, theme.RGB{0, 255, 255}, glow(theme.RGB{0, 255, 255}, 0))
	assert.Equal(t, theme.RGB{51, 255, 255}, glow(theme.RGB{0, 255, 255}, 4))
	assert.Equal(t, theme.RGB{128, 255, 255}, glow(theme.RGB{0, 255, 255}, 100))
}

func TestRenderers_SatisfyInterface(t *testing.T) {
	t.Parallel()

	for _, r := range []Renderer{NewPlain(), NewHTML(), NewTerminal(nil)} {
		require.NotEmpty(t, r.Render(theme.Default(), twoLines))
	}
}
