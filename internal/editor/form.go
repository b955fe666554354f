package editor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dkoosis/rtheme/pkg/theme"
)

// Tabs are the editor sections in navigation order.
var Tabs = []string{"meta", "colors", "display", "ascii", "effects"}

// FieldKind tells a surface which control to draw for a field.
type FieldKind int

const (
	KindText FieldKind = iota
	KindMultiline
	KindBool
	KindChoice
)

// Field describes one editable form value.
type Field struct {
	Key     string
	Label   string
	Tab     string
	Kind    FieldKind
	Choices []string
}

// Fields lists every form field in display order.
var Fields = []Field{
	{Key: "name", Label: "Theme name", Tab: "meta"},
	{Key: "description", Label: "Description", Tab: "meta"},
	{Key: "author", Label: "Author", Tab: "meta"},
	{Key: "version", Label: "Version", Tab: "meta"},
	{Key: "logo_type", Label: "Logo type", Tab: "display", Kind: KindChoice, Choices: theme.LogoTypes},
	{Key: "separator", Label: "Separator", Tab: "display"},
	{Key: "padding", Label: "Padding", Tab: "display"},
	{Key: "alignment", Label: "Alignment", Tab: "display", Kind: KindChoice, Choices: theme.Alignments},
	{Key: "show_borders", Label: "Show borders", Tab: "display", Kind: KindBool},
	{Key: "show_color_bar", Label: "Show color bar", Tab: "display", Kind: KindBool},
	{Key: "show_icons", Label: "Show icons", Tab: "display", Kind: KindBool},
	{Key: "custom_logo", Label: "Custom ASCII logo", Tab: "ascii", Kind: KindMultiline},
	{Key: "small_logo", Label: "Small logo", Tab: "ascii"},
	{Key: "transitions", Label: "Transitions", Tab: "effects", Kind: KindBool},
	{Key: "shadows", Label: "Shadows", Tab: "effects", Kind: KindBool},
	{Key: "particles", Label: "Particles", Tab: "effects", Kind: KindBool},
	{Key: "glow_intensity", Label: "Glow intensity", Tab: "effects"},
}

// FieldsFor returns the fields shown on a tab.
func FieldsFor(tab string) []Field {
	var out []Field
	for _, f := range Fields {
		if f.Tab == tab {
			out = append(out, f)
		}
	}
	return out
}

// Form holds raw form values as typed by the user. Numeric fields stay text
// until a snapshot is taken.
type Form struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Author        string `json:"author"`
	Version       string `json:"version"`
	LogoType      string `json:"logo_type"`
	Separator     string `json:"separator"`
	Padding       string `json:"padding"`
	Alignment     string `json:"alignment"`
	ShowBorders   bool   `json:"show_borders"`
	ShowColorBar  bool   `json:"show_color_bar"`
	ShowIcons     bool   `json:"show_icons"`
	CustomLogo    string `json:"custom_logo"`
	SmallLogo     string `json:"small_logo"`
	Transitions   bool   `json:"transitions"`
	Shadows       bool   `json:"shadows"`
	Particles     bool   `json:"particles"`
	GlowIntensity string `json:"glow_intensity"`
}

// DefaultForm returns the initial form values.
func DefaultForm() Form {
	return FormFrom(theme.Default())
}

// FormFrom fills a form from a document.
func FormFrom(d *theme.Document) Form {
	return Form{
		Name:          d.Meta.Name,
		Description:   d.Meta.Description,
		Author:        d.Meta.Author,
		Version:       d.Meta.Version,
		LogoType:      d.Display.LogoType,
		Separator:     d.Display.Separator,
		Padding:       strconv.Itoa(d.Display.Padding),
		Alignment:     d.Display.Alignment,
		ShowBorders:   d.Display.ShowBorders,
		ShowColorBar:  d.Display.ShowColorBar,
		ShowIcons:     d.Display.ShowIcons,
		CustomLogo:    d.ASCII.CustomLogo,
		SmallLogo:     d.ASCII.SmallLogo,
		Transitions:   d.Effects.Transitions,
		Shadows:       d.Effects.Shadows,
		Particles:     d.Effects.Particles,
		GlowIntensity: strconv.FormatFloat(d.Effects.GlowIntensity, 'f', -1, 64),
	}
}

// Get returns a field's value as text.
func (f *Form) Get(key string) (string, error) {
	if p := f.text(key); p != nil {
		return *p, nil
	}
	if p := f.flag(key); p != nil {
		return strconv.FormatBool(*p), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, key)
}

// Set assigns a field from text. Boolean fields accept strconv.ParseBool
// forms plus "on" and "off".
func (f *Form) Set(key, value string) error {
	if p := f.text(key); p != nil {
		*p = value
		return nil
	}
	if p := f.flag(key); p != nil {
		b, err := parseFlag(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		*p = b
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownField, key)
}

func (f *Form) text(key string) *string {
	switch key {
	case "name":
		return &f.Name
	case "description":
		return &f.Description
	case "author":
		return &f.Author
	case "version":
		return &f.Version
	case "logo_type":
		return &f.LogoType
	case "separator":
		return &f.Separator
	case "padding":
		return &f.Padding
	case "alignment":
		return &f.Alignment
	case "custom_logo":
		return &f.CustomLogo
	case "small_logo":
		return &f.SmallLogo
	case "glow_intensity":
		return &f.GlowIntensity
	}
	return nil
}

func (f *Form) flag(key string) *bool {
	switch key {
	case "show_borders":
		return &f.ShowBorders
	case "show_color_bar":
		return &f.ShowColorBar
	case "show_icons":
		return &f.ShowIcons
	case "transitions":
		return &f.Transitions
	case "shadows":
		return &f.Shadows
	case "particles":
		return &f.Particles
	}
	return nil
}

// document builds the snapshot. Empty text falls back to its default; a
// padding with no leading integer (or zero) becomes 2 and a glow intensity
// that is not a finite number becomes 0.
func (f Form) document(colors theme.Colors) *theme.Document {
	padding, ok := leadingInt(f.Padding)
	if !ok || padding == 0 {
		padding = theme.DefaultPadding
	}
	glow, err := strconv.ParseFloat(strings.TrimSpace(f.GlowIntensity), 64)
	if err != nil || math.IsNaN(glow) || math.IsInf(glow, 0) {
		glow = 0
	}

	d := &theme.Document{
		Meta: theme.Meta{
			Name:        or(f.Name, theme.DefaultName),
			Description: or(f.Description, theme.DefaultDescription),
			Author:      or(f.Author, theme.DefaultAuthor),
			Version:     or(f.Version, theme.DefaultVersion),
		},
		Colors: colors,
		Display: theme.Display{
			LogoType:     or(f.LogoType, theme.LogoAuto),
			Separator:    or(f.Separator, theme.DefaultSeparator),
			Padding:      padding,
			Alignment:    or(f.Alignment, theme.AlignLeft),
			ShowBorders:  f.ShowBorders,
			ShowColorBar: f.ShowColorBar,
			ShowIcons:    f.ShowIcons,
		},
		ASCII: theme.ASCII{
			CustomLogo: f.CustomLogo,
			SmallLogo:  or(f.SmallLogo, theme.DefaultSmallLogo),
		},
		Effects: theme.EffectFlags{
			Transitions:   f.Transitions,
			Shadows:       f.Shadows,
			Particles:     f.Particles,
			GlowIntensity: glow,
		},
	}
	return d
}

// leadingInt reads an optionally signed run of digits at the start of s,
// ignoring leading space and whatever follows ("5px" is 5, "3.7" is 3).
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
