package theme

import "math"

// Display layout values.
const (
	LogoAuto  = "auto"
	LogoASCII = "ascii"
	LogoSmall = "small"
	LogoNone  = "none"

	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Defaults applied when a form value or decoded field is empty.
const (
	DefaultName        = "my_theme"
	DefaultDescription = "My custom theme"
	DefaultAuthor      = "Your Name"
	DefaultVersion     = "1.0.0"
	DefaultSeparator   = ": "
	DefaultPadding     = 2
	DefaultSmallLogo   = "🎨"
)

// LogoTypes lists the accepted display.logo_type values.
var LogoTypes = []string{LogoAuto, LogoASCII, LogoSmall, LogoNone}

// Alignments lists the accepted display.alignment values.
var Alignments = []string{AlignLeft, AlignCenter, AlignRight}

// Document is a snapshot of a complete theme. It is rebuilt from editor
// state for every export or preview and has no lifecycle of its own.
type Document struct {
	Meta    Meta        `json:"meta" yaml:"meta" toml:"meta"`
	Colors  Colors      `json:"colors" yaml:"colors" toml:"colors"`
	Display Display     `json:"display" yaml:"display" toml:"display"`
	ASCII   ASCII       `json:"ascii" yaml:"ascii" toml:"ascii"`
	Effects EffectFlags `json:"effects" yaml:"effects" toml:"effects"`
}

// Meta describes the theme.
type Meta struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Author      string `json:"author" yaml:"author" toml:"author"`
	Version     string `json:"version" yaml:"version" toml:"version"`
}

// Colors holds the seven named theme colors. Field order is the
// serialization order.
type Colors struct {
	Title     Color `json:"title" yaml:"title" toml:"title"`
	Subtitle  Color `json:"subtitle" yaml:"subtitle" toml:"subtitle"`
	Key       Color `json:"key" yaml:"key" toml:"key"`
	Value     Color `json:"value" yaml:"value" toml:"value"`
	Separator Color `json:"separator" yaml:"separator" toml:"separator"`
	Logo      Color `json:"logo" yaml:"logo" toml:"logo"`
	Accent    Color `json:"accent" yaml:"accent" toml:"accent"`
}

// ColorNames lists the color slots in serialization order.
var ColorNames = []string{"title", "subtitle", "key", "value", "separator", "logo", "accent"}

// Get returns a pointer to the named color slot.
func (c *Colors) Get(name string) (*Color, bool) {
	switch name {
	case "title":
		return &c.Title, true
	case "subtitle":
		return &c.Subtitle, true
	case "key":
		return &c.Key, true
	case "value":
		return &c.Value, true
	case "separator":
		return &c.Separator, true
	case "logo":
		return &c.Logo, true
	case "accent":
		return &c.Accent, true
	}
	return nil, false
}

// Lookup returns a copy of the named color.
func (c Colors) Lookup(name string) (Color, bool) {
	p, ok := c.Get(name)
	if !ok {
		return Color{}, false
	}
	return *p, true
}

// Display controls layout of the rendered output.
type Display struct {
	LogoType     string `json:"logo_type" yaml:"logo_type" toml:"logo_type"`
	Separator    string `json:"separator" yaml:"separator" toml:"separator"`
	Padding      int    `json:"padding" yaml:"padding" toml:"padding"`
	Alignment    string `json:"alignment" yaml:"alignment" toml:"alignment"`
	ShowBorders  bool   `json:"show_borders" yaml:"show_borders" toml:"show_borders"`
	ShowColorBar bool   `json:"show_color_bar" yaml:"show_color_bar" toml:"show_color_bar"`
	ShowIcons    bool   `json:"show_icons" yaml:"show_icons" toml:"show_icons"`
}

// ASCII holds logo art.
type ASCII struct {
	CustomLogo string `json:"custom_logo" yaml:"custom_logo" toml:"custom_logo"`
	SmallLogo  string `json:"small_logo" yaml:"small_logo" toml:"small_logo"`
}

// EffectFlags are theme-wide effect switches.
type EffectFlags struct {
	Transitions   bool    `json:"transitions" yaml:"transitions" toml:"transitions"`
	Shadows       bool    `json:"shadows" yaml:"shadows" toml:"shadows"`
	Particles     bool    `json:"particles" yaml:"particles" toml:"particles"`
	GlowIntensity float64 `json:"glow_intensity" yaml:"glow_intensity" toml:"glow_intensity"`
}

// DefaultColors returns the editor's initial color table.
func DefaultColors() Colors {
	return Colors{
		Title:     NewColor("cyan", RGB{0, 255, 255}, EffectBold),
		Subtitle:  NewColor("blue", RGB{0, 0, 255}),
		Key:       NewColor("yellow", RGB{255, 255, 0}, EffectBold),
		Value:     NewColor("white", RGB{255, 255, 255}),
		Separator: NewColor("white", RGB{255, 255, 255}),
		Logo:      NewColor("cyan", RGB{0, 255, 255}, EffectGlow),
		Accent:    NewColor("magenta", RGB{255, 0, 255}),
	}
}

// Default returns the document an untouched editor produces.
func Default() *Document {
	return &Document{
		Meta: Meta{
			Name:        DefaultName,
			Description: DefaultDescription,
			Author:      DefaultAuthor,
			Version:     DefaultVersion,
		},
		Colors: DefaultColors(),
		Display: Display{
			LogoType:  LogoAuto,
			Separator: DefaultSeparator,
			Padding:   DefaultPadding,
			Alignment: AlignLeft,
		},
		ASCII: ASCII{SmallLogo: DefaultSmallLogo},
	}
}

// FillDefaults replaces empty fields with their defaults. Colors that are
// entirely unset take the default color for their slot; a glow intensity
// that is not a finite number becomes 0.
func (d *Document) FillDefaults() {
	def := Default()

	if d.Meta.Name == "" {
		d.Meta.Name = def.Meta.Name
	}
	if d.Meta.Description == "" {
		d.Meta.Description = def.Meta.Description
	}
	if d.Meta.Author == "" {
		d.Meta.Author = def.Meta.Author
	}
	if d.Meta.Version == "" {
		d.Meta.Version = def.Meta.Version
	}

	for _, name := range ColorNames {
		c, _ := d.Colors.Get(name)
		if c.isZero() {
			dc, _ := def.Colors.Lookup(name)
			*c = dc
			continue
		}
		if c.Effects == nil {
			c.Effects = []string{}
		}
	}

	if d.Display.LogoType == "" {
		d.Display.LogoType = def.Display.LogoType
	}
	if d.Display.Separator == "" {
		d.Display.Separator = def.Display.Separator
	}
	if d.Display.Padding == 0 {
		d.Display.Padding = def.Display.Padding
	}
	if d.Display.Alignment == "" {
		d.Display.Alignment = def.Display.Alignment
	}
	if d.ASCII.SmallLogo == "" {
		d.ASCII.SmallLogo = def.ASCII.SmallLogo
	}
	if g := d.Effects.GlowIntensity; math.IsNaN(g) || math.IsInf(g, 0) {
		d.Effects.GlowIntensity = 0
	}
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := *d
	out.Colors = Colors{
		Title:     d.Colors.Title.Clone(),
		Subtitle:  d.Colors.Subtitle.Clone(),
		Key:       d.Colors.Key.Clone(),
		Value:     d.Colors.Value.Clone(),
		Separator: d.Colors.Separator.Clone(),
		Logo:      d.Colors.Logo.Clone(),
		Accent:    d.Colors.Accent.Clone(),
	}
	return &out
}
