// Package theme defines the rFetch theme model: named colors with effects,
// display layout, logo art, and global effect flags.
package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Effect names accepted in a Color's effect list.
const (
	EffectBold      = "bold"
	EffectItalic    = "italic"
	EffectUnderline = "underline"
	EffectGlow      = "glow"
)

// EffectNames lists the supported effects in display order.
var EffectNames = []string{EffectBold, EffectItalic, EffectUnderline, EffectGlow}

// IsEffect reports whether name is a supported effect.
func IsEffect(name string) bool {
	for _, e := range EffectNames {
		if e == name {
			return true
		}
	}
	return false
}

// RGB is a 24-bit color as three 0-255 channels.
type RGB [3]int

var hexPattern = regexp.MustCompile(`(?i)^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`)

// ParseHex parses "#rrggbb" or "rrggbb" (any case).
// ok is false when s is not a 6-digit hex color.
func ParseHex(s string) (rgb RGB, ok bool) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		rgb[i] = int(v)
	}
	return rgb, true
}

// Hex renders the color as lowercase "#rrggbb". Channels are clamped to 0-255.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clamp(c[0]), clamp(c[1]), clamp(c[2]))
}

// CSS renders the color as a CSS rgb() expression.
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c[0], c[1], c[2])
}

// Valid reports whether every channel is within 0-255.
func (c RGB) Valid() bool {
	for _, v := range c {
		if v < 0 || v > 255 {
			return false
		}
	}
	return true
}

func clamp(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return v
}

// Color is one named theme color.
// RGB is nil when the last hex input for this color was malformed.
type Color struct {
	Base      string   `json:"base" yaml:"base" toml:"base"`
	RGB       *RGB     `json:"rgb" yaml:"rgb" toml:"rgb,omitempty"`
	Effects   []string `json:"effects" yaml:"effects" toml:"effects"`
	Animation *string  `json:"animation" yaml:"animation" toml:"animation,omitempty"`
}

// NewColor builds a color with an explicit RGB value.
func NewColor(base string, rgb RGB, effects ...string) Color {
	if effects == nil {
		effects = []string{}
	}
	return Color{Base: base, RGB: &rgb, Effects: effects}
}

// Named builds a color whose RGB value is derived from a base color name.
// Unknown names leave RGB nil.
func Named(base string, effects ...string) Color {
	c := Color{Base: base, Effects: effects}
	if c.Effects == nil {
		c.Effects = []string{}
	}
	if rgb, ok := NamedRGB(base); ok {
		c.RGB = &rgb
	}
	return c
}

// Has reports whether the color carries the given effect.
func (c Color) Has(effect string) bool {
	for _, e := range c.Effects {
		if e == effect {
			return true
		}
	}
	return false
}

// SetHex stores the parsed hex value. Malformed input stores nil.
func (c *Color) SetHex(hex string) {
	if rgb, ok := ParseHex(hex); ok {
		c.RGB = &rgb
		return
	}
	c.RGB = nil
}

// Hex returns the color's hex form, or "" when RGB is unset.
func (c Color) Hex() string {
	if c.RGB == nil {
		return ""
	}
	return c.RGB.Hex()
}

// Toggle adds the effect when absent and removes it when present.
// Effects keep the canonical EffectNames order.
func (c *Color) Toggle(effect string) {
	want := make(map[string]bool, len(c.Effects)+1)
	for _, e := range c.Effects {
		want[e] = true
	}
	want[effect] = !want[effect]

	out := []string{}
	for _, e := range EffectNames {
		if want[e] {
			out = append(out, e)
			delete(want, e)
		}
	}
	// Unknown effects from decoded files are kept after the known ones.
	for _, e := range c.Effects {
		if want[e] {
			out = append(out, e)
			delete(want, e)
		}
	}
	c.Effects = out
}

// Clone returns a deep copy.
func (c Color) Clone() Color {
	out := Color{Base: c.Base, Effects: append([]string{}, c.Effects...)}
	if c.RGB != nil {
		rgb := *c.RGB
		out.RGB = &rgb
	}
	if c.Animation != nil {
		a := *c.Animation
		out.Animation = &a
	}
	return out
}

func (c Color) isZero() bool {
	return c.Base == "" && c.RGB == nil && len(c.Effects) == 0 && c.Animation == nil
}

// namedColors maps base color names to the RGB values the editor assigns them.
var namedColors = map[string]RGB{
	"black":          {0, 0, 0},
	"red":            {255, 0, 0},
	"green":          {0, 255, 0},
	"yellow":         {255, 255, 0},
	"blue":           {0, 0, 255},
	"magenta":        {255, 0, 255},
	"cyan":           {0, 255, 255},
	"white":          {255, 255, 255},
	"bright_black":   {128, 128, 128},
	"bright_red":     {255, 85, 85},
	"bright_green":   {85, 255, 85},
	"bright_yellow":  {255, 255, 85},
	"bright_blue":    {85, 85, 255},
	"bright_magenta": {255, 85, 255},
	"bright_cyan":    {85, 255, 255},
	"bright_white":   {255, 255, 255},
}

// NamedRGB looks up the RGB value of a base color name.
func NamedRGB(base string) (RGB, bool) {
	rgb, ok := namedColors[strings.ToLower(strings.TrimSpace(base))]
	return rgb, ok
}
