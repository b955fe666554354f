package theme

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned by Preset for names not in PresetNames.
var ErrUnknownPreset = errors.New("unknown preset")

const presetAuthor = "rFetch Team"

const neonLogo = `    ██████╗ ███████╗███████╗████████╗ ██████╗██╗  ██╗
    ██╔══██╗██╔════╝██╔════╝╚══██╔══╝██╔════╝██║  ██║
    ██████╔╝█████╗  █████╗     ██║   ██║     ███████║
    ██╔══██╗██╔══╝  ██╔══╝     ██║   ██║     ██╔══██║
    ██║  ██║██║     ███████╗   ██║   ╚██████╗██║  ██║
    ╚═╝  ╚═╝╚═╝     ╚══════╝   ╚═╝    ╚═════╝╚═╝  ╚═╝`

const retroLogo = `    ┌─────────────────────────────────────┐
    │  ██████  ███████ ███████ ████████   │
    │  ██   ██ ██      ██         ██      │
    │  ██████  █████   █████      ██      │
    │  ██   ██ ██      ██         ██      │
    │  ██   ██ ██      ███████    ██      │
    └─────────────────────────────────────┘`

// PresetNames lists the built-in presets in display order.
func PresetNames() []string {
	return []string{"default", "neon", "minimal", "retro"}
}

// Preset returns a fresh copy of a built-in theme.
func Preset(name string) (*Document, error) {
	switch name {
	case "default":
		return defaultPreset(), nil
	case "neon":
		return neonPreset(), nil
	case "minimal":
		return minimalPreset(), nil
	case "retro":
		return retroPreset(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

func defaultPreset() *Document {
	d := Default()
	d.Meta = Meta{
		Name:        "default",
		Description: "Default rFetch theme with balanced colors",
		Author:      presetAuthor,
		Version:     "1.0.0",
	}
	return d
}

func neonPreset() *Document {
	d := Default()
	d.Meta = Meta{
		Name:        "neon",
		Description: "Bright neon theme with glowing effects and animations",
		Author:      presetAuthor,
		Version:     "1.0.0",
	}
	d.Colors = Colors{
		Title:     Named("bright_cyan", EffectBold, EffectGlow),
		Subtitle:  Named("bright_magenta", EffectItalic, EffectGlow),
		Key:       Named("bright_yellow", EffectBold, EffectGlow),
		Value:     Named("bright_white", EffectGlow),
		Separator: Named("bright_blue", EffectGlow),
		Logo:      Named("bright_cyan", EffectBold, EffectGlow),
		Accent:    Named("bright_magenta", EffectGlow),
	}
	d.Display.LogoType = LogoASCII
	d.Display.Separator = " ▶ "
	d.Display.Padding = 3
	d.Display.ShowBorders = true
	d.ASCII.CustomLogo = neonLogo
	d.Effects = EffectFlags{Transitions: true, Shadows: true, GlowIntensity: 4}
	return d
}

func minimalPreset() *Document {
	d := Default()
	d.Meta = Meta{
		Name:        "minimal",
		Description: "Clean and minimal theme with essential information only",
		Author:      presetAuthor,
		Version:     "1.0.0",
	}
	d.Colors = Colors{
		Title:     Named("white", EffectBold),
		Subtitle:  Named("bright_black"),
		Key:       Named("bright_black"),
		Value:     Named("white"),
		Separator: Named("bright_black"),
		Logo:      Named("white"),
		Accent:    Named("bright_black"),
	}
	d.Display.LogoType = LogoSmall
	d.Display.Separator = " "
	d.Display.Padding = 1
	return d
}

func retroPreset() *Document {
	d := Default()
	d.Meta = Meta{
		Name:        "retro",
		Description: "Vintage terminal theme with classic green colors",
		Author:      presetAuthor,
		Version:     "1.0.0",
	}
	d.Colors = Colors{
		Title:     Named("bright_green", EffectBold),
		Subtitle:  Named("green"),
		Key:       Named("green"),
		Value:     Named("bright_green"),
		Separator: Named("green"),
		Logo:      Named("bright_green", EffectBold),
		Accent:    Named("yellow"),
	}
	d.Display.LogoType = LogoASCII
	d.Display.ShowBorders = true
	d.ASCII.CustomLogo = retroLogo
	return d
}
