package theme

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex_RoundTrips_When_InputIsValid(t *testing.T) {
	t.Parallel()

	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 51 {
				hex := fmt.Sprintf("#%02x%02x%02x", r, g, b)
				rgb, ok := ParseHex(hex)
				require.True(t, ok, hex)
				assert.Equal(t, RGB{r, g, b}, rgb)
				assert.Equal(t, hex, rgb.Hex())

				upper := strings.ToUpper(strings.TrimPrefix(hex, "#"))
				rgb2, ok := ParseHex(upper)
				require.True(t, ok, upper)
				assert.Equal(t, hex, rgb2.Hex())
			}
		}
	}
}

func TestParseHex_Rejects_When_InputIsMalformed(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "#", "#fff", "#12345", "#1234567", "12345g", "##123456", " #123456"} {
		_, ok := ParseHex(in)
		assert.False(t, ok, "%q should not parse", in)
	}
}

func TestRGB_Hex_ClampsChannels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#00ff80", RGB{-4, 300, 128}.Hex())
	assert.False(t, RGB{-4, 300, 128}.Valid())
	assert.True(t, RGB{0, 255, 128}.Valid())
}

func TestRGB_CSS(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "rgb(0, 255, 255)", RGB{0, 255, 255}.CSS())
}

func TestColor_SetHex_StoresNil_When_Malformed(t *testing.T) {
	t.Parallel()

	c := NewColor("cyan", RGB{0, 255, 255})
	c.SetHex("#zzzzzz")
	assert.Nil(t, c.RGB)
	assert.Equal(t, "", c.Hex())

	c.SetHex("FF8000")
	require.NotNil(t, c.RGB)
	assert.Equal(t, RGB{255, 128, 0}, *c.RGB)
	assert.Equal(t, "#ff8000", c.Hex())
}

func TestColor_Toggle_KeepsCanonicalOrder(t *testing.T) {
	t.Parallel()

	c := NewColor("white", RGB{255, 255, 255}, EffectGlow)
	c.Toggle(EffectBold)
	assert.Equal(t, []string{EffectBold, EffectGlow}, c.Effects)
	assert.True(t, c.Has(EffectBold))

	c.Toggle(EffectGlow)
	assert.Equal(t, []string{EffectBold}, c.Effects)

	c.Toggle(EffectBold)
	assert.Equal(t, []string{}, c.Effects)
	assert.False(t, c.Has(EffectBold))
}

func TestColor_Toggle_PreservesUnknownEffects(t *testing.T) {
	t.Parallel()

	c := Color{Base: "red", Effects: []string{"blink", EffectItalic}}
	c.Toggle(EffectBold)
	assert.Equal(t, []string{EffectBold, EffectItalic, "blink"}, c.Effects)
}

func TestColor_Clone_IsIndependent(t *testing.T) {
	t.Parallel()

	anim := "pulse"
	c := NewColor("cyan", RGB{0, 255, 255}, EffectBold)
	c.Animation = &anim

	cp := c.Clone()
	cp.RGB[0] = 9
	cp.Effects[0] = EffectItalic
	*cp.Animation = "fade"

	assert.Equal(t, RGB{0, 255, 255}, *c.RGB)
	assert.Equal(t, []string{EffectBold}, c.Effects)
	assert.Equal(t, "pulse", *c.Animation)
}

func TestNamed_DerivesRGB(t *testing.T) {
	t.Parallel()

	c := Named("Bright_Green", EffectBold)
	require.NotNil(t, c.RGB)
	assert.Equal(t, RGB{85, 255, 85}, *c.RGB)

	unknown := Named("chartreuse")
	assert.Nil(t, unknown.RGB)
	assert.Equal(t, []string{}, unknown.Effects)
}
