package editor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/rtheme/internal/prefs"
	"github.com/dkoosis/rtheme/pkg/codec"
	"github.com/dkoosis/rtheme/pkg/preview"
	"github.com/dkoosis/rtheme/pkg/theme"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

type fakeStore struct {
	mode  string
	saved []string
}

func (s *fakeStore) Theme() (string, error) { return s.mode, nil }

func (s *fakeStore) SetTheme(mode string) error {
	s.saved = append(s.saved, mode)
	return nil
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestNew_SnapshotMatchesDefaultDocument(t *testing.T) {
	t.Parallel()

	e := New()
	assert.Equal(t, theme.Default(), e.Snapshot())
	assert.Equal(t, codec.YAML, e.Format())
	assert.Equal(t, "meta", e.Tab())
}

func TestSnapshot_FallsBackToDefaults_When_FormEmpty(t *testing.T) {
	t.Parallel()

	e := New()
	for _, key := range []string{"name", "description", "author", "version", "logo_type", "separator", "alignment", "small_logo"} {
		require.NoError(t, e.SetField(key, ""))
	}
	require.NoError(t, e.SetField("padding", "abc"))
	require.NoError(t, e.SetField("glow_intensity", "bright"))

	assert.Equal(t, theme.Default(), e.Snapshot())

	require.NoError(t, e.SetField("padding", "0"))
	assert.Equal(t, 2, e.Snapshot().Display.Padding)

	require.NoError(t, e.SetField("padding", "5"))
	require.NoError(t, e.SetField("glow_intensity", "2.5"))
	doc := e.Snapshot()
	assert.Equal(t, 5, doc.Display.Padding)
	assert.Equal(t, 2.5, doc.Effects.GlowIntensity)
}

func TestSnapshot_ReadsLeadingIntegerOfPadding(t *testing.T) {
	t.Parallel()

	tests := map[string]int{
		"5px":  5,
		"3.7":  3,
		" 7 ":  7,
		"-1":   -1,
		"+4em": 4,
		"px5":  2,
		"-":    2,
		"0px":  2,
	}
	for in, want := range tests {
		e := New()
		require.NoError(t, e.SetField("padding", in))
		assert.Equal(t, want, e.Snapshot().Display.Padding, "padding %q", in)
	}
}

func TestExport_TreatsNonFiniteGlowAsZero(t *testing.T) {
	t.Parallel()

	for _, glow := range []string{"NaN", "inf", "-Inf", "Infinity", "1e999"} {
		for _, f := range codec.Formats {
			e := New(WithFormat(f))
			require.NoError(t, e.SetField("glow_intensity", glow))
			assert.Zero(t, e.Snapshot().Effects.GlowIntensity, "%s/%s", glow, f)

			out, err := e.Export()
			require.NoError(t, err, "%s/%s", glow, f)
			back, err := codec.Decode([]byte(out), f)
			require.NoError(t, err, "%s/%s", glow, f)
			assert.Zero(t, back.Effects.GlowIntensity, "%s/%s", glow, f)
		}

		e := New()
		require.NoError(t, e.SetColorHex("title", "#ff0000"))
		require.NoError(t, e.ToggleEffect("title", "glow"))
		require.NoError(t, e.SetField("glow_intensity", glow))
		html := e.Preview(preview.NewHTML())
		assert.NotContains(t, html, "Inf", glow)
		assert.NotContains(t, html, "NaN", glow)
	}
}

func TestSetColorHex_StoresNil_When_Malformed(t *testing.T) {
	t.Parallel()

	e := New()
	require.NoError(t, e.SetColorHex("key", "#12ab"))
	assert.Nil(t, e.Snapshot().Colors.Key.RGB)

	require.NoError(t, e.SetColorHex("key", "#12AB34"))
	assert.Equal(t, "#12ab34", e.Snapshot().Colors.Key.Hex())

	err := e.SetColorHex("background", "#000000")
	assert.True(t, errors.Is(err, ErrUnknownColor))
}

func TestToggleEffect(t *testing.T) {
	t.Parallel()

	e := New()
	require.NoError(t, e.ToggleEffect("value", theme.EffectItalic))
	assert.Equal(t, []string{theme.EffectItalic}, e.Snapshot().Colors.Value.Effects)

	assert.True(t, errors.Is(e.ToggleEffect("value", "blink"), ErrUnknownEffect))
	assert.True(t, errors.Is(e.ToggleEffect("nope", theme.EffectBold), ErrUnknownColor))
}

func TestSetField_RejectsUnknownField(t *testing.T) {
	t.Parallel()

	e := New()
	assert.True(t, errors.Is(e.SetField("colour", "x"), ErrUnknownField))
	assert.Error(t, e.SetField("show_borders", "maybe"))

	require.NoError(t, e.SetField("show_borders", "on"))
	assert.True(t, e.Snapshot().Display.ShowBorders)
}

func TestApply_SetsFieldsAndColors(t *testing.T) {
	t.Parallel()

	e := New()
	err := e.Apply(map[string]string{
		"name":                   "ocean",
		"colors.accent.hex":      "#0000ff",
		"colors.accent.base":     "blue",
		"colors.accent.bold":     "true",
		"colors.title.bold":      "false",
		"colors.title.underline": "on",
	})
	require.NoError(t, err)

	doc := e.Snapshot()
	assert.Equal(t, "ocean", doc.Meta.Name)
	assert.Equal(t, "blue", doc.Colors.Accent.Base)
	assert.Equal(t, theme.RGB{0, 0, 255}, *doc.Colors.Accent.RGB)
	assert.Equal(t, []string{theme.EffectBold}, doc.Colors.Accent.Effects)
	assert.Equal(t, []string{theme.EffectUnderline}, doc.Colors.Title.Effects)

	assert.True(t, errors.Is(e.Apply(map[string]string{"colors.title.sparkle": "on"}), ErrUnknownField))
}

func TestSetFormat_ChangesOnlyEncoding(t *testing.T) {
	t.Parallel()

	e := New()
	before := e.Snapshot()

	outs := map[codec.Format]string{}
	for _, f := range codec.Formats {
		require.NoError(t, e.SetFormat(f))
		out, err := e.Export()
		require.NoError(t, err)
		outs[f] = out
		assert.Equal(t, before, e.Snapshot())
	}

	for f, out := range outs {
		doc, err := codec.Decode([]byte(out), f)
		require.NoError(t, err)
		assert.Equal(t, before, doc, f)
	}

	assert.True(t, errors.Is(e.SetFormat("xml"), codec.ErrUnknownFormat))
}

func TestSetTab(t *testing.T) {
	t.Parallel()

	e := New()
	require.NoError(t, e.SetTab("effects"))
	assert.Equal(t, "effects", e.Tab())
	assert.True(t, errors.Is(e.SetTab("advanced"), ErrUnknownTab))
}

func TestLoadPreset_ReplacesState(t *testing.T) {
	t.Parallel()

	e := New()
	require.NoError(t, e.LoadPreset("retro"))

	want, err := theme.Preset("retro")
	require.NoError(t, err)
	assert.Equal(t, want, e.Snapshot())
	assert.Equal(t, "retro.yaml", e.Filename())

	assert.True(t, errors.Is(e.LoadPreset("nope"), theme.ErrUnknownPreset))
}

func TestDownload_WritesNamedFile(t *testing.T) {
	t.Parallel()

	c := &clock{t: time.Unix(100, 0)}
	e := New(WithClock(c.now), WithFormat(codec.TOML))
	require.NoError(t, e.SetField("name", "sunset"))

	dir := filepath.Join(t.TempDir(), "out")
	path, err := e.Download(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sunset.toml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[meta]\nname = \"sunset\"\n"))

	n, ok := e.Notification()
	require.True(t, ok)
	assert.Equal(t, "Theme downloaded as sunset.toml!", n.Message)
	assert.Equal(t, KindSuccess, n.Kind)
}

func TestCopy_ReportsOutcome(t *testing.T) {
	t.Parallel()

	clip := &fakeClipboard{}
	e := New(WithClipboard(clip), WithFormat(codec.JSON))
	require.NoError(t, e.Copy())
	assert.Contains(t, clip.text, `"name": "my_theme"`)
	n, ok := e.Notification()
	require.True(t, ok)
	assert.Equal(t, "Theme copied to clipboard!", n.Message)

	clip.err = errors.New("no display")
	assert.Error(t, e.Copy())
	n, ok = e.Notification()
	require.True(t, ok)
	assert.Equal(t, "Failed to copy to clipboard", n.Message)
	assert.Equal(t, KindError, n.Kind)
}

func TestNotification_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	c := &clock{t: time.Unix(0, 0)}
	e := New(WithClock(c.now))

	_, err := e.Generate()
	require.NoError(t, err)
	n, ok := e.Notification()
	require.True(t, ok)
	assert.Equal(t, "Theme updated successfully!", n.Message)

	c.advance(NotificationTTL - time.Millisecond)
	_, ok = e.Notification()
	assert.True(t, ok)

	c.advance(time.Millisecond)
	_, ok = e.Notification()
	assert.False(t, ok)
}

func TestDismiss_IgnoresStaleID(t *testing.T) {
	t.Parallel()

	e := New()
	e.Refresh(preview.NewPlain())
	first, ok := e.Notification()
	require.True(t, ok)
	assert.Equal(t, "Preview updated!", first.Message)

	_, err := e.Generate()
	require.NoError(t, err)
	e.Dismiss(first.ID)
	_, ok = e.Notification()
	assert.True(t, ok, "newer notification survives a stale dismiss")

	second, _ := e.Notification()
	e.Dismiss(second.ID)
	_, ok = e.Notification()
	assert.False(t, ok)
}

func TestToggleMode_PersistsChoice(t *testing.T) {
	t.Parallel()

	store := &fakeStore{mode: prefs.Light}
	e := New(WithModeStore(store))
	assert.Equal(t, prefs.Light, e.Mode())

	mode, err := e.ToggleMode()
	require.NoError(t, err)
	assert.Equal(t, prefs.Dark, mode)
	assert.Equal(t, []string{prefs.Dark}, store.saved)
}

func TestToggleMode_UsesSQLiteStore(t *testing.T) {
	t.Parallel()

	s, err := prefs.Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.SetTheme(prefs.Dark))

	e := New(WithModeStore(s))
	_, err = e.ToggleMode()
	require.NoError(t, err)

	got, err := s.Theme()
	require.NoError(t, err)
	assert.Equal(t, prefs.Light, got)
}

func TestOnChange_FiresAfterMutation(t *testing.T) {
	t.Parallel()

	e := New()
	var mu sync.Mutex
	calls := 0
	e.OnChange(func() {
		mu.Lock()
		calls++
		mu.Unlock()
		// Hooks run outside the lock and may read state.
		_ = e.Snapshot()
	})

	require.NoError(t, e.SetField("name", "x"))
	require.NoError(t, e.SetColorBase("title", "red"))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, calls)
}

func TestEditor_ConcurrentUse(t *testing.T) {
	t.Parallel()

	e := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = e.SetColorHex("accent", "#10203"+string(rune('0'+i)))
			_, _ = e.Export()
			_ = e.Preview(preview.NewHTML())
		}(i)
	}
	wg.Wait()
	assert.NotNil(t, e.Snapshot().Colors.Accent.RGB)
}

func TestPreview_UsesRenderer(t *testing.T) {
	t.Parallel()

	e := New()
	require.NoError(t, e.SetField("logo_type", theme.LogoNone))
	out := e.Preview(preview.NewPlain())
	assert.True(t, strings.HasPrefix(out, "rfetch\n  Os: Arch Linux\n"), out)
}
