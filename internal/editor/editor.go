// Package editor is the theme editor controller. It owns the color table,
// form values, active tab, export format, editor mode and the current
// notification. The terminal and browser editors are views over one Editor.
package editor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/dkoosis/rtheme/internal/prefs"
	"github.com/dkoosis/rtheme/pkg/codec"
	"github.com/dkoosis/rtheme/pkg/preview"
	"github.com/dkoosis/rtheme/pkg/theme"
)

// Sentinel errors.
var (
	ErrUnknownColor  = errors.New("unknown color")
	ErrUnknownField  = errors.New("unknown field")
	ErrUnknownEffect = errors.New("unknown effect")
	ErrUnknownTab    = errors.New("unknown tab")
)

// ModeStore persists the light/dark editor mode.
type ModeStore interface {
	Theme() (string, error)
	SetTheme(mode string) error
}

// Editor is safe for concurrent use.
type Editor struct {
	mu     sync.Mutex
	colors theme.Colors
	form   Form
	format codec.Format
	tab    string
	mode   string
	note   *Notification

	info  theme.SampleInfo
	store ModeStore
	clip  Clipboard
	now   func() time.Time
	log   zerolog.Logger

	// onChange is called after every state change, outside the lock.
	onChange []func()
}

// Option configures an Editor.
type Option func(*Editor)

// WithModeStore persists the editor mode in s.
func WithModeStore(s ModeStore) Option {
	return func(e *Editor) { e.store = s }
}

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(e *Editor) { e.clip = c }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Editor) { e.log = l }
}

// WithClock replaces time.Now, for notification expiry.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

// WithFormat sets the initial export format.
func WithFormat(f codec.Format) Option {
	return func(e *Editor) { e.format = f }
}

// New creates an editor in its initial state.
func New(opts ...Option) *Editor {
	e := &Editor{
		colors: theme.DefaultColors(),
		form:   DefaultForm(),
		format: codec.YAML,
		tab:    Tabs[0],
		mode:   prefs.Dark,
		info:   theme.DefaultSampleInfo(),
		clip:   SystemClipboard{},
		now:    time.Now,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.store != nil {
		mode, err := e.store.Theme()
		if err != nil {
			e.log.Warn().Err(err).Msg("failed to read editor mode, using dark")
		} else {
			e.mode = mode
		}
	}
	return e
}

// OnChange registers fn to run after every state change.
func (e *Editor) OnChange(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onChange = append(e.onChange, fn)
}

func (e *Editor) changed() {
	e.mu.Lock()
	hooks := append([]func(){}, e.onChange...)
	e.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

func (e *Editor) color(name string) (*theme.Color, error) {
	c, ok := e.colors.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return c, nil
}

// SetColorHex sets a color from a hex string. Malformed input clears the
// RGB value rather than failing.
func (e *Editor) SetColorHex(name, hex string) error {
	e.mu.Lock()
	c, err := e.color(name)
	if err == nil {
		c.SetHex(hex)
		e.log.Debug().Str("color", name).Str("hex", hex).Bool("valid", c.RGB != nil).Msg("color changed")
	}
	e.mu.Unlock()
	if err != nil {
		return err
	}
	e.changed()
	return nil
}

// SetColorBase sets a color's base name.
func (e *Editor) SetColorBase(name, base string) error {
	e.mu.Lock()
	c, err := e.color(name)
	if err == nil {
		c.Base = base
	}
	e.mu.Unlock()
	if err != nil {
		return err
	}
	e.changed()
	return nil
}

// ToggleEffect flips one effect on a color.
func (e *Editor) ToggleEffect(name, effect string) error {
	if !theme.IsEffect(effect) {
		return fmt.Errorf("%w: %q", ErrUnknownEffect, effect)
	}
	e.mu.Lock()
	c, err := e.color(name)
	if err == nil {
		c.Toggle(effect)
	}
	e.mu.Unlock()
	if err != nil {
		return err
	}
	e.changed()
	return nil
}

// SetField assigns a form field.
func (e *Editor) SetField(key, value string) error {
	e.mu.Lock()
	err := e.form.Set(key, value)
	e.mu.Unlock()
	if err != nil {
		return err
	}
	e.changed()
	return nil
}

// Apply sets several form fields and colors at once. Color keys have the
// form "colors.<name>.hex", "colors.<name>.base" or "colors.<name>.<effect>"
// (toggle). Processing stops at the first error.
func (e *Editor) Apply(patch map[string]string) error {
	e.mu.Lock()
	err := e.applyLocked(patch)
	e.mu.Unlock()
	e.changed()
	return err
}

func (e *Editor) applyLocked(patch map[string]string) error {
	for _, key := range sortedKeys(patch) {
		value := patch[key]
		name, attr, ok := splitColorKey(key)
		if !ok {
			if err := e.form.Set(key, value); err != nil {
				return err
			}
			continue
		}
		c, err := e.color(name)
		if err != nil {
			return err
		}
		switch {
		case attr == "hex":
			c.SetHex(value)
		case attr == "base":
			c.Base = value
		case theme.IsEffect(attr):
			on, err := parseFlag(value)
			if err != nil {
				return fmt.Errorf("invalid value for %s: %w", key, err)
			}
			if c.Has(attr) != on {
				c.Toggle(attr)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
	}
	return nil
}

// Form returns a copy of the form values.
func (e *Editor) Form() Form {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.form
}

// Colors returns a copy of the color table.
func (e *Editor) Colors() theme.Colors {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked().Colors
}

// Format returns the selected export format.
func (e *Editor) Format() codec.Format {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.format
}

// SetFormat selects the export format. Document values are unaffected.
func (e *Editor) SetFormat(f codec.Format) error {
	if _, err := codec.ParseFormat(string(f)); err != nil {
		return err
	}
	e.mu.Lock()
	e.format = f
	e.mu.Unlock()
	e.changed()
	return nil
}

// Tab returns the active tab.
func (e *Editor) Tab() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tab
}

// SetTab activates a tab.
func (e *Editor) SetTab(tab string) error {
	found := false
	for _, t := range Tabs {
		if t == tab {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}
	e.mu.Lock()
	e.tab = tab
	e.mu.Unlock()
	e.changed()
	return nil
}

// Load replaces colors and form values with those of doc.
func (e *Editor) Load(doc *theme.Document) {
	d := doc.Clone()
	d.FillDefaults()
	e.mu.Lock()
	e.colors = d.Colors
	e.form = FormFrom(d)
	e.mu.Unlock()
	e.log.Debug().Str("theme", d.Meta.Name).Msg("theme loaded")
	e.changed()
}

// LoadPreset loads a built-in theme.
func (e *Editor) LoadPreset(name string) error {
	doc, err := theme.Preset(name)
	if err != nil {
		return err
	}
	e.Load(doc)
	return nil
}

// Snapshot builds a fresh document from the current state.
func (e *Editor) Snapshot() *theme.Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Editor) snapshotLocked() *theme.Document {
	d := e.form.document(e.colors)
	return d.Clone()
}

// Export encodes the current document in the selected format.
func (e *Editor) Export() (string, error) {
	e.mu.Lock()
	doc, f := e.snapshotLocked(), e.format
	e.mu.Unlock()
	out, err := codec.Encode(doc, f)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Preview renders the current document with r.
func (e *Editor) Preview(r preview.Renderer) string {
	e.mu.Lock()
	doc, info := e.snapshotLocked(), e.info
	e.mu.Unlock()
	return r.Render(doc, info)
}

// Generate re-encodes the export and confirms it to the user.
func (e *Editor) Generate() (string, error) {
	out, err := e.Export()
	if err != nil {
		e.notify(err.Error(), KindError)
		return "", err
	}
	e.notify("Theme updated successfully!", KindSuccess)
	return out, nil
}

// Refresh re-renders the preview and confirms it to the user.
func (e *Editor) Refresh(r preview.Renderer) string {
	out := e.Preview(r)
	e.notify("Preview updated!", KindSuccess)
	return out
}

// Filename returns the download name for the current document and format.
func (e *Editor) Filename() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return codec.Filename(e.snapshotLocked().Meta.Name, e.format)
}

// Download writes the export to dir as "<name>.<format>" and returns the
// written path.
func (e *Editor) Download(dir string) (string, error) {
	out, err := e.Export()
	if err != nil {
		return "", err
	}
	name := e.Filename()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		e.notify("Failed to save theme", KindError)
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		e.notify("Failed to save theme", KindError)
		return "", fmt.Errorf("failed to write theme: %w", err)
	}
	e.log.Info().Str("path", path).Msg("theme written")
	e.notify("Theme downloaded as "+name+"!", KindSuccess)
	return path, nil
}

// Copy writes the export to the clipboard. Failures are reported both as
// the returned error and as an error notification.
func (e *Editor) Copy() error {
	out, err := e.Export()
	if err == nil {
		err = e.clip.WriteAll(out)
	}
	if err != nil {
		e.log.Warn().Err(err).Msg("clipboard write failed")
		e.notify("Failed to copy to clipboard", KindError)
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	e.notify("Theme copied to clipboard!", KindSuccess)
	return nil
}

// Mode returns the editor's light/dark mode.
func (e *Editor) Mode() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// ToggleMode switches between light and dark and persists the choice.
func (e *Editor) ToggleMode() (string, error) {
	e.mu.Lock()
	e.mode = prefs.Toggle(e.mode)
	mode := e.mode
	e.mu.Unlock()

	var err error
	if e.store != nil {
		if err = e.store.SetTheme(mode); err != nil {
			e.log.Warn().Err(err).Msg("failed to save editor mode")
		}
	}
	e.changed()
	return mode, err
}
