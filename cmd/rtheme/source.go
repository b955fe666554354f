package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoosis/rtheme/internal/detect"
	"github.com/dkoosis/rtheme/internal/editor"
	"github.com/dkoosis/rtheme/internal/logging"
	"github.com/dkoosis/rtheme/internal/prefs"
	"github.com/dkoosis/rtheme/pkg/codec"
	"github.com/dkoosis/rtheme/pkg/theme"
)

// sourceFlags selects the theme a command starts from.
type sourceFlags struct {
	file string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.file, "file", "", "start from a theme file (yaml, json or toml)")
	cmd.Flags().StringP("preset", "p", "", "start from a built-in preset")
}

// document loads the --file theme, else the configured preset, else the
// starting template.
func (a *app) document(s sourceFlags) (*theme.Document, error) {
	switch {
	case s.file != "":
		return readTheme(s.file)
	case a.cfg.Preset != "":
		return theme.Preset(a.cfg.Preset)
	}
	return theme.Default(), nil
}

// readTheme decodes a theme file, detecting its format from the extension
// or, failing that, its content.
func readTheme(path string) (*theme.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	f := detect.Format(path, data)
	if f == "" {
		return nil, fmt.Errorf("%s: cannot tell whether this is yaml, json or toml", path)
	}
	doc, err := codec.Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// newEditor creates the controller, loaded with the starting document. When
// persist is set the light/dark mode is kept in the prefs store; the
// returned func closes it.
func (a *app) newEditor(doc *theme.Document, persist bool) (*editor.Editor, func(), error) {
	opts := []editor.Option{
		editor.WithLogger(logging.Component("editor")),
		editor.WithFormat(a.cfg.ExportFormat()),
	}
	closeFn := func() {}
	if persist {
		store, err := prefs.Open(a.cfg.PrefsPath)
		if err != nil {
			a.log.Warn().Err(err).Msg("preferences unavailable, mode will not be saved")
			store, err = prefs.Open("")
			if err != nil {
				return nil, nil, err
			}
		}
		opts = append(opts, editor.WithModeStore(store))
		closeFn = func() {
			if err := store.Close(); err != nil {
				a.log.Warn().Err(err).Msg("failed to close preferences")
			}
		}
	}
	ed := editor.New(opts...)
	ed.Load(doc)
	return ed, closeFn, nil
}
