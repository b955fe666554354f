package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dkoosis/rtheme/internal/logging"
	"github.com/dkoosis/rtheme/internal/watch"
	"github.com/dkoosis/rtheme/pkg/preview"
	"github.com/dkoosis/rtheme/pkg/theme"
)

const clearScreen = "\x1b[H\x1b[2J"

func newPreviewCmd(a *app) *cobra.Command {
	var (
		source  sourceFlags
		asHTML  bool
		watchIt bool
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a theme with sample system information",
		Example: "  rtheme preview --preset retro\n" +
			"  rtheme preview --file mine.toml --watch\n" +
			"  rtheme preview --preset neon --html > neon.html",
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if watchIt && source.file == "" {
				return usagef("--watch needs --file")
			}
			r := a.renderer(asHTML)
			doc, err := a.document(source)
			if err != nil {
				return err
			}
			fmt.Fprint(a.stdout, render(r, doc))
			if !watchIt {
				return nil
			}
			return a.watchPreview(cmd.Context(), source.file, r)
		},
	}
	source.register(cmd)
	cmd.Flags().BoolVar(&asHTML, "html", false, "print the HTML preview markup instead of ANSI text")
	cmd.Flags().BoolVarP(&watchIt, "watch", "w", false, "re-render whenever --file changes")
	return cmd
}

func (a *app) renderer(asHTML bool) preview.Renderer {
	switch {
	case asHTML:
		return preview.NewHTML()
	case a.cfg.NoColor:
		return preview.NewPlain()
	}
	return preview.NewTerminal(lipgloss.NewRenderer(a.stdout))
}

func render(r preview.Renderer, doc *theme.Document) string {
	out := r.Render(doc, theme.DefaultSampleInfo())
	if _, ok := r.(*preview.HTML); ok {
		out += "\n"
	}
	return out
}

// watchPreview re-renders path after each change until ctx is done. A file
// that fails to decode is reported and the watch continues.
func (a *app) watchPreview(ctx context.Context, path string, r preview.Renderer) error {
	w, err := watch.New(path, watch.DefaultDebounce, logging.Component("watch"))
	if err != nil {
		return err
	}
	a.log.Info().Str("file", w.Path()).Msg("watching for changes (Ctrl+C to stop)")
	return w.Run(ctx, func(string) {
		doc, err := readTheme(path)
		if err != nil {
			a.log.Error().Err(err).Msg("theme not reloaded")
			return
		}
		if isTTYWriter(a.stdout) {
			fmt.Fprint(a.stdout, clearScreen)
		}
		fmt.Fprint(a.stdout, render(r, doc))
	})
}
