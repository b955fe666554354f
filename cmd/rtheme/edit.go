package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkoosis/rtheme/internal/config"
	"github.com/dkoosis/rtheme/internal/editor"
	"github.com/dkoosis/rtheme/internal/logging"
	"github.com/dkoosis/rtheme/internal/tui"
	"github.com/dkoosis/rtheme/internal/web"
)

type editFlags struct {
	source sourceFlags
}

func newEditCmd(a *app) *cobra.Command {
	var f editFlags
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a theme in the terminal",
		Long: "Open the interactive theme editor. Use tab to move between sections,\n" +
			"enter to edit a value, f to change the export format, d to download\n" +
			"and c to copy the exported theme.",
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.interactive() {
				return usagef("edit needs a terminal; use export or serve instead")
			}
			return a.runEdit(cmd.Context(), f)
		},
	}
	f.source.register(cmd)
	cmd.Flags().StringP("format", "f", "", "initial export format: yaml, json or toml")
	cmd.Flags().StringP("out", "o", "", "directory downloads are written to")
	cmd.Flags().String("editor", "", "command used to edit the custom logo (default $VISUAL or $EDITOR)")
	return cmd
}

func (a *app) runEdit(ctx context.Context, f editFlags) error {
	doc, err := a.document(f.source)
	if err != nil {
		return err
	}
	ed, closeFn, err := a.newEditor(doc, true)
	if err != nil {
		return err
	}
	defer closeFn()

	return tui.Run(ctx, ed, tui.Options{
		OutDir:   a.cfg.OutDir,
		NoColor:  a.cfg.NoColor,
		External: editor.NewExternal(a.cfg.Editor),
		Logger:   logging.Component("tui"),
	})
}

func newServeCmd(a *app) *cobra.Command {
	var source sourceFlags
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Edit a theme in the browser",
		Long:  "Serve the browser theme editor locally. Changes made in the page are\npushed live to every open tab.",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.document(source)
			if err != nil {
				return err
			}
			ed, closeFn, err := a.newEditor(doc, true)
			if err != nil {
				return err
			}
			defer closeFn()

			fmt.Fprintf(a.stdout, "Browser editor at http://%s (Ctrl+C to stop)\n", a.cfg.Listen)
			return web.NewServer(ed, logging.Component("web")).ListenAndServe(cmd.Context(), a.cfg.Listen)
		},
	}
	source.register(cmd)
	cmd.Flags().StringP("format", "f", "", "initial export format: yaml, json or toml")
	cmd.Flags().String("listen", "", "address to listen on (default "+config.DefaultListen+")")
	return cmd
}
