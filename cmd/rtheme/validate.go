package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dkoosis/rtheme/internal/version"
	"github.com/dkoosis/rtheme/pkg/theme"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check theme files for problems",
		Long:  "Check that theme files decode and that their values are ones rFetch accepts.\nExits 1 when any file has a problem.",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				problems := validateFile(path)
				if len(problems) == 0 {
					fmt.Fprintf(a.stdout, "ok    %s\n", path)
					continue
				}
				failed++
				fmt.Fprintf(a.stdout, "FAIL  %s\n", path)
				for _, p := range problems {
					fmt.Fprintf(a.stdout, "      %s\n", p)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d invalid", errFailed, failed, len(args))
			}
			return nil
		},
	}
}

func validateFile(path string) []string {
	doc, err := readTheme(path)
	if err != nil {
		return []string{err.Error()}
	}
	err = theme.Validate(doc)
	if err == nil {
		return nil
	}
	var out []string
	for _, e := range unjoin(err) {
		var ve *theme.ValidationError
		if errors.As(e, &ve) {
			out = append(out, ve.Error())
		}
	}
	return out
}

func newPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in presets",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			for _, name := range theme.PresetNames() {
				doc, err := theme.Preset(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\n", name, doc.Meta.Description)
			}
			return tw.Flush()
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  usageArgs(cobra.NoArgs),
		// Version needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(a.stdout, version.String())
		},
	}
}
