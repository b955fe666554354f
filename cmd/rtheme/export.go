package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dkoosis/rtheme/internal/highlight"
	"github.com/dkoosis/rtheme/internal/prefs"
	"github.com/dkoosis/rtheme/pkg/codec"
	"github.com/dkoosis/rtheme/pkg/theme"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		source   sourceFlags
		toStdout bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a theme file",
		Long: "Export a preset or theme file as <name>.<format> in the output directory.\n" +
			"With no --file or --preset the default template is exported.",
		Example: "  rtheme export --preset neon --format toml\n  rtheme export --file mine.yaml --format json --stdout",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.document(source)
			if err != nil {
				return err
			}
			a.warnInvalid(doc)

			ed, _, err := a.newEditor(doc, false)
			if err != nil {
				return err
			}
			if toStdout {
				out, err := ed.Export()
				if err != nil {
					return err
				}
				if isTTYWriter(a.stdout) && !a.cfg.NoColor {
					out = highlight.Code(out, ed.Format(), highlight.StyleFor(backgroundMode()))
				}
				_, err = fmt.Fprint(a.stdout, out)
				return err
			}
			path, err := ed.Download(a.cfg.OutDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Wrote %s\n", path)
			return nil
		},
	}
	source.register(cmd)
	cmd.Flags().StringP("format", "f", "", "output format: yaml, json or toml (default yaml)")
	cmd.Flags().StringP("out", "o", "", "output directory (default .)")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "print to stdout instead of writing a file")
	return cmd
}

// warnInvalid logs validation problems without failing the command.
func (a *app) warnInvalid(doc *theme.Document) {
	err := theme.Validate(doc)
	if err == nil {
		return
	}
	for _, e := range unjoin(err) {
		a.log.Warn().Msg(e.Error())
	}
}

func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

func backgroundMode() string {
	if lipgloss.HasDarkBackground() {
		return prefs.Dark
	}
	return prefs.Light
}

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert GLOB...",
		Short: "Convert theme files to another format",
		Long: "Convert theme files between yaml, json and toml. Patterns support ** and\n" +
			"are matched by rtheme, so quote them. Converted files are written next to\n" +
			"their source unless --out is given.",
		Example: "  rtheme convert 'themes/**/*.yaml' --format toml",
		Args:    usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expandGlobs(args)
			if err != nil {
				return err
			}
			outDir := ""
			if cmd.Flags().Changed("out") {
				outDir = a.cfg.OutDir
			}
			return a.convert(paths, a.cfg.ExportFormat(), outDir)
		},
	}
	cmd.Flags().StringP("format", "f", "", "target format: yaml, json or toml (default yaml)")
	cmd.Flags().StringP("out", "o", "", "output directory (default: next to each source)")
	return cmd
}

// expandGlobs resolves every pattern; a pattern matching nothing is an error.
func expandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, p := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return nil, usagef("invalid pattern %q", p)
		}
		matches, err := doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", p, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", p)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

func (a *app) convert(paths []string, to codec.Format, outDir string) error {
	failed := 0
	for _, src := range paths {
		dst, err := convertFile(src, to, outDir)
		switch {
		case err != nil:
			failed++
			fmt.Fprintf(a.stderr, "%s: %v\n", src, err)
		case dst == "":
			a.log.Info().Str("file", src).Msg("already in target format, skipped")
		default:
			fmt.Fprintf(a.stdout, "%s -> %s\n", src, dst)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d not converted", errFailed, failed, len(paths))
	}
	return nil
}

// convertFile writes src re-encoded as to and returns the new path, or ""
// when the result would overwrite src.
func convertFile(src string, to codec.Format, outDir string) (string, error) {
	doc, err := readTheme(src)
	if err != nil {
		return "", err
	}
	out, err := codec.Encode(doc, to)
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(src)
	if outDir != "" {
		dir = outDir
	}
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	dst := filepath.Join(dir, base+"."+to.String())
	if filepath.Clean(dst) == filepath.Clean(src) {
		return "", nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return dst, nil
}
