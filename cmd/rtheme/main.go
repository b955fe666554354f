// rtheme creates themes for the rFetch system information display.
//
// Usage:
//
//	rtheme                      # interactive editor (when run in a terminal)
//	rtheme export --preset neon --format toml
//	rtheme preview --file mytheme.yaml --watch
//	rtheme convert 'themes/**/*.yaml' --format json
//	rtheme validate mytheme.toml
//	rtheme serve                # browser editor on 127.0.0.1:7878
//
// Exit codes: 0 success, 1 operation or validation failure, 2 usage error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/rtheme/internal/config"
	"github.com/dkoosis/rtheme/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, log: zerolog.Nop()}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	code := exitCode(err)
	fmt.Fprintf(stderr, "rtheme: %v\n", err)
	if code == 2 {
		fmt.Fprintln(stderr, "Run 'rtheme --help' for usage.")
	}
	return code
}

// app carries what every command needs once configuration is resolved.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config
	log    zerolog.Logger
}

// usageError marks a command-line mistake (exit code 2).
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// usageArgs turns an argument validation failure into a usage error.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// errFailed reports that output has already explained the failure.
var errFailed = errors.New("one or more files failed")

func exitCode(err error) int {
	var ue *usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "rtheme",
		Short:         "Create, preview and export rFetch themes",
		Long:          "rtheme is a theme creator for rFetch. Configure colors, effects and layout,\npreview the result live and export it as YAML, JSON or TOML.",
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.interactive() {
				_ = cmd.Help()
				return usagef("no command given and not running in a terminal")
			}
			return a.runEdit(cmd.Context(), editFlags{})
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.Bool("debug", false, "enable debug logging")
	pf.Bool("no-color", false, "disable colored output")
	pf.String("prefs", "", "path of the preferences database")

	root.AddCommand(
		newEditCmd(a),
		newExportCmd(a),
		newPreviewCmd(a),
		newConvertCmd(a),
		newValidateCmd(a),
		newPresetsCmd(a),
		newServeCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup resolves configuration and the logger for the running command.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return &usageError{err: err}
	}
	a.cfg = cfg
	a.log = logging.New(a.stderr, cfg.Level(), true)
	logging.Init(a.log)
	if cfg.File != "" {
		a.log.Debug().Str("file", cfg.File).Msg("config loaded")
	}
	return nil
}

func (a *app) interactive() bool {
	return isTTYReader(a.stdin) && isTTYWriter(a.stdout)
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func isTTYReader(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
