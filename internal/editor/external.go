package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// External edits multi-line values, such as custom logo art, in the user's
// own text editor.
type External struct {
	cmd string
}

// NewExternal creates an External editor. An empty command falls back to
// $VISUAL, then $EDITOR, then vi.
func NewExternal(cmd string) *External {
	if cmd == "" {
		cmd = os.Getenv("VISUAL")
	}
	if cmd == "" {
		cmd = os.Getenv("EDITOR")
	}
	if cmd == "" {
		cmd = "vi"
	}
	return &External{cmd: cmd}
}

// Command returns the editor command line.
func (x *External) Command() string {
	return x.cmd
}

// Prepare writes content to a temp file and returns the command that edits
// it. The caller runs cmd (directly or through tea.ExecProcess) and then
// calls Collect with the returned path.
func (x *External) Prepare(content string) (*exec.Cmd, string, error) {
	tmp, err := os.CreateTemp("", "rtheme-logo-*.txt")
	if err != nil {
		return nil, "", fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, "", fmt.Errorf("failed to write temp file: %w", err)
	}
	tmp.Close()

	parts := strings.Fields(x.cmd)
	cmd := exec.Command(parts[0], append(parts[1:], tmp.Name())...)
	return cmd, tmp.Name(), nil
}

// Collect reads the edited file back and removes it. A single trailing
// newline added by the editor is dropped.
func (x *External) Collect(path string) (string, error) {
	defer os.Remove(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// Edit runs the editor on content attached to the current terminal and
// returns the edited text.
func (x *External) Edit(content string) (string, error) {
	cmd, path, err := x.Prepare(content)
	if err != nil {
		return "", err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("editor %q failed: %w", x.cmd, err)
	}
	return x.Collect(path)
}
