package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/rtheme/pkg/codec"
	"github.com/dkoosis/rtheme/pkg/theme"
)

// isolate runs the test in a fresh working directory with no config file
// and no RTHEME_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	for _, k := range []string{"NO_COLOR", "RTHEME_FORMAT", "RTHEME_OUT_DIR", "RTHEME_PRESET", "RTHEME_LISTEN",
		"RTHEME_LOG_LEVEL", "RTHEME_DEBUG", "RTHEME_NO_COLOR", "RTHEME_PREFS_PATH", "RTHEME_EDITOR"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	return dir
}

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(""), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeTheme(t *testing.T, path string, doc *theme.Document, f codec.Format) {
	t.Helper()
	data, err := codec.Encode(doc, f)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestVersion_PrintsBuildInfo(t *testing.T) {
	isolate(t)
	code, out, _ := runCLI("version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "rtheme "), out)
}

func TestPresets_ListsBuiltins(t *testing.T) {
	isolate(t)
	code, out, _ := runCLI("presets")
	require.Equal(t, 0, code)
	for _, name := range theme.PresetNames() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Vintage terminal theme with classic green colors")
}

func TestExport_WritesPresetFile(t *testing.T) {
	dir := isolate(t)
	code, out, stderr := runCLI("export", "--preset", "neon", "--format", "toml", "--out", "themes")
	require.Equal(t, 0, code, stderr)

	path := filepath.Join("themes", "neon.toml")
	assert.Contains(t, out, "Wrote "+path)
	data, err := os.ReadFile(filepath.Join(dir, path))
	require.NoError(t, err)
	doc, err := codec.Decode(data, codec.TOML)
	require.NoError(t, err)
	want, _ := theme.Preset("neon")
	assert.Equal(t, want, doc)
}

func TestExport_PrintsTemplateToStdout(t *testing.T) {
	isolate(t)
	code, out, _ := runCLI("export", "--stdout", "-f", "json")
	require.Equal(t, 0, code)

	var got struct {
		Meta struct {
			Name string `json:"name"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "my_theme", got.Meta.Name)
}

func TestExport_UsesFormatFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("RTHEME_FORMAT", "toml")
	code, out, _ := runCLI("export", "--stdout")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "[meta]\n"), out)
}

func TestExport_ReadsFileInAnyFormat(t *testing.T) {
	dir := isolate(t)
	doc, _ := theme.Preset("retro")
	// No extension: the format is sniffed from content.
	writeTheme(t, filepath.Join(dir, "retro-theme"), doc, codec.JSON)

	code, out, stderr := runCLI("export", "--file", "retro-theme", "--stdout", "--format", "yaml")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, `name: "retro"`)
}

func TestPreview_RendersPresetAsText(t *testing.T) {
	isolate(t)
	code, out, _ := runCLI("preview", "--preset", "minimal", "--no-color")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "rfetch\n"), out)
	assert.Contains(t, out, "🎨")
	assert.Contains(t, out, "Arch Linux")
	assert.NotContains(t, out, "\x1b[")
}

func TestPreview_RendersHTML(t *testing.T) {
	isolate(t)
	code, out, _ := runCLI("preview", "--html")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, `<div class="terminal-content">`), out)
}

func TestConvert_WritesNextToSources(t *testing.T) {
	dir := isolate(t)
	neon, _ := theme.Preset("neon")
	retro, _ := theme.Preset("retro")
	writeTheme(t, filepath.Join(dir, "themes", "neon.yaml"), neon, codec.YAML)
	writeTheme(t, filepath.Join(dir, "themes", "old", "retro.yaml"), retro, codec.YAML)

	code, out, stderr := runCLI("convert", "themes/**/*.yaml", "--format", "json")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, filepath.Join("themes", "neon.json"))

	data, err := os.ReadFile(filepath.Join(dir, "themes", "old", "retro.json"))
	require.NoError(t, err)
	doc, err := codec.Decode(data, codec.JSON)
	require.NoError(t, err)
	assert.Equal(t, retro, doc)
}

func TestConvert_WritesToOutDir(t *testing.T) {
	dir := isolate(t)
	writeTheme(t, filepath.Join(dir, "a.json"), theme.Default(), codec.JSON)

	code, _, stderr := runCLI("convert", "*.json", "-f", "toml", "-o", "out")
	require.Equal(t, 0, code, stderr)
	assert.FileExists(t, filepath.Join(dir, "out", "a.toml"))
}

func TestConvert_SkipsFilesAlreadyInTargetFormat(t *testing.T) {
	dir := isolate(t)
	writeTheme(t, filepath.Join(dir, "a.yaml"), theme.Default(), codec.YAML)
	before, err := os.ReadFile(filepath.Join(dir, "a.yaml"))
	require.NoError(t, err)

	code, out, _ := runCLI("convert", "a.yaml", "-f", "yaml")
	require.Equal(t, 0, code)
	assert.Empty(t, out)
	after, err := os.ReadFile(filepath.Join(dir, "a.yaml"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestConvert_Fails_When_NothingMatches(t *testing.T) {
	isolate(t)
	code, _, stderr := runCLI("convert", "missing/*.yaml", "-f", "json")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "no files match")
}

func TestConvert_ReportsUndecodableFiles(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{nope"), 0o644))
	writeTheme(t, filepath.Join(dir, "good.json"), theme.Default(), codec.JSON)

	code, out, stderr := runCLI("convert", "*.json", "-f", "yaml")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "broken.json")
	assert.Contains(t, out, "good.yaml")
}

func TestValidate_ReportsProblems(t *testing.T) {
	dir := isolate(t)
	writeTheme(t, filepath.Join(dir, "good.yaml"), theme.Default(), codec.YAML)
	bad := theme.Default()
	bad.Meta.Version = "1.0"
	bad.Display.Padding = 40
	writeTheme(t, filepath.Join(dir, "bad.toml"), bad, codec.TOML)

	code, out, _ := runCLI("validate", "good.yaml", "bad.toml")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "ok    good.yaml")
	assert.Contains(t, out, "FAIL  bad.toml")
	assert.Contains(t, out, "meta.version")
	assert.Contains(t, out, "display.padding")
}

func TestValidate_Succeeds_When_AllValid(t *testing.T) {
	dir := isolate(t)
	for _, name := range theme.PresetNames() {
		doc, _ := theme.Preset(name)
		writeTheme(t, filepath.Join(dir, name+".json"), doc, codec.JSON)
	}
	code, _, _ := runCLI("validate", "default.json", "neon.json", "minimal.json", "retro.json")
	assert.Equal(t, 0, code)
}

func TestUsageErrors_ExitTwo(t *testing.T) {
	isolate(t)
	cases := map[string][]string{
		"no command without a terminal": {},
		"unknown command":               {"paint"},
		"unknown flag":                  {"export", "--colour"},
		"missing args":                  {"validate"},
		"unknown preset":                {"export", "--preset", "vaporwave"},
		"unknown format":                {"export", "--format", "xml"},
		"watch without file":            {"preview", "--watch"},
		"edit without a terminal":       {"edit"},
	}
	for name, args := range cases {
		code, _, stderr := runCLI(args...)
		assert.Equal(t, 2, code, name)
		assert.Contains(t, stderr, "rtheme --help", name)
	}
}

func TestServe_Fails_When_AddressInvalid(t *testing.T) {
	isolate(t)
	code, _, stderr := runCLI("serve", "--listen", "127.0.0.1:-1")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "failed to listen")
}

func TestDebugFlag_EnablesDebugLogging(t *testing.T) {
	isolate(t)
	writeTheme(t, "a.yaml", theme.Default(), codec.YAML)
	code, _, stderr := runCLI("--debug", "convert", "a.yaml", "-f", "yaml")
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "already in target format")
}
