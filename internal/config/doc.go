// Package config handles configuration loading and merging for rtheme.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--format, --out, --preset, --listen, --no-color, --debug, ...)
//  2. Environment variables (RTHEME_FORMAT, RTHEME_OUT_DIR, RTHEME_DEBUG, NO_COLOR, ...)
//  3. YAML config file (.rtheme.yaml in the working directory or ~/.config/rtheme/.rtheme.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # Key Configuration Options
//
//   - format: export format, one of yaml, json or toml (default yaml)
//   - out_dir: directory that downloads and conversions are written to (default ".")
//   - preset: built-in theme the editor starts from (default: the blank template)
//   - listen: address of the browser editor (default 127.0.0.1:7878)
//   - log_level: zerolog level name (default info)
//   - no_color: render previews without ANSI styling
//   - prefs_path: location of the preference database
//   - editor: command used to edit logo art (default $VISUAL, then $EDITOR)
//
// # Environment Variables
//
// Every key can be set as RTHEME_<KEY>. In addition:
//
//   - NO_COLOR: any non-empty value disables colors (https://no-color.org)
//   - RTHEME_DEBUG: any true value forces log_level to debug
package config
