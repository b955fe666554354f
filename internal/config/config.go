package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dkoosis/rtheme/internal/prefs"
	"github.com/dkoosis/rtheme/pkg/codec"
	"github.com/dkoosis/rtheme/pkg/theme"
)

// FileName is the config file looked up in the working directory and the
// user config directory.
const FileName = ".rtheme.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RTHEME"

// Defaults.
const (
	DefaultFormat   = "yaml"
	DefaultOutDir   = "."
	DefaultPreset   = "" // the editor's starting template
	DefaultListen   = "127.0.0.1:7878"
	DefaultLogLevel = "info"
)

// Config is the resolved configuration.
type Config struct {
	Format    string `mapstructure:"format"`
	OutDir    string `mapstructure:"out_dir"`
	Preset    string `mapstructure:"preset"`
	Listen    string `mapstructure:"listen"`
	LogLevel  string `mapstructure:"log_level"`
	Debug     bool   `mapstructure:"debug"`
	NoColor   bool   `mapstructure:"no_color"`
	PrefsPath string `mapstructure:"prefs_path"`
	Editor    string `mapstructure:"editor"`

	// File is the config file that was read, or "" when none was found.
	File string `mapstructure:"-"`
}

// ExportFormat returns the parsed export format.
func (c *Config) ExportFormat() codec.Format {
	f, err := codec.ParseFormat(c.Format)
	if err != nil {
		return codec.YAML
	}
	return f
}

// Level returns the zerolog level. Debug overrides log_level.
func (c *Config) Level() zerolog.Level {
	if c.Debug {
		return zerolog.DebugLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Load resolves configuration from defaults, the config file, the
// environment and flags, in increasing priority. Flags that were not set on
// the command line do not override lower-priority sources. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	path := getConfigPath()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.File = path

	// NO_COLOR only ever disables color, and only when no flag said otherwise.
	if os.Getenv("NO_COLOR") != "" && !flagChanged(flags, "no-color") {
		cfg.NoColor = true
	}

	if cfg.PrefsPath == "" {
		if p, err := prefs.DefaultPath(); err == nil {
			cfg.PrefsPath = p
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("out_dir", DefaultOutDir)
	v.SetDefault("preset", DefaultPreset)
	v.SetDefault("listen", DefaultListen)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("debug", false)
	v.SetDefault("no_color", false)
	v.SetDefault("prefs_path", "")
	v.SetDefault("editor", "")
}

func validate(cfg *Config) error {
	var errs []error
	if _, err := codec.ParseFormat(cfg.Format); err != nil {
		errs = append(errs, err)
	}
	if cfg.Preset != "" {
		if _, err := theme.Preset(cfg.Preset); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("invalid log_level %q", cfg.LogLevel))
	}
	return errors.Join(errs...)
}

// getConfigPath returns the local .rtheme.yaml when present, else the one in
// the user config directory, else "".
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	// An empty or root config dir is not usable.
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "rtheme", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
