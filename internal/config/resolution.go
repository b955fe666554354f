package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command-line flag names to config keys. Commands define
// whichever subset applies to them.
var flagKeys = map[string]string{
	"format":   "format",
	"out":      "out_dir",
	"preset":   "preset",
	"listen":   "listen",
	"no-color": "no_color",
	"debug":    "debug",
	"prefs":    "prefs_path",
	"editor":   "editor",
}

// bindFlags binds every known flag present in flags. viper consults a bound
// flag only when it was set explicitly, so unset flags leave env and file
// values in place.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

func flagChanged(flags *pflag.FlagSet, name string) bool {
	if flags == nil {
		return false
	}
	f := flags.Lookup(name)
	return f != nil && f.Changed
}
