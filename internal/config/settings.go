package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by LoadSettings.
const EnvPrefix = "SASUSIM"

// Settings holds process level options (not fiscal inputs).
// Precedence: command-line flag, then SASUSIM_* environment variable, then default.
type Settings struct {
	Env      string // development -> readable console logs; production -> JSON
	LogLevel string // trace, debug, info, warn, error
	HTTPAddr string
}

var settingKeys = map[string]string{
	"env":       "development",
	"log-level": "info",
	"http-addr": ":8080",
}

// LoadSettings resolves settings from the given flag set and the environment.
// Flags absent from the set are still read from the environment.
func LoadSettings(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, def := range settingKeys {
		v.SetDefault(key, def)
		if flags == nil {
			continue
		}
		if f := flags.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", key, err)
			}
		}
	}

	s := &Settings{
		Env:      strings.ToLower(v.GetString("env")),
		LogLevel: strings.ToLower(v.GetString("log-level")),
		HTTPAddr: v.GetString("http-addr"),
	}
	if s.Env != "development" && s.Env != "production" {
		return nil, fmt.Errorf("%w: env must be 'development' or 'production', got %q", ErrInvalidInput, s.Env)
	}
	return s, nil
}
