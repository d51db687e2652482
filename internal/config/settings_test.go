package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings(nil)
	require.NoError(t, err)
	assert.Equal(t, "development", s.Env)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, ":8080", s.HTTPAddr)
}

func TestLoadSettings_Environment(t *testing.T) {
	t.Setenv("SASUSIM_ENV", "production")
	t.Setenv("SASUSIM_LOG_LEVEL", "DEBUG")
	t.Setenv("SASUSIM_HTTP_ADDR", "127.0.0.1:9090")

	s, err := LoadSettings(nil)
	require.NoError(t, err)
	assert.Equal(t, "production", s.Env)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "127.0.0.1:9090", s.HTTPAddr)
}

func TestLoadSettings_FlagsWin(t *testing.T) {
	t.Setenv("SASUSIM_LOG_LEVEL", "warn")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	flags.String("env", "development", "")
	require.NoError(t, flags.Parse([]string{"--log-level", "error"}))

	s, err := LoadSettings(flags)
	require.NoError(t, err)
	assert.Equal(t, "error", s.LogLevel)
	assert.Equal(t, "development", s.Env)
}

func TestLoadSettings_InvalidEnv(t *testing.T) {
	t.Setenv("SASUSIM_ENV", "staging")
	_, err := LoadSettings(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
