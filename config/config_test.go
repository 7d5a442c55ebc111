// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/neuromotif/config"
	"github.com/katalvlaran/neuromotif/loader"
	"github.com/katalvlaran/neuromotif/motif"
)

// noDotEnv points Load at a .env path that does not exist.
func noDotEnv(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New(), "", noDotEnv(t))
	require.NoError(t, err)

	assert.Equal(t, "basic", cfg.Mode)
	assert.Equal(t, motif.ModeBasic, cfg.ClassMode())
	assert.Equal(t, loader.ZeroLiteral, cfg.Zero())
	assert.Equal(t, 1, cfg.Workers)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.True(t, cfg.Source().UseSSL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NEUROMOTIF_MODE", "polarity")
	t.Setenv("NEUROMOTIF_WORKERS", "4")
	t.Setenv("NEUROMOTIF_LOG_LEVEL", "debug")
	t.Setenv("NEUROMOTIF_S3_ENDPOINT", "minio.local:9000")

	cfg, err := config.Load(viper.New(), "", noDotEnv(t))
	require.NoError(t, err)
	assert.Equal(t, motif.ModeByPolarity, cfg.ClassMode())
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "minio.local:9000", cfg.Source().Endpoint)
}

func TestLoad_ConfigFileAndDotEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "neuromotif.yaml")
	require.NoError(t, os.WriteFile(file, []byte(
		"zero_policy: numeric\npretty: true\ns3:\n  region: eu-west-1\n  use_ssl: false\n"), 0o600))

	// .env values reach viper through the process environment.
	dotenv := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("NEUROMOTIF_VERBOSE=true\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("NEUROMOTIF_VERBOSE") })

	cfg, err := config.Load(viper.New(), file, dotenv)
	require.NoError(t, err)
	assert.Equal(t, loader.ZeroNumeric, cfg.Zero())
	assert.True(t, cfg.Pretty)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "eu-west-1", cfg.Source().Region)
	assert.False(t, cfg.Source().UseSSL)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "none.yaml"), noDotEnv(t))
	assert.ErrorIs(t, err, config.ErrFile)

	t.Setenv("NEUROMOTIF_MODE", "isomorphism")
	_, err = config.Load(viper.New(), "", noDotEnv(t))
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, motif.ErrUnknownMode)
}

func TestValidate(t *testing.T) {
	valid := config.Config{Mode: "basic", ZeroPolicy: "literal", Workers: 1, Log: config.LogConfig{Level: "info", Format: "json"}}
	require.NoError(t, valid.Validate())

	for name, mutate := range map[string]func(c *config.Config){
		"mode":        func(c *config.Config) { c.Mode = "x" },
		"zero policy": func(c *config.Config) { c.ZeroPolicy = "fuzzy" },
		"workers":     func(c *config.Config) { c.Workers = -1 },
		"log level":   func(c *config.Config) { c.Log.Level = "loud" },
		"log format":  func(c *config.Config) { c.Log.Format = "xml" },
	} {
		c := valid
		mutate(&c)
		assert.ErrorIs(t, c.Validate(), config.ErrInvalid, name)
	}
}
