// SPDX-License-Identifier: MIT
// Package config layers run settings: defaults, an optional YAML config file,
// a .env file, NEUROMOTIF_* environment variables and finally bound flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/neuromotif/loader"
	"github.com/katalvlaran/neuromotif/logger"
	"github.com/katalvlaran/neuromotif/motif"
	"github.com/katalvlaran/neuromotif/source"
)

// EnvPrefix namespaces environment overrides: NEUROMOTIF_MODE, NEUROMOTIF_LOG_LEVEL, ...
const EnvPrefix = "NEUROMOTIF"

// Keys shared with cli flag bindings.
const (
	KeyMode        = "mode"
	KeyVerbose     = "verbose"
	KeyWorkers     = "workers"
	KeyZeroPolicy  = "zero_policy"
	KeyPretty      = "pretty"
	KeyLogLevel    = "log.level"
	KeyLogFormat   = "log.format"
	KeyS3Endpoint  = "s3.endpoint"
	KeyS3Region    = "s3.region"
	KeyS3AccessKey = "s3.access_key"
	KeyS3SecretKey = "s3.secret_key"
	KeyS3UseSSL    = "s3.use_ssl"
)

var (
	// ErrInvalid indicates a setting with an unusable value.
	ErrInvalid = errors.New("config: invalid value")

	// ErrFile indicates the config or .env file could not be read.
	ErrFile = errors.New("config: can't read file")
)

// Config holds every run setting.
type Config struct {
	Mode       string    `mapstructure:"mode"`
	Verbose    bool      `mapstructure:"verbose"`
	Workers    int       `mapstructure:"workers"`
	ZeroPolicy string    `mapstructure:"zero_policy"`
	Pretty     bool      `mapstructure:"pretty"`
	Log        LogConfig `mapstructure:"log"`
	S3         S3Config  `mapstructure:"s3"`
}

// LogConfig selects the zap level and encoding.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// S3Config mirrors source.S3Config.
type S3Config struct {
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// SetDefaults registers every key so environment overrides resolve.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyMode, motif.ModeBasic.String())
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeyZeroPolicy, loader.ZeroLiteral.String())
	v.SetDefault(KeyPretty, false)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, logger.FormatConsole)
	v.SetDefault(KeyS3Endpoint, "")
	v.SetDefault(KeyS3Region, "")
	v.SetDefault(KeyS3AccessKey, "")
	v.SetDefault(KeyS3SecretKey, "")
	v.SetDefault(KeyS3UseSSL, true)
}

// Load resolves v into a validated Config. file is an optional YAML config
// path; dotenv lists .env files to load first (default ".env", missing is fine).
// Flags must already be bound to v.
func Load(v *viper.Viper, file string, dotenv ...string) (*Config, error) {
	// 1. .env feeds the process environment
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("Load: .env: %w: %w", ErrFile, err)
	}

	// 2. Defaults and environment
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// 3. Config file
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("Load(%s): %w: %w", file, ErrFile, err)
		}
	}

	// 4. Decode and validate
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("Load: %w: %w", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every enumerated setting.
func (c *Config) Validate() error {
	if _, err := motif.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%s: %w: %w", KeyMode, ErrInvalid, err)
	}
	if _, err := loader.ParseZeroPolicy(c.ZeroPolicy); err != nil {
		return fmt.Errorf("%s: %w: %w", KeyZeroPolicy, ErrInvalid, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%s=%d must be >= 0: %w", KeyWorkers, c.Workers, ErrInvalid)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%s: %w: %w", KeyLogLevel, ErrInvalid, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", logger.FormatConsole, logger.FormatJSON:
	default:
		return fmt.Errorf("%s=%q: %w", KeyLogFormat, c.Log.Format, ErrInvalid)
	}

	return nil
}

// ClassMode returns the parsed classification mode.
func (c *Config) ClassMode() motif.Mode {
	m, _ := motif.ParseMode(c.Mode)
	return m
}

// Zero returns the parsed zero policy.
func (c *Config) Zero() loader.ZeroPolicy {
	p, _ := loader.ParseZeroPolicy(c.ZeroPolicy)
	return p
}

// Source returns the S3 client settings for source.Open.
func (c *Config) Source() source.S3Config {
	return source.S3Config{
		Endpoint:  c.S3.Endpoint,
		Region:    c.S3.Region,
		AccessKey: c.S3.AccessKey,
		SecretKey: c.S3.SecretKey,
		UseSSL:    c.S3.UseSSL,
	}
}
