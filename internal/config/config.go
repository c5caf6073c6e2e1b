// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads the utfx configuration: a TOML file, overlaid by
// UTFX_* variables from the environment or a .env file, then validated.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"code.hybscloud.com/xfer"
	"code.hybscloud.com/xfer/textio"
)

// Config holds the settings shared by all utfx commands.
type Config struct {
	BufferSize int    `toml:"buffer_size" validate:"gte=0,lte=16777216"` // 0 = unbuffered
	Encoding   string `toml:"encoding" validate:"required,encoding"`     // default input encoding
	LogLevel   string `toml:"log_level" validate:"oneof=trace debug info warn error disabled"`
	Color      bool   `toml:"color"`       // colour status labels
	SkipBinary bool   `toml:"skip_binary"` // skip files recognised as binary formats
}

// Environment variables overriding the file.
const (
	EnvBufferSize = "UTFX_BUFFER_SIZE"
	EnvEncoding   = "UTFX_ENCODING"
	EnvLogLevel   = "UTFX_LOG_LEVEL"
	EnvColor      = "UTFX_COLOR"
)

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		BufferSize: xfer.DefaultBufferSize,
		Encoding:   "utf-8",
		LogLevel:   "warn",
		Color:      true,
		SkipBinary: true,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/utfx/config.toml, or the platform
// equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "utfx", "config.toml")
}

// Load builds the configuration. An empty path reads DefaultPath when it
// exists; an explicit path must exist. envFile, when not empty, is loaded
// into the environment first without overriding variables already set.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if explicit || !os.IsNotExist(errors.Cause(err)) {
				return nil, errors.Wrapf(err, "config: parse %s", path)
			}
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "config: env file %s", envFile)
		}
	}
	if err := cfg.overlayEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) overlayEnv() error {
	if v, ok := os.LookupEnv(EnvBufferSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "config: %s", EnvBufferSize)
		}
		c.BufferSize = n
	}
	if v, ok := os.LookupEnv(EnvEncoding); ok {
		c.Encoding = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvColor); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "config: %s", EnvColor)
		}
		c.Color = b
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("encoding", func(fl validator.FieldLevel) bool {
		_, ok := textio.ParseEncoding(fl.Field().String())
		return ok
	})
	return v
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "config: invalid")
	}
	return nil
}

// InputEncoding returns the parsed Encoding setting.
func (c *Config) InputEncoding() textio.Encoding {
	enc, _ := textio.ParseEncoding(c.Encoding)
	return enc
}

// Options returns the resource options for the buffer size.
func (c *Config) Options() []xfer.Option {
	return []xfer.Option{xfer.WithBufferSize(c.BufferSize)}
}
