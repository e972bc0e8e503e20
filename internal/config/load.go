package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/desktop-postinstall/internal/messages"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "postinstall.toml"

// EnvConfigPath names a config file when --config is not given.
const EnvConfigPath = "POSTINSTALL_CONFIG"

// ErrConfigValidation wraps config validation failures, as opposed to
// TOML syntax or filesystem errors.
var ErrConfigValidation = errors.New("config validation failed")

// ResolvePath picks the config file location. flagPath wins over the
// environment; explicit reports whether the user named the file.
func ResolvePath(flagPath string, getenv func(string) string) (path string, explicit bool) {
	if p := strings.TrimSpace(flagPath); p != "" {
		return p, true
	}
	if getenv != nil {
		if p := strings.TrimSpace(getenv(EnvConfigPath)); p != "" {
			return p, true
		}
	}
	return DefaultFileName, false
}

// Load reads and validates the config at path. A missing file yields the
// defaults unless the caller named the file explicitly.
func Load(path string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if !explicit {
				return Default(), nil
			}
			return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
		}
		return nil, fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes config TOML on top of the defaults and validates it.
// source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return cfg, nil
}
