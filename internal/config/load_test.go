package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaultsWhenEmpty(t *testing.T) {
	cfg, err := Parse([]byte(""), "empty.toml")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestParseOverrides(t *testing.T) {
	data := `
staged_env = "PKG_STAGE"

[tools]
icon_cache = "gtk4-update-icon-cache"

[steps]
mime = false
`
	cfg, err := Parse([]byte(data), "postinstall.toml")
	require.NoError(t, err)
	require.Equal(t, "PKG_STAGE", cfg.StagedEnv)
	require.Equal(t, "gtk4-update-icon-cache", cfg.Tools.IconCache)
	require.Equal(t, DefaultSchemaCompiler, cfg.Tools.SchemaCompiler)
	require.Equal(t, DefaultMimeDatabase, cfg.Tools.MimeDatabase)
	require.True(t, IsEnabled(cfg.Steps.Schemas))
	require.True(t, IsEnabled(cfg.Steps.Icons))
	require.False(t, IsEnabled(cfg.Steps.Mime))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		validation bool
		contains   string
	}{
		{
			name:     "syntax error",
			data:     "staged_env = ",
			contains: "invalid config bad.toml",
		},
		{
			name:     "unknown key",
			data:     "[tools]\nicons = \"x\"\n",
			contains: "invalid config bad.toml",
		},
		{
			name:       "invalid staged env",
			data:       "staged_env = \"1DEST\"\n",
			validation: true,
			contains:   "staged_env \"1DEST\"",
		},
		{
			name:       "empty tool",
			data:       "[tools]\nschema_compiler = \"\"\n",
			validation: true,
			contains:   "tools.schema_compiler must not be empty",
		},
		{
			name:       "tool with surrounding whitespace",
			data:       "[tools]\nmime_database = \" update-mime-database\"\n",
			validation: true,
			contains:   "tools.mime_database",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "bad.toml")
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.contains)
			require.Equal(t, tt.validation, errors.Is(err, ErrConfigValidation))
		})
	}
}

func TestParseToolPathWithSpace(t *testing.T) {
	cfg, err := Parse([]byte("[tools]\nschema_compiler = \"/opt/my tools/bin/glib-compile-schemas\"\n"), "postinstall.toml")
	require.NoError(t, err)
	require.Equal(t, "/opt/my tools/bin/glib-compile-schemas", cfg.Tools.SchemaCompiler)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFileName), false)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	_, err := Load(path, true)
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, err.Error(), "missing config file")
}

func TestLoadReadError(t *testing.T) {
	// Reading a directory fails with something other than ErrNotExist.
	_, err := Load(t.TempDir(), false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("[tools]\nschema_compiler = \"glib-compile-schemas-2\"\n"), 0o644))

	cfg, err := Load(path, false)
	require.NoError(t, err)
	require.Equal(t, "glib-compile-schemas-2", cfg.Tools.SchemaCompiler)
}

func TestResolvePath(t *testing.T) {
	env := map[string]string{}
	getenv := func(key string) string { return env[key] }

	path, explicit := ResolvePath("", getenv)
	require.Equal(t, DefaultFileName, path)
	require.False(t, explicit)

	env[EnvConfigPath] = "/etc/postinstall.toml"
	path, explicit = ResolvePath("", getenv)
	require.Equal(t, "/etc/postinstall.toml", path)
	require.True(t, explicit)

	path, explicit = ResolvePath(" ./local.toml ", getenv)
	require.Equal(t, "./local.toml", path)
	require.True(t, explicit)

	path, explicit = ResolvePath("", nil)
	require.Equal(t, DefaultFileName, path)
	require.False(t, explicit)
}
