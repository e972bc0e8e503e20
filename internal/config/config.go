package config

// Default tool and environment names used when no config file overrides them.
const (
	DefaultStagedEnv      = "DESTDIR"
	DefaultSchemaCompiler = "glib-compile-schemas"
	DefaultIconCache      = "gtk-update-icon-cache"
	DefaultMimeDatabase   = "update-mime-database"
)

// Config is the postinstall.toml schema.
type Config struct {
	StagedEnv string `toml:"staged_env"`
	Tools     Tools  `toml:"tools"`
	Steps     Steps  `toml:"steps"`
}

// Tools names the executables invoked for each step.
type Tools struct {
	SchemaCompiler string `toml:"schema_compiler"`
	IconCache      string `toml:"icon_cache"`
	MimeDatabase   string `toml:"mime_database"`
}

// Steps toggles individual steps. A nil value means enabled.
type Steps struct {
	Schemas *bool `toml:"schemas"`
	Icons   *bool `toml:"icons"`
	Mime    *bool `toml:"mime"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		StagedEnv: DefaultStagedEnv,
		Tools: Tools{
			SchemaCompiler: DefaultSchemaCompiler,
			IconCache:      DefaultIconCache,
			MimeDatabase:   DefaultMimeDatabase,
		},
	}
}

// IsEnabled reports whether a step toggle is on.
func IsEnabled(toggle *bool) bool {
	return toggle == nil || *toggle
}
