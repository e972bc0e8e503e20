package messages

// Config messages for configuration loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt   = "missing config file %s: %w"
	ConfigReadFileFmt      = "failed to read config file %s: %w"
	ConfigInvalidConfigFmt = "invalid config %s: %w"

	ConfigDefaultIgnoredFmt = "Warning: ignoring %v; using built-in defaults\n"

	ConfigStagedEnvInvalidFmt = "%s: staged_env %q is not a valid environment variable name"
	ConfigToolEmptyFmt        = "%s: tools.%s must not be empty"
	ConfigToolWhitespaceFmt   = "%s: tools.%s %q must not start or end with whitespace"
)
