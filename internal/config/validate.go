package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/conn-castle/desktop-postinstall/internal/messages"
)

var envNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks that the config values are usable.
func (c *Config) Validate(source string) error {
	if !envNamePattern.MatchString(c.StagedEnv) {
		return fmt.Errorf(messages.ConfigStagedEnvInvalidFmt, source, c.StagedEnv)
	}
	tools := []struct {
		key   string
		value string
	}{
		{"schema_compiler", c.Tools.SchemaCompiler},
		{"icon_cache", c.Tools.IconCache},
		{"mime_database", c.Tools.MimeDatabase},
	}
	for _, tool := range tools {
		if tool.value == "" {
			return fmt.Errorf(messages.ConfigToolEmptyFmt, source, tool.key)
		}
		if strings.TrimSpace(tool.value) != tool.value {
			return fmt.Errorf(messages.ConfigToolWhitespaceFmt, source, tool.key, tool.value)
		}
	}
	return nil
}
