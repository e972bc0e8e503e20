package finalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/conn-castle/desktop-postinstall/internal/config"
	"github.com/conn-castle/desktop-postinstall/internal/messages"
)

// Step names accepted by --skip and used in reports.
const (
	StepSchemas = "schemas"
	StepIcons   = "icons"
	StepMime    = "mime"
)

// StepNames lists the steps in execution order.
var StepNames = []string{StepSchemas, StepIcons, StepMime}

// Step is one external cache refresh invocation.
type Step struct {
	Name    string
	Message string
	Command string
	Args    []string
}

// CommandLine renders the step as a shell-like command line.
func (s Step) CommandLine() string {
	parts := make([]string, 0, len(s.Args)+1)
	parts = append(parts, quoteArg(s.Command))
	for _, arg := range s.Args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" || strings.ContainsAny(arg, " \t\n\"'\\") {
		return strconv.Quote(arg)
	}
	return arg
}

// Plan returns the three steps in their fixed order: schemas, icons, mime.
func Plan(paths Paths, tools config.Tools) []Step {
	return []Step{
		{
			Name:    StepSchemas,
			Message: messages.FinalizeSchemasMessage,
			Command: tools.SchemaCompiler,
			Args:    []string{paths.SchemaDir},
		},
		{
			Name:    StepIcons,
			Message: messages.FinalizeIconsMessage,
			Command: tools.IconCache,
			Args:    []string{"-f", "-t", paths.IconDir},
		},
		{
			Name:    StepMime,
			Message: messages.FinalizeMimeMessage,
			Command: tools.MimeDatabase,
			Args:    []string{"-V", paths.MimeDir},
		},
	}
}

// ParseSkip validates step names and returns them as a set.
func ParseSkip(names []string) (map[string]bool, error) {
	skip := make(map[string]bool, len(names))
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if !isStepName(name) {
			return nil, fmt.Errorf(messages.FinalizeUnknownStepFmt, raw)
		}
		skip[name] = true
	}
	return skip, nil
}

// DisabledSteps returns the steps turned off in cfg.
func DisabledSteps(steps config.Steps) []string {
	var disabled []string
	if !config.IsEnabled(steps.Schemas) {
		disabled = append(disabled, StepSchemas)
	}
	if !config.IsEnabled(steps.Icons) {
		disabled = append(disabled, StepIcons)
	}
	if !config.IsEnabled(steps.Mime) {
		disabled = append(disabled, StepMime)
	}
	return disabled
}

func isStepName(name string) bool {
	for _, known := range StepNames {
		if name == known {
			return true
		}
	}
	return false
}
