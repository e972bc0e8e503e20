package finalize

import (
	"errors"
	"path/filepath"

	"github.com/conn-castle/desktop-postinstall/internal/messages"
)

// ErrPrefixRequired is returned when no install prefix was given.
var ErrPrefixRequired = errors.New(messages.FinalizePrefixRequired)

// Paths holds the cache directories derived from the data directory.
type Paths struct {
	SchemaDir string
	IconDir   string
	MimeDir   string
}

// DataDir returns <prefix>/share, or override when it is set.
func DataDir(prefix string, override string) (string, error) {
	if prefix == "" {
		return "", ErrPrefixRequired
	}
	if override != "" {
		return filepath.Clean(override), nil
	}
	return filepath.Join(prefix, "share"), nil
}

// DerivePaths returns the schema, icon and mime directories under dataDir.
func DerivePaths(dataDir string) Paths {
	return Paths{
		SchemaDir: filepath.Join(dataDir, "glib-2.0", "schemas"),
		IconDir:   filepath.Join(dataDir, "icons", "hicolor"),
		MimeDir:   filepath.Join(dataDir, "mime"),
	}
}
