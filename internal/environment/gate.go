// Package environment decides whether configuration editing is permitted and
// resolves the location of the backing settings file.
//
// Editing is only allowed in the development and test environments. The
// environment name comes from the service configuration override when set,
// falling back to the DEVCONF_ENV variable. An unset environment denies all
// operations.
package environment

import (
	"os"
	"strings"
)

// EnvVar is the environment variable consulted when no override is configured.
const EnvVar = "DEVCONF_ENV"

// DefaultSettingsFile is used when the service configuration does not name a
// settings file, relative to the working directory.
const DefaultSettingsFile = "appsettings.Development.json"

// Gate reports whether mutation of the settings file is permitted and where
// the file lives. Implementations are swappable for testing.
type Gate interface {
	// IsAllowed reports whether the current environment permits
	// configuration reads and writes.
	IsAllowed() bool

	// SettingsFilePath returns the location of the backing settings file.
	SettingsFilePath() string

	// Name returns the resolved environment name (e.g. "Development").
	Name() string
}

// allowedEnvironments lists environment names that permit editing.
var allowedEnvironments = []string{"development", "test"}

// EnvGate is the default Gate backed by process environment detection.
type EnvGate struct {
	name         string
	settingsPath string
}

// Detect resolves the environment gate. override takes precedence over the
// DEVCONF_ENV variable; settingsPath falls back to DefaultSettingsFile.
func Detect(override, settingsPath string) *EnvGate {
	name := override
	if name == "" {
		name = os.Getenv(EnvVar)
	}
	if settingsPath == "" {
		settingsPath = DefaultSettingsFile
	}
	return &EnvGate{name: name, settingsPath: settingsPath}
}

// NewGate creates a gate with an explicit environment name and settings path.
func NewGate(name, settingsPath string) *EnvGate {
	return &EnvGate{name: name, settingsPath: settingsPath}
}

// IsAllowed implements Gate.
func (g *EnvGate) IsAllowed() bool {
	for _, allowed := range allowedEnvironments {
		if strings.EqualFold(g.name, allowed) {
			return true
		}
	}
	return false
}

// SettingsFilePath implements Gate.
func (g *EnvGate) SettingsFilePath() string {
	return g.settingsPath
}

// Name implements Gate.
func (g *EnvGate) Name() string {
	return g.name
}
