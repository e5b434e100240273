package commands

import (
	"fmt"

	"github.com/devconf/devconf/internal/audit"
	"github.com/devconf/devconf/internal/config"
	"github.com/devconf/devconf/internal/environment"
	"github.com/devconf/devconf/internal/log"
	"github.com/devconf/devconf/internal/store"
	"github.com/devconf/devconf/internal/utils"
)

// loadServiceConfig loads and validates the service configuration. A missing
// file is not an error; defaults apply.
func loadServiceConfig(configPath string) (*config.Config, error) {
	if configPath == "" || !utils.FileExists(configPath) {
		log.Debugf("No service config at %q, using defaults", configPath)
		return config.Default(), nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid service configuration: %w", err)
	}
	return cfg, nil
}

// buildStore wires the configuration store from the service configuration.
func buildStore(cfg *config.Config) *store.Store {
	gate := environment.Detect(cfg.EnvironmentOverride(), cfg.SettingsFilePath())
	recorder := audit.NewRecorder(cfg.AuditLogPath(), gate.Name())
	return store.New(gate, recorder)
}
