package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/devconf/devconf/internal/environment"
	"github.com/devconf/devconf/internal/log"
)

// Defaults applied when the corresponding setting is absent.
const (
	DefaultBindAddress  = "127.0.0.1:8080"
	DefaultAuditLogPath = "configuration-changes.log"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	BindAddress string `toml:"bind_address" validate:"omitempty,hostport"`
}

// SettingsConfig locates the backing settings document and optionally pins
// the environment name instead of reading DEVCONF_ENV.
type SettingsConfig struct {
	FilePath    string `toml:"file_path"`
	Environment string `toml:"environment" validate:"omitempty,env_name"`
}

// AuditConfig holds change-log settings.
type AuditConfig struct {
	LogPath string `toml:"log_path"`
}

// Config is the service's own configuration, loaded from a TOML file.
type Config struct {
	Server   *ServerConfig   `toml:"server"`
	Settings *SettingsConfig `toml:"settings"`
	Audit    *AuditConfig    `toml:"audit"`

	_absConfigFilePath string
}

// Default returns a configuration with all defaults applied, used when no
// config file is present.
func Default() *Config {
	return &Config{
		Server:   &ServerConfig{},
		Settings: &SettingsConfig{},
		Audit:    &AuditConfig{},
	}
}

// Load reads and parses the service configuration from the given path.
func Load(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	if config.Server == nil {
		config.Server = &ServerConfig{}
	}
	if config.Settings == nil {
		config.Settings = &SettingsConfig{}
	}
	if config.Audit == nil {
		config.Audit = &AuditConfig{}
	}

	config._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)

	return &config, nil
}

// Serialize renders the configuration as TOML.
func (c *Config) Serialize() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

// BindAddress returns the configured bind address or the default.
func (c *Config) BindAddress() string {
	if c.Server != nil && c.Server.BindAddress != "" {
		return c.Server.BindAddress
	}
	return DefaultBindAddress
}

// SettingsFilePath returns the configured settings document path or the
// environment collaborator's default.
func (c *Config) SettingsFilePath() string {
	if c.Settings != nil && c.Settings.FilePath != "" {
		return c.Settings.FilePath
	}
	return environment.DefaultSettingsFile
}

// EnvironmentOverride returns the pinned environment name, or "" to defer to
// environment detection.
func (c *Config) EnvironmentOverride() string {
	if c.Settings != nil {
		return c.Settings.Environment
	}
	return ""
}

// AuditLogPath returns the configured audit log path or the default.
func (c *Config) AuditLogPath() string {
	if c.Audit != nil && c.Audit.LogPath != "" {
		return c.Audit.LogPath
	}
	return DefaultAuditLogPath
}
