package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devconf/devconf/internal/environment"
)

func TestLoad_NonExistentFile(t *testing.T) {
	_, err := Load("/non/existent/devconf.conf")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "invalid.conf")

	invalidTOML := `[server
	bind_address = "127.0.0.1:8080"`

	if err := os.WriteFile(configFile, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := Load(configFile)
	if err == nil {
		t.Error("Expected error for invalid TOML")
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "devconf.conf")

	validTOML := `[server]
bind_address = "0.0.0.0:9090"

[settings]
file_path = "/tmp/appsettings.Development.json"
environment = "Test"

[audit]
log_path = "/tmp/changes.log"`

	if err := os.WriteFile(configFile, []byte(validTOML), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Expected no error for valid config: %v", err)
	}

	if cfg.BindAddress() != "0.0.0.0:9090" {
		t.Errorf("Expected bind address 0.0.0.0:9090, got %s", cfg.BindAddress())
	}
	if cfg.SettingsFilePath() != "/tmp/appsettings.Development.json" {
		t.Errorf("Unexpected settings path: %s", cfg.SettingsFilePath())
	}
	if cfg.EnvironmentOverride() != "Test" {
		t.Errorf("Unexpected environment override: %s", cfg.EnvironmentOverride())
	}
	if cfg.AuditLogPath() != "/tmp/changes.log" {
		t.Errorf("Unexpected audit log path: %s", cfg.AuditLogPath())
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config to validate: %v", err)
	}
}

func TestLoad_MissingSectionsGetDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "devconf.conf")

	if err := os.WriteFile(configFile, []byte(""), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Expected no error for empty config: %v", err)
	}

	if cfg.BindAddress() != DefaultBindAddress {
		t.Errorf("Expected default bind address, got %s", cfg.BindAddress())
	}
	if cfg.SettingsFilePath() != environment.DefaultSettingsFile {
		t.Errorf("Expected default settings path, got %s", cfg.SettingsFilePath())
	}
	if cfg.AuditLogPath() != DefaultAuditLogPath {
		t.Errorf("Expected default audit log path, got %s", cfg.AuditLogPath())
	}
}

func TestValidate_BadBindAddress(t *testing.T) {
	cfg := Default()
	cfg.Server.BindAddress = "not-a-hostport"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error for bad bind address")
	}
	if !strings.Contains(err.Error(), "bind_address") {
		t.Errorf("Expected bind_address in error, got %q", err.Error())
	}
}

func TestValidate_BadEnvironmentName(t *testing.T) {
	cfg := Default()
	cfg.Settings.Environment = "Dev Environment"

	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error for environment name with whitespace")
	}
}

func TestSerialize(t *testing.T) {
	cfg := Default()
	cfg.Server.BindAddress = "127.0.0.1:8080"

	buf, err := cfg.Serialize()
	if err != nil {
		t.Fatalf("Failed to serialize config: %v", err)
	}
	if !strings.Contains(buf.String(), "bind_address") {
		t.Errorf("Expected serialized content to contain bind_address, got %q", buf.String())
	}
}
