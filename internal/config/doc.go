// Package config loads and validates the devconf service's own configuration
// file (TOML). This is distinct from the settings document the service edits:
// the service config says where the server binds, which settings file is
// managed, and where the audit log goes.
package config
