package environment

import "testing"

func TestIsAllowed(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		allowed bool
	}{
		{"development", "Development", true},
		{"development lowercase", "development", true},
		{"test", "Test", true},
		{"test uppercase", "TEST", true},
		{"production", "Production", false},
		{"staging", "Staging", false},
		{"unset", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGate(tt.env, "appsettings.json")
			if got := g.IsAllowed(); got != tt.allowed {
				t.Errorf("IsAllowed() = %v for %q, want %v", got, tt.env, tt.allowed)
			}
		})
	}
}

func TestDetect_OverrideTakesPrecedence(t *testing.T) {
	t.Setenv(EnvVar, "Production")

	g := Detect("Test", "settings.json")
	if g.Name() != "Test" {
		t.Errorf("Expected override to win, got %q", g.Name())
	}
	if !g.IsAllowed() {
		t.Error("Expected Test override to be allowed")
	}
}

func TestDetect_FallsBackToEnvVar(t *testing.T) {
	t.Setenv(EnvVar, "Development")

	g := Detect("", "")
	if g.Name() != "Development" {
		t.Errorf("Expected env var value, got %q", g.Name())
	}
	if g.SettingsFilePath() != DefaultSettingsFile {
		t.Errorf("Expected default settings file, got %q", g.SettingsFilePath())
	}
}

func TestDetect_UnsetDenies(t *testing.T) {
	t.Setenv(EnvVar, "")

	g := Detect("", "settings.json")
	if g.IsAllowed() {
		t.Error("Expected unset environment to deny")
	}
}
