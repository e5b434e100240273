package document

import (
	goerrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devconf/devconf/internal/errors"
)

func TestLoad_NonExistentFile(t *testing.T) {
	_, err := Load("/non/existent/appsettings.json")
	if err == nil {
		t.Fatal("Expected error for non-existent file")
	}
	if !goerrors.Is(err, errors.New(errors.ErrCodeDocumentMissing, "")) {
		t.Errorf("Expected DOCUMENT_MISSING error, got %v", err)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	settingsFile := filepath.Join(tmpDir, "appsettings.json")

	if err := os.WriteFile(settingsFile, []byte(`{"Logging": `), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := Load(settingsFile)
	if err == nil {
		t.Fatal("Expected error for invalid JSON")
	}
	if !goerrors.Is(err, errors.New(errors.ErrCodeParse, "")) {
		t.Errorf("Expected PARSE_ERROR error, got %v", err)
	}
}

func TestLoad_ValidDocument(t *testing.T) {
	tmpDir := t.TempDir()
	settingsFile := filepath.Join(tmpDir, "appsettings.json")

	content := `{"Logging":{"LogLevel":{"Default":"Warning"}},"Port":8080}`
	if err := os.WriteFile(settingsFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	doc, err := Load(settingsFile)
	if err != nil {
		t.Fatalf("Expected no error for valid document: %v", err)
	}

	if doc == nil {
		t.Fatal("Expected document to be non-nil")
	}
	if _, ok := doc["Logging"]; !ok {
		t.Error("Expected Logging key to be present")
	}
}

func TestParse_PreservesNumericLiterals(t *testing.T) {
	doc, err := Parse([]byte(`{"Ratio":0.50,"Port":8080}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	rendered, err := Render(doc["Ratio"])
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if rendered != "0.50" {
		t.Errorf("Expected literal form 0.50 to survive parsing, got %q", rendered)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	settingsFile := filepath.Join(tmpDir, "appsettings.json")

	doc := Document{
		"Logging": map[string]any{
			"LogLevel": map[string]any{"Default": "Warning"},
		},
	}

	if err := doc.Write(settingsFile); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	reloaded, err := Load(settingsFile)
	if err != nil {
		t.Fatalf("Load after write failed: %v", err)
	}

	value, found := Lookup(reloaded, []string{"Logging", "LogLevel", "Default"})
	if !found {
		t.Fatal("Expected written value to be readable")
	}
	if value != "Warning" {
		t.Errorf("Expected Warning, got %v", value)
	}
}

func TestSerialize_Indented(t *testing.T) {
	doc := Document{"Logging": map[string]any{"Level": "Info"}}

	buf, err := doc.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Errorf("Expected indented output, got %q", buf.String())
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string passes through", "hello", "hello"},
		{"bool true lowercase", true, "true"},
		{"bool false lowercase", false, "false"},
		{"nil renders empty", nil, ""},
		{"int", 42, "42"},
		{"float", 2.5, "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.value)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestRender_ComplexValueAsIndentedJSON(t *testing.T) {
	got, err := Render([]any{"a", "b"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := "[\n  \"a\",\n  \"b\"\n]"
	if got != want {
		t.Errorf("Render(array) = %q, want %q", got, want)
	}
}
