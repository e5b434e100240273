package tree

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/devconf/devconf/internal/document"
)

func TestAddItem_SingleSegment(t *testing.T) {
	tr := NewTree()
	tr.AddItem("Port", "8080")

	item := tr.Items["Port"]
	if item == nil {
		t.Fatal("Expected Port item")
	}
	if item.Key != "Port" || item.Path != "Port" || item.Value != "8080" {
		t.Errorf("Unexpected item: %+v", item)
	}
}

func TestAddItem_NestedPath(t *testing.T) {
	tr := NewTree()
	tr.AddItem("Logging:LogLevel:Default", "Warning")

	logging := tr.Items["Logging"]
	if logging == nil {
		t.Fatal("Expected Logging item")
	}
	if logging.Value != "" {
		t.Errorf("Intermediate node must not carry a value, got %q", logging.Value)
	}
	if logging.Path != "Logging" {
		t.Errorf("Expected path Logging, got %q", logging.Path)
	}

	level := logging.Children["LogLevel"]
	if level == nil {
		t.Fatal("Expected LogLevel child")
	}
	if level.Path != "Logging:LogLevel" {
		t.Errorf("Expected path Logging:LogLevel, got %q", level.Path)
	}

	def := level.Children["Default"]
	if def == nil {
		t.Fatal("Expected Default child")
	}
	if def.Value != "Warning" || def.Key != "Default" {
		t.Errorf("Unexpected leaf: %+v", def)
	}
	if def.Children != nil {
		t.Error("Leaf must have no children")
	}
}

func TestAddItem_SharedIntermediate(t *testing.T) {
	tr := NewTree()
	tr.AddItem("Logging:LogLevel:Default", "Warning")
	tr.AddItem("Logging:LogLevel:Microsoft", "Error")

	level := tr.Items["Logging"].Children["LogLevel"]
	if len(level.Children) != 2 {
		t.Errorf("Expected two leaves under LogLevel, got %d", len(level.Children))
	}
}

func TestAddItem_SkipsEmptyValue(t *testing.T) {
	tr := NewTree()
	tr.AddItem("Logging:LogLevel:Default", "")

	if len(tr.Items) != 0 {
		t.Errorf("Expected empty value to be skipped, got %v", tr.Items)
	}
}

func TestBuild_WalksDocument(t *testing.T) {
	doc := document.Document{
		"Logging": map[string]any{
			"LogLevel": map[string]any{"Default": "Warning"},
		},
		"AllowedHosts": "*",
	}

	tr, err := Build(doc)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if tr.Items["AllowedHosts"].Value != "*" {
		t.Error("Expected AllowedHosts leaf")
	}
	def := tr.Items["Logging"].Children["LogLevel"].Children["Default"]
	if def.Value != "Warning" {
		t.Errorf("Expected Warning, got %q", def.Value)
	}
}

func TestBuild_PrunesHiddenSubtrees(t *testing.T) {
	doc := document.Document{
		"Secrets": map[string]any{
			"DbPassword": "hunter2",
		},
		"ConnectionStrings": map[string]any{
			"Db": "Server=localhost",
		},
		"Logging": map[string]any{"Level": "Info"},
	}

	tr, err := Build(doc)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, ok := tr.Items["Secrets"]; ok {
		t.Error("Hidden subtree Secrets must not appear")
	}
	if _, ok := tr.Items["ConnectionStrings"]; ok {
		t.Error("Hidden subtree ConnectionStrings must not appear")
	}
	if _, ok := tr.Items["Logging"]; !ok {
		t.Error("Expected visible subtree Logging")
	}

	// Nothing in the serialized form leaks hidden content either.
	raw, err := json.Marshal(tr)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(raw), "hunter2") {
		t.Error("Hidden value leaked into serialized tree")
	}
}

func TestBuild_ScalarRendering(t *testing.T) {
	doc, err := document.Parse([]byte(`{"Port":8080,"Debug":true,"Missing":null,"Name":"svc"}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tr, err := Build(doc)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if got := tr.Items["Port"].Value; got != "8080" {
		t.Errorf("Expected 8080, got %q", got)
	}
	if got := tr.Items["Debug"].Value; got != "true" {
		t.Errorf("Expected true, got %q", got)
	}
	if got := tr.Items["Name"].Value; got != "svc" {
		t.Errorf("Expected svc, got %q", got)
	}
	if _, ok := tr.Items["Missing"]; ok {
		t.Error("Null values must not be inserted as leaves")
	}
}

func TestBuild_ArrayValueLeafsOutAsJSON(t *testing.T) {
	doc, err := document.Parse([]byte(`{"Hosts":["a","b"]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tr, err := Build(doc)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	item := tr.Items["Hosts"]
	if item == nil {
		t.Fatal("Expected Hosts leaf")
	}
	if item.Children != nil {
		t.Error("Array must not be decomposed into children")
	}
	if !strings.Contains(item.Value, "\"a\"") || !strings.Contains(item.Value, "\n") {
		t.Errorf("Expected indented JSON text, got %q", item.Value)
	}
}

func TestNewItem(t *testing.T) {
	item := NewItem("Logging:LogLevel:Default", "Information")
	if item.Key != "Default" {
		t.Errorf("Expected key Default, got %q", item.Key)
	}
	if item.Path != "Logging:LogLevel:Default" {
		t.Errorf("Unexpected path %q", item.Path)
	}
	if item.Value != "Information" {
		t.Errorf("Unexpected value %q", item.Value)
	}
}
