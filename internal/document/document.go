// Package document implements the loosely-typed settings document: loading
// and persisting the backing JSON file, rendering values to their canonical
// string form, and case-insensitive path-based lookup and mutation.
package document

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/devconf/devconf/internal/errors"
	"github.com/devconf/devconf/internal/log"
)

// PathSeparator delimits segments in a flat configuration path.
const PathSeparator = ":"

// Document is the parsed settings file: a nested mapping of string keys to
// dynamic values (string, bool, json.Number, nil, nested map[string]any, or
// []any). Numbers are decoded as json.Number so their literal textual form
// survives a load/persist cycle.
type Document map[string]any

// Load reads and parses the settings file at the given path.
func Load(path string) (Document, error) {
	settingsFile := filepath.Clean(path)

	if !filepath.IsAbs(settingsFile) {
		abs, err := filepath.Abs(settingsFile)
		if err != nil {
			return nil, errors.NewConfigError("failed to get absolute path", err)
		}
		settingsFile = abs
	}

	content, err := os.ReadFile(settingsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewDocumentMissingError(settingsFile)
		}
		return nil, errors.NewConfigError("failed to read settings file", err)
	}

	return Parse(content)
}

// Parse decodes raw JSON bytes into a Document.
func Parse(content []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.NewParseError("settings file is not valid JSON", err)
	}

	log.Debugf("Parsed settings document with %d top-level keys", len(doc))
	return doc, nil
}

// Serialize renders the document as indented JSON.
func (d Document) Serialize() (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return buf, nil
}

// Write persists the document to the given path, rewriting the whole file.
func (d Document) Write(path string) error {
	buf, err := d.Serialize()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return err
	}
	return nil
}
