package document

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/devconf/devconf/internal/errors"
)

// SetPath creates or overwrites the terminal value at the given path segments,
// mutating the document in place. Intermediate mapping levels are materialized
// as needed; an existing non-mapping value at an intermediate segment is
// overwritten with a fresh mapping. Key comparison is case-insensitive, so
// "Logging" and "logging" address the same node. Newly created keys are
// rendered in camelCase; existing keys keep their stored spelling.
func SetPath(doc Document, segments []string, value string) error {
	if len(segments) == 0 {
		return errors.NewMutationError("no path segments supplied", nil)
	}
	for i, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			return errors.NewMutationError(fmt.Sprintf("path segment %d is empty", i), nil)
		}
	}

	current := map[string]any(doc)
	for _, segment := range segments[:len(segments)-1] {
		key, exists := findKeyFold(current, segment)
		if !exists {
			key = camelCase(segment)
			current[key] = map[string]any{}
		} else if _, isMap := current[key].(map[string]any); !isMap {
			// A scalar or array sat where a section is now needed; it is
			// discarded. Audited behavior, not an error.
			current[key] = map[string]any{}
		}
		current = current[key].(map[string]any)
	}

	last := segments[len(segments)-1]
	key, exists := findKeyFold(current, last)
	if !exists {
		key = camelCase(last)
	}
	current[key] = value
	return nil
}

// findKeyFold locates an existing key matching the segment case-insensitively.
func findKeyFold(m map[string]any, segment string) (string, bool) {
	if _, ok := m[segment]; ok {
		return segment, true
	}
	for k := range m {
		if strings.EqualFold(k, segment) {
			return k, true
		}
	}
	return "", false
}

// camelCase lowers the first rune of a key, matching the rendering used for
// newly structured content in the persisted file.
func camelCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
