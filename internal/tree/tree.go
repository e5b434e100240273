// Package tree converts the raw settings document into a hierarchical view of
// configuration items, applying the hidden-path filter during traversal.
package tree

import (
	"strings"

	"github.com/devconf/devconf/internal/document"
	"github.com/devconf/devconf/internal/policy"
)

// Item is a single node in the configuration hierarchy. A node is a leaf iff
// it has no children; a node with children carries no value.
type Item struct {
	Key      string           `json:"key"`
	Path     string           `json:"path"`
	Value    string           `json:"value,omitempty"`
	Children map[string]*Item `json:"children,omitempty"`
}

// NewItem creates a leaf item for the given full path and value.
func NewItem(path, value string) *Item {
	segments := strings.Split(path, document.PathSeparator)
	return &Item{
		Key:   segments[len(segments)-1],
		Path:  path,
		Value: value,
	}
}

// Tree is the root mapping from top-level key to item. It is built fresh for
// every read request and discarded after the response is produced.
type Tree struct {
	Items map[string]*Item `json:"items"`
}

// NewTree creates an empty configuration tree.
func NewTree() *Tree {
	return &Tree{Items: make(map[string]*Item)}
}

// AddItem inserts a leaf value at the given colon-delimited path, creating
// intermediate nodes as needed. Only the final segment receives the value.
// Empty values are never inserted.
func (t *Tree) AddItem(path, value string) {
	if value == "" {
		return
	}

	segments := strings.Split(path, document.PathSeparator)
	items := t.Items
	fullPath := ""

	for i, segment := range segments {
		if fullPath == "" {
			fullPath = segment
		} else {
			fullPath += document.PathSeparator + segment
		}

		item, exists := items[segment]
		if !exists {
			item = &Item{Key: segment, Path: fullPath}
			items[segment] = item
		}

		if i == len(segments)-1 {
			item.Value = value
		} else {
			if item.Children == nil {
				item.Children = make(map[string]*Item)
			}
			items = item.Children
		}
	}
}

// Build walks the raw document depth-first and produces the configuration
// tree. Hidden subtrees are pruned entirely: neither emitted as leaves nor
// descended into. Only mappings are decomposed into path segments; any other
// value is a terminal and renders to its canonical string form.
func Build(doc document.Document) (*Tree, error) {
	t := NewTree()
	if err := walk(t, map[string]any(doc), ""); err != nil {
		return nil, err
	}
	return t, nil
}

func walk(t *Tree, node map[string]any, parentPath string) error {
	for key, value := range node {
		childPath := key
		if parentPath != "" {
			childPath = parentPath + document.PathSeparator + key
		}

		if policy.IsHidden(childPath) {
			continue
		}

		if child, isMap := value.(map[string]any); isMap {
			if err := walk(t, child, childPath); err != nil {
				return err
			}
			continue
		}

		rendered, err := document.Render(value)
		if err != nil {
			return err
		}
		t.AddItem(childPath, rendered)
	}
	return nil
}
