package document

// Lookup walks the document along the given path segments and returns the
// terminal value. It reports false when any segment is missing or an
// intermediate value is not a mapping. Key comparison is case-insensitive,
// matching the mutation rules.
func Lookup(doc Document, segments []string) (any, bool) {
	if len(segments) == 0 {
		return nil, false
	}

	current := map[string]any(doc)
	for i, segment := range segments {
		key, exists := findKeyFold(current, segment)
		if !exists {
			return nil, false
		}
		if i == len(segments)-1 {
			return current[key], true
		}
		next, isMap := current[key].(map[string]any)
		if !isMap {
			return nil, false
		}
		current = next
	}
	return nil, false
}
