package document

import (
	"encoding/json"
	"strconv"
)

// Render converts a document value to its canonical string representation:
// strings pass through, numbers keep their literal textual form, booleans
// render lowercase, and complex values (objects, arrays) render as indented
// JSON text. A nil value renders as the empty string (absent).
func Render(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case json.Number:
		return v.String(), nil
	case float64:
		// Documents built in memory (not via Parse) may carry float64.
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	default:
		raw, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
}
