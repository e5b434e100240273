// Package policy classifies configuration paths as hidden or restricted.
//
// Matching is a case-insensitive prefix test against the full colon-delimited
// path, not per-segment equality. "ConnectionStringsX" therefore matches the
// "ConnectionStrings" prefix; this coarse matching is deliberate and must be
// preserved.
package policy

import "strings"

// hiddenPrefixes lists path prefixes whose subtrees are never readable.
var hiddenPrefixes = []string{
	"Secrets",
	"ApiKeys",
	"Credentials",
	"PrivateKeys",
	"Tokens",
	"ConnectionStrings",
}

// restrictedPrefixes lists path prefixes that are never writable.
var restrictedPrefixes = []string{
	"ConnectionStrings",
	"Authentication",
	"Security",
}

// IsHidden reports whether path starts with any hidden prefix (case-insensitive).
func IsHidden(path string) bool {
	return hasAnyPrefix(path, hiddenPrefixes)
}

// IsRestricted reports whether path starts with any restricted prefix (case-insensitive).
func IsRestricted(path string) bool {
	return hasAnyPrefix(path, restrictedPrefixes)
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if len(path) >= len(prefix) && strings.EqualFold(path[:len(prefix)], prefix) {
			return true
		}
	}
	return false
}
