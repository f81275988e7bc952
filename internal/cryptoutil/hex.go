// Package cryptoutil holds small hashing and hex helpers shared by the
// redaction engine.
package cryptoutil

// IsHexString reports whether s consists entirely of hexadecimal characters
// (0-9, a-f, A-F). It returns true for an empty string, so callers that
// require a minimum size must check length separately.
func IsHexString(s string) bool {
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
