package redaction

import (
	"fmt"
	"strings"

	"github.com/AegisProxy/aegis-sdk/internal/cryptoutil"
)

// HashLength is the number of hex characters of the SHA-256 digest embedded
// in a placeholder. 8 hex chars = 32 bits; collisions are not resolved
// beyond this truncation.
const HashLength = 8

const (
	placeholderPrefix = "[REDACTED_"
	placeholderSuffix = "]"
)

// derivePlaceholder builds the placeholder token for text. The hash covers
// only the original text (UTF-8 bytes); the entity type is cosmetic and
// deliberately excluded from the digest input, so the same text carries the
// same hash regardless of how callers label it.
func derivePlaceholder(text, entityType string) string {
	hash := cryptoutil.TruncatedSHA256(text, HashLength)
	if entityType != "" {
		return fmt.Sprintf("%s%s_%s%s", placeholderPrefix, strings.ToUpper(entityType), hash, placeholderSuffix)
	}
	return placeholderPrefix + hash + placeholderSuffix
}

// IsPlaceholder reports whether s is syntactically shaped like a placeholder
// token: "[REDACTED_<hash8>]" or "[REDACTED_<LABEL>_<hash8>]" with a
// lowercase hex hash and an uppercase label. A true result says nothing
// about whether any store knows the token.
func IsPlaceholder(s string) bool {
	if !strings.HasPrefix(s, placeholderPrefix) || !strings.HasSuffix(s, placeholderSuffix) {
		return false
	}
	inner := s[len(placeholderPrefix) : len(s)-len(placeholderSuffix)]
	if len(inner) < HashLength {
		return false
	}
	hash := inner[len(inner)-HashLength:]
	if !cryptoutil.IsHexString(hash) || hash != strings.ToLower(hash) {
		return false
	}
	label := inner[:len(inner)-HashLength]
	if label == "" {
		return true
	}
	if !strings.HasSuffix(label, "_") {
		return false
	}
	label = strings.TrimSuffix(label, "_")
	return label != "" && label == strings.ToUpper(label)
}
