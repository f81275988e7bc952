// Package aegis provides deterministic, reversible in-memory text redaction.
//
// Sensitive values are replaced with stable placeholder tokens derived from
// the content itself, and can be recovered later by any caller holding the
// same Store instance:
//
//	store := aegis.New()
//	placeholder := store.Redact(ctx, "john@example.com", "email")
//	// placeholder == "[REDACTED_EMAIL_<hash8>]", safe to log or transmit
//	original, err := store.Unredact(ctx, placeholder)
//
// Mappings live only in process memory and are never persisted; a Store is
// one isolated redaction session.
package aegis

import "github.com/AegisProxy/aegis-sdk/internal/redaction"

// Re-export the engine types as a stable public API surface. These are type
// aliases so we can decouple the public structs later without breaking
// callers.
type Store = redaction.Store

// ErrPlaceholderNotFound is returned (wrapped) by Store.Unredact for
// placeholders this store never produced. Match with errors.Is.
var ErrPlaceholderNotFound = redaction.ErrPlaceholderNotFound

// New creates an empty redaction store.
func New() *Store {
	return redaction.NewStore()
}

// IsPlaceholder reports whether s is syntactically shaped like a redaction
// placeholder. It does not check whether any store knows the token.
func IsPlaceholder(s string) bool {
	return redaction.IsPlaceholder(s)
}
