// Package redaction implements the deterministic, reversible redaction
// engine behind the SDK.
//
// A Store holds a bijective mapping between original sensitive text and
// generated placeholder tokens. Placeholders are derived from the content
// itself (truncated SHA-256), so the same text always resolves to the same
// placeholder within a store without a lookup-then-generate race. Mappings
// live only in process memory for the lifetime of the store; nothing is
// persisted and original values are never written to logs or spans.
package redaction

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	aegisotel "github.com/AegisProxy/aegis-sdk/internal/otel"
)

// ErrPlaceholderNotFound is returned by Unredact when the given placeholder
// was never produced by this store. It always indicates a caller error
// (stale or invented placeholder), never a transient condition.
var ErrPlaceholderNotFound = errors.New("placeholder not found")

var tracer = aegisotel.Tracer("github.com/AegisProxy/aegis-sdk/internal/redaction")

// Store maintains a bidirectional original-text <-> placeholder mapping.
//
// Each Store is an independent session: two stores never share mappings
// unless the caller explicitly passes the same instance around. Entries are
// created only by Redact, never mutated, never evicted.
type Store struct {
	id string

	// mu guards forward and reverse as a single unit so the two maps can
	// never be observed out of lockstep.
	mu      sync.RWMutex
	forward map[string]string // original text -> placeholder
	reverse map[string]string // placeholder -> original text
}

// NewStore creates an empty redaction store with a fresh instance ID.
func NewStore() *Store {
	return &Store{
		id:      uuid.New().String(),
		forward: make(map[string]string),
		reverse: make(map[string]string),
	}
}

// ID returns the store's instance ID, used to correlate logs and spans when
// multiple redaction sessions run in one process.
func (s *Store) ID() string {
	return s.id
}

// Redact returns the placeholder for text, generating and recording one on
// first sight. The same text always yields the same placeholder for the
// lifetime of the store.
//
// entityType is an optional cosmetic label embedded uppercase into newly
// generated placeholders (e.g. "email" -> "[REDACTED_EMAIL_<hash>]"); pass
// "" for the untyped form. On repeat calls for known text the argument is
// ignored entirely: the placeholder recorded first wins, so downstream
// references stay stable even when later callers disagree about the label.
//
// Redact never fails. Empty strings, placeholder-shaped strings, and
// arbitrary Unicode are all valid inputs.
func (s *Store) Redact(ctx context.Context, text, entityType string) string {
	ctx, span := tracer.Start(ctx, "redaction.redact",
		trace.WithAttributes(attribute.String("redaction.store_id", s.id)))
	defer span.End()

	// Write lock across the whole check-then-insert so two first redactions
	// of the same text cannot mint different placeholders.
	s.mu.Lock()
	defer s.mu.Unlock()

	if placeholder, ok := s.forward[text]; ok {
		span.SetAttributes(attribute.Bool("redaction.cache_hit", true))
		cacheHitsAdd(ctx, 1)
		return placeholder
	}

	placeholder := derivePlaceholder(text, entityType)
	s.forward[text] = placeholder
	s.reverse[placeholder] = text

	span.SetAttributes(
		attribute.Bool("redaction.cache_hit", false),
		attribute.Int("redaction.mappings", len(s.forward)),
	)
	redactionsAdd(ctx, 1)
	mappingsRecord(ctx, int64(len(s.forward)))

	// The placeholder is safe to log; the original text never is.
	log.Debug().
		Str("store_id", s.id).
		Str("placeholder", placeholder).
		Func(aegisotel.LogTraceFields(ctx)).
		Msg("recorded redaction mapping")

	return placeholder
}

// Unredact resolves a placeholder previously returned by Redact on this
// store back to the original text. It has no side effects.
//
// Unknown placeholders (including well-formed ones minted by a different
// store) fail with an error wrapping ErrPlaceholderNotFound that carries
// the offending placeholder value.
func (s *Store) Unredact(ctx context.Context, placeholder string) (string, error) {
	ctx, span := tracer.Start(ctx, "redaction.unredact",
		trace.WithAttributes(attribute.String("redaction.store_id", s.id)))
	defer span.End()

	s.mu.RLock()
	text, ok := s.reverse[placeholder]
	s.mu.RUnlock()

	if !ok {
		unredactMissesAdd(ctx, 1)
		span.SetStatus(codes.Error, "placeholder not found")
		return "", fmt.Errorf("placeholder %q has no recorded mapping: %w", placeholder, ErrPlaceholderNotFound)
	}

	return text, nil
}

// ValidateIntegrity reports whether the forward and reverse relations are
// still exact inverses of one another. Under this package's API the
// invariant cannot break; the check exists as a defensive self-test for
// hosts that can reach into store internals. It never mutates state and an
// empty store is trivially valid.
func (s *Store) ValidateIntegrity(ctx context.Context) bool {
	_, span := tracer.Start(ctx, "redaction.validate_integrity",
		trace.WithAttributes(attribute.String("redaction.store_id", s.id)))
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	ok := s.validateLocked()
	span.SetAttributes(
		attribute.Bool("redaction.integrity_ok", ok),
		attribute.Int("redaction.mappings", len(s.forward)),
	)
	return ok
}

// validateLocked performs the actual inverse checks. Callers must hold mu.
func (s *Store) validateLocked() bool {
	if len(s.forward) != len(s.reverse) {
		return false
	}
	for text, placeholder := range s.forward {
		if got, ok := s.reverse[placeholder]; !ok || got != text {
			return false
		}
	}
	for placeholder, text := range s.reverse {
		if got, ok := s.forward[text]; !ok || got != placeholder {
			return false
		}
	}
	return true
}

// Len returns the number of recorded mappings.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.forward)
}
