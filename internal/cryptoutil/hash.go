package cryptoutil

import (
	"crypto/sha256"
	"encoding/hex"
)

// TruncatedSHA256 returns the first n lowercase hex characters of the
// SHA-256 digest of s (hashed as its UTF-8 byte encoding). n must be at
// most 64; larger values return the full 64-character digest.
func TruncatedSHA256(s string, n int) string {
	h := sha256.Sum256([]byte(s))
	digest := hex.EncodeToString(h[:])
	if n > len(digest) {
		n = len(digest)
	}
	return digest[:n]
}
