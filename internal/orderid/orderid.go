// Package orderid generates processor-facing order identifiers.
package orderid

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Length is the identifier width in hex characters. Callers depend on the
// exact length, so it is fixed; at 48 bits the birthday bound makes
// collisions a concern only past roughly 2^24 identifiers.
const Length = 12

// New returns a lowercase hex identifier. Random bytes are hashed before
// truncation so the raw randomness source is never directly observable.
// If the randomness source fails the order cannot be created.
func New() (string, error) {
	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		return "", fmt.Errorf("read random seed: %w", err)
	}
	sum := sha256.Sum256([]byte(hex.EncodeToString(seed)))
	return hex.EncodeToString(sum[:])[:Length], nil
}
