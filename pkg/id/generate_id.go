package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns a random public identifier: 32 lowercase hex characters
// (16 random bytes), no separators or prefixes. Every externally visible
// entity ID uses this so numeric primary keys never leak through the API.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
