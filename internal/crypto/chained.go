package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// ChainedSHA256 hashes value rounds times, feeding the lowercase hex digest
// of each round into the next. Fewer than one round is treated as one.
func ChainedSHA256(value string, rounds int) string {
	if rounds < 1 {
		rounds = 1
	}
	out := value
	for range rounds {
		sum := sha256.Sum256([]byte(out))
		out = hex.EncodeToString(sum[:])
	}
	return out
}

// Hasher adapts ChainedSHA256 to domain.ContactHasher.
type Hasher struct{}

// HashContact implements domain.ContactHasher.
func (Hasher) HashContact(value string, rounds int) string {
	return ChainedSHA256(value, rounds)
}
