package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a short hex digest identifying a payload in logs.
//
// Payloads carry the holder's name, address and birth date, so log lines
// name them by digest instead. Two runs on the same payload log the same
// fingerprint. The digest is SHA-256 truncated to 10 bytes (20 hex chars).
func Fingerprint(payload []byte) string {
	digest := sha256.Sum256(payload)
	return hex.EncodeToString(digest[:10])
}
