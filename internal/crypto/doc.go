// Package crypto holds the hashing helpers used around Aadhaar QR payloads.
//
// Contents
//
//   - Chained SHA-256 of contact details, as stored in secure QR payloads
//     (ChainedSHA256)
//   - Short payload fingerprints for logs, so payloads never reach them
//     verbatim (Fingerprint)
//   - Best-effort wiping of decompressed payload buffers (Wipe)
//
// # Notes
//
// Nothing here verifies the UIDAI signature carried by secure payloads.
package crypto
