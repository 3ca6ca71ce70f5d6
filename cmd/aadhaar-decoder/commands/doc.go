// Package commands defines the aadhaar-decoder CLI.
//
// Usage
//
//	aadhaar-decoder [flags] <qr_data>
//
// The single positional argument is an Aadhaar QR payload: the decimal
// integer of a secure QR code or the XML text of an old one. Exactly one
// JSON object is written to stdout.
//
//   - Decoded payloads print status "success" with the fields and qr_type.
//   - Payloads that fail to decode print status "error" with the error,
//     the payload length and a preview; the exit status is still 0.
//   - Anything else (wrong argument count, bad flags) prints a usage error
//     and exits 1.
//
// A single argument is always taken as the payload, even "-h" or "-123";
// flags only apply when they come with a payload.
//
// Logs go to stderr and are quiet unless --log-level is lowered.
package commands
