// Package aadhaar decodes the two Aadhaar QR payload encodings.
//
// # Formats
//
// Secure QR payloads are a base-10 integer. Its big-endian bytes are a gzip
// stream whose content is a run of 0xFF-delimited ISO-8859-1 text fields,
// followed by the holder's photo, optional SHA-256 hashes of the registered
// email address and mobile number, and a 256-byte UIDAI signature.
//
// Old QR payloads are an XML document whose root element carries the fields
// as attributes.
//
// # Detection
//
// IsSecure classifies a payload by shape alone. Decoder.Decode uses the same
// rule to pick a format, then decodes with it.
//
// # Errors
//
// Every decode failure wraps one of ErrMalformed, ErrCompression or ErrXML.
// The signature is never checked.
package aadhaar
