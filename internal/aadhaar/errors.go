package aadhaar

import "errors"

var (
	// ErrMalformed is returned when a secure payload's structure is invalid.
	ErrMalformed = errors.New("malformed secure QR payload")
	// ErrCompression is returned when the secure payload is not a gzip stream.
	ErrCompression = errors.New("secure QR payload is not gzip compressed")
	// ErrXML is returned when an old payload is not well-formed XML.
	ErrXML = errors.New("old QR payload is not valid XML")
)
