package aadhaar

import "aadhaarqr/internal/domain"

// Decoder detects a payload's format and decodes it accordingly.
type Decoder struct{}

// NewDecoder returns a Decoder.
func NewDecoder() *Decoder { return &Decoder{} }

// Decode implements domain.Decoder.
func (*Decoder) Decode(payload string) (domain.Decoded, error) {
	if IsSecure(payload) {
		return decodeSecure(payload)
	}
	return decodeOld(payload)
}

// Compile-time assertions.
var (
	_ domain.Decoder    = (*Decoder)(nil)
	_ domain.Classifier = Classifier{}
)
