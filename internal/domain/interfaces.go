package domain

// Decoder turns a raw QR payload into fields, detecting the encoding itself.
type Decoder interface {
	Decode(payload string) (Decoded, error)
}

// Classifier tells secure payloads from old ones without decoding them.
type Classifier interface {
	IsSecure(payload string) bool
}

// ContactHasher derives the comparison hash for an email address or mobile
// number from the number of rounds recorded in a Decoded payload.
type ContactHasher interface {
	HashContact(value string, rounds int) string
}

// DecodeService decodes one payload into exactly one Result. Decoder errors
// are folded into the Result rather than returned.
type DecodeService interface {
	Decode(payload string, req VerifyRequest) Result
}
