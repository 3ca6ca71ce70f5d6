package decode

import (
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"aadhaarqr/internal/crypto"
	"aadhaarqr/internal/domain"
)

// PreviewLimit is the number of code points of a failing payload echoed back.
const PreviewLimit = 100

const ellipsis = "..."

// Service decodes payloads and shapes the outcome into a domain.Result.
type Service struct {
	decoder    domain.Decoder
	classifier domain.Classifier
	hasher     domain.ContactHasher
	log        logrus.FieldLogger
}

// New constructs a decode Service.
func New(
	decoder domain.Decoder,
	classifier domain.Classifier,
	hasher domain.ContactHasher,
	log logrus.FieldLogger,
) *Service {
	return &Service{
		decoder:    decoder,
		classifier: classifier,
		hasher:     hasher,
		log:        log,
	}
}

// Decode runs the decoder on payload.
//
// Any decoder error becomes an error Result with the error text, the
// payload's length in code points and a preview of at most PreviewLimit code
// points (plus "..." when cut). On success the qr_type tag comes from the
// classifier, not from the decoder's own choice.
func (s *Service) Decode(payload string, req domain.VerifyRequest) domain.Result {
	log := s.log.WithFields(logrus.Fields{
		"payload": crypto.Fingerprint([]byte(payload)),
		"length":  utf8.RuneCountInString(payload),
	})

	decoded, err := s.decoder.Decode(payload)
	if err != nil {
		log.WithError(err).Debug("decode failed")
		length, preview := Preview(payload)
		return domain.DecodeErrorResult(err.Error(), length, preview)
	}

	qrType := domain.QROld
	if s.classifier.IsSecure(payload) {
		qrType = domain.QRSecure
	}
	if qrType != decoded.Type {
		log.WithFields(logrus.Fields{
			"decoded_as":    decoded.Type,
			"classified_as": qrType,
		}).Warn("classification disagrees with decoder")
	}
	log.WithField("qr_type", qrType).Debug("decoded")

	return domain.SuccessResult(decoded.Fields, qrType, s.verify(decoded, req))
}

// verify returns nil when nothing was requested.
func (s *Service) verify(d domain.Decoded, req domain.VerifyRequest) *domain.Verification {
	if req.Email == "" && req.Mobile == "" {
		return nil
	}
	v := &domain.Verification{}
	if req.Email != "" {
		v.Email = s.check(req.Email, d.EmailHash, d.HashRounds)
	}
	if req.Mobile != "" {
		v.Mobile = s.check(req.Mobile, d.MobileHash, d.HashRounds)
	}
	return v
}

func (s *Service) check(value, want string, rounds int) *domain.VerifyOutcome {
	out := domain.VerifyAbsent
	switch {
	case want == "":
	case s.hasher.HashContact(value, rounds) == want:
		out = domain.VerifyMatch
	default:
		out = domain.VerifyMismatch
	}
	return &out
}

// Preview returns payload's length in code points and its first PreviewLimit
// code points, with "..." appended when the payload is longer.
func Preview(payload string) (int, string) {
	n := utf8.RuneCountInString(payload)
	if n <= PreviewLimit {
		return n, payload
	}
	cut, count := 0, 0
	for i := range payload {
		if count == PreviewLimit {
			cut = i
			break
		}
		count++
	}
	return n, payload[:cut] + ellipsis
}

// Compile-time assertion that Service implements domain.DecodeService.
var _ domain.DecodeService = (*Service)(nil)
