package domain

import (
	"bytes"
	"encoding/json"

	"github.com/iancoleman/orderedmap"
)

// QRType identifies which Aadhaar QR encoding a payload uses.
type QRType string

const (
	QRSecure QRType = "secure"
	QROld    QRType = "old"
)

// Status is the outcome tag of a Result.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// VerifyOutcome reports a contact verification against a secure QR hash.
type VerifyOutcome string

const (
	VerifyMatch    VerifyOutcome = "match"
	VerifyMismatch VerifyOutcome = "mismatch"
	VerifyAbsent   VerifyOutcome = "absent" // no hash to compare against
)

// Fields is the decoded field mapping. Keys keep the order the decoder
// produced them in.
type Fields = *orderedmap.OrderedMap

// NewFields returns an empty Fields that marshals without HTML escaping.
func NewFields() Fields {
	f := orderedmap.New()
	f.SetEscapeHTML(false)
	return f
}

// Decoded is what a Decoder returns for a payload it understood.
type Decoded struct {
	Type   QRType
	Fields Fields

	// Contact hashes, hex encoded. Empty when the payload carries none.
	EmailHash  string
	MobileHash string
	// HashRounds is how many times a contact value is hashed before it is
	// compared to EmailHash or MobileHash.
	HashRounds int
}

// Verification holds requested contact checks. A nil pointer means the
// check was not requested.
type Verification struct {
	Email  *VerifyOutcome `json:"email,omitempty"`
	Mobile *VerifyOutcome `json:"mobile,omitempty"`
}

// Result is the single record emitted per invocation. Exactly one of the
// success, decode-error and usage-error shapes is produced; use the
// constructors rather than filling the struct by hand.
type Result struct {
	Status Status

	// success
	Data         Fields
	QRType       QRType
	Verification *Verification

	// error
	Error         string
	PayloadLength int
	Preview       string
	usage         bool
}

// SuccessResult tags decoded fields with their QR type.
func SuccessResult(data Fields, t QRType, v *Verification) Result {
	if data == nil {
		data = NewFields()
	}
	return Result{Status: StatusSuccess, Data: data, QRType: t, Verification: v}
}

// DecodeErrorResult describes a failed decode of a payload.
func DecodeErrorResult(msg string, length int, preview string) Result {
	return Result{Status: StatusError, Error: msg, PayloadLength: length, Preview: preview}
}

// UsageErrorResult describes a malformed invocation. It carries no payload details.
func UsageErrorResult(msg string) Result {
	return Result{Status: StatusError, Error: msg, usage: true}
}

// IsUsage reports whether r came from UsageErrorResult.
func (r Result) IsUsage() bool { return r.usage }

// MarshalJSON emits only the keys that belong to r's variant, in a fixed order.
func (r Result) MarshalJSON() ([]byte, error) {
	var v any
	switch {
	case r.Status == StatusSuccess:
		v = struct {
			Status       Status        `json:"status"`
			Data         Fields        `json:"data"`
			QRType       QRType        `json:"qr_type"`
			Verification *Verification `json:"verification,omitempty"`
		}{r.Status, r.Data, r.QRType, r.Verification}
	case r.usage:
		v = struct {
			Status Status `json:"status"`
			Error  string `json:"error"`
		}{r.Status, r.Error}
	default:
		v = struct {
			Status        Status `json:"status"`
			Error         string `json:"error"`
			QRDataLength  int    `json:"qr_data_length"`
			QRDataPreview string `json:"qr_data_preview"`
		}{r.Status, r.Error, r.PayloadLength, r.Preview}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// VerifyRequest names the contact details to check against a secure
// payload's hashes. Empty values are not checked.
type VerifyRequest struct {
	Email  string
	Mobile string
}
