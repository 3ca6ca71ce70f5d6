package aadhaar

import (
	"bytes"
	"compress/gzip"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/text/encoding/charmap"

	"aadhaarqr/internal/crypto"
	"aadhaarqr/internal/domain"
)

const (
	fieldDelimiter = 0xFF
	signatureSize  = 256
	hashSize       = 32
)

// Text fields of a secure payload without a version tag, in wire order.
var unversionedFields = []string{
	"email_mobile_status",
	"referenceid",
	"name",
	"dob",
	"gender",
	"careof",
	"district",
	"landmark",
	"house",
	"location",
	"pincode",
	"postoffice",
	"state",
	"street",
	"subdistrict",
	"vtc",
}

// Versioned payloads lead with the tag and add the mobile number's last digits.
var versionedFields = append(append([]string{"version"}, unversionedFields...), "last_4_digits_mobile_no")

var versionTag = regexp.MustCompile(`^V[0-9]+$`)

// Bits of email_mobile_status.
const (
	hasEmail  = 1
	hasMobile = 2
)

func decodeSecure(payload string) (domain.Decoded, error) {
	raw, err := payloadBytes(payload)
	if err != nil {
		return domain.Decoded{}, err
	}
	plain, err := gunzip(raw)
	if err != nil {
		return domain.Decoded{}, err
	}
	defer crypto.Wipe(plain)

	names := unversionedFields
	if first, _, _ := bytes.Cut(plain, []byte{fieldDelimiter}); versionTag.Match(first) {
		names = versionedFields
	}

	values, tail, err := splitFields(plain, len(names))
	if err != nil {
		return domain.Decoded{}, err
	}

	latin1 := charmap.ISO8859_1.NewDecoder()
	fields := domain.NewFields()
	text := make(map[string]string, len(names))
	for i, name := range names {
		s, err := latin1.String(string(values[i]))
		if err != nil {
			return domain.Decoded{}, fmt.Errorf("%w: field %s: %v", ErrMalformed, name, err)
		}
		fields.Set(name, s)
		text[name] = s
	}

	status, err := strconv.Atoi(strings.TrimSpace(text["email_mobile_status"]))
	if err != nil {
		return domain.Decoded{}, fmt.Errorf("%w: email_mobile_status %q", ErrMalformed, text["email_mobile_status"])
	}
	if status < 0 || status > hasEmail|hasMobile {
		status = 0 // unknown values announce neither contact
	}
	ref := []rune(text["referenceid"])
	if len(ref) < 4 {
		return domain.Decoded{}, fmt.Errorf("%w: referenceid %q too short", ErrMalformed, text["referenceid"])
	}
	lastDigit := string(ref[3])
	fields.Set("adhaar_last_4_digit", string(ref[:4]))
	fields.Set("adhaar_last_digit", lastDigit)
	fields.Set("email", status&hasEmail != 0)
	fields.Set("mobile", status&hasMobile != 0)

	out := domain.Decoded{Type: domain.QRSecure, Fields: fields, HashRounds: hashRounds(lastDigit)}
	out.EmailHash, out.MobileHash = contactHashes(tail, status)
	return out, nil
}

// contactHashes reads the hashes status announces from tail, laid out as
// photo, [email hash], [mobile hash], signature. A tail that cannot hold
// them yields no hashes; the text fields stand on their own.
func contactHashes(tail []byte, status int) (email, mobile string) {
	want := 0
	if status&hasEmail != 0 {
		want += hashSize
	}
	if status&hasMobile != 0 {
		want += hashSize
	}
	photo := len(tail) - want - signatureSize
	if want == 0 || photo < 0 {
		return "", ""
	}

	var e, m, sig []byte
	s := cryptobyte.String(tail)
	if !s.Skip(photo) {
		return "", ""
	}
	if status&hasEmail != 0 && !s.ReadBytes(&e, hashSize) {
		return "", ""
	}
	if status&hasMobile != 0 && !s.ReadBytes(&m, hashSize) {
		return "", ""
	}
	if !s.ReadBytes(&sig, signatureSize) || !s.Empty() {
		return "", ""
	}
	return hex.EncodeToString(e), hex.EncodeToString(m)
}

// payloadBytes converts the decimal payload to its big-endian bytes.
func payloadBytes(payload string) ([]byte, error) {
	s := strings.ReplaceAll(strings.TrimSpace(payload), "_", "")
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: not a base-10 integer", ErrMalformed)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative integer", ErrMalformed)
	}
	b := n.Bytes()
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: zero payload", ErrMalformed)
	}
	return b, nil
}

func gunzip(raw []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	defer zr.Close()
	zr.Multistream(false)

	plain, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	return plain, nil
}

// splitFields cuts the first n delimited fields off b and returns the rest.
func splitFields(b []byte, n int) ([][]byte, []byte, error) {
	fields := make([][]byte, 0, n)
	for len(fields) < n {
		field, rest, found := bytes.Cut(b, []byte{fieldDelimiter})
		if !found {
			return nil, nil, fmt.Errorf("%w: expected %d fields, found %d", ErrMalformed, n, len(fields))
		}
		fields = append(fields, field)
		b = rest
	}
	return fields, b, nil
}

// hashRounds is the Aadhaar number's last digit, with 0 (or anything
// unparseable) meaning a single round.
func hashRounds(lastDigit string) int {
	n, err := strconv.Atoi(lastDigit)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
