package decode_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"aadhaarqr/internal/aadhaar"
	"aadhaarqr/internal/crypto"
	"aadhaarqr/internal/domain"
	"aadhaarqr/internal/services/decode"
)

type stubDecoder struct {
	out domain.Decoded
	err error
}

func (s stubDecoder) Decode(string) (domain.Decoded, error) { return s.out, s.err }

type stubClassifier bool

func (s stubClassifier) IsSecure(string) bool { return bool(s) }

func newService(t *testing.T, dec domain.Decoder, cls domain.Classifier) (*decode.Service, *logtest.Hook) {
	t.Helper()
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return decode.New(dec, cls, crypto.Hasher{}, log), hook
}

func TestPreview_Boundary(t *testing.T) {
	exact := strings.Repeat("a", 100)
	if n, p := decode.Preview(exact); n != 100 || p != exact {
		t.Fatalf("100 chars: got (%d, %q)", n, p)
	}

	over := strings.Repeat("a", 100) + "b"
	if n, p := decode.Preview(over); n != 101 || p != exact+"..." {
		t.Fatalf("101 chars: got (%d, %q)", n, p)
	}

	if n, p := decode.Preview(""); n != 0 || p != "" {
		t.Fatalf("empty: got (%d, %q)", n, p)
	}
}

func TestPreview_CountsCodePoints(t *testing.T) {
	payload := strings.Repeat("é", 101)
	n, p := decode.Preview(payload)
	if n != 101 {
		t.Fatalf("length = %d, want 101", n)
	}
	if p != strings.Repeat("é", 100)+"..." {
		t.Fatalf("preview = %q", p)
	}
}

func TestDecode_ErrorCarriesPayloadDetails(t *testing.T) {
	svc, _ := newService(t, stubDecoder{err: errors.New("boom")}, stubClassifier(false))
	payload := strings.Repeat("x", 150)

	res := svc.Decode(payload, domain.VerifyRequest{})
	if res.Status != domain.StatusError || res.Error != "boom" {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.PayloadLength != 150 || res.Preview != strings.Repeat("x", 100)+"..." {
		t.Fatalf("length/preview = %d / %q", res.PayloadLength, res.Preview)
	}
	if res.IsUsage() {
		t.Fatal("decode failure must not be a usage error")
	}
}

func TestDecode_EmptyPayload(t *testing.T) {
	svc, _ := newService(t, aadhaar.NewDecoder(), aadhaar.Classifier{})

	res := svc.Decode("", domain.VerifyRequest{})
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["status"] != "error" || got["qr_data_length"] != float64(0) || got["qr_data_preview"] != "" {
		t.Fatalf("unexpected output %s", b)
	}
}

func TestDecode_TagComesFromClassifier(t *testing.T) {
	fields := domain.NewFields()
	fields.Set("uid", "1234")
	dec := stubDecoder{out: domain.Decoded{Type: domain.QROld, Fields: fields}}
	svc, hook := newService(t, dec, stubClassifier(true))

	res := svc.Decode("whatever", domain.VerifyRequest{})
	if res.Status != domain.StatusSuccess || res.QRType != domain.QRSecure {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Verification != nil {
		t.Fatal("verification must be nil when not requested")
	}

	warned := false
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = true
		}
	}
	if !warned {
		t.Fatal("expected a warning about the disagreement")
	}
}

func TestDecode_Verification(t *testing.T) {
	const rounds = 3
	dec := stubDecoder{out: domain.Decoded{
		Type:       domain.QRSecure,
		Fields:     domain.NewFields(),
		MobileHash: crypto.ChainedSHA256("9876543210", rounds),
		HashRounds: rounds,
	}}
	svc, _ := newService(t, dec, stubClassifier(true))

	res := svc.Decode("1", domain.VerifyRequest{Mobile: "9876543210", Email: "a@b.c"})
	if res.Verification == nil || res.Verification.Mobile == nil || res.Verification.Email == nil {
		t.Fatalf("verification incomplete: %+v", res.Verification)
	}
	if *res.Verification.Mobile != domain.VerifyMatch {
		t.Fatalf("mobile = %s, want match", *res.Verification.Mobile)
	}
	if *res.Verification.Email != domain.VerifyAbsent {
		t.Fatalf("email = %s, want absent", *res.Verification.Email)
	}

	res = svc.Decode("1", domain.VerifyRequest{Mobile: "0000000000"})
	if *res.Verification.Mobile != domain.VerifyMismatch {
		t.Fatalf("mobile = %s, want mismatch", *res.Verification.Mobile)
	}
	if res.Verification.Email != nil {
		t.Fatal("email was not requested")
	}
}

func TestDecode_Idempotent(t *testing.T) {
	svc, _ := newService(t, aadhaar.NewDecoder(), aadhaar.Classifier{})
	payload := `<PrintLetterBarcodeData uid="123412341234" name="Asha"/>`

	first, err := json.Marshal(svc.Decode(payload, domain.VerifyRequest{}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(svc.Decode(payload, domain.VerifyRequest{}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("outputs differ:\n%s\n%s", first, second)
	}
	want := `{"status":"success","data":{"uid":"123412341234","name":"Asha"},"qr_type":"old"}`
	if string(first) != want {
		t.Fatalf("got %s, want %s", first, want)
	}
}
