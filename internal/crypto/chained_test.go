package crypto_test

import (
	"testing"

	"aadhaarqr/internal/crypto"
)

func TestChainedSHA256_SingleRound(t *testing.T) {
	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := crypto.ChainedSHA256("abc", 1); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
	if got := crypto.ChainedSHA256("abc", 0); got != want {
		t.Fatalf("zero rounds: got %s, want %s", got, want)
	}
}

func TestChainedSHA256_FeedsHexForward(t *testing.T) {
	once := crypto.ChainedSHA256("abc", 1)
	if got, want := crypto.ChainedSHA256("abc", 3), crypto.ChainedSHA256(crypto.ChainedSHA256(once, 1), 1); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestFingerprint_Length(t *testing.T) {
	if got := crypto.Fingerprint([]byte("payload")); len(got) != 20 {
		t.Fatalf("fingerprint %q has length %d, want 20", got, len(got))
	}
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3}
	crypto.Wipe(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d = %d after wipe", i, v)
		}
	}
}

func TestFingerprint_Stable(t *testing.T) {
	a := crypto.Fingerprint([]byte("<PrintLetterBarcodeData uid=\"1\"/>"))
	if a != crypto.Fingerprint([]byte("<PrintLetterBarcodeData uid=\"1\"/>")) {
		t.Fatal("fingerprint changed between calls")
	}
	if a == crypto.Fingerprint([]byte("<PrintLetterBarcodeData uid=\"2\"/>")) {
		t.Fatal("different payloads share a fingerprint")
	}
}
