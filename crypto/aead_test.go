package crypto

import "testing"

func TestSealOpenRoundTrip(t *testing.T) {
	key, err := GenAeadKey()
	if err != nil {
		t.Fatalf("GenAeadKey: %v", err)
	}
	nonce, err := GenAeadNonce()
	if err != nil {
		t.Fatalf("GenAeadNonce: %v", err)
	}
	plaintext := []byte("secret payload")
	aad := []byte("associated data")

	ciphertext, err := Seal(key, nonce, plaintext, aad)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	got, err := Open(key, nonce, ciphertext, aad)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if string(got) != string(plaintext) {
		t.Fatalf("roundtrip mismatch: got %q want %q", got, plaintext)
	}
}

func TestOpenFailsOnTamperedCiphertext(t *testing.T) {
	key, _ := GenAeadKey()
	nonce, _ := GenAeadNonce()
	ciphertext, err := Seal(key, nonce, []byte("secret payload"), nil)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	ciphertext[0] ^= 0xff
	if _, err := Open(key, nonce, ciphertext, nil); err == nil {
		t.Fatal("Open succeeded on tampered ciphertext")
	}
}

func TestOpenFailsOnWrongAAD(t *testing.T) {
	key, _ := GenAeadKey()
	nonce, _ := GenAeadNonce()
	ciphertext, err := Seal(key, nonce, []byte("secret payload"), []byte("correct aad"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if _, err := Open(key, nonce, ciphertext, []byte("wrong aad")); err == nil {
		t.Fatal("Open succeeded with mismatched associated data")
	}
}
