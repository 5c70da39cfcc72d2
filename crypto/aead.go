package crypto

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// AeadKeySize is the length in bytes of a ChaCha20-Poly1305 key.
const AeadKeySize = chacha20poly1305.KeySize

// AeadNonceSize is the length in bytes of a ChaCha20-Poly1305 nonce.
const AeadNonceSize = chacha20poly1305.NonceSize

// AeadKey is a ChaCha20-Poly1305 symmetric key.
type AeadKey [AeadKeySize]byte

// AeadNonce is a ChaCha20-Poly1305 nonce. Callers are responsible for never
// reusing a nonce with the same key.
type AeadNonce [AeadNonceSize]byte

// Bytes returns the raw key bytes.
func (k AeadKey) Bytes() []byte { return k[:] }

// Bytes returns the raw nonce bytes.
func (n AeadNonce) Bytes() []byte { return n[:] }

// GenAeadKey generates a random ChaCha20-Poly1305 key.
func GenAeadKey() (AeadKey, error) {
	var k AeadKey
	b, err := RandomBytes(AeadKeySize)
	if err != nil {
		return k, err
	}
	copy(k[:], b)
	return k, nil
}

// GenAeadNonce generates a random ChaCha20-Poly1305 nonce.
func GenAeadNonce() (AeadNonce, error) {
	var n AeadNonce
	b, err := RandomBytes(AeadNonceSize)
	if err != nil {
		return n, err
	}
	copy(n[:], b)
	return n, nil
}

// Seal encrypts and authenticates plaintext, optionally additionally
// authenticating aad, under key and nonce. The returned ciphertext is
// plaintext length plus the 16-byte Poly1305 tag.
func Seal(key AeadKey, nonce AeadNonce, plaintext, aad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, fmt.Errorf("crypto: init aead: %w", err)
	}
	return aead.Seal(nil, nonce[:], plaintext, aad), nil
}

// Open authenticates and decrypts ciphertext, which must have been produced
// by Seal with the same key, nonce, and aad.
func Open(key AeadKey, nonce AeadNonce, ciphertext, aad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, fmt.Errorf("crypto: init aead: %w", err)
	}
	plaintext, err := aead.Open(nil, nonce[:], ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("crypto: aead open: %w", err)
	}
	return plaintext, nil
}

// MarshalJSON implements the hex-string text contract.
func (k AeadKey) MarshalJSON() ([]byte, error) { return marshalHex(k[:]) }

// UnmarshalJSON accepts a hex string or the legacy byte-array-literal form.
func (k *AeadKey) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHexOrLegacy(data, AeadKeySize)
	if err != nil {
		return err
	}
	copy(k[:], b)
	return nil
}

// MarshalJSON implements the hex-string text contract.
func (n AeadNonce) MarshalJSON() ([]byte, error) { return marshalHex(n[:]) }

// UnmarshalJSON accepts a hex string or the legacy byte-array-literal form.
func (n *AeadNonce) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHexOrLegacy(data, AeadNonceSize)
	if err != nil {
		return err
	}
	copy(n[:], b)
	return nil
}
