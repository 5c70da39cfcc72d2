// Package crypto implements the cryptographic primitives consumed by the
// rest of the module: Ed25519 signing, SHA3-256 digests, ChaCha20-Poly1305
// AEAD sealing, and PBKDF2 key derivation.
//
// Every key, signature, nonce, and salt type in this package follows the
// same serialization contract: the binary encoding is a little-endian
// uint64 length prefix followed by the raw bytes (see the wire package),
// and the JSON encoding is a hex string that also accepts the legacy
// byte-array-literal form on decode.
package crypto

import "crypto/rand"

// RandomBytes returns n cryptographically secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
