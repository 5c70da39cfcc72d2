package crypto

import (
	"bytes"
	stded25519 "crypto/ed25519"
	"crypto/x509"
	"fmt"

	"github.com/ddenet/chain/wire"
)

// SignatureSize is the length in bytes of an Ed25519 signature.
const SignatureSize = stded25519.SignatureSize

// PublicKeySize is the length in bytes of an Ed25519 public key.
const PublicKeySize = stded25519.PublicKeySize

// Signature is a detached Ed25519 signature.
type Signature [SignatureSize]byte

// PublicKey is an Ed25519 public key.
type PublicKey [PublicKeySize]byte

// SecretKey is the PKCS#8 DER encoding of an Ed25519 private key, matching
// the wire format produced by keys generated outside this package (around
// 85 bytes). A malformed SecretKey is not rejected at construction time;
// instead SignDetached degrades to a zero signature and VerifyDetached
// always returns false, mirroring how signing libraries that wrap
// platform-provided keystores handle unparsable key material.
type SecretKey []byte

// Bytes returns the raw signature bytes.
func (s Signature) Bytes() []byte { return s[:] }

// Bytes returns the raw public key bytes.
func (p PublicKey) Bytes() []byte { return p[:] }

// Bytes returns the raw PKCS#8 DER bytes.
func (s SecretKey) Bytes() []byte { return s }

// SignatureFromSlice builds a Signature from a byte slice of the correct length.
func SignatureFromSlice(b []byte) (Signature, bool) {
	var s Signature
	if len(b) != SignatureSize {
		return s, false
	}
	copy(s[:], b)
	return s, true
}

// PublicKeyFromSlice builds a PublicKey from a byte slice of the correct length.
func PublicKeyFromSlice(b []byte) (PublicKey, bool) {
	var p PublicKey
	if len(b) != PublicKeySize {
		return p, false
	}
	copy(p[:], b)
	return p, true
}

// GenKeyPair generates a new random Ed25519 keypair. The secret key is
// returned as its PKCS#8 DER encoding.
func GenKeyPair() (PublicKey, SecretKey, error) {
	pub, priv, err := stded25519.GenerateKey(nil)
	if err != nil {
		return PublicKey{}, nil, fmt.Errorf("crypto: generate ed25519 keypair: %w", err)
	}
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return PublicKey{}, nil, fmt.Errorf("crypto: marshal pkcs8: %w", err)
	}
	pk, _ := PublicKeyFromSlice(pub)
	return pk, SecretKey(der), nil
}

// parseSecretKey recovers the usable stdlib private key from its PKCS#8 DER
// encoding, returning ok=false on any malformed input rather than an error:
// callers degrade to a zero signature / false verdict instead of crashing.
func parseSecretKey(sk SecretKey) (stded25519.PrivateKey, bool) {
	key, err := x509.ParsePKCS8PrivateKey(sk)
	if err != nil {
		return nil, false
	}
	priv, ok := key.(stded25519.PrivateKey)
	if !ok {
		return nil, false
	}
	return priv, true
}

// SignDetached signs msg with sk, returning a zero signature if sk does not
// decode to a valid Ed25519 private key.
func SignDetached(msg []byte, sk SecretKey) Signature {
	priv, ok := parseSecretKey(sk)
	if !ok {
		return Signature{}
	}
	sig := stded25519.Sign(priv, msg)
	s, ok := SignatureFromSlice(sig)
	if !ok {
		return Signature{}
	}
	return s
}

// VerifyDetached reports whether sig is a valid Ed25519 signature over msg
// under pk.
func VerifyDetached(sig Signature, msg []byte, pk PublicKey) bool {
	return stded25519.Verify(pk.Bytes(), msg, sig.Bytes())
}

// MarshalBinary implements the length-prefixed binary contract.
func (s Signature) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	w.PutBytes(s[:])
	return buf.Bytes(), w.Err()
}

// MarshalBinary implements the length-prefixed binary contract.
func (p PublicKey) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	w.PutBytes(p[:])
	return buf.Bytes(), w.Err()
}

// MarshalBinary implements the length-prefixed binary contract.
func (s SecretKey) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	w.PutBytes(s)
	return buf.Bytes(), w.Err()
}

// MarshalJSON implements the hex-string text contract.
func (s Signature) MarshalJSON() ([]byte, error) { return marshalHex(s[:]) }

// UnmarshalJSON accepts a hex string or the legacy byte-array-literal form.
func (s *Signature) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHexOrLegacy(data, SignatureSize)
	if err != nil {
		return err
	}
	copy(s[:], b)
	return nil
}

// MarshalJSON implements the hex-string text contract.
func (p PublicKey) MarshalJSON() ([]byte, error) { return marshalHex(p[:]) }

// UnmarshalJSON accepts a hex string or the legacy byte-array-literal form.
func (p *PublicKey) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHexOrLegacy(data, PublicKeySize)
	if err != nil {
		return err
	}
	copy(p[:], b)
	return nil
}

// MarshalJSON implements the hex-string text contract.
func (s SecretKey) MarshalJSON() ([]byte, error) { return marshalHex(s) }

// UnmarshalJSON accepts a hex string or the legacy byte-array-literal form.
func (s *SecretKey) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHexOrLegacy(data, -1)
	if err != nil {
		return err
	}
	*s = b
	return nil
}
