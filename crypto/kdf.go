package crypto

import (
	"crypto/sha256"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

// KdfSaltSize is the length in bytes of a PBKDF2 salt.
const KdfSaltSize = 32

// OpsLimitInteractive is the recommended PBKDF2 iteration count for
// interactive key derivation (matching the "interactive" work factor used
// elsewhere in the module's key-derivation callers).
const OpsLimitInteractive = 100_000

// KdfSalt is a PBKDF2 salt.
type KdfSalt [KdfSaltSize]byte

// Bytes returns the raw salt bytes.
func (s KdfSalt) Bytes() []byte { return s[:] }

// GenKdfSalt generates a random PBKDF2 salt.
func GenKdfSalt() (KdfSalt, error) {
	var s KdfSalt
	b, err := RandomBytes(KdfSaltSize)
	if err != nil {
		return s, err
	}
	copy(s[:], b)
	return s, nil
}

// ErrZeroIterations is returned by DeriveKey when iterations is zero. The
// original implementation silently derived a key directly from the
// password in this case; this module instead rejects it outright, since a
// zero-iteration derivation provides no protection against a weak password.
var ErrZeroIterations = errors.New("crypto: pbkdf2 iterations must be non-zero")

// DeriveKey derives an AeadKey from password and salt using
// PBKDF2-HMAC-SHA256 with the given iteration count.
func DeriveKey(password []byte, salt KdfSalt, iterations int) (AeadKey, error) {
	var key AeadKey
	if iterations <= 0 {
		return key, ErrZeroIterations
	}
	derived := pbkdf2.Key(password, salt[:], iterations, AeadKeySize, sha256.New)
	copy(key[:], derived)
	return key, nil
}

// MarshalJSON implements the hex-string text contract.
func (s KdfSalt) MarshalJSON() ([]byte, error) { return marshalHex(s[:]) }

// UnmarshalJSON accepts a hex string or the legacy byte-array-literal form.
func (s *KdfSalt) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHexOrLegacy(data, KdfSaltSize)
	if err != nil {
		return err
	}
	copy(s[:], b)
	return nil
}
