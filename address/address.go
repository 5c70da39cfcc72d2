// Package address derives human-readable addresses from Ed25519 public
// keys. Three derivation schemes coexist for backward compatibility with
// data signed under older protocol versions: the current scheme, the v0
// scheme, and the temp scheme. Validators must accept an address produced
// by any of the three when checking a script against an expected
// public-key hash.
package address

import (
	"bytes"
	"encoding/hex"

	"github.com/ddenet/chain/crypto"
	"github.com/ddenet/chain/wire"
)

// Network version tags identifying which address derivation scheme was
// used to hash a public key into a TxOut's script_public_key.
const (
	NetworkVersionCurrent = -1
	NetworkVersionV0      = 0
	NetworkVersionTemp    = 99999
)

// currentLengthPrefix reproduces a legacy 64-bit length-prefix framing that
// predates this module's own wire encoding: an 8-byte little-endian prefix
// holding the literal value 32, followed by the raw public key bytes. This
// quirk is preserved byte-for-byte so that addresses derived under the
// current scheme match existing on-chain data.
var currentLengthPrefix = [8]byte{32, 0, 0, 0, 0, 0, 0, 0}

// Construct derives an address from pk using the current scheme: SHA3-256
// of the legacy-framed public key, truncated to 16 bytes, hex-encoded.
func Construct(pk crypto.PublicKey) string {
	buf := make([]byte, 0, len(currentLengthPrefix)+crypto.PublicKeySize)
	buf = append(buf, currentLengthPrefix[:]...)
	buf = append(buf, pk.Bytes()...)
	h := crypto.Sha3_256(buf)
	return hex.EncodeToString(h.Bytes()[:16])
}

// ConstructV0 derives an address from pk using the v0 scheme: SHA3-256 of
// the module's own length-prefixed binary encoding of the public key
// (rather than the legacy framing Construct uses), hex-encoded without
// truncation. This scheme predates the 16-byte truncation introduced by
// the current scheme.
func ConstructV0(pk crypto.PublicKey) string {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	w.PutBytes(pk.Bytes())
	h := crypto.Sha3_256(buf.Bytes())
	return hex.EncodeToString(h.Bytes())
}

// ConstructTemp derives an address from pk using the temp scheme, tagged
// by NetworkVersionTemp. It follows the v0 scheme's untruncated digest but
// additionally mixes in the version tag, keeping temp-scheme addresses
// distinct from v0-scheme addresses for the same key.
func ConstructTemp(pk crypto.PublicKey) string {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	w.PutUint64(uint64(NetworkVersionTemp))
	w.PutBytes(pk.Bytes())
	h := crypto.Sha3_256(buf.Bytes())
	return hex.EncodeToString(h.Bytes())
}

// ConstructFor derives an address from pk using the scheme identified by
// version (one of the NetworkVersion constants), defaulting to the
// current scheme for any value other than V0 or Temp.
func ConstructFor(pk crypto.PublicKey, version int) string {
	switch version {
	case NetworkVersionV0:
		return ConstructV0(pk)
	case NetworkVersionTemp:
		return ConstructTemp(pk)
	default:
		return Construct(pk)
	}
}

// Matches reports whether addr equals the address derived from pk under
// any of the three supported schemes. Validators use this instead of a
// single-scheme comparison so that a script referencing an older address
// format still verifies correctly.
func Matches(addr string, pk crypto.PublicKey) bool {
	return addr == Construct(pk) || addr == ConstructV0(pk) || addr == ConstructTemp(pk)
}
