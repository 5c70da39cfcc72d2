package crypto

import "golang.org/x/crypto/sha3"

// HashSize is the length in bytes of a digest produced by Hash.
const HashSize = 32

// Hash is a SHA3-256 digest.
type Hash [HashSize]byte

// Bytes returns the raw digest bytes.
func (h Hash) Bytes() []byte { return h[:] }

// HashFromSlice builds a Hash from a byte slice of the correct length.
func HashFromSlice(b []byte) (Hash, bool) {
	var h Hash
	if len(b) != HashSize {
		return h, false
	}
	copy(h[:], b)
	return h, true
}

// Sha3_256 computes the SHA3-256 digest of data.
func Sha3_256(data []byte) Hash {
	var h Hash
	sum := sha3.Sum256(data)
	copy(h[:], sum[:])
	return h
}

// Sha3_256Concat computes the SHA3-256 digest of the concatenation of parts,
// without allocating an intermediate buffer to hold the whole input.
func Sha3_256Concat(parts ...[]byte) Hash {
	d := sha3.New256()
	for _, p := range parts {
		d.Write(p)
	}
	var h Hash
	copy(h[:], d.Sum(nil))
	return h
}

// MarshalJSON implements the hex-string text contract.
func (h Hash) MarshalJSON() ([]byte, error) { return marshalHex(h[:]) }

// UnmarshalJSON accepts a hex string or the legacy byte-array-literal form.
func (h *Hash) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHexOrLegacy(data, HashSize)
	if err != nil {
		return err
	}
	copy(h[:], b)
	return nil
}

// String returns the lowercase hex encoding of the digest.
func (h Hash) String() string {
	const hextable = "0123456789abcdef"
	out := make([]byte, HashSize*2)
	for i, b := range h {
		out[i*2] = hextable[b>>4]
		out[i*2+1] = hextable[b&0x0f]
	}
	return string(out)
}
