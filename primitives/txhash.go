package primitives

import "github.com/ddenet/chain/crypto"

// txHashLength is the fixed length, in characters, of a transaction hash:
// the TxPrepend byte followed by a truncated hex digest.
const txHashLength = 32

// ConstructTxHash computes a transaction's hash: SHA3-256 of its canonical
// binary encoding, hex-encoded, prefixed with TxPrepend, then truncated
// to txHashLength characters.
func ConstructTxHash(t Transaction) (string, error) {
	b, err := t.MarshalBinary()
	if err != nil {
		return "", err
	}
	digest := crypto.Sha3_256(b)
	full := string(TxPrepend) + digest.String()
	if len(full) > txHashLength {
		full = full[:txHashLength]
	}
	return full, nil
}
