// Package txvalidate recognizes the script shapes that authorize a
// transaction input (pay-to-public-key-hash, member multisig, multisig,
// and asset-creation) and drives the script package's interpreter to
// confirm each one actually verifies.
package txvalidate

import (
	"encoding/hex"

	"github.com/ddenet/chain/crypto"
	"github.com/ddenet/chain/primitives"
	"github.com/ddenet/chain/script"
)

// outpointHash returns hex(bincode(previous_out)), the value signed into
// a P2PKH or asset-creation script's leading Bytes entry.
func outpointHash(out primitives.OutPoint) (string, error) {
	b, err := out.MarshalBinary()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func isHash256Variant(op script.OpCode) bool {
	return op == script.OP_HASH256 || op == script.OP_HASH256_V0 || op == script.OP_HASH256_TEMP
}

// P2PKHIsValid checks that sig matches the pay-to-public-key-hash shape
// `[Bytes(outpoint_hash), Signature, PubKey, OP_DUP, OP_HASH256|V0|TEMP,
// PubKeyHash(expected), OP_EQUALVERIFY, OP_CHECKSIG]`, that the leading
// hash matches previousOut, that the expected address matches
// expectedAddr, and that interpreting the whole script succeeds.
func P2PKHIsValid(sig script.Script, previousOut primitives.OutPoint, expectedAddr string) bool {
	e := sig.Entries
	if len(e) != 8 {
		return false
	}
	if e[0].Kind != script.EntryBytes || e[1].Kind != script.EntrySignature ||
		e[2].Kind != script.EntryPubKey {
		return false
	}
	if e[3].Kind != script.EntryOp || e[3].Op != script.OP_DUP {
		return false
	}
	if e[4].Kind != script.EntryOp || !isHash256Variant(e[4].Op) {
		return false
	}
	if e[5].Kind != script.EntryPubKeyHash {
		return false
	}
	if e[6].Kind != script.EntryOp || e[6].Op != script.OP_EQUALVERIFY {
		return false
	}
	if e[7].Kind != script.EntryOp || e[7].Op != script.OP_CHECKSIG {
		return false
	}

	wantHash, err := outpointHash(previousOut)
	if err != nil || string(e[0].Bytes) != wantHash {
		return false
	}
	if e[5].PubKeyHash != expectedAddr {
		return false
	}

	ok, _ := script.Execute(sig)
	return ok
}

// MemberMultisigIsValid checks the shape `[Bytes(data), Signature,
// PubKey, OP_CHECKSIG]`: the final execution must return true, i.e. the
// signature must verify against the pubkey over data.
func MemberMultisigIsValid(sig script.Script) bool {
	e := sig.Entries
	if len(e) != 4 {
		return false
	}
	if e[0].Kind != script.EntryBytes || e[1].Kind != script.EntrySignature ||
		e[2].Kind != script.EntryPubKey {
		return false
	}
	if e[3].Kind != script.EntryOp || e[3].Op != script.OP_CHECKSIG {
		return false
	}
	ok, _ := script.Execute(sig)
	return ok
}

// MultisigIsValid checks the shape `[Bytes(data), sig_1..sig_m, Num(m),
// pk_1..pk_n, Num(n), OP_CHECKMULTISIG]`, delegating the actual
// signature-matching semantics to OP_CHECKMULTISIG.
func MultisigIsValid(sig script.Script) bool {
	e := sig.Entries
	if len(e) < 4 {
		return false
	}
	if e[0].Kind != script.EntryBytes {
		return false
	}
	if e[len(e)-1].Kind != script.EntryOp || e[len(e)-1].Op != script.OP_CHECKMULTISIG {
		return false
	}
	ok, _ := script.Execute(sig)
	return ok
}

// AssetCreateIsValid checks the shape `[OP_CREATE, Num(block_num),
// Bytes(asset_hash), Signature, PubKey, OP_CHECKSIG]`, that asset_hash
// equals hex(SHA3-256(bincode(asset))) for the actual output asset, and
// that the script interprets successfully.
func AssetCreateIsValid(sig script.Script, asset primitives.Asset) bool {
	e := sig.Entries
	if len(e) != 6 {
		return false
	}
	if e[0].Kind != script.EntryOp || e[0].Op != script.OP_CREATE {
		return false
	}
	if e[1].Kind != script.EntryNum {
		return false
	}
	if e[2].Kind != script.EntryBytes {
		return false
	}
	if e[3].Kind != script.EntrySignature || e[4].Kind != script.EntryPubKey {
		return false
	}
	if e[5].Kind != script.EntryOp || e[5].Op != script.OP_CHECKSIG {
		return false
	}

	assetBytes, err := asset.MarshalBinary()
	if err != nil {
		return false
	}
	wantHash := hex.EncodeToString(crypto.Sha3_256(assetBytes).Bytes())
	if string(e[2].Bytes) != wantHash {
		return false
	}

	ok, _ := script.Execute(sig)
	return ok
}
