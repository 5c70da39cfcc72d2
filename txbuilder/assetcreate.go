package txbuilder

import (
	"encoding/hex"

	"github.com/ddenet/chain/address"
	"github.com/ddenet/chain/crypto"
	"github.com/ddenet/chain/primitives"
	"github.com/ddenet/chain/script"
)

// createScriptSig builds the asset-creation script_signature shape
// `[OP_CREATE, Num(block_num), Bytes(asset_hash), Signature, PubKey,
// OP_CHECKSIG]` where asset_hash is hex(SHA3-256(bincode(asset))) and the
// signature is computed over those same hex bytes, matching
// txvalidate.AssetCreateIsValid.
func createScriptSig(blockNum uint64, asset primitives.Asset, pk crypto.PublicKey, sk crypto.SecretKey) (script.Script, error) {
	assetBytes, err := asset.MarshalBinary()
	if err != nil {
		return script.Script{}, err
	}
	assetHash := hex.EncodeToString(crypto.Sha3_256(assetBytes).Bytes())
	msg := []byte(assetHash)
	sig := crypto.SignDetached(msg, sk)

	return script.New(
		script.NewOpEntry(script.OP_CREATE),
		script.NewNumEntry(blockNum),
		script.NewBytesEntry(msg),
		script.NewSignatureEntry(sig),
		script.NewPubKeyEntry(pk),
		script.NewOpEntry(script.OP_CHECKSIG),
	), nil
}

// BuildAssetCreateTx constructs a creation transaction whose single
// output carries asset, authorized by the asset-creation script shape.
func BuildAssetCreateTx(blockNum uint64, asset primitives.Asset, pk crypto.PublicKey, sk crypto.SecretKey) (primitives.Transaction, error) {
	sigScript, err := createScriptSig(blockNum, asset, pk, sk)
	if err != nil {
		return primitives.Transaction{}, err
	}

	addr := address.Construct(pk)
	in := primitives.TxIn{ScriptSig: sigScript}
	out := primitives.TxOut{Value: asset, ScriptPublicKey: &addr}

	return primitives.Transaction{
		Inputs:  []primitives.TxIn{in},
		Outputs: []primitives.TxOut{out},
		Version: primitives.NetworkVersion,
	}, nil
}
