package txbuilder

import (
	"encoding/hex"

	"github.com/ddenet/chain/address"
	"github.com/ddenet/chain/crypto"
	"github.com/ddenet/chain/primitives"
	"github.com/ddenet/chain/script"
)

// Spendable is one UTXO a payment transaction will consume: the outpoint
// it references, the keypair authorized to spend it, and the address
// that was actually used to lock it (may be any of the three schemes
// address.Matches accepts).
type Spendable struct {
	PreviousOut   primitives.OutPoint
	PublicKey     crypto.PublicKey
	SecretKey     crypto.SecretKey
	LockingAddr   string
}

// BuildP2PKHScriptSig signs s.PreviousOut's bincode hash with s.SecretKey
// and arranges the pay-to-public-key-hash shape
// `[Bytes(outpoint_hash), Signature, PubKey, OP_DUP, OP_HASH256|V0|TEMP,
// PubKeyHash(expected), OP_EQUALVERIFY, OP_CHECKSIG]` that
// txvalidate.P2PKHIsValid checks. The hash opcode is the one whose scheme
// derives s.LockingAddr from s.PublicKey, OP_HASH256 when none does.
func BuildP2PKHScriptSig(s Spendable) (script.Script, error) {
	hashBytes, err := s.PreviousOut.MarshalBinary()
	if err != nil {
		return script.Script{}, err
	}
	msg := []byte(hex.EncodeToString(hashBytes))
	sig := crypto.SignDetached(msg, s.SecretKey)

	hashOp := script.OP_HASH256
	switch s.LockingAddr {
	case address.ConstructV0(s.PublicKey):
		hashOp = script.OP_HASH256_V0
	case address.ConstructTemp(s.PublicKey):
		hashOp = script.OP_HASH256_TEMP
	}

	return script.New(
		script.NewBytesEntry(msg),
		script.NewSignatureEntry(sig),
		script.NewPubKeyEntry(s.PublicKey),
		script.NewOpEntry(script.OP_DUP),
		script.NewOpEntry(hashOp),
		script.NewPubKeyHashEntry(s.LockingAddr),
		script.NewOpEntry(script.OP_EQUALVERIFY),
		script.NewOpEntry(script.OP_CHECKSIG),
	), nil
}

// BuildPaymentTx spends inputs to pay asset to toAddr, with optional
// locktime and DRS references on the created output.
func BuildPaymentTx(inputs []Spendable, toAddr string, asset primitives.Asset, locktime uint64, drsBlockHash, drsTxHash *string) (primitives.Transaction, error) {
	txIns := make([]primitives.TxIn, 0, len(inputs))
	for _, in := range inputs {
		sigScript, err := BuildP2PKHScriptSig(in)
		if err != nil {
			return primitives.Transaction{}, err
		}
		prev := in.PreviousOut
		txIns = append(txIns, primitives.TxIn{PreviousOut: &prev, ScriptSig: sigScript})
	}

	out := primitives.TxOut{
		Value:           asset,
		Locktime:        locktime,
		DRSBlockHash:    drsBlockHash,
		DRSTxHash:       drsTxHash,
		ScriptPublicKey: &toAddr,
	}

	return primitives.Transaction{
		Inputs:  txIns,
		Outputs: []primitives.TxOut{out},
		Version: primitives.NetworkVersion,
	}, nil
}
