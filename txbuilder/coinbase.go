// Package txbuilder assembles the well-known script shapes txvalidate
// recognizes: coinbase, asset-creation, pay-to-public-key-hash spends,
// dual-double-entry pairs, and receipt-based payments.
package txbuilder

import (
	"github.com/ddenet/chain/address"
	"github.com/ddenet/chain/crypto"
	"github.com/ddenet/chain/primitives"
	"github.com/ddenet/chain/script"
)

// BuildCoinbaseTx constructs a creation transaction minting amount tokens
// to pk, with a script_signature carrying only the block height at which
// it was mined. The output's script_public_key is the current-scheme
// address derived from pk.
func BuildCoinbaseTx(blockNum uint64, pk crypto.PublicKey, amount primitives.TokenAmount) primitives.Transaction {
	addr := address.Construct(pk)
	in := primitives.TxIn{
		ScriptSig: script.New(script.NewNumEntry(blockNum)),
	}
	out := primitives.TxOut{
		Value:           primitives.NewTokenAsset(amount),
		ScriptPublicKey: &addr,
	}
	return primitives.Transaction{
		Inputs:  []primitives.TxIn{in},
		Outputs: []primitives.TxOut{out},
		Version: primitives.NetworkVersion,
	}
}
