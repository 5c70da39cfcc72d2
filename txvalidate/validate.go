package txvalidate

import "github.com/ddenet/chain/primitives"

// UTXOLookup resolves an OutPoint to the TxOut it refers to. Validators
// treat the lookup as an immutable snapshot; they never mutate it.
type UTXOLookup func(primitives.OutPoint) (primitives.TxOut, bool)

// TxIsValid checks tx against lookup. A create or coinbase transaction,
// whose single input has no previous_out, is accepted without the checks
// below. Any other transaction must pass all of them:
//  1. every input's previous_out must resolve via lookup;
//  2. the resolved output's script_public_key must be present;
//  3. the input's script_signature must pass the P2PKH shape check
//     against that output;
//  4. token amounts are accumulated from the resolved outputs;
//  5. after all inputs, the accumulated input tokens must equal the
//     transaction's output tokens, and neither may exceed TotalTokens.
//
// Conservation is strict equality, not merely a cap: the accumulated
// output total must match the accumulated input total exactly, and both
// must stay under TotalTokens.
func TxIsValid(tx primitives.Transaction, lookup UTXOLookup) bool {
	if tx.IsCreateTx() || tx.IsCoinbase() {
		return true
	}

	var inAmount primitives.TokenAmount
	for _, in := range tx.Inputs {
		if in.PreviousOut == nil {
			return false
		}
		out, ok := lookup(*in.PreviousOut)
		if !ok {
			return false
		}
		if out.ScriptPublicKey == nil {
			return false
		}
		if !P2PKHIsValid(in.ScriptSig, *in.PreviousOut, *out.ScriptPublicKey) {
			return false
		}
		sum, err := inAmount.Add(out.Value.TokenValue())
		if err != nil {
			return false
		}
		inAmount = sum
	}

	var outAmount primitives.TokenAmount
	for _, out := range tx.Outputs {
		sum, err := outAmount.Add(out.Value.TokenValue())
		if err != nil {
			return false
		}
		outAmount = sum
	}

	if uint64(outAmount) > primitives.TotalTokens {
		return false
	}
	return outAmount == inAmount
}
