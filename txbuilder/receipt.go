package txbuilder

import (
	"github.com/ddenet/chain/address"
	"github.com/ddenet/chain/crypto"
	"github.com/ddenet/chain/primitives"
)

// BuildReceiptCreateTx mints amount receipt assets to pk's own address,
// the creation half of a receipt-based payment: the payer issues these
// to itself before offering them in exchange for tokens.
func BuildReceiptCreateTx(blockNum uint64, pk crypto.PublicKey, sk crypto.SecretKey, amount primitives.TokenAmount) (primitives.Transaction, error) {
	asset := primitives.NewReceiptAsset(amount)
	sigScript, err := createScriptSig(blockNum, asset, pk, sk)
	if err != nil {
		return primitives.Transaction{}, err
	}
	ownerAddr := address.Construct(pk)
	in := primitives.TxIn{ScriptSig: sigScript}
	out := primitives.TxOut{Value: asset, ScriptPublicKey: &ownerAddr}
	return primitives.Transaction{
		Inputs:  []primitives.TxIn{in},
		Outputs: []primitives.TxOut{out},
		Version: primitives.NetworkVersion,
	}, nil
}

// BuildReceiptSendTx constructs the "send" half of a receipt-based
// payment: inputs spend tokens to receiverAddr, tagged with druid and
// the expectation that the matching receive transaction will pay a
// receipt back along expectation.
func BuildReceiptSendTx(inputs []Spendable, receiverAddr string, amount primitives.TokenAmount, locktime uint64, druid string, expectation []primitives.DruidExpectation) (primitives.Transaction, error) {
	tx, err := BuildPaymentTx(inputs, receiverAddr, primitives.NewTokenAsset(amount), locktime, nil, nil)
	if err != nil {
		return primitives.Transaction{}, err
	}
	tx.DruidInfo = &primitives.DdeValues{
		Druid:        druid,
		Participants: 2,
		Expectations: expectation,
	}
	return tx, nil
}

// BuildReceiptReceiveTx constructs the "receive" half of a receipt-based
// payment: a single receipt is sent back to senderAddr, tagged with the
// same druid and expectation as the matching send transaction.
func BuildReceiptReceiveTx(inputs []Spendable, senderAddr string, locktime uint64, druid string, expectation []primitives.DruidExpectation) (primitives.Transaction, error) {
	tx, err := BuildPaymentTx(inputs, senderAddr, primitives.NewReceiptAsset(1), locktime, nil, nil)
	if err != nil {
		return primitives.Transaction{}, err
	}
	tx.DruidInfo = &primitives.DdeValues{
		Druid:        druid,
		Participants: 2,
		Expectations: expectation,
	}
	return tx, nil
}
