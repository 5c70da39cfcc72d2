package txbuilder

import (
	"encoding/hex"

	"github.com/ddenet/chain/primitives"
)

// BuildDDEPair assembles the two transactions of a dual-double-entry
// swap: fromTx sends fromAsset to toAddr, and toTx sends toAsset to
// fromAddr. Each leg's expectation names the *other* leg's input hash as
// From, so it is satisfied only by that other transaction's own output,
// matching how druid.VerifyBundle collects sources from a bundle's
// outputs rather than its spent inputs.
func BuildDDEPair(
	druid string,
	fromInputs []Spendable, fromAddr, toAddr string, fromAsset primitives.Asset,
	toInputs []Spendable, toAsset primitives.Asset,
) (fromTx, toTx primitives.Transaction, err error) {
	fromTx, err = BuildPaymentTx(fromInputs, toAddr, fromAsset, 0, nil, nil)
	if err != nil {
		return primitives.Transaction{}, primitives.Transaction{}, err
	}
	toTx, err = BuildPaymentTx(toInputs, fromAddr, toAsset, 0, nil, nil)
	if err != nil {
		return primitives.Transaction{}, primitives.Transaction{}, err
	}

	fromInputBytes, err := primitives.MarshalTxIns(fromTx.Inputs)
	if err != nil {
		return primitives.Transaction{}, primitives.Transaction{}, err
	}
	toInputBytes, err := primitives.MarshalTxIns(toTx.Inputs)
	if err != nil {
		return primitives.Transaction{}, primitives.Transaction{}, err
	}
	fromInputHash := hex.EncodeToString(fromInputBytes)
	toInputHash := hex.EncodeToString(toInputBytes)

	fromTx.DruidInfo = &primitives.DdeValues{
		Druid:        druid,
		Participants: 2,
		Expectations: []primitives.DruidExpectation{
			{From: toInputHash, To: fromAddr, Asset: toAsset},
		},
	}
	toTx.DruidInfo = &primitives.DdeValues{
		Druid:        druid,
		Participants: 2,
		Expectations: []primitives.DruidExpectation{
			{From: fromInputHash, To: toAddr, Asset: fromAsset},
		},
	}
	return fromTx, toTx, nil
}
