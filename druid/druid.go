// Package druid verifies dual-double-entry (DDE) bundles: sets of
// transactions tagged with a shared DRUID that must be accepted or
// rejected atomically, because each leg only becomes well-formed in the
// presence of the others.
package druid

import (
	"encoding/hex"

	"github.com/ddenet/chain/primitives"
)

// expectation is a DruidExpectation lifted out of whichever transaction
// declared it, so the collection step can be expressed independently of
// which transaction any one expectation came from.
type expectation = primitives.DruidExpectation

// source is a candidate fulfilling a DruidExpectation: the hash of the
// sending transaction's own inputs, paired with the script_public_key
// and asset one of its outputs actually sends.
type source struct {
	inputHash       string
	scriptPublicKey string
	asset           primitives.Asset
}

// CollectExpectations gathers every DruidExpectation declared by a
// transaction in txs whose DruidInfo.Druid equals druid. A transaction
// that carries DruidInfo for a *different* druid aborts the whole bundle
// (the caller is conflating unrelated DDE sets), reported as ok=false.
func CollectExpectations(txs []primitives.Transaction, druid string) (expectations []expectation, ok bool) {
	for _, tx := range txs {
		if tx.DruidInfo == nil {
			continue
		}
		if tx.DruidInfo.Druid != druid {
			return nil, false
		}
		expectations = append(expectations, tx.DruidInfo.Expectations...)
	}
	return expectations, true
}

// collectSources builds the set of (input_hash, script_public_key, asset)
// triples a bundle's transactions actually send. For each tx, input_hash
// is hex(bincode(tx.Inputs)); every output carrying a script_public_key
// contributes one source under that hash, regardless of whether the
// input is a spend or a creation input.
func collectSources(txs []primitives.Transaction) ([]source, error) {
	var sources []source
	for _, tx := range txs {
		inputBytes, err := primitives.MarshalTxIns(tx.Inputs)
		if err != nil {
			return nil, err
		}
		inputHash := hex.EncodeToString(inputBytes)
		for _, out := range tx.Outputs {
			if out.ScriptPublicKey == nil {
				continue
			}
			sources = append(sources, source{
				inputHash:       inputHash,
				scriptPublicKey: *out.ScriptPublicKey,
				asset:           out.Value,
			})
		}
	}
	return sources, nil
}

// satisfies reports whether some source in the set fulfills e: it comes
// from the transaction e.From names, its recipient address matches
// e.To, and the asset it carries matches e.Asset exactly (kind and
// amount, and payload for Data/Item assets).
func satisfies(sources []source, e expectation) bool {
	for _, s := range sources {
		if s.inputHash == e.From && s.scriptPublicKey == e.To && assetsEqual(s.asset, e.Asset) {
			return true
		}
	}
	return false
}

func assetsEqual(a, b primitives.Asset) bool {
	ab, err1 := a.MarshalBinary()
	bb, err2 := b.MarshalBinary()
	if err1 != nil || err2 != nil {
		return false
	}
	if len(ab) != len(bb) {
		return false
	}
	for i := range ab {
		if ab[i] != bb[i] {
			return false
		}
	}
	return true
}

// VerifyBundle checks that a DDE bundle is internally consistent: every
// transaction in txs agrees on druid (or carries none), and every
// expectation any of them declares is satisfied by some actual output
// source across the bundle.
//
// This mirrors the two-pass DDE check: collect expectations E, collect
// sources S from the bundle's own outputs (keyed by each sender's input
// hash), then confirm E is a subset of S.
func VerifyBundle(txs []primitives.Transaction, druid string) (bool, error) {
	expectations, ok := CollectExpectations(txs, druid)
	if !ok {
		return false, nil
	}
	if len(expectations) == 0 {
		return false, nil
	}

	sources, err := collectSources(txs)
	if err != nil {
		return false, err
	}

	for _, e := range expectations {
		if !satisfies(sources, e) {
			return false, nil
		}
	}
	return true, nil
}
