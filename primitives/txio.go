package primitives

import (
	"bytes"
	"encoding/json"

	"github.com/ddenet/chain/script"
	"github.com/ddenet/chain/wire"
)

// TxIn is a transaction input. A nil PreviousOut marks a creation input
// (coinbase or asset-create).
type TxIn struct {
	PreviousOut   *OutPoint
	ScriptSig     script.Script
}

// IsCreateInput reports whether this input has no previous output.
func (in TxIn) IsCreateInput() bool {
	return in.PreviousOut == nil
}

// MarshalBinary implements the module's wire contract.
func (in TxIn) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	if in.PreviousOut != nil {
		prevBytes, err := in.PreviousOut.MarshalBinary()
		if err != nil {
			return nil, err
		}
		w.PutOptionalBytes(prevBytes, true)
	} else {
		w.PutOptionalBytes(nil, false)
	}
	scriptBytes, err := in.ScriptSig.MarshalBinary()
	if err != nil {
		return nil, err
	}
	w.PutBytes(scriptBytes)
	return buf.Bytes(), w.Err()
}

// UnmarshalBinary implements the module's wire contract.
func (in *TxIn) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(bytes.NewReader(data))
	prevBytes := r.OptionalBytes()
	scriptBytes := r.Bytes()
	if r.Err() != nil {
		return r.Err()
	}
	var sig script.Script
	if err := sig.UnmarshalBinary(scriptBytes); err != nil {
		return err
	}
	out := TxIn{ScriptSig: sig}
	if prevBytes != nil {
		var prev OutPoint
		if err := prev.UnmarshalBinary(prevBytes); err != nil {
			return err
		}
		out.PreviousOut = &prev
	}
	*in = out
	return nil
}

type txInJSON struct {
	PreviousOut *OutPoint       `json:"previous_out,omitempty"`
	ScriptSig   *script.Script  `json:"script_signature"`
}

// MarshalJSON implements the module's JSON contract.
func (in TxIn) MarshalJSON() ([]byte, error) {
	return json.Marshal(txInJSON{PreviousOut: in.PreviousOut, ScriptSig: &in.ScriptSig})
}

// UnmarshalJSON implements the module's JSON contract.
func (in *TxIn) UnmarshalJSON(data []byte) error {
	var out txInJSON
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	in.PreviousOut = out.PreviousOut
	if out.ScriptSig != nil {
		in.ScriptSig = *out.ScriptSig
	}
	return nil
}

// MarshalTxIns encodes ins the same way Transaction.MarshalBinary encodes
// its Inputs field: a length-prefixed vector of length-prefixed TxIn
// blobs. druid bundle verification hashes this to identify which
// transaction a DruidExpectation's From field names.
func MarshalTxIns(ins []TxIn) ([]byte, error) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	w.PutUint64(uint64(len(ins)))
	for _, in := range ins {
		b, err := in.MarshalBinary()
		if err != nil {
			return nil, err
		}
		w.PutBytes(b)
	}
	return buf.Bytes(), w.Err()
}

// TxOut is a transaction output.
type TxOut struct {
	Value           Asset
	Locktime        uint64
	DRSBlockHash    *string
	DRSTxHash       *string
	ScriptPublicKey *string
}

// MarshalBinary implements the module's wire contract.
func (out TxOut) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	valBytes, err := out.Value.MarshalBinary()
	if err != nil {
		return nil, err
	}
	w.PutBytes(valBytes)
	w.PutUint64(out.Locktime)
	w.PutOptionalString(out.DRSBlockHash)
	w.PutOptionalString(out.DRSTxHash)
	w.PutOptionalString(out.ScriptPublicKey)
	return buf.Bytes(), w.Err()
}

// UnmarshalBinary implements the module's wire contract.
func (out *TxOut) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(bytes.NewReader(data))
	valBytes := r.Bytes()
	locktime := r.Uint64()
	drsBlockHash := r.OptionalString()
	drsTxHash := r.OptionalString()
	spk := r.OptionalString()
	if r.Err() != nil {
		return r.Err()
	}
	var val Asset
	if err := val.UnmarshalBinary(valBytes); err != nil {
		return err
	}
	*out = TxOut{
		Value:           val,
		Locktime:        locktime,
		DRSBlockHash:    drsBlockHash,
		DRSTxHash:       drsTxHash,
		ScriptPublicKey: spk,
	}
	return nil
}

type txOutJSON struct {
	Value           Asset   `json:"value"`
	Locktime        uint64  `json:"locktime"`
	DRSBlockHash    *string `json:"drs_block_hash,omitempty"`
	DRSTxHash       *string `json:"drs_tx_hash,omitempty"`
	ScriptPublicKey *string `json:"script_public_key,omitempty"`
}

// MarshalJSON implements the module's JSON contract.
func (out TxOut) MarshalJSON() ([]byte, error) {
	return json.Marshal(txOutJSON{
		Value:           out.Value,
		Locktime:        out.Locktime,
		DRSBlockHash:    out.DRSBlockHash,
		DRSTxHash:       out.DRSTxHash,
		ScriptPublicKey: out.ScriptPublicKey,
	})
}

// UnmarshalJSON implements the module's JSON contract.
func (out *TxOut) UnmarshalJSON(data []byte) error {
	var in txOutJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*out = TxOut{
		Value:           in.Value,
		Locktime:        in.Locktime,
		DRSBlockHash:    in.DRSBlockHash,
		DRSTxHash:       in.DRSTxHash,
		ScriptPublicKey: in.ScriptPublicKey,
	}
	return nil
}
