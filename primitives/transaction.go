package primitives

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ddenet/chain/wire"
)

// Transaction is the core unit of value transfer. Exactly one of two
// shapes is valid: a single input with no previous output, a creation
// transaction (coinbase or asset-create) which must then have exactly
// one output, or every input referencing a previous output.
type Transaction struct {
	Inputs    []TxIn
	Outputs   []TxOut
	Version   int
	DruidInfo *DdeValues
}

// Validate checks the input-shape invariant described on Transaction.
func (t Transaction) Validate() error {
	createInputs := 0
	for _, in := range t.Inputs {
		if in.IsCreateInput() {
			createInputs++
		}
	}
	switch {
	case createInputs == 0:
		return nil
	case createInputs == len(t.Inputs) && len(t.Inputs) == 1:
		if len(t.Outputs) != 1 {
			return fmt.Errorf("primitives: creation transaction must have exactly one output, got %d", len(t.Outputs))
		}
		return nil
	default:
		return fmt.Errorf("primitives: transaction mixes creation and spending inputs")
	}
}

// IsCoinbase reports whether t is a creation transaction whose single
// output is a Token asset.
func (t Transaction) IsCoinbase() bool {
	return t.isSingleCreate() && t.Outputs[0].Value.Kind == AssetToken
}

// IsCreateTx reports whether t is a creation transaction whose single
// output is not a Token asset (e.g. an asset-creation transaction).
func (t Transaction) IsCreateTx() bool {
	return t.isSingleCreate() && t.Outputs[0].Value.Kind != AssetToken
}

func (t Transaction) isSingleCreate() bool {
	return len(t.Inputs) == 1 && t.Inputs[0].IsCreateInput() && len(t.Outputs) == 1
}

// MarshalBinary implements the module's wire contract.
func (t Transaction) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)

	w.PutUint64(uint64(len(t.Inputs)))
	for _, in := range t.Inputs {
		b, err := in.MarshalBinary()
		if err != nil {
			return nil, err
		}
		w.PutBytes(b)
	}
	w.PutUint64(uint64(len(t.Outputs)))
	for _, out := range t.Outputs {
		b, err := out.MarshalBinary()
		if err != nil {
			return nil, err
		}
		w.PutBytes(b)
	}
	w.PutUint64(uint64(t.Version))
	if t.DruidInfo != nil {
		b, err := t.DruidInfo.MarshalBinary()
		if err != nil {
			return nil, err
		}
		w.PutOptionalBytes(b, true)
	} else {
		w.PutOptionalBytes(nil, false)
	}
	return buf.Bytes(), w.Err()
}

// UnmarshalBinary implements the module's wire contract.
func (t *Transaction) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(bytes.NewReader(data))

	numIn := r.Uint64()
	inputs := make([]TxIn, 0, numIn)
	for i := uint64(0); i < numIn && r.Err() == nil; i++ {
		b := r.Bytes()
		var in TxIn
		if err := in.UnmarshalBinary(b); err != nil {
			return err
		}
		inputs = append(inputs, in)
	}

	numOut := r.Uint64()
	outputs := make([]TxOut, 0, numOut)
	for i := uint64(0); i < numOut && r.Err() == nil; i++ {
		b := r.Bytes()
		var out TxOut
		if err := out.UnmarshalBinary(b); err != nil {
			return err
		}
		outputs = append(outputs, out)
	}

	version := r.Uint64()
	druidBytes := r.OptionalBytes()
	if r.Err() != nil {
		return r.Err()
	}

	out := Transaction{Inputs: inputs, Outputs: outputs, Version: int(version)}
	if druidBytes != nil {
		var dde DdeValues
		if err := dde.UnmarshalBinary(druidBytes); err != nil {
			return err
		}
		out.DruidInfo = &dde
	}
	*t = out
	return nil
}

type transactionJSON struct {
	Inputs    []TxIn     `json:"inputs"`
	Outputs   []TxOut    `json:"outputs"`
	Version   int        `json:"version"`
	DruidInfo *DdeValues `json:"druid_info,omitempty"`
}

// MarshalJSON implements the module's JSON contract.
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(transactionJSON{
		Inputs: t.Inputs, Outputs: t.Outputs, Version: t.Version, DruidInfo: t.DruidInfo,
	})
}

// UnmarshalJSON implements the module's JSON contract.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var in transactionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*t = Transaction{Inputs: in.Inputs, Outputs: in.Outputs, Version: in.Version, DruidInfo: in.DruidInfo}
	return nil
}
