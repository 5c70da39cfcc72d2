package primitives

import (
	"bytes"
	"encoding/json"

	"github.com/ddenet/chain/wire"
)

// DruidExpectation is one leg of a dual-double-entry bundle: party `From`
// expects to send `Asset` to party `To`.
type DruidExpectation struct {
	From  string
	To    string
	Asset Asset
}

// MarshalBinary implements the module's wire contract.
func (e DruidExpectation) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	w.PutString(e.From)
	w.PutString(e.To)
	assetBytes, err := e.Asset.MarshalBinary()
	if err != nil {
		return nil, err
	}
	w.PutBytes(assetBytes)
	return buf.Bytes(), w.Err()
}

// UnmarshalBinary implements the module's wire contract.
func (e *DruidExpectation) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(bytes.NewReader(data))
	from := r.String()
	to := r.String()
	assetBytes := r.Bytes()
	if r.Err() != nil {
		return r.Err()
	}
	var asset Asset
	if err := asset.UnmarshalBinary(assetBytes); err != nil {
		return err
	}
	*e = DruidExpectation{From: from, To: to, Asset: asset}
	return nil
}

type druidExpectationJSON struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Asset Asset  `json:"asset"`
}

// MarshalJSON implements the module's JSON contract.
func (e DruidExpectation) MarshalJSON() ([]byte, error) {
	return json.Marshal(druidExpectationJSON{From: e.From, To: e.To, Asset: e.Asset})
}

// UnmarshalJSON implements the module's JSON contract.
func (e *DruidExpectation) UnmarshalJSON(data []byte) error {
	var in druidExpectationJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*e = DruidExpectation{From: in.From, To: in.To, Asset: in.Asset}
	return nil
}

// DdeValues binds a transaction into a dual-double-entry bundle: every
// transaction sharing Druid must have its expectations jointly satisfied
// by the druid package's verifier before any of them is accepted.
type DdeValues struct {
	Druid        string
	Participants uint
	Expectations []DruidExpectation
	GenesisHash  *string
}

// MarshalBinary implements the module's wire contract.
func (d DdeValues) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	w.PutString(d.Druid)
	w.PutUint64(uint64(d.Participants))
	w.PutUint64(uint64(len(d.Expectations)))
	for _, e := range d.Expectations {
		b, err := e.MarshalBinary()
		if err != nil {
			return nil, err
		}
		w.PutBytes(b)
	}
	w.PutOptionalString(d.GenesisHash)
	return buf.Bytes(), w.Err()
}

// UnmarshalBinary implements the module's wire contract.
func (d *DdeValues) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(bytes.NewReader(data))
	druid := r.String()
	participants := r.Uint64()
	n := r.Uint64()
	expectations := make([]DruidExpectation, 0, n)
	for i := uint64(0); i < n && r.Err() == nil; i++ {
		b := r.Bytes()
		var e DruidExpectation
		if err := e.UnmarshalBinary(b); err != nil {
			return err
		}
		expectations = append(expectations, e)
	}
	genesisHash := r.OptionalString()
	if r.Err() != nil {
		return r.Err()
	}
	*d = DdeValues{
		Druid:        druid,
		Participants: uint(participants),
		Expectations: expectations,
		GenesisHash:  genesisHash,
	}
	return nil
}

type ddeValuesJSON struct {
	Druid        string             `json:"druid"`
	Participants uint               `json:"participants"`
	Expectations []DruidExpectation `json:"expectations"`
	GenesisHash  *string            `json:"genesis_hash,omitempty"`
}

// MarshalJSON implements the module's JSON contract.
func (d DdeValues) MarshalJSON() ([]byte, error) {
	return json.Marshal(ddeValuesJSON{
		Druid: d.Druid, Participants: d.Participants,
		Expectations: d.Expectations, GenesisHash: d.GenesisHash,
	})
}

// UnmarshalJSON implements the module's JSON contract.
func (d *DdeValues) UnmarshalJSON(data []byte) error {
	var in ddeValuesJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*d = DdeValues{
		Druid: in.Druid, Participants: in.Participants,
		Expectations: in.Expectations, GenesisHash: in.GenesisHash,
	}
	return nil
}
