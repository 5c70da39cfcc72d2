package primitives

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ddenet/chain/wire"
)

// OutPoint identifies a specific output of a prior transaction.
type OutPoint struct {
	THash string
	N     int32
}

// NewOutPoint constructs an OutPoint.
func NewOutPoint(tHash string, n int32) OutPoint {
	return OutPoint{THash: tHash, N: n}
}

// String renders the OutPoint for logging/debugging.
func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.THash, o.N)
}

// Less orders OutPoints first by transaction hash, then by index, giving
// callers a stable sort/comparison without relying on map iteration order.
func (o OutPoint) Less(other OutPoint) bool {
	if o.THash != other.THash {
		return o.THash < other.THash
	}
	return o.N < other.N
}

// MarshalBinary implements the module's wire contract.
func (o OutPoint) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	w.PutString(o.THash)
	w.PutInt32(o.N)
	return buf.Bytes(), w.Err()
}

// UnmarshalBinary implements the module's wire contract.
func (o *OutPoint) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(bytes.NewReader(data))
	tHash := r.String()
	n := r.Int32()
	if r.Err() != nil {
		return r.Err()
	}
	o.THash, o.N = tHash, n
	return nil
}

type outPointJSON struct {
	THash string `json:"t_hash"`
	N     int32  `json:"n"`
}

// MarshalJSON implements the module's JSON contract.
func (o OutPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(outPointJSON{THash: o.THash, N: o.N})
}

// UnmarshalJSON implements the module's JSON contract.
func (o *OutPoint) UnmarshalJSON(data []byte) error {
	var in outPointJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	o.THash, o.N = in.THash, in.N
	return nil
}
