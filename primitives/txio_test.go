package primitives

import (
	"testing"

	"github.com/ddenet/chain/script"
)

func TestTxInIsCreateInput(t *testing.T) {
	create := TxIn{ScriptSig: script.New(script.NewOpEntry(script.OP_CREATE))}
	if !create.IsCreateInput() {
		t.Fatal("expected TxIn with nil PreviousOut to be a create input")
	}
	prev := NewOutPoint("hash", 0)
	spend := TxIn{PreviousOut: &prev, ScriptSig: script.New()}
	if spend.IsCreateInput() {
		t.Fatal("TxIn with a PreviousOut must not be a create input")
	}
}

func TestTxInBinaryRoundTripSpend(t *testing.T) {
	prev := NewOutPoint("abc123", 1)
	want := TxIn{PreviousOut: &prev, ScriptSig: script.New(script.NewBytesEntry([]byte("sig")))}
	b, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var got TxIn
	if err := got.UnmarshalBinary(b); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if got.PreviousOut == nil || *got.PreviousOut != prev {
		t.Fatalf("PreviousOut mismatch: got %+v want %+v", got.PreviousOut, prev)
	}
}

func TestTxInBinaryRoundTripCreate(t *testing.T) {
	want := TxIn{ScriptSig: script.New(script.NewNumEntry(5))}
	b, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var got TxIn
	if err := got.UnmarshalBinary(b); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if got.PreviousOut != nil {
		t.Fatalf("expected nil PreviousOut for create input, got %+v", got.PreviousOut)
	}
}

func TestTxInJSONRoundTrip(t *testing.T) {
	prev := NewOutPoint("def456", 2)
	want := TxIn{PreviousOut: &prev, ScriptSig: script.New(script.NewBytesEntry([]byte("x")))}
	b, err := want.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	var got TxIn
	if err := got.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if got.PreviousOut == nil || *got.PreviousOut != prev {
		t.Fatalf("PreviousOut mismatch after JSON roundtrip: got %+v want %+v", got.PreviousOut, prev)
	}
}

func TestTxOutBinaryRoundTrip(t *testing.T) {
	addr := "deadbeefcafef00d"
	drsBlock := "blockhash"
	want := TxOut{
		Value:           NewTokenAsset(42),
		Locktime:        100,
		DRSBlockHash:    &drsBlock,
		ScriptPublicKey: &addr,
	}
	b, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var got TxOut
	if err := got.UnmarshalBinary(b); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if got.Locktime != want.Locktime || got.Value.Amount != want.Value.Amount {
		t.Fatalf("roundtrip mismatch: got %+v want %+v", got, want)
	}
	if got.ScriptPublicKey == nil || *got.ScriptPublicKey != addr {
		t.Fatalf("ScriptPublicKey mismatch: got %v want %v", got.ScriptPublicKey, addr)
	}
	if got.DRSBlockHash == nil || *got.DRSBlockHash != drsBlock {
		t.Fatalf("DRSBlockHash mismatch: got %v want %v", got.DRSBlockHash, drsBlock)
	}
	if got.DRSTxHash != nil {
		t.Fatalf("expected nil DRSTxHash, got %v", got.DRSTxHash)
	}
}

func TestTxOutJSONRoundTrip(t *testing.T) {
	addr := "0011223344556677"
	want := TxOut{Value: NewDataAsset([]byte("payload"), 0), ScriptPublicKey: &addr}
	b, err := want.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	var got TxOut
	if err := got.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if got.ScriptPublicKey == nil || *got.ScriptPublicKey != addr {
		t.Fatalf("ScriptPublicKey mismatch: got %v want %v", got.ScriptPublicKey, addr)
	}
	if got.Value.Kind != AssetData || string(got.Value.Data) != "payload" {
		t.Fatalf("Value mismatch after roundtrip: %+v", got.Value)
	}
}
