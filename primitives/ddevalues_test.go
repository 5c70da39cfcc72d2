package primitives

import "testing"

func TestDruidExpectationBinaryRoundTrip(t *testing.T) {
	want := DruidExpectation{From: "alice", To: "bob", Asset: NewTokenAsset(25)}
	b, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var got DruidExpectation
	if err := got.UnmarshalBinary(b); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if got.From != want.From || got.To != want.To || got.Asset.Amount != want.Asset.Amount {
		t.Fatalf("roundtrip mismatch: got %+v want %+v", got, want)
	}
}

func TestDdeValuesBinaryRoundTrip(t *testing.T) {
	genesis := "genesis"
	want := DdeValues{
		Druid:        "DRUID0042",
		Participants: 2,
		Expectations: []DruidExpectation{
			{From: "alice", To: "bob", Asset: NewTokenAsset(10)},
			{From: "bob", To: "alice", Asset: NewReceiptAsset(1)},
		},
		GenesisHash: &genesis,
	}
	b, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var got DdeValues
	if err := got.UnmarshalBinary(b); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if got.Druid != want.Druid || got.Participants != want.Participants {
		t.Fatalf("roundtrip mismatch: got %+v want %+v", got, want)
	}
	if len(got.Expectations) != 2 {
		t.Fatalf("expected 2 expectations, got %d", len(got.Expectations))
	}
	if got.GenesisHash == nil || *got.GenesisHash != genesis {
		t.Fatalf("GenesisHash not preserved: %v", got.GenesisHash)
	}
}

func TestDdeValuesJSONRoundTrip(t *testing.T) {
	want := DdeValues{
		Druid:        "DRUID0099",
		Participants: 2,
		Expectations: []DruidExpectation{{From: "x", To: "y", Asset: NewTokenAsset(1)}},
	}
	b, err := want.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	var got DdeValues
	if err := got.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if got.Druid != want.Druid || len(got.Expectations) != 1 {
		t.Fatalf("roundtrip mismatch: got %+v want %+v", got, want)
	}
	if got.GenesisHash != nil {
		t.Fatalf("expected nil GenesisHash, got %v", got.GenesisHash)
	}
}
