package primitives

import (
	"testing"

	"github.com/ddenet/chain/crypto"
)

func TestMerkleRootEmpty(t *testing.T) {
	if got := MerkleRoot(nil); got != "" {
		t.Fatalf("MerkleRoot(nil) = %q, want empty string", got)
	}
	if got := MerkleRoot([]string{}); got != "" {
		t.Fatalf("MerkleRoot(empty slice) = %q, want empty string", got)
	}
}

func TestMerkleRootDeterministic(t *testing.T) {
	hashes := []string{"g0000000000000000000000000000aa", "g0000000000000000000000000000bb"}
	r1 := MerkleRoot(hashes)
	r2 := MerkleRoot(hashes)
	if r1 != r2 {
		t.Fatal("MerkleRoot is not deterministic over the same input")
	}
	if r1 == "" {
		t.Fatal("MerkleRoot of a non-empty sequence must not be empty")
	}
}

func TestMerkleRootOrderSensitive(t *testing.T) {
	a := []string{"hash-one", "hash-two"}
	b := []string{"hash-two", "hash-one"}
	if MerkleRoot(a) == MerkleRoot(b) {
		t.Fatal("MerkleRoot must be sensitive to transaction-hash ordering")
	}
}

func TestMerkleRootSingleLeafIsItsOwnHash(t *testing.T) {
	got := MerkleRoot([]string{"solo-tx"})
	want := crypto.Sha3_256([]byte("solo-tx")).String()
	if got != want {
		t.Fatalf("MerkleRoot of a single leaf = %q, want the leaf's own hash %q", got, want)
	}
}

func TestMerkleRootChangesOnAppend(t *testing.T) {
	base := []string{"a", "b", "c"}
	appended := []string{"a", "b", "c", "d"}
	if MerkleRoot(base) == MerkleRoot(appended) {
		t.Fatal("appending a transaction must change the root")
	}
}

func TestBlockHeaderIsNull(t *testing.T) {
	h := BlockHeader{Bits: 0}
	if !h.IsNull() {
		t.Fatal("zero-bits header should be null")
	}
	h.Bits = 1
	if h.IsNull() {
		t.Fatal("non-zero-bits header should not be null")
	}
}

func TestBlockBinaryRoundTrip(t *testing.T) {
	prev := "prevblockhash"
	want := Block{
		Header: BlockHeader{
			Version:        1,
			Bits:           12345,
			Nonce:          []byte{1, 2, 3},
			BNum:           10,
			SeedValue:      []byte{4, 5},
			PreviousHash:   &prev,
			MerkleRootHash: MerkleRoot([]string{"tx1", "tx2"}),
		},
		Transactions: []string{"tx1", "tx2"},
	}
	b, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var got Block
	if err := got.UnmarshalBinary(b); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if got.Header.BNum != want.Header.BNum || got.Header.MerkleRootHash != want.Header.MerkleRootHash {
		t.Fatalf("roundtrip mismatch: got %+v want %+v", got.Header, want.Header)
	}
	if len(got.Transactions) != 2 || got.Transactions[0] != "tx1" || got.Transactions[1] != "tx2" {
		t.Fatalf("transaction hash list not preserved: %v", got.Transactions)
	}
}

func TestBlockJSONRoundTrip(t *testing.T) {
	want := Block{
		Header: BlockHeader{
			Version:        2,
			Bits:           1,
			Nonce:          []byte{9, 9},
			BNum:           42,
			MerkleRootHash: "roothash",
		},
		Transactions: []string{"txa"},
	}
	b, err := want.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	var got Block
	if err := got.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if got.Header.BNum != want.Header.BNum || len(got.Transactions) != 1 {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
}

func TestBlockMarshalBinaryRejectsOversized(t *testing.T) {
	txs := make([]string, MaxBlockSize)
	for i := range txs {
		txs[i] = "0123456789abcdef0123456789abcdef"
	}
	b := Block{Header: BlockHeader{MerkleRootHash: "root"}, Transactions: txs}
	if _, err := b.MarshalBinary(); err == nil {
		t.Fatal("expected error for a block exceeding MaxBlockSize")
	}
}
