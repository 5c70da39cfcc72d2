package storage

import (
	"path/filepath"
	"testing"

	"github.com/ddenet/chain/primitives"
	"github.com/ddenet/chain/script"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "chainstore")
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetTransactionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	tx := primitives.Transaction{
		Inputs:  []primitives.TxIn{{ScriptSig: script.New(script.NewOpEntry(script.OP_CREATE))}},
		Outputs: []primitives.TxOut{{Value: primitives.NewTokenAsset(10)}},
		Version: primitives.NetworkVersion,
	}
	if err := s.PutTransaction("", tx); err != nil {
		t.Fatalf("PutTransaction: %v", err)
	}
	hash, err := primitives.ConstructTxHash(tx)
	if err != nil {
		t.Fatalf("ConstructTxHash: %v", err)
	}
	got, ok, err := s.GetTransaction(hash)
	if err != nil {
		t.Fatalf("GetTransaction: %v", err)
	}
	if !ok {
		t.Fatal("expected to find the transaction just stored")
	}
	if got.Outputs[0].Value.Amount != 10 {
		t.Fatalf("roundtrip mismatch: got %+v", got)
	}
}

func TestGetTransactionMissing(t *testing.T) {
	s := openTestStore(t)
	_, ok, err := s.GetTransaction("g-does-not-exist")
	if err != nil {
		t.Fatalf("GetTransaction: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for a transaction hash that was never stored")
	}
}

func TestPutGetBlockRoundTrip(t *testing.T) {
	s := openTestStore(t)
	block := primitives.Block{
		Header: primitives.BlockHeader{
			Version:        1,
			Bits:           1,
			BNum:           7,
			MerkleRootHash: primitives.MerkleRoot([]string{"tx1", "tx2"}),
		},
		Transactions: []string{"tx1", "tx2"},
	}
	if err := s.PutBlock(block); err != nil {
		t.Fatalf("PutBlock: %v", err)
	}
	got, ok, err := s.GetBlock(block.Header.MerkleRootHash)
	if err != nil {
		t.Fatalf("GetBlock: %v", err)
	}
	if !ok {
		t.Fatal("expected to find the block just stored")
	}
	if got.Header.BNum != 7 || len(got.Transactions) != 2 {
		t.Fatalf("roundtrip mismatch: got %+v", got.Header)
	}
}

func TestBlockAndTransactionKeysDoNotCollide(t *testing.T) {
	s := openTestStore(t)
	sameHash := "shared000000000000000000000000"
	tx := primitives.Transaction{
		Inputs:  []primitives.TxIn{{ScriptSig: script.New(script.NewOpEntry(script.OP_CREATE))}},
		Outputs: []primitives.TxOut{{Value: primitives.NewTokenAsset(1)}},
	}
	if err := s.PutTransaction(sameHash, tx); err != nil {
		t.Fatalf("PutTransaction: %v", err)
	}
	block := primitives.Block{Header: primitives.BlockHeader{MerkleRootHash: sameHash}}
	if err := s.PutBlock(block); err != nil {
		t.Fatalf("PutBlock: %v", err)
	}

	_, txOK, err := s.GetTransaction(sameHash)
	if err != nil {
		t.Fatalf("GetTransaction: %v", err)
	}
	_, blockOK, err := s.GetBlock(sameHash)
	if err != nil {
		t.Fatalf("GetBlock: %v", err)
	}
	if !txOK || !blockOK {
		t.Fatal("both the transaction and the block sharing a hash should be independently retrievable")
	}
}
