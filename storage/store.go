// Package storage persists transactions and blocks in a goleveldb
// key/value database. Keys follow the module's 'g'-prefix convention:
// transaction hashes are already primitives.TxPrepend-prefixed, so they
// are stored under their own bytes; block keys get an explicit 'b'
// prefix to keep the two key spaces from colliding.
package storage

import (
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/ddenet/chain/primitives"
)

const blockKeyPrefix = 'b'

// Store wraps a goleveldb database holding transactions and blocks.
type Store struct {
	db *leveldb.DB
}

// Open opens (creating if necessary) the leveldb database at dir.
func Open(dir string) (*Store, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func blockKey(hash string) []byte {
	return append([]byte{blockKeyPrefix}, hash...)
}

// PutTransaction stores tx under its own hash, computing the hash via
// primitives.ConstructTxHash if hash is empty.
func (s *Store) PutTransaction(hash string, tx primitives.Transaction) error {
	if hash == "" {
		h, err := primitives.ConstructTxHash(tx)
		if err != nil {
			return fmt.Errorf("storage: hash transaction: %w", err)
		}
		hash = h
	}
	b, err := tx.MarshalBinary()
	if err != nil {
		return fmt.Errorf("storage: marshal transaction: %w", err)
	}
	if err := s.db.Put([]byte(hash), b, nil); err != nil {
		return fmt.Errorf("storage: put transaction %s: %w", hash, err)
	}
	return nil
}

// GetTransaction looks up a transaction by hash. ok is false if no such
// transaction is stored.
func (s *Store) GetTransaction(hash string) (tx primitives.Transaction, ok bool, err error) {
	b, err := s.db.Get([]byte(hash), nil)
	if err == leveldb.ErrNotFound {
		return primitives.Transaction{}, false, nil
	}
	if err != nil {
		return primitives.Transaction{}, false, fmt.Errorf("storage: get transaction %s: %w", hash, err)
	}
	if err := tx.UnmarshalBinary(b); err != nil {
		return primitives.Transaction{}, false, fmt.Errorf("storage: unmarshal transaction %s: %w", hash, err)
	}
	return tx, true, nil
}

// PutBlock stores block under its merkle root hash, used as the block's
// canonical identifier.
func (s *Store) PutBlock(block primitives.Block) error {
	b, err := block.MarshalBinary()
	if err != nil {
		return fmt.Errorf("storage: marshal block: %w", err)
	}
	key := blockKey(block.Header.MerkleRootHash)
	if err := s.db.Put(key, b, nil); err != nil {
		return fmt.Errorf("storage: put block %s: %w", block.Header.MerkleRootHash, err)
	}
	return nil
}

// GetBlock looks up a block by its merkle root hash. ok is false if no
// such block is stored.
func (s *Store) GetBlock(merkleRootHash string) (block primitives.Block, ok bool, err error) {
	b, err := s.db.Get(blockKey(merkleRootHash), nil)
	if err == leveldb.ErrNotFound {
		return primitives.Block{}, false, nil
	}
	if err != nil {
		return primitives.Block{}, false, fmt.Errorf("storage: get block %s: %w", merkleRootHash, err)
	}
	if err := block.UnmarshalBinary(b); err != nil {
		return primitives.Block{}, false, fmt.Errorf("storage: unmarshal block %s: %w", merkleRootHash, err)
	}
	return block, true, nil
}
