package primitives

import (
	"bytes"
	"encoding/json"

	"github.com/ddenet/chain/crypto"
	"github.com/ddenet/chain/wire"
)

// BlockHeader carries a block's metadata and the merkle root committing
// to its transaction-hash sequence.
type BlockHeader struct {
	Version         int
	Bits            uint32
	Nonce           []byte
	BNum            uint64
	SeedValue       []byte
	PreviousHash    *string
	MerkleRootHash  string
}

// IsNull reports whether this header carries no proof-of-work bits, the
// convention used to mark a not-yet-mined header.
func (h BlockHeader) IsNull() bool {
	return h.Bits == 0
}

// MarshalBinary implements the module's wire contract.
func (h BlockHeader) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	w.PutUint64(uint64(h.Version))
	w.PutUint32(h.Bits)
	w.PutBytes(h.Nonce)
	w.PutUint64(h.BNum)
	w.PutBytes(h.SeedValue)
	w.PutOptionalString(h.PreviousHash)
	w.PutString(h.MerkleRootHash)
	return buf.Bytes(), w.Err()
}

// UnmarshalBinary implements the module's wire contract.
func (h *BlockHeader) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(bytes.NewReader(data))
	version := r.Uint64()
	bits := r.Uint32()
	nonce := r.Bytes()
	bNum := r.Uint64()
	seedValue := r.Bytes()
	previousHash := r.OptionalString()
	merkleRootHash := r.String()
	if r.Err() != nil {
		return r.Err()
	}
	*h = BlockHeader{
		Version: int(version), Bits: bits, Nonce: nonce, BNum: bNum,
		SeedValue: seedValue, PreviousHash: previousHash, MerkleRootHash: merkleRootHash,
	}
	return nil
}

type blockHeaderJSON struct {
	Version        int     `json:"version"`
	Bits           uint32  `json:"bits"`
	Nonce          string  `json:"nonce"`
	BNum           uint64  `json:"b_num"`
	SeedValue      string  `json:"seed_value"`
	PreviousHash   *string `json:"previous_hash,omitempty"`
	MerkleRootHash string  `json:"merkle_root_hash"`
}

// MarshalJSON implements the module's JSON contract.
func (h BlockHeader) MarshalJSON() ([]byte, error) {
	noncePtr, err := hexPtr(h.Nonce)
	if err != nil {
		return nil, err
	}
	seedPtr, err := hexPtr(h.SeedValue)
	if err != nil {
		return nil, err
	}
	return json.Marshal(blockHeaderJSON{
		Version: h.Version, Bits: h.Bits, Nonce: derefOr(noncePtr, ""),
		BNum: h.BNum, SeedValue: derefOr(seedPtr, ""),
		PreviousHash: h.PreviousHash, MerkleRootHash: h.MerkleRootHash,
	})
}

// UnmarshalJSON implements the module's JSON contract.
func (h *BlockHeader) UnmarshalJSON(data []byte) error {
	var in blockHeaderJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	nonce, err := unhex(in.Nonce)
	if err != nil {
		return err
	}
	seed, err := unhex(in.SeedValue)
	if err != nil {
		return err
	}
	*h = BlockHeader{
		Version: in.Version, Bits: in.Bits, Nonce: nonce, BNum: in.BNum,
		SeedValue: seed, PreviousHash: in.PreviousHash, MerkleRootHash: in.MerkleRootHash,
	}
	return nil
}

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

// Block pairs a header with the ordered sequence of transaction hashes it
// commits to.
type Block struct {
	Header       BlockHeader
	Transactions []string
}

// MerkleRoot computes the block's merkle root over an append-only log of
// transaction-hash leaves. Each leaf is hashed and then carried upward
// through any pending peaks of the same height exactly the way
// incrementing a binary counter carries a bit, so appending the next
// transaction never rehashes the subtrees committed for earlier ones.
// The peaks left standing are folded together, highest height first,
// into the final digest, hex-encoded. An empty sequence yields an empty
// string.
func MerkleRoot(txHashes []string) string {
	if len(txHashes) == 0 {
		return ""
	}
	var peaks []crypto.Hash
	var filled []bool
	for _, h := range txHashes {
		peaks, filled = mergeMerkleLeaf(peaks, filled, crypto.Sha3_256([]byte(h)))
	}

	var root crypto.Hash
	started := false
	for i := len(peaks) - 1; i >= 0; i-- {
		if !filled[i] {
			continue
		}
		if !started {
			root = peaks[i]
			started = true
			continue
		}
		root = crypto.Sha3_256Concat(peaks[i][:], root[:])
	}
	return root.String()
}

// mergeMerkleLeaf carries leaf into peaks/filled the way incrementing a
// binary counter carries a bit: it merges with the lowest pending peak
// of equal height, then the next, until it lands in an empty slot (or
// extends the log with a new height).
func mergeMerkleLeaf(peaks []crypto.Hash, filled []bool, leaf crypto.Hash) ([]crypto.Hash, []bool) {
	carry := leaf
	for i := 0; i < len(peaks); i++ {
		if !filled[i] {
			peaks[i] = carry
			filled[i] = true
			return peaks, filled
		}
		carry = crypto.Sha3_256Concat(peaks[i][:], carry[:])
		filled[i] = false
	}
	return append(peaks, carry), append(filled, true)
}

// MarshalBinary implements the module's wire contract.
func (b Block) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	headerBytes, err := b.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	w.PutBytes(headerBytes)
	w.PutUint64(uint64(len(b.Transactions)))
	for _, h := range b.Transactions {
		w.PutString(h)
	}
	if err := checkBlockSize(buf.Len()); err != nil {
		return nil, err
	}
	return buf.Bytes(), w.Err()
}

func checkBlockSize(n int) error {
	if n > MaxBlockSize {
		return errBlockTooLarge(n)
	}
	return nil
}

// UnmarshalBinary implements the module's wire contract.
func (b *Block) UnmarshalBinary(data []byte) error {
	if len(data) > MaxBlockSize {
		return errBlockTooLarge(len(data))
	}
	r := wire.NewReader(bytes.NewReader(data))
	headerBytes := r.Bytes()
	var header BlockHeader
	if err := header.UnmarshalBinary(headerBytes); err != nil {
		return err
	}
	n := r.Uint64()
	txs := make([]string, 0, n)
	for i := uint64(0); i < n && r.Err() == nil; i++ {
		txs = append(txs, r.String())
	}
	if r.Err() != nil {
		return r.Err()
	}
	*b = Block{Header: header, Transactions: txs}
	return nil
}

type blockJSON struct {
	Header       BlockHeader `json:"header"`
	Transactions []string    `json:"transactions"`
}

// MarshalJSON implements the module's JSON contract.
func (b Block) MarshalJSON() ([]byte, error) {
	return json.Marshal(blockJSON{Header: b.Header, Transactions: b.Transactions})
}

// UnmarshalJSON implements the module's JSON contract.
func (b *Block) UnmarshalJSON(data []byte) error {
	var in blockJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*b = Block{Header: in.Header, Transactions: in.Transactions}
	return nil
}
