package crypto

import (
	"sync"

	"github.com/dchest/siphash"
)

// sigCacheEntry is the cache key: a short, fixed-size fingerprint of a
// (message, signature, pubkey) triple. A collision would make Exists
// report a hit for a triple that was never added; the 128-bit keyed
// SipHash digest makes that negligible in practice.
type sigCacheEntry struct {
	k0, k1 uint64
}

// SigCache implements an ephemeral cache of already-validated Ed25519
// signatures. Entries are keyed by a SipHash-2-4 digest rather than the raw
// triple to keep the cache's memory footprint small and to make the key
// resistant to hash-flooding from adversarial input, matching the role
// played by a transaction signature cache in a full node's mempool/block
// validation hot path.
type SigCache struct {
	sync.RWMutex
	validSigs  map[sigCacheEntry]struct{}
	maxEntries uint
	hashKey0   uint64
	hashKey1   uint64
}

// NewSigCache returns a SigCache that will hold at most maxEntries entries,
// evicting a pseudo-randomly chosen entry (Go's unordered map iteration)
// once full.
func NewSigCache(maxEntries uint) (*SigCache, error) {
	var keyBuf [16]byte
	b, err := RandomBytes(len(keyBuf))
	if err != nil {
		return nil, err
	}
	copy(keyBuf[:], b)
	return &SigCache{
		validSigs:  make(map[sigCacheEntry]struct{}, maxEntries),
		maxEntries: maxEntries,
		hashKey0:   uint64(keyBuf[0]) | uint64(keyBuf[1])<<8 | uint64(keyBuf[2])<<16 | uint64(keyBuf[3])<<24 | uint64(keyBuf[4])<<32 | uint64(keyBuf[5])<<40 | uint64(keyBuf[6])<<48 | uint64(keyBuf[7])<<56,
		hashKey1:   uint64(keyBuf[8]) | uint64(keyBuf[9])<<8 | uint64(keyBuf[10])<<16 | uint64(keyBuf[11])<<24 | uint64(keyBuf[12])<<32 | uint64(keyBuf[13])<<40 | uint64(keyBuf[14])<<48 | uint64(keyBuf[15])<<56,
	}, nil
}

func (s *SigCache) entryFor(sig Signature, msg []byte, pk PublicKey) sigCacheEntry {
	buf := make([]byte, 0, SignatureSize+PublicKeySize+len(msg))
	buf = append(buf, sig[:]...)
	buf = append(buf, pk[:]...)
	buf = append(buf, msg...)
	k0, k1 := siphash.Hash128(s.hashKey0, s.hashKey1, buf)
	return sigCacheEntry{k0: k0, k1: k1}
}

// Exists reports whether sig over msg under pk has previously been added to
// the cache via Add.
func (s *SigCache) Exists(sig Signature, msg []byte, pk PublicKey) bool {
	s.RLock()
	defer s.RUnlock()
	_, ok := s.validSigs[s.entryFor(sig, msg, pk)]
	return ok
}

// Add records sig over msg under pk as known-valid. Callers must only call
// Add after an actual successful VerifyDetached.
func (s *SigCache) Add(sig Signature, msg []byte, pk PublicKey) {
	s.Lock()
	defer s.Unlock()

	if s.maxEntries == 0 {
		return
	}

	if uint(len(s.validSigs)) >= s.maxEntries {
		for k := range s.validSigs {
			delete(s.validSigs, k)
			break
		}
	}

	s.validSigs[s.entryFor(sig, msg, pk)] = struct{}{}
}
