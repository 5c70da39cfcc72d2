package crypto

import "testing"

func TestSigCacheExistsAfterAdd(t *testing.T) {
	cache, err := NewSigCache(10)
	if err != nil {
		t.Fatalf("NewSigCache: %v", err)
	}
	pk, sk, err := GenKeyPair()
	if err != nil {
		t.Fatalf("GenKeyPair: %v", err)
	}
	msg := []byte("payload")
	sig := SignDetached(msg, sk)

	if cache.Exists(sig, msg, pk) {
		t.Fatal("cache reported a hit before Add was ever called")
	}
	cache.Add(sig, msg, pk)
	if !cache.Exists(sig, msg, pk) {
		t.Fatal("cache did not report a hit after Add")
	}
}

func TestSigCacheEvictsWhenFull(t *testing.T) {
	cache, err := NewSigCache(1)
	if err != nil {
		t.Fatalf("NewSigCache: %v", err)
	}
	_, sk, err := GenKeyPair()
	if err != nil {
		t.Fatalf("GenKeyPair: %v", err)
	}
	pk, _, err := GenKeyPair()
	if err != nil {
		t.Fatalf("GenKeyPair: %v", err)
	}

	sig1 := SignDetached([]byte("one"), sk)
	sig2 := SignDetached([]byte("two"), sk)
	cache.Add(sig1, []byte("one"), pk)
	cache.Add(sig2, []byte("two"), pk)

	if len(cache.validSigs) > 1 {
		t.Fatalf("cache holds %d entries, want at most 1 (maxEntries)", len(cache.validSigs))
	}
}
