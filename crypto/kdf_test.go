package crypto

import (
	"errors"
	"testing"
)

func TestDeriveKeyZeroIterationsFails(t *testing.T) {
	salt, err := GenKdfSalt()
	if err != nil {
		t.Fatalf("GenKdfSalt: %v", err)
	}
	_, err = DeriveKey([]byte("password"), salt, 0)
	if !errors.Is(err, ErrZeroIterations) {
		t.Fatalf("expected ErrZeroIterations, got %v", err)
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	salt, err := GenKdfSalt()
	if err != nil {
		t.Fatalf("GenKdfSalt: %v", err)
	}
	k1, err := DeriveKey([]byte("password"), salt, OpsLimitInteractive)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	k2, err := DeriveKey([]byte("password"), salt, OpsLimitInteractive)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if k1 != k2 {
		t.Fatal("same password/salt/iterations produced different keys")
	}

	other, err := DeriveKey([]byte("different password"), salt, OpsLimitInteractive)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if k1 == other {
		t.Fatal("different passwords produced the same key")
	}
}
