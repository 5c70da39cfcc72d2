package script

import (
	"testing"

	"github.com/ddenet/chain/crypto"
)

func TestExecuteSimplePush(t *testing.T) {
	ok, kerr := Execute(New(NewNumEntry(1)))
	if kerr != nil {
		t.Fatalf("unexpected error: %v", kerr)
	}
	if !ok {
		t.Fatal("script pushing a truthy Num should pass")
	}
}

func TestExecuteArithmeticAdd(t *testing.T) {
	s := New(NewNumEntry(2), NewNumEntry(3), NewOpEntry(OP_ADD))
	ok, kerr := Execute(s)
	if kerr != nil {
		t.Fatalf("unexpected error: %v", kerr)
	}
	if !ok {
		t.Fatal("2+3 should leave a truthy (non-zero) result")
	}
}

func TestExecute1AddOverflow(t *testing.T) {
	s := New(NewNumEntry(^uint64(0)), NewOpEntry(OP_1ADD))
	ok, kerr := Execute(s)
	if ok || kerr == nil {
		t.Fatal("OP_1ADD at max uint64 must fail with Overflow")
	}
	if kerr.Kind != Overflow {
		t.Fatalf("error kind = %v, want Overflow", kerr.Kind)
	}
}

func TestExecuteLShiftDivZeroAtShift64(t *testing.T) {
	s := New(NewNumEntry(1), NewNumEntry(64), NewOpEntry(OP_LSHIFT))
	ok, kerr := Execute(s)
	if ok || kerr == nil {
		t.Fatal("OP_LSHIFT by 64 must fail")
	}
	if kerr.Kind != DivZero {
		t.Fatalf("error kind = %v, want DivZero", kerr.Kind)
	}
}

func TestExecuteRShiftDivZeroAtShift64(t *testing.T) {
	s := New(NewNumEntry(1), NewNumEntry(64), NewOpEntry(OP_RSHIFT))
	ok, kerr := Execute(s)
	if ok || kerr == nil {
		t.Fatal("OP_RSHIFT by 64 must fail")
	}
	if kerr.Kind != DivZero {
		t.Fatalf("error kind = %v, want DivZero", kerr.Kind)
	}
}

func TestExecuteDivByZero(t *testing.T) {
	s := New(NewNumEntry(10), NewNumEntry(0), NewOpEntry(OP_DIV))
	ok, kerr := Execute(s)
	if ok || kerr == nil || kerr.Kind != DivZero {
		t.Fatalf("expected DivZero, got ok=%v kerr=%v", ok, kerr)
	}
}

func TestExecuteCheckSigValid(t *testing.T) {
	pk, sk, err := crypto.GenKeyPair()
	if err != nil {
		t.Fatalf("GenKeyPair: %v", err)
	}
	msg := []byte("message to sign")
	sig := crypto.SignDetached(msg, sk)

	s := New(
		NewBytesEntry(msg),
		NewSignatureEntry([64]byte(sig)),
		NewPubKeyEntry([32]byte(pk)),
		NewOpEntry(OP_CHECKSIG),
	)
	ok, kerr := Execute(s)
	if kerr != nil {
		t.Fatalf("unexpected error: %v", kerr)
	}
	if !ok {
		t.Fatal("OP_CHECKSIG should accept a valid signature")
	}
}

func TestExecuteCheckSigInvalid(t *testing.T) {
	pk, _, err := crypto.GenKeyPair()
	if err != nil {
		t.Fatalf("GenKeyPair: %v", err)
	}
	_, sk2, err := crypto.GenKeyPair()
	if err != nil {
		t.Fatalf("GenKeyPair: %v", err)
	}
	msg := []byte("message to sign")
	wrongSig := crypto.SignDetached(msg, sk2)

	s := New(
		NewBytesEntry(msg),
		NewSignatureEntry([64]byte(wrongSig)),
		NewPubKeyEntry([32]byte(pk)),
		NewOpEntry(OP_CHECKSIG),
	)
	ok, kerr := Execute(s)
	if kerr != nil {
		t.Fatalf("unexpected error: %v", kerr)
	}
	if ok {
		t.Fatal("OP_CHECKSIG should reject a signature from a different key")
	}
}

func TestExecuteCheckMultisig2of3(t *testing.T) {
	pk1, sk1, _ := crypto.GenKeyPair()
	pk2, sk2, _ := crypto.GenKeyPair()
	pk3, _, _ := crypto.GenKeyPair()
	msg := []byte("multisig message")
	sig1 := crypto.SignDetached(msg, sk1)
	sig2 := crypto.SignDetached(msg, sk2)

	s := New(
		NewBytesEntry(msg),
		NewSignatureEntry([64]byte(sig1)),
		NewSignatureEntry([64]byte(sig2)),
		NewNumEntry(2),
		NewPubKeyEntry([32]byte(pk1)),
		NewPubKeyEntry([32]byte(pk2)),
		NewPubKeyEntry([32]byte(pk3)),
		NewNumEntry(3),
		NewOpEntry(OP_CHECKMULTISIG),
	)
	ok, kerr := Execute(s)
	if kerr != nil {
		t.Fatalf("unexpected error: %v", kerr)
	}
	if !ok {
		t.Fatal("2-of-3 multisig with 2 valid signatures should pass")
	}
}

func TestExecuteCheckMultisigRejectsShortfall(t *testing.T) {
	pk1, sk1, _ := crypto.GenKeyPair()
	pk2, _, _ := crypto.GenKeyPair()
	pk3, _, _ := crypto.GenKeyPair()
	msg := []byte("multisig message")
	sig1 := crypto.SignDetached(msg, sk1)

	s := New(
		NewBytesEntry(msg),
		NewSignatureEntry([64]byte(sig1)),
		NewSignatureEntry([64]byte(sig1)),
		NewNumEntry(2),
		NewPubKeyEntry([32]byte(pk1)),
		NewPubKeyEntry([32]byte(pk2)),
		NewPubKeyEntry([32]byte(pk3)),
		NewNumEntry(3),
		NewOpEntry(OP_CHECKMULTISIG),
	)
	ok, kerr := Execute(s)
	if kerr != nil {
		t.Fatalf("unexpected error: %v", kerr)
	}
	if ok {
		t.Fatal("reusing one signature to satisfy two required signatures must fail")
	}
}

func TestExecuteMaxOpsPerScript(t *testing.T) {
	entries := make([]StackEntry, 0, MaxOpsPerScript+2)
	entries = append(entries, NewNumEntry(1))
	for i := 0; i < MaxOpsPerScript+1; i++ {
		entries = append(entries, NewOpEntry(OP_DUP), NewOpEntry(OP_DROP))
	}
	s := New(entries...)
	ok, kerr := Execute(s)
	if ok || kerr == nil {
		t.Fatal("script exceeding MaxOpsPerScript must fail")
	}
	if kerr.Kind != KindMaxOpsScript {
		t.Fatalf("error kind = %v, want MaxOpsScript", kerr.Kind)
	}
}

func TestExecuteMaxStackSize(t *testing.T) {
	entries := make([]StackEntry, 0, MaxStackSize+1)
	for i := 0; i < MaxStackSize+1; i++ {
		entries = append(entries, NewOpEntry(OP_1))
	}
	s := New(entries...)
	ok, kerr := Execute(s)
	if ok || kerr == nil {
		t.Fatal("pushing beyond MaxStackSize must fail")
	}
	if kerr.Kind != KindMaxStackSize {
		t.Fatalf("error kind = %v, want MaxStackSize", kerr.Kind)
	}
}

func TestExecuteUnknownOpcode(t *testing.T) {
	s := New(NewNumEntry(1), NewOpEntry(OP_INVALIDOPCODE))
	ok, kerr := Execute(s)
	if ok || kerr == nil || kerr.Kind != UnknownOpcode {
		t.Fatalf("expected UnknownOpcode, got ok=%v kerr=%v", ok, kerr)
	}
}

func TestExecuteDupAndEqual(t *testing.T) {
	s := New(NewBytesEntry([]byte("x")), NewOpEntry(OP_DUP), NewOpEntry(OP_EQUAL))
	ok, kerr := Execute(s)
	if kerr != nil {
		t.Fatalf("unexpected error: %v", kerr)
	}
	if !ok {
		t.Fatal("OP_DUP followed by OP_EQUAL on the same value should be truthy")
	}
}

func TestExecuteSizeAndCat(t *testing.T) {
	s := New(
		NewBytesEntry([]byte("ab")),
		NewBytesEntry([]byte("cd")),
		NewOpEntry(OP_CAT),
		NewOpEntry(OP_SIZE),
	)
	ip := NewInterpreter()
	ok, kerr := ip.Execute(s)
	if kerr != nil {
		t.Fatalf("unexpected error: %v", kerr)
	}
	if !ok {
		t.Fatal("size of a non-empty concatenation should be truthy")
	}
	top, _ := ip.Stack().Top()
	if top.Kind != EntryNum || top.Num != 4 {
		t.Fatalf("expected size 4, got %+v", top)
	}
}
