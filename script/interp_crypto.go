package script

import (
	"encoding/hex"

	"github.com/jrick/bitset"

	"github.com/ddenet/chain/address"
	"github.com/ddenet/chain/crypto"
)

// opCrypto implements the hashing and signature-verification opcodes:
// OP_SHA256 (SHA3-256 despite the legacy name), the three OP_HASH256
// address-derivation variants, and OP_CHECKSIG(VERIFY)/
// OP_CHECKMULTISIG(VERIFY).
func opCrypto(s *Stack, op OpCode) (bool, *Error) {
	switch op {
	case OP_SHA256:
		b, kerr := s.PopBytesLike(op)
		if kerr != nil {
			return false, kerr
		}
		h := crypto.Sha3_256(b)
		return pushAll(s, op, NewBytesEntry([]byte(hex.EncodeToString(h.Bytes()))))

	case OP_HASH256, OP_HASH256_V0, OP_HASH256_TEMP:
		e, ok := s.Pop()
		if !ok {
			return false, newError(op, NotEnoughItems)
		}
		if e.Kind != EntryPubKey {
			return false, newError(op, ItemType)
		}
		pk := crypto.PublicKey(e.PubKey)
		var addr string
		switch op {
		case OP_HASH256_V0:
			addr = address.ConstructV0(pk)
		case OP_HASH256_TEMP:
			addr = address.ConstructTemp(pk)
		default:
			addr = address.Construct(pk)
		}
		return pushAll(s, op, NewPubKeyHashEntry(addr))

	case OP_CHECKSIG, OP_CHECKSIGVERIFY:
		return opCheckSig(s, op)

	case OP_CHECKMULTISIG, OP_CHECKMULTISIGVERIFY:
		return opCheckMultisig(s, op)

	default:
		return false, newError(op, UnknownOpcode)
	}
}

func opCheckSig(s *Stack, op OpCode) (bool, *Error) {
	pkEntry, ok := s.Pop()
	if !ok {
		return false, newError(op, NotEnoughItems)
	}
	if pkEntry.Kind != EntryPubKey {
		return false, newError(op, ItemType)
	}
	sigEntry, ok := s.Pop()
	if !ok {
		return false, newError(op, NotEnoughItems)
	}
	if sigEntry.Kind != EntrySignature {
		return false, newError(op, ItemType)
	}
	msg, kerr := s.PopBytesLike(op)
	if kerr != nil {
		return false, kerr
	}

	valid := crypto.VerifyDetached(crypto.Signature(sigEntry.Signature), msg, crypto.PublicKey(pkEntry.PubKey))

	if op == OP_CHECKSIGVERIFY {
		if !valid {
			return false, newError(op, InvalidSignature)
		}
		return true, nil
	}
	if valid {
		return pushAll(s, op, NewNumEntry(1))
	}
	return pushAll(s, op, NewNumEntry(0))
}

// opCheckMultisig implements OP_CHECKMULTISIG / OP_CHECKMULTISIGVERIFY.
// Stack, top to bottom: Num(n), pk_n..pk_1, Num(m), sig_m..sig_1, msg.
// Each signature must match exactly one distinct, not-yet-consumed
// public key via a left-to-right scan over the remaining keys; order of
// both signatures and keys is otherwise free.
func opCheckMultisig(s *Stack, op OpCode) (bool, *Error) {
	n, kerr := s.PopNum(op)
	if kerr != nil {
		return false, kerr
	}
	if n > MaxPubKeysPerMultisig {
		return false, newError(op, NumPubkeys)
	}
	pubKeys := make([]crypto.PublicKey, n)
	for i := uint64(0); i < n; i++ {
		e, ok := s.Pop()
		if !ok {
			return false, newError(op, NotEnoughItems)
		}
		if e.Kind != EntryPubKey {
			return false, newError(op, ItemType)
		}
		// Keys were pushed pk_1..pk_n so popping yields pk_n..pk_1;
		// store in that pop order since matching is order-independent.
		pubKeys[i] = crypto.PublicKey(e.PubKey)
	}

	m, kerr := s.PopNum(op)
	if kerr != nil {
		return false, kerr
	}
	if m > n {
		return false, newError(op, NumSignatures)
	}
	sigs := make([]crypto.Signature, m)
	for i := uint64(0); i < m; i++ {
		e, ok := s.Pop()
		if !ok {
			return false, newError(op, NotEnoughItems)
		}
		if e.Kind != EntrySignature {
			return false, newError(op, ItemType)
		}
		sigs[i] = crypto.Signature(e.Signature)
	}

	msg, kerr := s.PopBytesLike(op)
	if kerr != nil {
		return false, kerr
	}

	consumed := bitset.NewBytes(len(pubKeys))
	matched := 0
	for _, sig := range sigs {
		for i, pk := range pubKeys {
			if consumed.Get(i) {
				continue
			}
			if crypto.VerifyDetached(sig, msg, pk) {
				consumed.Set(i)
				matched++
				break
			}
		}
	}
	valid := matched == len(sigs)

	if op == OP_CHECKMULTISIGVERIFY {
		if !valid {
			return false, newError(op, InvalidMultisig)
		}
		return true, nil
	}
	if valid {
		return pushAll(s, op, NewNumEntry(1))
	}
	return pushAll(s, op, NewNumEntry(0))
}
