package script

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/ddenet/chain/wire"
)

// MaxScriptSize is the maximum serialized size, in bytes, of a Script.
const MaxScriptSize = 10000

// MaxOpsPerScript is the maximum number of non-push operations a single
// script execution may perform.
const MaxOpsPerScript = 201

// MaxPubKeysPerMultisig bounds the number of public keys a
// OP_CHECKMULTISIG/OP_CHECKMULTISIGVERIFY invocation may reference.
const MaxPubKeysPerMultisig = 20

// Script is the ordered sequence of stack entries making up a redeem
// script or a script signature.
type Script struct {
	Entries []StackEntry
}

// New returns a Script containing entries in order.
func New(entries ...StackEntry) Script {
	return Script{Entries: entries}
}

// CountOps returns the number of non-push operations in the script. The
// interpreter does not call it; it keeps its own running count against
// MaxOpsPerScript while executing.
func (s Script) CountOps() int {
	n := 0
	for _, e := range s.Entries {
		if e.Kind == EntryOp && !e.Op.IsPushValue() {
			n++
		}
	}
	return n
}

const entryTagOp = 0
const entryTagSignature = 1
const entryTagPubKey = 2
const entryTagPubKeyHash = 3
const entryTagNum = 4
const entryTagBytes = 5

// MarshalBinary implements the module's wire contract: a length-prefixed
// sequence of tagged entries.
func (s Script) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	w.PutUint64(uint64(len(s.Entries)))
	for _, e := range s.Entries {
		switch e.Kind {
		case EntryOp:
			w.PutUint32(entryTagOp)
			w.PutUint8(uint8(e.Op))
		case EntrySignature:
			w.PutUint32(entryTagSignature)
			w.PutBytes(e.Signature[:])
		case EntryPubKey:
			w.PutUint32(entryTagPubKey)
			w.PutBytes(e.PubKey[:])
		case EntryPubKeyHash:
			w.PutUint32(entryTagPubKeyHash)
			w.PutString(e.PubKeyHash)
		case EntryNum:
			w.PutUint32(entryTagNum)
			w.PutUint64(e.Num)
		case EntryBytes:
			w.PutUint32(entryTagBytes)
			w.PutBytes(e.Bytes)
		default:
			return nil, fmt.Errorf("script: unknown entry kind %d", e.Kind)
		}
	}
	if w.Err() != nil {
		return nil, w.Err()
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements the module's wire contract.
func (s *Script) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(bytes.NewReader(data))
	n := r.Uint64()
	entries := make([]StackEntry, 0, n)
	for i := uint64(0); i < n && r.Err() == nil; i++ {
		tag := r.Uint32()
		var e StackEntry
		switch tag {
		case entryTagOp:
			e = StackEntry{Kind: EntryOp, Op: OpCode(r.Uint8())}
		case entryTagSignature:
			b := r.Bytes()
			if len(b) == 64 {
				copy(e.Signature[:], b)
			}
			e.Kind = EntrySignature
		case entryTagPubKey:
			b := r.Bytes()
			if len(b) == 32 {
				copy(e.PubKey[:], b)
			}
			e.Kind = EntryPubKey
		case entryTagPubKeyHash:
			e = StackEntry{Kind: EntryPubKeyHash, PubKeyHash: r.String()}
		case entryTagNum:
			e = StackEntry{Kind: EntryNum, Num: r.Uint64()}
		case entryTagBytes:
			e = StackEntry{Kind: EntryBytes, Bytes: r.Bytes()}
		default:
			return fmt.Errorf("script: unknown entry tag %d", tag)
		}
		entries = append(entries, e)
	}
	if r.Err() != nil {
		return r.Err()
	}
	s.Entries = entries
	return nil
}

type entryJSON struct {
	Kind       string `json:"kind"`
	Op         string `json:"op,omitempty"`
	Signature  string `json:"signature,omitempty"`
	PubKey     string `json:"pub_key,omitempty"`
	PubKeyHash string `json:"pub_key_hash,omitempty"`
	Num        uint64 `json:"num,omitempty"`
	Bytes      string `json:"bytes,omitempty"`
}

// MarshalJSON implements the module's JSON contract: byte payloads are hex
// strings.
func (s Script) MarshalJSON() ([]byte, error) {
	out := make([]entryJSON, 0, len(s.Entries))
	for _, e := range s.Entries {
		ej := entryJSON{Kind: entryKindName(e.Kind)}
		switch e.Kind {
		case EntryOp:
			ej.Op = opName(e.Op)
		case EntrySignature:
			ej.Signature = hex.EncodeToString(e.Signature[:])
		case EntryPubKey:
			ej.PubKey = hex.EncodeToString(e.PubKey[:])
		case EntryPubKeyHash:
			ej.PubKeyHash = e.PubKeyHash
		case EntryNum:
			ej.Num = e.Num
		case EntryBytes:
			ej.Bytes = hex.EncodeToString(e.Bytes)
		}
		out = append(out, ej)
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements the module's JSON contract.
func (s *Script) UnmarshalJSON(data []byte) error {
	var in []entryJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	entries := make([]StackEntry, 0, len(in))
	for _, ej := range in {
		kind, err := entryKindFromName(ej.Kind)
		if err != nil {
			return err
		}
		var e StackEntry
		e.Kind = kind
		switch kind {
		case EntryOp:
			op, err := opFromName(ej.Op)
			if err != nil {
				return err
			}
			e.Op = op
		case EntrySignature:
			b, err := hex.DecodeString(ej.Signature)
			if err != nil {
				return err
			}
			copy(e.Signature[:], b)
		case EntryPubKey:
			b, err := hex.DecodeString(ej.PubKey)
			if err != nil {
				return err
			}
			copy(e.PubKey[:], b)
		case EntryPubKeyHash:
			e.PubKeyHash = ej.PubKeyHash
		case EntryNum:
			e.Num = ej.Num
		case EntryBytes:
			b, err := hex.DecodeString(ej.Bytes)
			if err != nil {
				return err
			}
			e.Bytes = b
		}
		entries = append(entries, e)
	}
	s.Entries = entries
	return nil
}

func entryKindName(k EntryKind) string {
	switch k {
	case EntryOp:
		return "op"
	case EntrySignature:
		return "signature"
	case EntryPubKey:
		return "pub_key"
	case EntryPubKeyHash:
		return "pub_key_hash"
	case EntryNum:
		return "num"
	case EntryBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

func entryKindFromName(s string) (EntryKind, error) {
	switch s {
	case "op":
		return EntryOp, nil
	case "signature":
		return EntrySignature, nil
	case "pub_key":
		return EntryPubKey, nil
	case "pub_key_hash":
		return EntryPubKeyHash, nil
	case "num":
		return EntryNum, nil
	case "bytes":
		return EntryBytes, nil
	default:
		return 0, fmt.Errorf("script: unknown stack entry kind %q", s)
	}
}
