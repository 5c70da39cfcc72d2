package script

// opSplice implements the byte-string splice opcodes: CAT, SUBSTR, LEFT,
// RIGHT, SIZE. All operate on byte-like entries (Bytes, Signature,
// PubKey, PubKeyHash) and always push a Bytes result, except SIZE which
// pushes a Num.
func opSplice(s *Stack, op OpCode) (bool, *Error) {
	switch op {
	case OP_CAT:
		b, kerr := s.PopBytesLike(op)
		if kerr != nil {
			return false, kerr
		}
		a, kerr := s.PopBytesLike(op)
		if kerr != nil {
			return false, kerr
		}
		out := append(append([]byte{}, a...), b...)
		if len(out) > MaxScriptElementSize {
			return false, newError(op, ItemSize)
		}
		return pushAll(s, op, NewBytesEntry(out))

	case OP_SUBSTR:
		n2, kerr := s.PopNum(op)
		if kerr != nil {
			return false, kerr
		}
		n1, kerr := s.PopNum(op)
		if kerr != nil {
			return false, kerr
		}
		b, kerr := s.PopBytesLike(op)
		if kerr != nil {
			return false, kerr
		}
		if n1 > uint64(len(b)) || n2 > uint64(len(b)) || n1+n2 > uint64(len(b)) {
			return false, newError(op, ItemIndex)
		}
		return pushAll(s, op, NewBytesEntry(append([]byte{}, b[n1:n1+n2]...)))

	case OP_LEFT:
		n, kerr := s.PopNum(op)
		if kerr != nil {
			return false, kerr
		}
		b, kerr := s.PopBytesLike(op)
		if kerr != nil {
			return false, kerr
		}
		if n >= uint64(len(b)) {
			return pushAll(s, op, NewBytesEntry(append([]byte{}, b...)))
		}
		return pushAll(s, op, NewBytesEntry(append([]byte{}, b[:n]...)))

	case OP_RIGHT:
		n, kerr := s.PopNum(op)
		if kerr != nil {
			return false, kerr
		}
		b, kerr := s.PopBytesLike(op)
		if kerr != nil {
			return false, kerr
		}
		if n >= uint64(len(b)) {
			return pushAll(s, op, NewBytesEntry(nil))
		}
		return pushAll(s, op, NewBytesEntry(append([]byte{}, b[n:]...)))

	case OP_SIZE:
		b, kerr := s.PopBytesLike(op)
		if kerr != nil {
			return false, kerr
		}
		return pushAll(s, op, NewNumEntry(uint64(len(b))))

	default:
		return false, newError(op, UnknownOpcode)
	}
}
