package script

// opBitwise implements OP_INVERT/OP_AND/OP_OR/OP_XOR (full-width bitwise
// on Num operands only) and OP_EQUAL/OP_EQUALVERIFY (tag-and-value
// comparison over any entry kind).
func opBitwise(s *Stack, op OpCode) (bool, *Error) {
	switch op {
	case OP_INVERT:
		n, kerr := s.PopNum(op)
		if kerr != nil {
			return false, kerr
		}
		return pushAll(s, op, NewNumEntry(^n))

	case OP_AND:
		b, kerr := s.PopNum(op)
		if kerr != nil {
			return false, kerr
		}
		a, kerr := s.PopNum(op)
		if kerr != nil {
			return false, kerr
		}
		return pushAll(s, op, NewNumEntry(a&b))

	case OP_OR:
		b, kerr := s.PopNum(op)
		if kerr != nil {
			return false, kerr
		}
		a, kerr := s.PopNum(op)
		if kerr != nil {
			return false, kerr
		}
		return pushAll(s, op, NewNumEntry(a|b))

	case OP_XOR:
		b, kerr := s.PopNum(op)
		if kerr != nil {
			return false, kerr
		}
		a, kerr := s.PopNum(op)
		if kerr != nil {
			return false, kerr
		}
		return pushAll(s, op, NewNumEntry(a^b))

	case OP_EQUAL:
		b, ok := s.Pop()
		if !ok {
			return false, newError(op, NotEnoughItems)
		}
		a, ok := s.Pop()
		if !ok {
			return false, newError(op, NotEnoughItems)
		}
		if a.Equal(b) {
			return pushAll(s, op, NewNumEntry(1))
		}
		return pushAll(s, op, NewNumEntry(0))

	case OP_EQUALVERIFY:
		b, ok := s.Pop()
		if !ok {
			return false, newError(op, NotEnoughItems)
		}
		a, ok := s.Pop()
		if !ok {
			return false, newError(op, NotEnoughItems)
		}
		if !a.Equal(b) {
			return false, newError(op, NotEqualItems)
		}
		return true, nil

	default:
		return false, newError(op, UnknownOpcode)
	}
}
