package script

// opStack implements the stack-manipulation opcodes: moving entries
// between the main and alt stacks, and the classic pairwise stack
// shuffles (DROP/DUP/NIP/OVER/PICK/ROLL/ROT/SWAP/TUCK and their 2-/3-
// prefixed variants).
func opStack(s *Stack, op OpCode) (bool, *Error) {
	switch op {
	case OP_TOALTSTACK:
		e, ok := s.Pop()
		if !ok {
			return false, newError(op, NotEnoughItems)
		}
		if !s.PushAlt(op, e) {
			return false, newError(op, KindMaxStackSize)
		}
		return true, nil

	case OP_FROMALTSTACK:
		e, ok := s.PopAlt()
		if !ok {
			return false, newError(op, NotEnoughItems)
		}
		if !s.Push(op, e) {
			return false, newError(op, KindMaxStackSize)
		}
		return true, nil

	case OP_2DROP:
		if _, ok := s.Pop(); !ok {
			return false, newError(op, NotEnoughItems)
		}
		if _, ok := s.Pop(); !ok {
			return false, newError(op, NotEnoughItems)
		}
		return true, nil

	case OP_2DUP:
		a, okA := s.Peek(1)
		b, okB := s.Peek(0)
		if !okA || !okB {
			return false, newError(op, NotEnoughItems)
		}
		return pushAll(s, op, a, b)

	case OP_3DUP:
		a, okA := s.Peek(2)
		b, okB := s.Peek(1)
		c, okC := s.Peek(0)
		if !okA || !okB || !okC {
			return false, newError(op, NotEnoughItems)
		}
		return pushAll(s, op, a, b, c)

	case OP_2OVER:
		a, okA := s.Peek(3)
		b, okB := s.Peek(2)
		if !okA || !okB {
			return false, newError(op, NotEnoughItems)
		}
		return pushAll(s, op, a, b)

	case OP_2ROT:
		a, okA := s.Peek(5)
		b, okB := s.Peek(4)
		if !okA || !okB {
			return false, newError(op, NotEnoughItems)
		}
		n := len(s.Main)
		s.Main = append(append(append([]StackEntry{}, s.Main[:n-6]...), s.Main[n-4:]...), a, b)
		return true, nil

	case OP_2SWAP:
		if len(s.Main) < 4 {
			return false, newError(op, NotEnoughItems)
		}
		n := len(s.Main)
		s.Main[n-4], s.Main[n-2] = s.Main[n-2], s.Main[n-4]
		s.Main[n-3], s.Main[n-1] = s.Main[n-1], s.Main[n-3]
		return true, nil

	case OP_IFDUP:
		top, ok := s.Top()
		if !ok {
			return false, newError(op, NotEnoughItems)
		}
		if !top.Truthy() {
			return true, nil
		}
		return pushAll(s, op, top)

	case OP_DEPTH:
		return pushAll(s, op, NewNumEntry(uint64(len(s.Main))))

	case OP_DROP:
		if _, ok := s.Pop(); !ok {
			return false, newError(op, NotEnoughItems)
		}
		return true, nil

	case OP_DUP:
		top, ok := s.Top()
		if !ok {
			return false, newError(op, NotEnoughItems)
		}
		return pushAll(s, op, top)

	case OP_NIP:
		top, ok := s.Pop()
		if !ok {
			return false, newError(op, NotEnoughItems)
		}
		if _, ok := s.Pop(); !ok {
			return false, newError(op, NotEnoughItems)
		}
		return pushAll(s, op, top)

	case OP_OVER:
		e, ok := s.Peek(1)
		if !ok {
			return false, newError(op, NotEnoughItems)
		}
		return pushAll(s, op, e)

	case OP_PICK, OP_ROLL:
		n, kerr := s.PopNum(op)
		if kerr != nil {
			return false, kerr
		}
		if n >= uint64(len(s.Main)) {
			return false, newError(op, ItemIndex)
		}
		idx := len(s.Main) - 1 - int(n)
		e := s.Main[idx]
		if op == OP_ROLL {
			s.Main = append(s.Main[:idx], s.Main[idx+1:]...)
		}
		return pushAll(s, op, e)

	case OP_ROT:
		if len(s.Main) < 3 {
			return false, newError(op, NotEnoughItems)
		}
		n := len(s.Main)
		s.Main[n-3], s.Main[n-2], s.Main[n-1] = s.Main[n-2], s.Main[n-1], s.Main[n-3]
		return true, nil

	case OP_SWAP:
		if len(s.Main) < 2 {
			return false, newError(op, NotEnoughItems)
		}
		n := len(s.Main)
		s.Main[n-2], s.Main[n-1] = s.Main[n-1], s.Main[n-2]
		return true, nil

	case OP_TUCK:
		top, ok := s.Pop()
		if !ok {
			return false, newError(op, NotEnoughItems)
		}
		second, ok := s.Pop()
		if !ok {
			return false, newError(op, NotEnoughItems)
		}
		return pushAll(s, op, top, second, top)

	default:
		return false, newError(op, UnknownOpcode)
	}
}

func pushAll(s *Stack, op OpCode, entries ...StackEntry) (bool, *Error) {
	for _, e := range entries {
		if !s.Push(op, e) {
			return false, newError(op, KindMaxStackSize)
		}
	}
	return true, nil
}
