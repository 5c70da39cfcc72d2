package script

// Interpreter executes a Script against a two-stack machine. It is
// single-threaded, synchronous, and deterministic: no I/O, no clocks, no
// randomness. Each opcode handler mutates the shared stack and returns
// true to continue or false to abort the script as rejected.
type Interpreter struct {
	stack *Stack
	ops   int
}

// NewInterpreter returns an Interpreter with a fresh, empty stack.
func NewInterpreter() *Interpreter {
	return &Interpreter{stack: NewStack()}
}

// Stack returns the interpreter's underlying stack, primarily for tests
// that want to inspect the final state.
func (ip *Interpreter) Stack() *Stack {
	return ip.stack
}

// Execute runs s to completion. It returns the final pass/fail verdict,
// true iff every step succeeded and the main stack's top entry is
// truthy, and the first Error encountered, if any (a side channel for
// diagnostics; it never changes the verdict computed from the bool).
func Execute(s Script) (bool, *Error) {
	ip := NewInterpreter()
	return ip.Execute(s)
}

// Execute runs s against ip's stack, continuing from whatever state the
// stack is already in. Script-shape validators use this to interpret
// several script fragments in sequence against one running stack.
func (ip *Interpreter) Execute(s Script) (bool, *Error) {
	if err := checkScriptSize(s); err != nil {
		return false, err
	}

	for _, e := range s.Entries {
		if e.Kind != EntryOp {
			if !ip.stack.Push(OP_0, e) {
				return false, newError(OP_0, KindMaxStackSize)
			}
			continue
		}

		op := e.Op
		if !op.IsPushValue() {
			ip.ops++
			if ip.ops > MaxOpsPerScript {
				return false, newError(op, KindMaxOpsScript)
			}
		}

		ok, err := ip.step(op)
		if !ok {
			return false, err
		}
	}

	top, ok := ip.stack.Top()
	if !ok {
		return false, newError(OP_0, NotEnoughItems)
	}
	return top.Truthy(), nil
}

func checkScriptSize(s Script) *Error {
	b, err := s.MarshalBinary()
	if err != nil || len(b) > MaxScriptSize {
		return newError(OP_0, KindMaxScriptSize)
	}
	return nil
}

func (ip *Interpreter) step(op OpCode) (bool, *Error) {
	s := ip.stack

	if op.IsPushValue() {
		if !s.Push(op, NewNumEntry(op.PushValue())) {
			return false, newError(op, KindMaxStackSize)
		}
		return true, nil
	}

	switch op {
	case OP_NOP, OP_NOP1, OP_NOP4, OP_NOP5, OP_NOP6, OP_NOP7, OP_NOP8, OP_NOP9, OP_NOP10:
		return true, nil

	case OP_VERIFY:
		e, ok := s.Pop()
		if !ok {
			return false, newError(op, Verify)
		}
		if e.Kind == EntryNum && e.Num == 0 {
			return false, newError(op, Verify)
		}
		return true, nil

	case OP_RETURN:
		return false, newError(op, Verify)

	case OP_CREATE:
		// Marks the start of an asset-creation script for the shape
		// validator in the txvalidate package; the interpreter itself
		// treats it as a no-op.
		return true, nil

	case OP_TOALTSTACK, OP_FROMALTSTACK,
		OP_2DROP, OP_2DUP, OP_3DUP, OP_2OVER, OP_2ROT, OP_2SWAP,
		OP_IFDUP, OP_DEPTH, OP_DROP, OP_DUP, OP_NIP, OP_OVER,
		OP_PICK, OP_ROLL, OP_ROT, OP_SWAP, OP_TUCK:
		return opStack(s, op)

	case OP_CAT, OP_SUBSTR, OP_LEFT, OP_RIGHT, OP_SIZE:
		return opSplice(s, op)

	case OP_INVERT, OP_AND, OP_OR, OP_XOR, OP_EQUAL, OP_EQUALVERIFY:
		return opBitwise(s, op)

	case OP_1ADD, OP_1SUB, OP_2MUL, OP_2DIV, OP_NEGATE, OP_ABS, OP_NOT, OP_0NOTEQUAL,
		OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_MOD, OP_LSHIFT, OP_RSHIFT,
		OP_BOOLAND, OP_BOOLOR, OP_NUMEQUAL, OP_NUMEQUALVERIFY, OP_NUMNOTEQUAL,
		OP_LESSTHAN, OP_GREATERTHAN, OP_LESSTHANOREQUAL, OP_GREATERTHANOREQUAL,
		OP_MIN, OP_MAX, OP_WITHIN:
		return opArith(s, op)

	case OP_SHA256, OP_HASH256, OP_HASH256_V0, OP_HASH256_TEMP,
		OP_CHECKSIG, OP_CHECKSIGVERIFY, OP_CHECKMULTISIG, OP_CHECKMULTISIGVERIFY:
		return opCrypto(s, op)

	default:
		return false, newError(op, UnknownOpcode)
	}
}
