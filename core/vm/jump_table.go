// Copyright 2016 by the Authors
// This file is part of the go-core library.
//
// The go-core library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-core library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-core library. If not, see <http://www.gnu.org/licenses/>.

package vm

// executionFunc runs one instruction against interp's stack, memory
// and contract. It returns the number of bytes the instruction pointer
// should advance by; a handler that sets the pointer itself (a jump)
// or halts execution returns 0, matching its operation's jumps/halts
// flag.
type executionFunc func(interp *Interpreter) (uint64, error)

// operation describes one dispatch-table entry: how to run the
// instruction and the stack depths required to run it safely.
type operation struct {
	execute  executionFunc
	minStack int  // minimum stack items required before execution
	maxStack int  // maximum stack items allowed before execution, so that its pushes cannot overflow
	halts    bool // true if the operation ends execution cleanly
	jumps    bool // true if the operation sets the instruction pointer itself
}

// minStackOf returns the minimum stack depth an instruction needs,
// purely cosmetic over "pops" but kept to mirror the teacher's naming.
func minStackOf(pops int) int {
	return pops
}

// maxStackOf returns the deepest the stack may already be before
// execution without the instruction's net push overflowing it.
func maxStackOf(pops, pushes int) int {
	return maxStackDepth + pops - pushes
}

// JumpTable is a dense dispatch table, one entry per possible opcode
// byte. Every entry is populated: opcodes with no real handler in this
// package (the Non-goals -- gas-priced calls, persistent/transient
// storage, logs, creation, hashing, environment beyond calldata -- and
// any byte that has never meant anything) get the opUnknown sentinel,
// which halts execution cleanly instead of erroring.
type JumpTable [256]operation

// newJumpTable builds the dispatch table for the instruction set this
// interpreter implements.
func newJumpTable() JumpTable {
	var tbl JumpTable

	tbl[STOP] = operation{execute: opStop, minStack: minStackOf(0), maxStack: maxStackOf(0, 0), halts: true}

	tbl[ADD] = operation{execute: opAdd, minStack: minStackOf(2), maxStack: maxStackOf(2, 1)}
	tbl[MUL] = operation{execute: opMul, minStack: minStackOf(2), maxStack: maxStackOf(2, 1)}
	tbl[SUB] = operation{execute: opSub, minStack: minStackOf(2), maxStack: maxStackOf(2, 1)}
	tbl[DIV] = operation{execute: opDiv, minStack: minStackOf(2), maxStack: maxStackOf(2, 1)}

	tbl[LT] = operation{execute: opLt, minStack: minStackOf(2), maxStack: maxStackOf(2, 1)}
	tbl[GT] = operation{execute: opGt, minStack: minStackOf(2), maxStack: maxStackOf(2, 1)}
	tbl[SLT] = operation{execute: opSlt, minStack: minStackOf(2), maxStack: maxStackOf(2, 1)}
	tbl[SGT] = operation{execute: opSgt, minStack: minStackOf(2), maxStack: maxStackOf(2, 1)}
	tbl[EQ] = operation{execute: opEq, minStack: minStackOf(2), maxStack: maxStackOf(2, 1)}
	tbl[ISZERO] = operation{execute: opIszero, minStack: minStackOf(1), maxStack: maxStackOf(1, 1)}
	tbl[AND] = operation{execute: opAnd, minStack: minStackOf(2), maxStack: maxStackOf(2, 1)}
	tbl[OR] = operation{execute: opOr, minStack: minStackOf(2), maxStack: maxStackOf(2, 1)}
	tbl[XOR] = operation{execute: opXor, minStack: minStackOf(2), maxStack: maxStackOf(2, 1)}
	tbl[NOT] = operation{execute: opNot, minStack: minStackOf(1), maxStack: maxStackOf(1, 1)}
	tbl[BYTE] = operation{execute: opByte, minStack: minStackOf(2), maxStack: maxStackOf(2, 1)}
	tbl[SHL] = operation{execute: opShl, minStack: minStackOf(2), maxStack: maxStackOf(2, 1)}
	tbl[SHR] = operation{execute: opShr, minStack: minStackOf(2), maxStack: maxStackOf(2, 1)}
	tbl[SAR] = operation{execute: opSar, minStack: minStackOf(2), maxStack: maxStackOf(2, 1)}

	tbl[CALLDATALOAD] = operation{execute: opCallDataLoad, minStack: minStackOf(1), maxStack: maxStackOf(1, 1)}
	tbl[CALLDATASIZE] = operation{execute: opCallDataSize, minStack: minStackOf(0), maxStack: maxStackOf(0, 1)}
	tbl[CALLDATACOPY] = operation{execute: opCallDataCopy, minStack: minStackOf(3), maxStack: maxStackOf(3, 0)}

	tbl[MLOAD] = operation{execute: opMload, minStack: minStackOf(1), maxStack: maxStackOf(1, 1)}
	tbl[MSTORE] = operation{execute: opMstore, minStack: minStackOf(2), maxStack: maxStackOf(2, 0)}
	tbl[MSTORE8] = operation{execute: opMstore8, minStack: minStackOf(2), maxStack: maxStackOf(2, 0)}
	tbl[JUMP] = operation{execute: opJump, minStack: minStackOf(1), maxStack: maxStackOf(1, 0), jumps: true}
	tbl[JUMPI] = operation{execute: opJumpi, minStack: minStackOf(2), maxStack: maxStackOf(2, 0), jumps: true}
	tbl[PC] = operation{execute: opPc, minStack: minStackOf(0), maxStack: maxStackOf(0, 1)}
	tbl[MSIZE] = operation{execute: opMsize, minStack: minStackOf(0), maxStack: maxStackOf(0, 1)}
	tbl[JUMPDEST] = operation{execute: opJumpdest, minStack: minStackOf(0), maxStack: maxStackOf(0, 0)}
	tbl[PUSH0] = operation{execute: opPush0, minStack: minStackOf(0), maxStack: maxStackOf(0, 1)}

	for op := PUSH1; op <= PUSH32; op++ {
		tbl[op] = operation{execute: makePush(op.PushSize()), minStack: minStackOf(0), maxStack: maxStackOf(0, 1)}
	}
	for n := 1; n <= 16; n++ {
		op := OpCode(int(DUP1) + n - 1)
		tbl[op] = operation{execute: makeDup(n), minStack: minStackOf(n), maxStack: maxStackOf(n, n + 1)}
	}
	for n := 1; n <= 16; n++ {
		op := OpCode(int(SWAP1) + n - 1)
		tbl[op] = operation{execute: makeSwap(n), minStack: minStackOf(n + 1), maxStack: maxStackOf(n+1, n+1)}
	}

	tbl[RETURN] = operation{execute: opReturn, minStack: minStackOf(2), maxStack: maxStackOf(2, 0), halts: true}
	tbl[INVALID] = operation{execute: opInvalid, minStack: minStackOf(0), maxStack: maxStackOf(0, 0), halts: true}

	unknown := operation{execute: opUnknown, minStack: minStackOf(0), maxStack: maxStackOf(0, 0), halts: true}
	for op := range tbl {
		if tbl[op].execute == nil {
			tbl[op] = unknown
		}
	}

	return tbl
}
