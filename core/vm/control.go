// Copyright 2015 by the Authors
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

import "github.com/holiman/uint256"

func opStop(interp *Interpreter) (uint64, error) {
	return 0, nil
}

func opJump(interp *Interpreter) (uint64, error) {
	dest, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	pos, err := toIndex(&dest)
	if err != nil {
		return 0, ErrInvalidJump
	}
	if !interp.contract.Code.IsValidJump(pos) {
		return 0, ErrInvalidJump
	}
	interp.ip = pos
	return 0, nil
}

func opJumpi(interp *Interpreter) (uint64, error) {
	dest, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	cond, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	if cond.IsZero() {
		interp.ip++
		return 0, nil
	}
	pos, err := toIndex(&dest)
	if err != nil {
		return 0, ErrInvalidJump
	}
	if !interp.contract.Code.IsValidJump(pos) {
		return 0, ErrInvalidJump
	}
	interp.ip = pos
	return 0, nil
}

func opJumpdest(interp *Interpreter) (uint64, error) {
	return 1, nil
}

func opPc(interp *Interpreter) (uint64, error) {
	var v uint256.Int
	v.SetUint64(interp.ip)
	if err := interp.stack.Push(&v); err != nil {
		return 0, err
	}
	return 1, nil
}

func opMsize(interp *Interpreter) (uint64, error) {
	var v uint256.Int
	v.SetUint64(uint64(interp.memory.Len()))
	if err := interp.stack.Push(&v); err != nil {
		return 0, err
	}
	return 1, nil
}

func opReturn(interp *Interpreter) (uint64, error) {
	offsetW, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	sizeW, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	offset, err := toIndex(&offsetW)
	if err != nil {
		return 0, err
	}
	size, err := toIndex(&sizeW)
	if err != nil {
		return 0, err
	}
	interp.memory.Resize(offset + size)
	interp.returnData = interp.memory.GetCopy(offset, size)
	return 0, nil
}

// opInvalid is INVALID (0xFE): it halts execution gracefully, same as
// STOP, rather than erroring. spec.md's instruction table gives it no
// special failure behavior beyond "halt".
func opInvalid(interp *Interpreter) (uint64, error) {
	return 0, nil
}

// opUnknown backs every opcode byte with no assigned handler — the
// Non-goal instructions (SLOAD, SSTORE, CALL, CREATE, KECCAK256, LOGn,
// ...) and any byte that has never meant anything. It halts cleanly,
// matching "any other -> unknown -> halt": the interpreter never
// faults on an undefined opcode.
func opUnknown(interp *Interpreter) (uint64, error) {
	return 0, nil
}
