// Copyright 2014 by the Authors
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

import (
	"github.com/holiman/uint256"

	"github.com/core-coin/cvm/common"
)

// jumpTable is built once; every Interpreter shares it, matching the
// teacher's package-level instruction-set tables.
var jumpTable = newJumpTable()

// Interpreter runs one Contract's code to completion: fetch, decode,
// execute, advance, repeat, against a private Stack and Memory.
type Interpreter struct {
	contract *Contract
	stack    *Stack
	memory   *Memory

	ip uint64

	// gas is reserved for a future gas meter; no handler in this
	// package reads or writes it.
	gas *uint256.Int

	returnData []byte
}

// NewInterpreter returns an Interpreter ready to run contract from
// instruction pointer zero.
func NewInterpreter(contract *Contract) *Interpreter {
	return &Interpreter{
		contract: contract,
		stack:    newstack(),
		memory:   NewMemory(),
		gas:      new(uint256.Int),
	}
}

// Run executes the contract's bytecode until it halts or errors.
// Reaching the end of code without hitting a halting instruction is
// treated as an implicit STOP. Every opcode byte has a handler (a real
// one or the opUnknown sentinel), so an undefined or Non-goal opcode
// halts gracefully instead of erroring; Run returns whatever RETURN
// last staged (nil if it never ran) and a nil error.
func (in *Interpreter) Run() ([]byte, error) {
	defer returnStack(in.stack)

	codeLen := uint64(in.contract.Code.Len())
	for in.ip < codeLen {
		op := in.contract.GetOp(in.ip)
		operation := jumpTable[op]
		if err := in.stack.requireDepth(operation.minStack); err != nil {
			return nil, err
		}
		if in.stack.Len() > operation.maxStack {
			return nil, &ErrStackOverflow{StackLen: in.stack.Len(), Limit: operation.maxStack}
		}

		advance, err := operation.execute(in)
		if err != nil {
			return in.returnData, err
		}
		if operation.halts {
			return in.returnData, nil
		}
		if !operation.jumps {
			in.ip += advance
		}
	}
	return in.returnData, nil
}

// Execute runs code against calldata input at address addr from a
// fresh interpreter, returning the value the code RETURNs (or nil).
func Execute(code []byte, input []byte, addr common.Address) ([]byte, error) {
	return NewInterpreter(NewContract(code, addr, input)).Run()
}
