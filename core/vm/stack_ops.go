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

func opPush0(interp *Interpreter) (uint64, error) {
	var v uint256.Int
	if err := interp.stack.Push(&v); err != nil {
		return 0, err
	}
	return 1, nil
}

// makePush returns the handler for PUSHn, reading n immediate bytes
// following the opcode and advancing the instruction pointer past
// them.
func makePush(n int) executionFunc {
	size := uint64(n)
	return func(interp *Interpreter) (uint64, error) {
		data := interp.contract.Code.Slice(interp.ip+1, size)
		var v uint256.Int
		v.SetBytes(data)
		if err := interp.stack.Push(&v); err != nil {
			return 0, err
		}
		return 1 + size, nil
	}
}

// makeDup returns the handler for DUPn.
func makeDup(n int) executionFunc {
	return func(interp *Interpreter) (uint64, error) {
		if err := interp.stack.dup(n); err != nil {
			return 0, err
		}
		return 1, nil
	}
}

// makeSwap returns the handler for SWAPn.
func makeSwap(n int) executionFunc {
	return func(interp *Interpreter) (uint64, error) {
		if err := interp.stack.swap(n); err != nil {
			return 0, err
		}
		return 1, nil
	}
}
