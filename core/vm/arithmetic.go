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

// Every arithmetic handler follows the same shape: pop the
// left-hand/auxiliary operand(s), then mutate the word left on top of
// the stack (via Peek) in place. This avoids an extra Push/Pop pair
// per instruction and mirrors the teacher's instructions.go exactly.

func opAdd(interp *Interpreter) (uint64, error) {
	x, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	y := interp.stack.Peek()
	y.Add(&x, y)
	return 1, nil
}

func opSub(interp *Interpreter) (uint64, error) {
	x, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	y := interp.stack.Peek()
	y.Sub(&x, y)
	return 1, nil
}

func opMul(interp *Interpreter) (uint64, error) {
	x, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	y := interp.stack.Peek()
	y.Mul(&x, y)
	return 1, nil
}

func opDiv(interp *Interpreter) (uint64, error) {
	x, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	y := interp.stack.Peek()
	y.Div(&x, y)
	return 1, nil
}
