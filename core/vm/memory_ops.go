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

func opMload(interp *Interpreter) (uint64, error) {
	x := interp.stack.Peek()
	offset, err := toIndex(x)
	if err != nil {
		return 0, err
	}
	interp.memory.Resize(offset + 32)
	x.SetBytes(interp.memory.GetPtr(offset, 32))
	return 1, nil
}

func opMstore(interp *Interpreter) (uint64, error) {
	offsetW, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	val, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	offset, err := toIndex(&offsetW)
	if err != nil {
		return 0, err
	}
	interp.memory.Set32(offset, &val)
	return 1, nil
}

func opMstore8(interp *Interpreter) (uint64, error) {
	offsetW, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	val, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	offset, err := toIndex(&offsetW)
	if err != nil {
		return 0, err
	}
	interp.memory.SetByte(offset, byte(val.Uint64()&0xff))
	return 1, nil
}
