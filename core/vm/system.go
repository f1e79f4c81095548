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

import (
	"github.com/holiman/uint256"

	"github.com/core-coin/cvm/common"
)

func opCallDataLoad(interp *Interpreter) (uint64, error) {
	x := interp.stack.Peek()
	offset := toIndexSaturated(x)
	data := common.GetData(interp.contract.Input, offset, 32)
	x.SetBytes(data)
	return 1, nil
}

func opCallDataSize(interp *Interpreter) (uint64, error) {
	var v uint256.Int
	v.SetUint64(uint64(len(interp.contract.Input)))
	if err := interp.stack.Push(&v); err != nil {
		return 0, err
	}
	return 1, nil
}

func opCallDataCopy(interp *Interpreter) (uint64, error) {
	memOffsetW, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	dataOffsetW, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	lengthW, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	memOffset, err := toIndex(&memOffsetW)
	if err != nil {
		return 0, err
	}
	length, err := toIndex(&lengthW)
	if err != nil {
		return 0, err
	}
	dataOffset := toIndexSaturated(&dataOffsetW)
	data := common.GetData(interp.contract.Input, dataOffset, length)
	interp.memory.Set(memOffset, length, data)
	return 1, nil
}
