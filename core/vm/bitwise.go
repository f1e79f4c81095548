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

func opLt(interp *Interpreter) (uint64, error) {
	x, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	y := interp.stack.Peek()
	if x.Lt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return 1, nil
}

func opGt(interp *Interpreter) (uint64, error) {
	x, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	y := interp.stack.Peek()
	if x.Gt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return 1, nil
}

func opSlt(interp *Interpreter) (uint64, error) {
	x, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	y := interp.stack.Peek()
	if x.Slt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return 1, nil
}

func opSgt(interp *Interpreter) (uint64, error) {
	x, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	y := interp.stack.Peek()
	if x.Sgt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return 1, nil
}

func opEq(interp *Interpreter) (uint64, error) {
	x, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	y := interp.stack.Peek()
	if x.Eq(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return 1, nil
}

func opIszero(interp *Interpreter) (uint64, error) {
	x := interp.stack.Peek()
	if x.IsZero() {
		x.SetOne()
	} else {
		x.Clear()
	}
	return 1, nil
}

func opAnd(interp *Interpreter) (uint64, error) {
	x, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	y := interp.stack.Peek()
	y.And(&x, y)
	return 1, nil
}

func opOr(interp *Interpreter) (uint64, error) {
	x, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	y := interp.stack.Peek()
	y.Or(&x, y)
	return 1, nil
}

func opXor(interp *Interpreter) (uint64, error) {
	x, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	y := interp.stack.Peek()
	y.Xor(&x, y)
	return 1, nil
}

func opNot(interp *Interpreter) (uint64, error) {
	x := interp.stack.Peek()
	x.Not(x)
	return 1, nil
}

func opByte(interp *Interpreter) (uint64, error) {
	th, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	val := interp.stack.Peek()
	val.Byte(&th)
	return 1, nil
}

func opShl(interp *Interpreter) (uint64, error) {
	shift, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	value := interp.stack.Peek()
	if shift.LtUint64(256) {
		value.Lsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return 1, nil
}

func opShr(interp *Interpreter) (uint64, error) {
	shift, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	value := interp.stack.Peek()
	if shift.LtUint64(256) {
		value.Rsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return 1, nil
}

func opSar(interp *Interpreter) (uint64, error) {
	shift, err := interp.stack.Pop()
	if err != nil {
		return 0, err
	}
	value := interp.stack.Peek()
	if shift.GtUint64(256) {
		if value.Sign() >= 0 {
			value.Clear()
		} else {
			value.SetAllOne()
		}
		return 1, nil
	}
	value.SRsh(value, uint(shift.Uint64()))
	return 1, nil
}
