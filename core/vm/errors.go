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
	"errors"
	"fmt"
)

// Sentinel errors that carry no extra data.
var (
	// ErrInvalidOperand names an operand an instruction cannot make
	// sense of. No handler in this package returns it: operands too
	// wide to narrow to an index fail with ErrInvalidIndex instead.
	ErrInvalidOperand = errors.New("invalid operand")
	// ErrInvalidIndex is returned when a 256-bit word is used to index
	// into memory or code and cannot be represented, or falls outside
	// the addressable range the operation permits.
	ErrInvalidIndex = errors.New("invalid index")
	// ErrInvalidJump is returned by JUMP/JUMPI when the destination is
	// not a JUMPDEST, or falls outside the bounds of the code.
	ErrInvalidJump = errors.New("invalid jump destination")
)

// ErrStackOverflow is returned by Stack.Push when pushing would exceed
// the 1024-word depth limit.
type ErrStackOverflow struct {
	StackLen int
	Limit    int
}

func (e *ErrStackOverflow) Error() string {
	return fmt.Sprintf("stack limit reached %d (%d)", e.StackLen, e.Limit)
}

// ErrStackUnderflow is returned by Stack.Pop/dup/swap, and by the
// interpreter's pre-dispatch depth check, when the stack holds fewer
// words than the operation requires.
type ErrStackUnderflow struct {
	StackLen int
	Required int
}

func (e *ErrStackUnderflow) Error() string {
	return fmt.Sprintf("stack underflow (%d <=> %d)", e.StackLen, e.Required)
}
