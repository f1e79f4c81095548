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
	"sync"

	"github.com/holiman/uint256"
)

// maxStackDepth is the maximum number of 256-bit words the Stack may
// hold at once.
const maxStackDepth = 1024

var stackPool = sync.Pool{
	New: func() interface{} {
		return &Stack{data: make([]uint256.Int, 0, 16)}
	},
}

// Stack is a bounded LIFO of 256-bit words. The zero value is not
// ready to use; obtain one from newstack.
type Stack struct {
	data []uint256.Int
}

// newstack returns a Stack drawn from a pool, matching the teacher's
// allocation-avoidance idiom for per-call interpreter state.
func newstack() *Stack {
	return stackPool.Get().(*Stack)
}

// returnStack resets st and returns it to the pool.
func returnStack(st *Stack) {
	st.data = st.data[:0]
	stackPool.Put(st)
}

// Data exposes the backing slice, bottom-of-stack first, mirroring the
// teacher's Stack.Data used by tracers and tests.
func (st *Stack) Data() []uint256.Int {
	return st.data
}

// Len returns the number of words currently on the stack.
func (st *Stack) Len() int {
	return len(st.data)
}

// Push pushes d onto the stack, or returns ErrStackOverflow if the
// stack is already at maxStackDepth.
func (st *Stack) Push(d *uint256.Int) error {
	if len(st.data) >= maxStackDepth {
		return &ErrStackOverflow{StackLen: len(st.data), Limit: maxStackDepth}
	}
	st.data = append(st.data, *d)
	return nil
}

// Pop removes and returns the top word of the stack, or
// ErrStackUnderflow if the stack is empty.
func (st *Stack) Pop() (uint256.Int, error) {
	if len(st.data) < 1 {
		return uint256.Int{}, &ErrStackUnderflow{StackLen: len(st.data), Required: 1}
	}
	last := len(st.data) - 1
	d := st.data[last]
	st.data = st.data[:last]
	return d, nil
}

// Peek returns a mutable pointer to the top word of the stack without
// removing it. Handlers that combine two operands in place (ADD, SUB,
// ...) pop one operand and mutate the other via Peek, matching the
// teacher's instructions.go idiom (`y.Add(&x, y)` writes through the
// peeked pointer).
func (st *Stack) Peek() *uint256.Int {
	return &st.data[len(st.data)-1]
}

// Back returns a mutable pointer to the word n positions from the top
// (0 is the top itself), without popping it.
func (st *Stack) Back(n int) *uint256.Int {
	return &st.data[len(st.data)-n-1]
}

// requireDepth returns ErrStackUnderflow if the stack holds fewer than
// n words.
func (st *Stack) requireDepth(n int) error {
	if len(st.data) < n {
		return &ErrStackUnderflow{StackLen: len(st.data), Required: n}
	}
	return nil
}

// dup duplicates the word n positions from the top (1-indexed, as in
// the DUPn mnemonics) onto the top of the stack.
func (st *Stack) dup(n int) error {
	if err := st.requireDepth(n); err != nil {
		return err
	}
	if len(st.data) >= maxStackDepth {
		return &ErrStackOverflow{StackLen: len(st.data), Limit: maxStackDepth}
	}
	v := st.data[len(st.data)-n]
	st.data = append(st.data, v)
	return nil
}

// swap exchanges the top word with the word n positions from the top
// (1-indexed, as in the SWAPn mnemonics).
func (st *Stack) swap(n int) error {
	if err := st.requireDepth(n + 1); err != nil {
		return err
	}
	top := len(st.data) - 1
	st.data[top], st.data[top-n] = st.data[top-n], st.data[top]
	return nil
}
