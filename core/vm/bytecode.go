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

// Bytecode is immutable code together with a pre-computed bitset of
// valid jump destinations. Constructing one scans the code exactly
// once; IsValidJump afterwards is O(1).
type Bytecode struct {
	code    []byte
	jumpset bitvec
}

// bitvec is a packed bitset, one bit per code offset.
type bitvec []byte

func (v bitvec) set(pos uint64) {
	v[pos/8] |= 1 << (pos % 8)
}

func (v bitvec) isSet(pos uint64) bool {
	return v[pos/8]&(1<<(pos%8)) != 0
}

// NewBytecode copies code and computes its jump-destination set.
func NewBytecode(code []byte) *Bytecode {
	b := &Bytecode{
		code:    append([]byte(nil), code...),
		jumpset: make(bitvec, (len(code)+7)/8),
	}
	b.createJumpset()
	return b
}

// createJumpset scans the code once, marking the offset of every
// JUMPDEST byte that is not itself hidden inside a PUSH immediate.
func (b *Bytecode) createJumpset() {
	code := b.code
	for i := uint64(0); i < uint64(len(code)); i++ {
		op := OpCode(code[i])
		if op == JUMPDEST {
			b.jumpset.set(i)
			continue
		}
		if op.IsPush() {
			i += uint64(op.PushSize())
		}
	}
}

// Len returns the number of code bytes.
func (b *Bytecode) Len() int {
	return len(b.code)
}

// Bytes returns the raw code.
func (b *Bytecode) Bytes() []byte {
	return b.code
}

// At returns the byte at pc, or 0 (STOP) if pc is past the end of
// code -- reading past the end of code is well-defined and always
// yields an implicit STOP, matching the EVM's convention.
func (b *Bytecode) At(pc uint64) byte {
	if pc >= uint64(len(b.code)) {
		return 0
	}
	return b.code[pc]
}

// Slice returns size bytes of code starting at start, zero-padded on
// the right if the range extends past the end of code. Used by PUSH to
// fetch its immediate even when the last instruction is a truncated
// push.
func (b *Bytecode) Slice(start, size uint64) []byte {
	out := make([]byte, size)
	length := uint64(len(b.code))
	if start >= length {
		return out
	}
	end := start + size
	if end > length {
		end = length
	}
	copy(out, b.code[start:end])
	return out
}

// IsValidJump reports whether dest names a JUMPDEST not embedded in a
// PUSH immediate. A dest at or beyond the end of code is never valid.
func (b *Bytecode) IsValidJump(dest uint64) bool {
	if dest >= uint64(len(b.code)) {
		return false
	}
	return b.jumpset.isSet(dest)
}
