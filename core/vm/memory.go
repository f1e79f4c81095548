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

// memoryInitialCapacity is an allocation hint, not a behavioral limit;
// Memory grows without bound as instructions demand it.
const memoryInitialCapacity = 4 * 1024

// Memory is the byte-addressed, word-oriented scratch space a contract
// execution gets. It starts empty and grows (zero-extending) to
// whatever offset an instruction touches; it never shrinks.
type Memory struct {
	store []byte
}

// NewMemory returns an empty Memory with its initial capacity
// pre-allocated.
func NewMemory() *Memory {
	return &Memory{store: make([]byte, 0, memoryInitialCapacity)}
}

// Len returns the current size of memory in bytes.
func (m *Memory) Len() int {
	return len(m.store)
}

// Resize grows memory to at least size bytes, zero-filling the new
// region. It is a no-op if memory is already at least that large.
func (m *Memory) Resize(size uint64) {
	if uint64(len(m.store)) >= size {
		return
	}
	grown := make([]byte, size)
	copy(grown, m.store)
	m.store = grown
}

// Set writes value into memory starting at offset, growing memory if
// needed to fit it.
func (m *Memory) Set(offset, size uint64, value []byte) {
	if size == 0 {
		return
	}
	m.Resize(offset + size)
	copy(m.store[offset:offset+size], value)
}

// Set32 writes val as a 32-byte big-endian word at offset, growing
// memory if needed.
func (m *Memory) Set32(offset uint64, val *uint256.Int) {
	m.Resize(offset + 32)
	val.WriteToSlice(m.store[offset : offset+32])
}

// SetByte writes a single byte at offset, growing memory if needed.
func (m *Memory) SetByte(offset uint64, b byte) {
	m.Resize(offset + 1)
	m.store[offset] = b
}

// GetCopy returns an owned copy of size bytes starting at offset,
// zero-padded if the requested range extends past the current memory
// size. GetCopy itself never grows memory.
func (m *Memory) GetCopy(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	cpy := make([]byte, size)
	if offset < uint64(len(m.store)) {
		n := copy(cpy, m.store[offset:])
		_ = n
	}
	return cpy
}

// GetPtr returns a slice aliasing memory's backing array, valid only
// until the next mutating call. Used for reads that are consumed
// immediately (e.g. MLOAD's word, read after a Resize guarantees it
// is in bounds).
func (m *Memory) GetPtr(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	return m.store[offset : offset+size]
}

// Data returns the full backing slice.
func (m *Memory) Data() []byte {
	return m.store
}
