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
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestMemoryZeroExtends(t *testing.T) {
	m := NewMemory()
	require.Equal(t, 0, m.Len())

	got := m.GetCopy(0, 8)
	require.Equal(t, make([]byte, 8), got)
	require.Equal(t, 0, m.Len(), "a read must not grow memory")
}

func TestMemorySetGrows(t *testing.T) {
	m := NewMemory()
	m.Set(4, 3, []byte{1, 2, 3})
	require.Equal(t, 7, m.Len())
	require.Equal(t, []byte{0, 0, 0, 0, 1, 2, 3}, m.Data())
}

func TestMemorySet32(t *testing.T) {
	m := NewMemory()
	v := uint256.NewInt(0xabcd)
	m.Set32(0, v)
	require.Equal(t, 32, m.Len())
	got := m.GetCopy(0, 32)
	require.Equal(t, byte(0xab), got[30])
	require.Equal(t, byte(0xcd), got[31])
}

func TestMemorySetByte(t *testing.T) {
	m := NewMemory()
	m.SetByte(3, 0xff)
	require.Equal(t, 4, m.Len())
	require.Equal(t, byte(0xff), m.Data()[3])
}

func TestMemoryResizeIsMonotonic(t *testing.T) {
	m := NewMemory()
	m.Resize(64)
	require.Equal(t, 64, m.Len())
	m.Resize(32)
	require.Equal(t, 64, m.Len(), "resize never shrinks")
}
