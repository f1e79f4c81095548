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

	"github.com/stretchr/testify/require"

	"github.com/core-coin/cvm/common/hexutil"
)

func TestCreateJumpset(t *testing.T) {
	code := hexutil.MustDecode("0x60066007025b60005360016000005bFF")
	bc := NewBytecode(code)

	var want [16]bool
	want[5] = true
	want[14] = true

	for i := 0; i < len(want); i++ {
		require.Equalf(t, want[i], bc.IsValidJump(uint64(i)), "offset %d", i)
	}
}

func TestIsValidJumpRejectsOutOfBounds(t *testing.T) {
	code := hexutil.MustDecode("0x5b00")
	bc := NewBytecode(code)
	require.True(t, bc.IsValidJump(0))
	require.False(t, bc.IsValidJump(1))
	require.False(t, bc.IsValidJump(100))
}

func TestBytecodeAtPastEndIsImplicitStop(t *testing.T) {
	bc := NewBytecode(hexutil.MustDecode("0x6001"))
	require.Equal(t, byte(STOP), bc.At(10))
}

func TestBytecodeSliceZeroPadsTruncatedPush(t *testing.T) {
	// PUSH32 with only one immediate byte present.
	bc := NewBytecode(hexutil.MustDecode("0x7fff"))
	got := bc.Slice(1, 32)
	require.Len(t, got, 32)
	require.Equal(t, byte(0xff), got[0])
	for _, b := range got[1:] {
		require.Equal(t, byte(0), b)
	}
}
