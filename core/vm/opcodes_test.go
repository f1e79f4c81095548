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
)

func TestOpCodeStringKnownAndUnknown(t *testing.T) {
	require.Equal(t, "ADD", ADD.String())
	require.Equal(t, "PUSH1", PUSH1.String())
	require.Equal(t, "PUSH32", PUSH32.String())
	require.Equal(t, "DUP16", DUP16.String())
	require.Equal(t, "SWAP16", SWAP16.String())
	require.Equal(t, "LOG0", LOG0.String())

	// Non-goal opcodes still have a name for disassembly.
	require.Equal(t, "SLOAD", SLOAD.String())
	require.Equal(t, "KECCAK256", KECCAK256.String())
	require.Equal(t, "CALL", CALL.String())

	require.Equal(t, "UNKNOWN", OpCode(0x0c).String())
	require.Equal(t, "UNKNOWN", OpCode(0xb0).String())
}

func TestStringToOpRoundTrips(t *testing.T) {
	op, ok := StringToOp("MUL")
	require.True(t, ok)
	require.Equal(t, MUL, op)

	_, ok = StringToOp("NOTANOPCODE")
	require.False(t, ok)
}

func TestPushSize(t *testing.T) {
	require.Equal(t, 1, PUSH1.PushSize())
	require.Equal(t, 32, PUSH32.PushSize())
	require.True(t, PUSH1.IsPush())
	require.False(t, PUSH0.IsPush())
	require.False(t, STOP.IsPush())
}
