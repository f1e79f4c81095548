// Copyright 2016 by the Authors
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

// TestDispatchTotality checks that every possible opcode byte has a
// handler -- a real one or the opUnknown sentinel -- so the dispatch
// loop never indexes into a nil execute func, no matter which byte it
// fetches.
func TestDispatchTotality(t *testing.T) {
	jt := newJumpTable()
	for b := 0; b < 256; b++ {
		op := OpCode(b)
		require.NotNil(t, jt[op].execute, "opcode 0x%02x has no handler", b)
	}
	require.NotNil(t, jt[ADD].execute)
}

func TestInvokingUnhandledOpcodeHaltsWithoutError(t *testing.T) {
	// SLOAD has a mnemonic for disassembly but no real handler; it must
	// fall back to opUnknown and halt cleanly rather than error.
	ret, err := run(t, "0x54", "0x")
	require.NoError(t, err)
	require.Nil(t, ret)
}

func TestInvalidOpcodeHaltsWithoutError(t *testing.T) {
	ret, err := run(t, "0xfe", "0x")
	require.NoError(t, err)
	require.Nil(t, ret)
}
