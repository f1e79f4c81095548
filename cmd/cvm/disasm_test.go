// Copyright 2014 by the Authors
// This file is part of go-core.
//
// go-core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-core. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/core-coin/cvm/common/hexutil"
)

func TestDisassembleSimpleProgram(t *testing.T) {
	code := hexutil.MustDecode("0x6006600702" + "00")
	out, err := Disassemble(code, false)
	require.NoError(t, err)
	require.Equal(t, "PUSH1 0x06\nPUSH1 0x07\nMUL\nSTOP", out)
}

func TestDisassembleVerbosePrefixesOffset(t *testing.T) {
	code := hexutil.MustDecode("0x600651")
	out, err := Disassemble(code, true)
	require.NoError(t, err)
	require.Equal(t, "0x0 PUSH1 0x06\n0x2 MLOAD", out)
}

func TestDisassembleNeverPanicsOnUnknownByte(t *testing.T) {
	out, err := Disassemble([]byte{0x0c, 0xb0}, false)
	require.NoError(t, err)
	require.Equal(t, "UNKNOWN\nUNKNOWN", out)
}

func TestDisassembleTruncatedPushShowsOnlyAvailableBytes(t *testing.T) {
	out, err := Disassemble(hexutil.MustDecode("0x7fff"), false)
	require.NoError(t, err)
	require.Equal(t, "PUSH32 0xff", out)
}
