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
	"bytes"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/core-coin/cvm/common"
	"github.com/core-coin/cvm/common/hexutil"
)

func run(t *testing.T, code, calldata string) ([]byte, error) {
	t.Helper()
	c := NewContract(hexutil.MustDecode(code), common.Address{}, hexutil.MustDecode(calldata))
	return NewInterpreter(c).Run()
}

func TestReturnsMulResult(t *testing.T) {
	ret, err := run(t, "0x600660070260005360016000f3", "0x")
	require.NoError(t, err)
	require.Equal(t, []byte{0x2a}, ret)
}

func TestLoopSumsToSixteen(t *testing.T) {
	ret, err := run(t, "0x60048060005b8160125760005360016000f35b8201906001900390600556", "0x")
	require.NoError(t, err)
	require.Equal(t, []byte{0x10}, ret)
}

func TestEmptyCodeIsImplicitStop(t *testing.T) {
	ret, err := run(t, "0x", "0x")
	require.NoError(t, err)
	require.Empty(t, ret)
}

func TestSubWrapsModulo256(t *testing.T) {
	ret, err := run(t, "0x60ff600052602060000360005260206000f3", "0x")
	require.NoError(t, err)
	require.Len(t, ret, 32)

	var want uint256.Int
	want.SetUint64(0)
	var sub uint256.Int
	sub.SetUint64(0x20)
	want.Sub(&want, &sub)
	wantBytes := want.Bytes32()
	require.True(t, bytes.Equal(wantBytes[:], ret))
}

func TestPushBeyondDepthOverflows(t *testing.T) {
	var code bytes.Buffer
	for i := 0; i < 1025; i++ {
		code.Write([]byte{byte(PUSH1), 0x01})
	}
	c := NewContract(code.Bytes(), common.Address{}, nil)
	_, err := NewInterpreter(c).Run()
	require.Error(t, err)
	var overflow *ErrStackOverflow
	require.ErrorAs(t, err, &overflow)
}

func TestPushThenEndOfCodeHalts(t *testing.T) {
	ret, err := run(t, "0x6000", "0x")
	require.NoError(t, err)
	require.Empty(t, ret)
}

func TestJumpToNonJumpdestIsInvalid(t *testing.T) {
	// PUSH1 0x02 ; JUMP ; (offset 2 is the JUMP opcode itself, not a JUMPDEST)
	_, err := run(t, "0x6002565b", "0x")
	require.ErrorIs(t, err, ErrInvalidJump)
}

func TestCalldataLoadZeroPadsShortInput(t *testing.T) {
	// PUSH1 0 ; CALLDATALOAD ; PUSH1 0 ; MSTORE ; PUSH1 0x20 ; PUSH1 0 ; RETURN
	ret, err := run(t, "0x60003560005260206000f3", "0x0102")
	require.NoError(t, err)
	require.Len(t, ret, 32)
	require.Equal(t, byte(0x01), ret[0])
	require.Equal(t, byte(0x02), ret[1])
	for _, b := range ret[2:] {
		require.Equal(t, byte(0), b)
	}
}
