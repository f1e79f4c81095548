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
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	st := newstack()
	defer returnStack(st)

	one, two := uint256.NewInt(1), uint256.NewInt(2)
	require.NoError(t, st.Push(one))
	require.NoError(t, st.Push(two))
	require.Equal(t, 2, st.Len())

	got, err := st.Pop()
	require.NoError(t, err)
	require.Equal(t, *two, got)

	got, err = st.Pop()
	require.NoError(t, err)
	require.Equal(t, *one, got)
}

func TestStackPopUnderflow(t *testing.T) {
	st := newstack()
	defer returnStack(st)

	_, err := st.Pop()
	require.Error(t, err)
	var underflow *ErrStackUnderflow
	require.ErrorAs(t, err, &underflow)
}

func TestStackPushOverflow(t *testing.T) {
	st := newstack()
	defer returnStack(st)

	for i := 0; i < maxStackDepth; i++ {
		require.NoError(t, st.Push(uint256.NewInt(uint64(i))))
	}
	err := st.Push(uint256.NewInt(0))
	require.Error(t, err)
	var overflow *ErrStackOverflow
	require.ErrorAs(t, err, &overflow)
}

func TestStackDupAndSwap(t *testing.T) {
	st := newstack()
	defer returnStack(st)

	require.NoError(t, st.Push(uint256.NewInt(1)))
	require.NoError(t, st.Push(uint256.NewInt(2)))
	require.NoError(t, st.Push(uint256.NewInt(3)))

	require.NoError(t, st.dup(2))
	require.Equal(t, 4, st.Len())
	require.Equal(t, uint64(2), st.Peek().Uint64())

	require.NoError(t, st.swap(3))
	require.Equal(t, uint64(1), st.Peek().Uint64())
}
