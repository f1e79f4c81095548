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
	"math"

	"github.com/holiman/uint256"
)

// toIndex narrows u to a uint64 suitable for addressing memory or
// code, failing with ErrInvalidIndex if any of u's upper three 64-bit
// limbs is nonzero. This is the "checked" narrowing spec.md calls for
// on operands that name a read/write location (e.g. a memory offset or
// a jump destination). Memory growth itself is unbounded in this package; bounding
// process-level resource use is left to the host.
func toIndex(u *uint256.Int) (uint64, error) {
	if !u.IsUint64() {
		return 0, ErrInvalidIndex
	}
	return u.Uint64(), nil
}

// toIndexSaturated narrows u to a uint64, clamping to math.MaxUint64
// instead of failing. Used where an out-of-range value means "read (or
// copy) zero past the end" (CALLDATALOAD's and CALLDATACOPY's data
// offset) rather than a hard error.
func toIndexSaturated(u *uint256.Int) uint64 {
	if !u.IsUint64() {
		return math.MaxUint64
	}
	return u.Uint64()
}
