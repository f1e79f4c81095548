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

import "github.com/core-coin/cvm/common"

// Contract is the unit of execution: a Bytecode together with the
// address it was deployed to and the calldata it was invoked with.
// Address is carried for parity with spec.md's data model but is
// never inspected by any instruction handler in this package.
type Contract struct {
	Code    *Bytecode
	Address common.Address
	Input   []byte
}

// NewContract builds a Contract from raw code, an address, and
// calldata.
func NewContract(code []byte, address common.Address, input []byte) *Contract {
	return &Contract{
		Code:    NewBytecode(code),
		Address: address,
		Input:   input,
	}
}

// GetOp returns the opcode at pc, or STOP if pc is past the end of
// code.
func (c *Contract) GetOp(pc uint64) OpCode {
	return OpCode(c.Code.At(pc))
}
