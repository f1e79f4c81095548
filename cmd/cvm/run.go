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
	"fmt"

	"gopkg.in/urfave/cli.v1"

	"github.com/core-coin/cvm/common"
	"github.com/core-coin/cvm/common/hexutil"
	"github.com/core-coin/cvm/core/vm"
	"github.com/core-coin/cvm/log"
)

var (
	CodeFlag = cli.StringFlag{
		Name:  "code",
		Usage: "CVM bytecode, as a 0x-prefixed hex string",
	}
	CodeFileFlag = cli.StringFlag{
		Name:  "codefile",
		Usage: "file containing CVM bytecode; '-' reads from stdin",
	}
	CalldataFlag = cli.StringFlag{
		Name:  "calldata",
		Usage: "calldata, as a 0x-prefixed hex string",
	}
	CalldataFileFlag = cli.StringFlag{
		Name:  "calldatafile",
		Usage: "file containing calldata; '-' reads from stdin",
	}
)

var runCommand = cli.Command{
	Name:   "run",
	Usage:  "run arbitrary cvm bytecode",
	Action: runCmd,
	Flags: []cli.Flag{
		CodeFlag,
		CodeFileFlag,
		CalldataFlag,
		CalldataFileFlag,
	},
}

func runCmd(ctx *cli.Context) error {
	code, err := readHexSource(ctx.String(CodeFlag.Name), ctx.String(CodeFileFlag.Name))
	if err != nil {
		return err
	}
	calldata, err := readHexSource(ctx.String(CalldataFlag.Name), ctx.String(CalldataFileFlag.Name))
	if err != nil {
		return err
	}

	logger := log.New("cmd", "run")
	logger.Info("executing", "code_bytes", len(code), "calldata_bytes", len(calldata))

	ret, err := vm.Execute(code, calldata, common.Address{})
	if err != nil {
		logger.Error("execution failed", "err", err)
		return err
	}

	logger.Info("execution finished", "return_bytes", len(ret))
	fmt.Println(hexutil.Encode(ret))
	return nil
}
