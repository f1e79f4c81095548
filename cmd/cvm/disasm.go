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
	"strings"

	"gopkg.in/urfave/cli.v1"

	"github.com/core-coin/cvm/common/hexutil"
	"github.com/core-coin/cvm/core/vm"
	"github.com/core-coin/cvm/log"
)

var (
	DisasmVerboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "prefix each instruction with its byte offset",
	}
)

var disasmCommand = cli.Command{
	Name:   "disassemble",
	Usage:  "disassemble cvm bytecode into mnemonics",
	Action: disasmCmd,
	Flags: []cli.Flag{
		CodeFlag,
		CodeFileFlag,
		DisasmVerboseFlag,
	},
}

func disasmCmd(ctx *cli.Context) error {
	code, err := readHexSource(ctx.String(CodeFlag.Name), ctx.String(CodeFileFlag.Name))
	if err != nil {
		return err
	}

	logger := log.New("cmd", "disassemble")
	logger.Info("disassembling", "code_bytes", len(code))

	out, err := Disassemble(code, ctx.Bool(DisasmVerboseFlag.Name))
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// Disassemble renders code as one mnemonic per line, skipping each
// PUSHn's immediate the same way the jump-destination pre-scan does,
// so its payload is never misread as further instructions.
func Disassemble(code []byte, verbose bool) (string, error) {
	var lines []string
	for i := uint64(0); i < uint64(len(code)); i++ {
		start := i
		op := vm.OpCode(code[i])
		var line string
		if op.IsPush() {
			n := uint64(op.PushSize())
			end := i + 1 + n
			if end > uint64(len(code)) {
				end = uint64(len(code))
			}
			immediate := code[i+1 : end]
			line = fmt.Sprintf("%s %s", op.String(), hexutil.Encode(immediate))
			i += n
		} else {
			line = op.String()
		}
		if verbose {
			line = fmt.Sprintf("%s %s", hexutil.EncodeUint64(start), line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}
