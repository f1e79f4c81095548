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
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"gopkg.in/urfave/cli.v1"

	"github.com/core-coin/cvm/common/hexutil"
	"github.com/core-coin/cvm/core/vm"
	"github.com/core-coin/cvm/log"
)

var (
	AssembleFileFlag = cli.StringFlag{
		Name:  "file",
		Usage: "file containing assembly source; '-' or unset reads from stdin",
	}
)

var assembleCommand = cli.Command{
	Name:   "assemble",
	Usage:  "assemble mnemonics into cvm bytecode",
	Action: assembleCmd,
	Flags: []cli.Flag{
		AssembleFileFlag,
	},
}

func assembleCmd(ctx *cli.Context) error {
	var (
		src []byte
		err error
	)
	if f := ctx.String(AssembleFileFlag.Name); f != "" && f != "-" {
		src, err = ioutil.ReadFile(f)
	} else {
		src, err = ioutil.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("reading assembly source: %w", err)
	}

	code, err := Assemble(string(src))
	if err != nil {
		return err
	}

	log.New("cmd", "assemble").Info("assembled", "instructions_bytes", len(code))
	fmt.Println(hexutil.Encode(code))
	return nil
}

// Assemble parses one instruction per line -- MNEMONIC [0xHEX] -- into
// its byte encoding. Mnemonics are case-insensitive; blank lines and
// lines starting with ';' are ignored. A PUSHn mnemonic missing its
// immediate, or whose immediate is not exactly n bytes wide, is a hard
// error rather than a silent truncation or zero-pad.
func Assemble(src string) ([]byte, error) {
	var out bytes.Buffer
	for n, rawLine := range strings.Split(src, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		fields := strings.Fields(line)
		mnemonic := strings.ToUpper(fields[0])
		op, ok := vm.StringToOp(mnemonic)
		if !ok {
			return nil, fmt.Errorf("line %d: unknown mnemonic %q", n+1, fields[0])
		}
		out.WriteByte(byte(op))

		if !op.IsPush() {
			if len(fields) > 1 {
				return nil, fmt.Errorf("line %d: %s takes no immediate", n+1, mnemonic)
			}
			continue
		}

		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: %s requires a 0x-prefixed immediate", n+1, mnemonic)
		}
		immediate, err := hexutil.Decode(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		if want := op.PushSize(); len(immediate) != want {
			return nil, fmt.Errorf("line %d: %s wants a %d-byte immediate, got %d", n+1, mnemonic, want, len(immediate))
		}
		out.Write(immediate)
	}
	return out.Bytes(), nil
}
