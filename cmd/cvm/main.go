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

// cvm assembles, disassembles and runs CVM bytecode snippets.
package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/core-coin/cvm/log"
)

var (
	VerbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "sets the logging verbosity (0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace)",
		Value: int(log.LvlInfo),
	}
)

var app = cli.NewApp()

func init() {
	app.Name = "cvm"
	app.Usage = "the cvm command line interface"
	app.Flags = []cli.Flag{VerbosityFlag}
	app.Commands = []cli.Command{
		runCommand,
		assembleCommand,
		disasmCommand,
	}
	app.Before = func(ctx *cli.Context) error {
		log.SetDefault(log.Lvl(ctx.GlobalInt(VerbosityFlag.Name)))
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
