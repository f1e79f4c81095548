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

package log

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

var root = &logger{h: new(swapHandler)}

func init() {
	root.SetHandler(LvlFilterHandler(LvlInfo, StreamHandler(newDefaultWriter(), TerminalFormat(isTerminal()))))
}

func newDefaultWriter() io.Writer {
	if isTerminal() {
		return colorable.NewColorableStderr()
	}
	return os.Stderr
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stderr.Fd())
}

// Root returns the root logger, the parent of every logger that has
// not been given its own handler.
func Root() Logger { return root }

// New returns a new logger rooted at the package root logger.
func New(ctx ...interface{}) Logger { return root.New(ctx...) }

// SetDefault replaces the root logger's handler, used by the CLI's
// --verbosity flag to raise or lower what gets printed.
func SetDefault(lvl Lvl) {
	root.SetHandler(LvlFilterHandler(lvl, StreamHandler(newDefaultWriter(), TerminalFormat(isTerminal()))))
}

func Trace(msg string, ctx ...interface{}) { root.Trace(msg, ctx...) }
func Debug(msg string, ctx ...interface{}) { root.Debug(msg, ctx...) }
func Info(msg string, ctx ...interface{})  { root.Info(msg, ctx...) }
func Warn(msg string, ctx ...interface{})  { root.Warn(msg, ctx...) }
func Error(msg string, ctx ...interface{}) { root.Error(msg, ctx...) }
func Crit(msg string, ctx ...interface{})  { root.Crit(msg, ctx...) }
