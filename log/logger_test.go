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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerWritesKeyValuePairs(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetHandler(StreamHandler(&buf, TerminalFormat(false)))

	l.Info("ran subcommand", "name", "disassemble", "bytes", 12)

	out := buf.String()
	require.True(t, strings.Contains(out, "ran subcommand"))
	require.True(t, strings.Contains(out, "name=disassemble"))
	require.True(t, strings.Contains(out, "bytes=12"))
}

func TestLoggerOddContextGetsSentinel(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetHandler(StreamHandler(&buf, TerminalFormat(false)))

	l.Warn("dangling key", "onlykey")

	require.True(t, strings.Contains(buf.String(), "LOG_ERROR_MISSING_VALUE"))
}

func TestLvlFilterHandlerDropsLowerSeverity(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetHandler(LvlFilterHandler(LvlWarn, StreamHandler(&buf, TerminalFormat(false))))

	l.Info("should be dropped")
	l.Error("should appear")

	out := buf.String()
	require.False(t, strings.Contains(out, "should be dropped"))
	require.True(t, strings.Contains(out, "should appear"))
}

func TestChildLoggerInheritsContext(t *testing.T) {
	var buf bytes.Buffer
	l := New("component", "cvm")
	l.SetHandler(StreamHandler(&buf, TerminalFormat(false)))

	child := l.New("subcommand", "run")
	child.Info("done")

	out := buf.String()
	require.True(t, strings.Contains(out, "component=cvm"))
	require.True(t, strings.Contains(out, "subcommand=run"))
}
