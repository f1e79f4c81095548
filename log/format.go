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
	"fmt"
	"strconv"
)

const timeFormat = "2006-01-02T15:04:05-0700"

// terminalColors maps a level to its ANSI color code; 0 (no color)
// falls back to plain text, used whenever the output isn't a TTY.
var terminalColors = map[Lvl]int{
	LvlCrit:  35, // magenta
	LvlError: 31, // red
	LvlWarn:  33, // yellow
	LvlInfo:  32, // green
	LvlDebug: 36, // cyan
	LvlTrace: 34, // blue
}

// Format renders a Record to bytes.
type Format interface {
	Format(r *Record) []byte
}

type formatFunc func(*Record) []byte

func (f formatFunc) Format(r *Record) []byte { return f(r) }

// TerminalFormat renders records as a single line of the form
// "LVL[time] msg key=val key=val ...", colorizing the level when
// useColor is true.
func TerminalFormat(useColor bool) Format {
	return formatFunc(func(r *Record) []byte {
		var buf bytes.Buffer
		color := 0
		if useColor {
			color = terminalColors[r.Lvl]
		}
		if color != 0 {
			fmt.Fprintf(&buf, "\x1b[%dm%s\x1b[0m[%s] %s ", color, r.Lvl.AlignedString(), r.Time.Format(timeFormat), r.Msg)
		} else {
			fmt.Fprintf(&buf, "%s[%s] %s ", r.Lvl.AlignedString(), r.Time.Format(timeFormat), r.Msg)
		}
		writeContext(&buf, r.Ctx, color)
		buf.WriteByte('\n')
		return buf.Bytes()
	})
}

func writeContext(buf *bytes.Buffer, ctx []interface{}, color int) {
	for i := 0; i < len(ctx); i += 2 {
		k, ok := ctx[i].(string)
		if !ok {
			k = fmt.Sprint(ctx[i])
		}
		v := formatValue(ctx[i+1])
		if color != 0 {
			fmt.Fprintf(buf, "\x1b[%dm%s\x1b[0m=%s ", color, k, v)
		} else {
			fmt.Fprintf(buf, "%s=%s ", k, v)
		}
	}
}

func formatValue(v interface{}) string {
	switch x := v.(type) {
	case error:
		return quoteIfNeeded(x.Error())
	case fmt.Stringer:
		return quoteIfNeeded(x.String())
	case string:
		return quoteIfNeeded(x)
	default:
		return fmt.Sprintf("%+v", x)
	}
}

func quoteIfNeeded(s string) string {
	for _, r := range s {
		if r == ' ' || r == '=' || r == '"' {
			return strconv.Quote(s)
		}
	}
	if s == "" {
		return `""`
	}
	return s
}
