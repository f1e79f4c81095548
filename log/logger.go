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

// Package log implements the structured, levelled logging used
// throughout this repository. It is intentionally small: one handler,
// one format, no package registry -- the cvm CLI is a short-lived
// process and has no need for log rotation or multiple sinks.
package log

import (
	"os"
	"time"

	"github.com/go-stack/stack"
)

// Lvl is a logging priority, lowest (most severe) first.
type Lvl int

const (
	LvlCrit Lvl = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

// AlignedString returns a fixed-width, uppercase name for the level,
// used by the terminal formatter to keep columns lined up.
func (l Lvl) AlignedString() string {
	switch l {
	case LvlCrit:
		return "CRIT"
	case LvlError:
		return "ERRO"
	case LvlWarn:
		return "WARN"
	case LvlInfo:
		return "INFO"
	case LvlDebug:
		return "DBUG"
	case LvlTrace:
		return "TRCE"
	default:
		panic("bad level")
	}
}

// Record is a single log event, bundling together the data a Handler
// needs in order to render or filter it.
type Record struct {
	Time time.Time
	Lvl  Lvl
	Msg  string
	Ctx  []interface{}
	Call stack.Call
}

// Logger writes leveled, structured log records. New returns a logger
// that prepends ctx to every record it is asked to write, so call
// sites can build up a chain of ambient fields (e.g. the subcommand
// name) without repeating them at every call site.
type Logger interface {
	New(ctx ...interface{}) Logger

	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})

	GetHandler() Handler
	SetHandler(h Handler)
}

type logger struct {
	ctx []interface{}
	h   *swapHandler
}

func (l *logger) write(msg string, lvl Lvl, ctx []interface{}) {
	l.h.Log(&Record{
		Time: time.Now(),
		Lvl:  lvl,
		Msg:  msg,
		Ctx:  newContext(l.ctx, ctx),
		Call: stack.Caller(2),
	})
}

func (l *logger) New(ctx ...interface{}) Logger {
	child := &logger{ctx: newContext(l.ctx, ctx), h: new(swapHandler)}
	child.SetHandler(l.h)
	return child
}

func (l *logger) Trace(msg string, ctx ...interface{}) { l.write(msg, LvlTrace, ctx) }
func (l *logger) Debug(msg string, ctx ...interface{}) { l.write(msg, LvlDebug, ctx) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.write(msg, LvlInfo, ctx) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.write(msg, LvlWarn, ctx) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.write(msg, LvlError, ctx) }
func (l *logger) Crit(msg string, ctx ...interface{}) {
	l.write(msg, LvlCrit, ctx)
	os.Exit(1)
}

func (l *logger) GetHandler() Handler { return l.h.Get() }
func (l *logger) SetHandler(h Handler) { l.h.Swap(h) }

// newContext appends extra to prefix, padding a trailing odd key with
// a sentinel value rather than dropping it, matching the permissive
// key/value pairing callers expect from a varargs logging API.
func newContext(prefix []interface{}, extra []interface{}) []interface{} {
	if len(extra)%2 != 0 {
		extra = append(extra, "LOG_ERROR_MISSING_VALUE")
	}
	normalized := make([]interface{}, 0, len(prefix)+len(extra))
	normalized = append(normalized, prefix...)
	normalized = append(normalized, extra...)
	return normalized
}
