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
	"sync"
)

// Handler writes a Record somewhere. Implementations must be safe for
// concurrent use.
type Handler interface {
	Log(r *Record) error
}

// FuncHandler turns a plain function into a Handler.
type FuncHandler func(r *Record) error

func (h FuncHandler) Log(r *Record) error { return h(r) }

// StreamHandler writes each record to w using fmtr, serializing writes
// with a mutex since the underlying writer (a terminal, a file) is not
// assumed to be safe for concurrent use on its own.
func StreamHandler(w io.Writer, fmtr Format) Handler {
	h := FuncHandler(func(r *Record) error {
		_, err := w.Write(fmtr.Format(r))
		return err
	})
	return SyncHandler(h)
}

// SyncHandler synchronizes concurrent calls to another Handler.
func SyncHandler(h Handler) Handler {
	var mu sync.Mutex
	return FuncHandler(func(r *Record) error {
		mu.Lock()
		defer mu.Unlock()
		return h.Log(r)
	})
}

// LvlFilterHandler returns a Handler that only forwards records at or
// above the given priority (i.e. maxLvl and everything more severe).
func LvlFilterHandler(maxLvl Lvl, h Handler) Handler {
	return FuncHandler(func(r *Record) error {
		if r.Lvl > maxLvl {
			return nil
		}
		return h.Log(r)
	})
}

// DiscardHandler discards every record, used by tests that want a
// Logger without wanting its output on the console.
func DiscardHandler() Handler {
	return FuncHandler(func(r *Record) error { return nil })
}

// swapHandler lets a Logger's handler be replaced after construction
// (SetHandler), which New()'s child loggers rely on to inherit a
// later SetHandler call made on the root.
type swapHandler struct {
	mu sync.RWMutex
	h  Handler
}

func (s *swapHandler) Log(r *Record) error {
	s.mu.RLock()
	h := s.h
	s.mu.RUnlock()
	if h == nil {
		return nil
	}
	return h.Log(r)
}

func (s *swapHandler) Swap(h Handler) {
	s.mu.Lock()
	s.h = h
	s.mu.Unlock()
}

func (s *swapHandler) Get() Handler {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.h
}
