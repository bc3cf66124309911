// Copyright (C) 2023 - 2026 iDigitalFlame
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
//

// Package xthread provides a typed wrapper around raw Windows Thread handles
// that takes care of handle ownership, identity caching and impersonation
// scoping.
//
// Thread values may be created from the current thread, opened by their
// ThreadID or collected by enumerating the system. The kernel facing calls
// are backed by the 'winapi' package and only do something useful on Windows
// devices, while the caching, scope and selection logic is portable and can
// be used (and tested) everywhere.
package xthread

import (
	"strconv"
	"sync/atomic"

	"github.com/PurpleSec/escape"
	"github.com/iDigitalFlame/xthread/util/xerr"
	"github.com/iDigitalFlame/xthread/winapi"
)

// pseudoThread is the Windows pseudo handle for the calling thread (-2).
// Closing it is a NOP, so a Thread holding it never owns anything.
const pseudoThread = ^uintptr(1)

const (
	flagInfo uint8 = 1 << iota
	flagName
)

// ErrClosed is an error returned by Thread functions when attempting to use a
// Thread that was already closed via a 'Close' call.
var ErrClosed = xerr.Sub("handle is closed", 0x63)

// Thread is a handle to a single Thread of execution.
//
// Thread identity values (ThreadID, ProcessID, TEB address and priorities)
// are captured by a single kernel query on first use and cached for the
// lifetime of the Thread, as is the owning Process image name.
type Thread struct {
	_    [0]func()
	name string
	desc string
	i    winapi.ThreadBasicInfo
	h    uintptr
	f    uint8
}

// ImpersonationScope holds a duplicated Thread handle of a Thread that had an
// impersonation identity applied to it.
//
// Releasing the scope reverts the identity exactly once and closes the
// duplicate. Since the scope owns its own handle the release may happen from
// any goroutine, even after the originating thread moved on.
type ImpersonationScope struct {
	_ [0]func()
	h uintptr
	f uint32
}

// Current returns a Thread that represents the current (calling) thread.
//
// The returned Thread uses the thread pseudo handle, is always valid and is
// never closed, even by a 'Close' call. Use the 'OpenCurrent' function or the
// 'Duplicate' function instead when a real handle that survives this thread
// is needed.
func Current() *Thread {
	return &Thread{h: pseudoThread}
}

// IsPseudo returns true if this Thread represents the current thread via the
// thread pseudo handle instead of a real handle.
func (t *Thread) IsPseudo() bool {
	return t.h == pseudoThread
}

// String returns a string representation of this Thread.
func (t *Thread) String() string {
	switch {
	case t.h == pseudoThread:
		return "Thread[current]"
	case t.f&flagInfo != 0 || t.i.TID > 0:
		return "Thread[" + strconv.FormatUint(uint64(t.i.TID), 10) + ", 0x" + strconv.FormatUint(uint64(t.h), 16) + "]"
	}
	return "Thread[0x" + strconv.FormatUint(uint64(t.h), 16) + "]"
}

// MarshalJSON implements the json.Marshaler interface.
//
// Only identity values already captured by this Thread are rendered, no
// kernel calls are made on its behalf.
func (t *Thread) MarshalJSON() ([]byte, error) {
	b := `{"handle":"0x` + strconv.FormatUint(uint64(t.h), 16) + `"`
	if t.f&flagInfo != 0 || t.i.TID > 0 {
		b += `,"tid":` + strconv.FormatUint(uint64(t.i.TID), 10)
	}
	if t.f&flagInfo != 0 || t.i.PID > 0 {
		b += `,"pid":` + strconv.FormatUint(uint64(t.i.PID), 10)
	}
	if t.f&flagInfo != 0 {
		b += `,"teb":"0x` + strconv.FormatUint(uint64(t.i.TEB), 16) +
			`","priority":` + strconv.FormatInt(int64(t.i.Priority), 10) +
			`,"base_priority":` + strconv.FormatInt(int64(t.i.BasePriority), 10)
	}
	if t.f&flagName != 0 && len(t.name) > 0 {
		b += `,"name":` + escape.JSON(t.name)
	}
	if len(t.desc) > 0 {
		b += `,"description":` + escape.JSON(t.desc)
	}
	return []byte(b + "}"), nil
}

// fill captures the Thread identity block using the supplied query. The query
// runs at most once per Thread, all later calls are answered from the cache.
func (t *Thread) fill(q func() (winapi.ThreadBasicInfo, error)) error {
	if t.f&flagInfo != 0 {
		return nil
	}
	i, err := q()
	if err != nil {
		return err
	}
	t.i, t.f = i, t.f|flagInfo
	return nil
}

// fillName resolves and caches the owning Process image name using the
// supplied lookup. Lookup failures are cached as an empty name and are NOT
// retried.
func (t *Thread) fillName(q func(pid uint32) (string, error)) string {
	if t.f&flagName != 0 {
		return t.name
	}
	if n, err := q(t.i.PID); err == nil {
		t.name = n
	}
	t.f |= flagName
	return t.name
}

// newScope duplicates the affected Thread handle first and only then applies
// the identity setter. If the setter fails, the duplicate is closed and no
// scope is created, leaving the thread identity untouched.
func newScope(dup func() (uintptr, error), set, c func(uintptr) error) (*ImpersonationScope, error) {
	h, err := dup()
	if err != nil {
		return nil, err
	}
	if err = set(h); err != nil {
		c(h)
		return nil, err
	}
	return &ImpersonationScope{h: h}, nil
}

// release performs the single shot revert-then-close of the scope. Only the
// first caller wins the swap, every other (or repeated) call is a NOP that
// returns nil. Safe for nil receivers.
func (s *ImpersonationScope) release(revert, c func(uintptr) error) error {
	if s == nil || atomic.SwapUint32(&s.f, 1) != 0 {
		return nil
	}
	err := revert(s.h)
	c(s.h)
	s.h = 0
	return err
}

// gather opens a Thread for each supplied entry. Entries that cannot be
// opened are dropped, the result is exactly the set of openable Threads with
// their ThreadID and ProcessID pre-seeded.
func gather(e []winapi.ThreadEntry, open func(winapi.ThreadEntry) (uintptr, error)) []*Thread {
	o := make([]*Thread, 0, len(e))
	for i := range e {
		h, err := open(e[i])
		if err != nil {
			continue
		}
		o = append(o, &Thread{h: h, i: winapi.ThreadBasicInfo{TID: e[i].TID, PID: e[i].PID}})
	}
	return o
}

// releaseAll closes every open Thread handle in the supplied list. Used to
// unwind partially completed enumerations.
func releaseAll(t []*Thread, c func(uintptr) error) {
	for i := range t {
		if t[i].h == 0 || t[i].h == pseudoThread {
			continue
		}
		c(t[i].h)
		t[i].h = 0
	}
}
