//go:build windows
// +build windows

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

package xthread

import (
	"syscall"
	"time"
	"unsafe"

	"github.com/iDigitalFlame/xthread/util/bugtrack"
	"github.com/iDigitalFlame/xthread/winapi"
	"golang.org/x/sys/windows"
)

// OpenCurrent returns a Thread for the current thread backed by a real
// handle instead of the pseudo handle, duplicated with the supplied access
// rights (zero duplicates with the same access).
//
// Unlike the result of 'Current', the returned Thread stays usable from other
// threads and goroutines and must be closed by the caller.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func OpenCurrent(access uint32) (*Thread, error) {
	h, err := winapi.OpenCurrentThread(access)
	if err != nil {
		return nil, err
	}
	return &Thread{h: h, i: winapi.ThreadBasicInfo{TID: winapi.GetCurrentThreadID(), PID: winapi.GetCurrentProcessID()}}, nil
}

// Open returns a Thread for the thread with the supplied ThreadID, opened
// with the supplied access rights.
//
// The ThreadID is pre-seeded into the identity cache, reading it back makes
// no kernel call.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func Open(tid, access uint32) (*Thread, error) {
	h, err := winapi.OpenThread(access, false, tid)
	if err != nil {
		return nil, err
	}
	return &Thread{h: h, i: winapi.ThreadBasicInfo{TID: tid}}, nil
}

// Threads returns a Thread for every thread on the system that could be
// opened with the supplied access rights.
//
// If snapshot is true, the thread list comes from a single point-in-time
// system snapshot. Otherwise the system process list is walked directly,
// opening each Process to verify it first and closing the Process handle
// again before its Threads are collected.
//
// Threads (and Processes) that deny the open are silently skipped, the result
// is exactly the openable set. The caller owns every returned handle. If the
// walk itself fails, every Thread opened up to that point is closed before
// the error is returned.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func Threads(access uint32, snapshot bool) ([]*Thread, error) {
	if snapshot {
		var e []winapi.ThreadEntry
		if err := winapi.SnapEnumThreads(0, func(x winapi.ThreadEntry) error {
			e = append(e, x)
			return nil
		}); err != nil {
			return nil, err
		}
		v := gather(e, func(x winapi.ThreadEntry) (uintptr, error) { return x.Handle(access) })
		if bugtrack.Enabled {
			bugtrack.Track("xthread.Threads(): Snapshot walk opened %d/%d threads.", len(v), len(e))
		}
		return v, nil
	}
	var o []*Thread
	err := winapi.EnumProcesses(func(p winapi.ProcessEntry) error {
		// 0x1000 - PROCESS_QUERY_LIMITED_INFORMATION
		h, err1 := p.Handle(0x1000)
		if err1 != nil {
			return nil
		}
		var e []winapi.ThreadEntry
		err1 = winapi.EnumThreads(p.PID, func(x winapi.ThreadEntry) error {
			e = append(e, x)
			return nil
		})
		if winapi.CloseHandle(h); err1 != nil {
			return err1
		}
		v := gather(e, func(x winapi.ThreadEntry) (uintptr, error) { return x.Handle(access) })
		for n := range v {
			v[n].name, v[n].f = p.Name, v[n].f|flagName
		}
		o = append(o, v...)
		return nil
	})
	if err != nil {
		releaseAll(o, winapi.CloseHandle)
		return nil, err
	}
	if bugtrack.Enabled {
		bugtrack.Track("xthread.Threads(): Process walk opened %d threads.", len(o))
	}
	return o, nil
}

// EnumThreads walks every thread of the Process with the supplied ProcessID
// using the system query backend, calling the supplied function with an
// opened Thread for each one. A pid of zero walks the threads of every
// Process instead.
//
// Threads are opened with 'winapi.ThreadAllAccess', entries that deny the
// open are skipped. The Thread is only valid for the duration of the callback
// and is closed once it returns, retained pointers report 'ErrClosed'.
//
// Callers can return the special 'winapi.ErrNoMoreFiles' error to stop the
// walk cleanly, any other error stops it and is returned as-is.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func EnumThreads(pid uint32, f func(*Thread) error) error {
	return winapi.EnumThreads(pid, func(e winapi.ThreadEntry) error {
		h, err := e.Handle(winapi.ThreadAllAccess)
		if err != nil {
			return nil
		}
		t := Thread{h: h, i: winapi.ThreadBasicInfo{TID: e.TID, PID: e.PID}}
		err = f(&t)
		t.Close()
		return err
	})
}

// Sleep suspends execution of the current thread for at least the supplied
// duration.
//
// If alertable is true, queued user APCs and alerts are run during the wait
// and cut it short, reported by a true return value. A false return value
// means the full duration elapsed.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func Sleep(d time.Duration, alertable bool) (bool, error) {
	return winapi.SleepEx(d, alertable)
}

// SleepUntil suspends execution of the current thread until the supplied
// (absolute) wall clock time, converted to its FILETIME representation for
// the kernel. Alerting behaves exactly as it does for 'Sleep'.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func SleepUntil(v time.Time, alertable bool) (bool, error) {
	// 116444736000000000 - 100ns intervals between Jan 1 1601 and Jan 1 1970.
	return winapi.DelayExecution((v.UnixNano()/100)+116444736000000000, alertable)
}

// IsWow64 returns true if the current process is a 32-bit process running
// under WOW64 on a 64-bit system.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func IsWow64() (bool, error) {
	return winapi.IsWow64Process(winapi.CurrentProcess)
}

// Impersonate applies the supplied Token as the impersonation identity of the
// current thread and returns a scope that reverts it on Release.
//
// The Token is duplicated into an impersonation Token first, so primary
// (process) Tokens may be passed directly. A zero Token instead clears any
// identity currently applied, mapping the thread back to its Process
// identity.
//
// The scope is only created once the identity switch succeeded. On any error
// the thread identity is unchanged and no scope is returned.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func Impersonate(k windows.Token) (*ImpersonationScope, error) {
	if bugtrack.Enabled {
		bugtrack.Track("xthread.Impersonate(): k=0x%X", k)
	}
	if k == 0 {
		return newScope(dupSelf, revertToken, winapi.CloseHandle)
	}
	return newScope(dupSelf, func(h uintptr) error {
		var y uintptr
		// 0x2000000 - MAXIMUM_ALLOWED
		// 0x2       - SecurityImpersonation
		// 0x2       - TokenImpersonation
		if err := winapi.DuplicateTokenEx(uintptr(k), 0x2000000, 2, 2, &y); err != nil {
			return err
		}
		err := winapi.SetThreadToken(h, y)
		if winapi.CloseHandle(y); err != nil {
			return err
		}
		return nil
	}, winapi.CloseHandle)
}

// ImpersonateAnonymous swaps the identity of the current thread to the system
// anonymous logon token, which carries no identifying information at all, and
// returns a scope that reverts it on Release.
//
// The scope is only created once the identity switch succeeded. On any error
// the thread identity is unchanged and no scope is returned.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func ImpersonateAnonymous() (*ImpersonationScope, error) {
	if bugtrack.Enabled {
		bugtrack.Track("xthread.ImpersonateAnonymous()")
	}
	return newScope(dupSelf, winapi.NtImpersonateAnonymousToken, winapi.CloseHandle)
}

// dupSelf turns the calling thread pseudo handle into a real handle with the
// same access the pseudo handle grants.
func dupSelf() (uintptr, error) {
	return winapi.OpenCurrentThread(0)
}
func revertToken(h uintptr) error {
	return winapi.SetThreadToken(h, 0)
}

// processName resolves the image name of the Process with the supplied
// ProcessID.
func processName(p uint32) (string, error) {
	// 0x1000 - PROCESS_QUERY_LIMITED_INFORMATION
	h, err := winapi.OpenProcess(0x1000, false, p)
	if err != nil {
		return "", err
	}
	n, err := winapi.GetProcessFileName(h)
	if winapi.CloseHandle(h); err != nil {
		return "", err
	}
	return n, nil
}

// Close releases the handle owned by this Thread. Any operation afterwards
// returns 'ErrClosed'.
//
// Closing a pseudo handle Thread or an already closed Thread is a NOP that
// returns nil.
func (t *Thread) Close() error {
	if t.h == 0 || t.h == pseudoThread {
		return nil
	}
	err := winapi.CloseHandle(t.h)
	t.h = 0
	return err
}

// Handle returns the raw handle value backing this Thread. The handle stays
// owned by the Thread, callers must NOT close it.
func (t *Thread) Handle() (uintptr, error) {
	if t.h == 0 {
		return 0, ErrClosed
	}
	return t.h, nil
}

// Duplicate returns a new Thread for the same underlying thread, backed by a
// newly duplicated handle with the supplied access rights (zero duplicates
// with the same access).
//
// This works on pseudo handle Threads as well, the kernel resolves them
// during duplication, so the result is always a real, closable Thread.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) Duplicate(access uint32) (*Thread, error) {
	if t.h == 0 {
		return nil, ErrClosed
	}
	var (
		n uintptr
		o uint32
	)
	if access == 0 {
		// 0x2 - DUPLICATE_SAME_ACCESS
		o = 0x2
	}
	if err := winapi.DuplicateHandle(winapi.CurrentProcess, t.h, winapi.CurrentProcess, &n, access, false, o); err != nil {
		return nil, err
	}
	return &Thread{name: t.name, desc: t.desc, i: t.i, h: n, f: t.f}, nil
}

func (t *Thread) query() (winapi.ThreadBasicInfo, error) {
	return winapi.QueryThreadBasic(t.h)
}

// TID returns the ThreadID of this Thread.
//
// The value is part of the cached identity block captured on first use.
// Threads created by 'Open', 'OpenCurrent' or enumeration know it upfront and
// answer without any kernel call.
func (t *Thread) TID() (uint32, error) {
	if t.h == 0 {
		return 0, ErrClosed
	}
	if t.f&flagInfo == 0 && t.i.TID > 0 {
		return t.i.TID, nil
	}
	if err := t.fill(t.query); err != nil {
		return 0, err
	}
	return t.i.TID, nil
}

// PID returns the ProcessID of the Process that owns this Thread.
//
// The value is part of the cached identity block captured on first use.
func (t *Thread) PID() (uint32, error) {
	if t.h == 0 {
		return 0, ErrClosed
	}
	if t.f&flagInfo == 0 && t.i.PID > 0 {
		return t.i.PID, nil
	}
	if err := t.fill(t.query); err != nil {
		return 0, err
	}
	return t.i.PID, nil
}

// TEB returns the base address of the Thread Environment Block of this
// Thread.
//
// The value is part of the cached identity block captured on first use.
func (t *Thread) TEB() (uintptr, error) {
	if t.h == 0 {
		return 0, ErrClosed
	}
	if err := t.fill(t.query); err != nil {
		return 0, err
	}
	return t.i.TEB, nil
}

// Priority returns the dynamic scheduling priority of this Thread.
//
// The value is part of the cached identity block captured on first use.
func (t *Thread) Priority() (int32, error) {
	if t.h == 0 {
		return 0, ErrClosed
	}
	if err := t.fill(t.query); err != nil {
		return 0, err
	}
	return t.i.Priority, nil
}

// BasePriority returns the base scheduling priority of this Thread.
//
// The value is part of the cached identity block captured on first use.
func (t *Thread) BasePriority() (int32, error) {
	if t.h == 0 {
		return 0, ErrClosed
	}
	if err := t.fill(t.query); err != nil {
		return 0, err
	}
	return t.i.BasePriority, nil
}

// ExitStatus returns the exit status of this Thread.
//
// The value is part of the cached identity block, reading it while the Thread
// is still running caches the STATUS_PENDING (0x103) marker. Use 'Running'
// for a live check instead.
func (t *Thread) ExitStatus() (uint32, error) {
	if t.h == 0 {
		return 0, ErrClosed
	}
	if err := t.fill(t.query); err != nil {
		return 0, err
	}
	return t.i.ExitStatus, nil
}

// ProcessName returns the image name of the Process that owns this Thread.
//
// The name is resolved at most once by opening the owning Process. If the
// lookup fails (the Process may deny the access or be gone already) an empty
// name is cached instead and no error is returned, the lookup is NOT retried.
func (t *Thread) ProcessName() (string, error) {
	if t.h == 0 {
		return "", ErrClosed
	}
	if t.f&flagName != 0 {
		return t.name, nil
	}
	if t.f&flagInfo == 0 && t.i.PID == 0 {
		if err := t.fill(t.query); err != nil {
			return "", err
		}
	}
	return t.fillName(processName), nil
}

// Running returns true if this Thread has not exited yet.
//
// Unlike the identity block this performs a fresh kernel query on every call.
func (t *Thread) Running() (bool, error) {
	if t.h == 0 {
		return false, ErrClosed
	}
	i, err := winapi.QueryThreadBasic(t.h)
	if err != nil {
		return false, err
	}
	// 0x103 - STATUS_PENDING
	return i.ExitStatus == 0x103, nil
}

// Context returns the register context of this Thread.
//
// The supplied flags select the register groups to capture and are stored
// into the snapshot before the kernel call, the populated groups are whatever
// the kernel filled in. The Thread should be suspended first for a stable
// capture.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) Context(flags uint32) (*winapi.Context, error) {
	if t.h == 0 {
		return nil, ErrClosed
	}
	c := &winapi.Context{ContextFlags: flags}
	if err := winapi.GetThreadContext(t.h, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetContext writes the supplied register context back to this Thread. The
// 'ContextFlags' field of the context selects the register groups written.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) SetContext(c *winapi.Context) error {
	if t.h == 0 {
		return ErrClosed
	}
	return winapi.SetThreadContext(t.h, c)
}

// Suspend will attempt to suspend this Thread. The return value is the
// previous suspend count.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) Suspend() (uint32, error) {
	if t.h == 0 {
		return 0, ErrClosed
	}
	return winapi.SuspendThread(t.h)
}

// Resume will attempt to resume this Thread. The return value is the previous
// suspend count, a value of one means the Thread is running again.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) Resume() (uint32, error) {
	if t.h == 0 {
		return 0, ErrClosed
	}
	return winapi.ResumeThread(t.h)
}

// Terminate will attempt to terminate this Thread with the supplied exit
// status.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) Terminate(exit uint32) error {
	if t.h == 0 {
		return ErrClosed
	}
	return winapi.TerminateThread(t.h, exit)
}

// Alert will attempt to alert this Thread, waking it from an alertable wait
// state.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) Alert() error {
	if t.h == 0 {
		return ErrClosed
	}
	return winapi.NtAlertThread(t.h)
}

// AlertResume will attempt to alert this Thread and resume it in a single
// kernel call. The return value is the previous suspend count.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) AlertResume() (uint32, error) {
	if t.h == 0 {
		return 0, ErrClosed
	}
	return winapi.NtAlertResumeThread(t.h)
}

// QueueAPC queues a user mode APC with the supplied function address and
// argument on this Thread. The APC runs once the Thread enters an alertable
// wait.
//
// The kernel holds only the raw values, callers are responsible for keeping
// whatever 'fn' and 'arg' point at alive until the APC has run.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) QueueAPC(fn, arg uintptr) error {
	if t.h == 0 {
		return ErrClosed
	}
	return winapi.QueueUserAPC(t.h, fn, arg)
}

// HideFromDebugger hides this Thread from any attached debugger. This cannot
// be undone for the lifetime of the thread.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) HideFromDebugger() error {
	if t.h == 0 {
		return ErrClosed
	}
	return winapi.HideThreadFromDebugger(t.h)
}

// SetToken assigns the supplied impersonation Token to this Thread. A zero
// Token clears the Thread impersonation Token instead, reverting the Thread
// back to its Process identity.
//
// Unlike 'Impersonate' no scope is created, the change stays until cleared.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) SetToken(k windows.Token) error {
	if t.h == 0 {
		return ErrClosed
	}
	return winapi.SetThreadToken(t.h, uintptr(k))
}

// Token returns the impersonation Token of this Thread, opened with the
// supplied access rights.
//
// A Thread that is not impersonating has no Token, which is reported as a
// zero Token with a nil error, not a failure.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) Token(access uint32) (windows.Token, error) {
	if t.h == 0 {
		return 0, ErrClosed
	}
	var k uintptr
	if err := winapi.OpenThreadToken(t.h, access, true, &k); err != nil {
		if err == winapi.ErrNoToken {
			return 0, nil
		}
		return 0, err
	}
	return windows.Token(k), nil
}

// Impersonate causes the current thread to impersonate the security context
// of this Thread and returns a scope that reverts it on Release.
//
// This Thread must be opened with the 'winapi.ThreadDirectImpersonation'
// access right. The level value is one of the SECURITY_IMPERSONATION_LEVEL
// values, 'windows.SecurityImpersonation' (2) grants full impersonation.
//
// The scope is only created once the identity switch succeeded. On any error
// the thread identity is unchanged and no scope is returned.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) Impersonate(level uint32) (*ImpersonationScope, error) {
	if t.h == 0 {
		return nil, ErrClosed
	}
	if bugtrack.Enabled {
		bugtrack.Track("xthread.(*Thread).Impersonate(): h=0x%X, level=%d", t.h, level)
	}
	return newScope(dupSelf, func(h uintptr) error {
		s := winapi.SecurityQualityOfService{ImpersonationLevel: level}
		s.Length = uint32(unsafe.Sizeof(s))
		return winapi.NtImpersonateThread(h, t.h, &s)
	}, winapi.CloseHandle)
}

// StartAddress returns the address of the function this Thread was started
// with.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) StartAddress() (uintptr, error) {
	if t.h == 0 {
		return 0, ErrClosed
	}
	return winapi.GetThreadStartAddress(t.h)
}

// LastSystemCall returns the number and first argument of the system call
// this Thread is currently blocked in. The Thread must be suspended for the
// query to succeed.
//
// Older kernel builds answer with a smaller result shape, which is handled
// transparently.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) LastSystemCall() (uint32, uintptr, error) {
	if t.h == 0 {
		return 0, 0, ErrClosed
	}
	return winapi.LastSystemCall(t.h)
}

// Description returns the description string assigned to this Thread. A
// Thread without a description returns an empty string, not an error.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) Description() (string, error) {
	if t.h == 0 {
		return "", ErrClosed
	}
	d, err := winapi.GetThreadDescription(t.h)
	if err != nil {
		return "", err
	}
	t.desc = d
	return d, nil
}

// SetDescription assigns the supplied description string to this Thread. An
// empty string clears it.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) SetDescription(d string) error {
	if t.h == 0 {
		return ErrClosed
	}
	if err := winapi.SetThreadDescription(t.h, d); err != nil {
		return err
	}
	t.desc = d
	return nil
}

// IsSuspended returns true if this Thread is currently suspended.
//
// This works by doing a suspend/resume cycle and reading the suspend count,
// so it cannot be used on the current thread or a pseudo handle Thread and
// requires the 'winapi.ThreadSuspendResume' access right.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) IsSuspended() (bool, error) {
	if t.h == 0 {
		return false, ErrClosed
	}
	// Can't do a suspend/resume cycle on ourselves.
	if t.h == pseudoThread || t.i.TID == winapi.GetCurrentThreadID() {
		return false, syscall.EINVAL
	}
	if _, err := winapi.SuspendThread(t.h); err != nil {
		return false, err
	}
	c, err := winapi.ResumeThread(t.h)
	if err != nil {
		return false, err
	}
	return c > 1, nil
}

// Release reverts the impersonation identity applied when this scope was
// created and closes the duplicated handle backing it.
//
// Only the first call performs the revert, later (or concurrent) calls and
// nil receivers are NOPs that return nil, so deferred and explicit Releases
// may be freely combined. Release may be called from any goroutine.
//
// Always returns nil on non-Windows devices.
func (s *ImpersonationScope) Release() error {
	if bugtrack.Enabled && s != nil {
		bugtrack.Track("xthread.(*ImpersonationScope).Release(): h=0x%X", s.h)
	}
	return s.release(revertToken, winapi.CloseHandle)
}
