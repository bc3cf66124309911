//go:build !windows
// +build !windows

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
	"time"

	"github.com/iDigitalFlame/xthread/util/xerr"
)

// ErrNoWindows is an error that is returned when a non-Windows device
// attempts a Windows specific function.
var ErrNoWindows = xerr.Sub("only supported on Windows devices", 0xFA)

// OpenCurrent returns a Thread for the current thread backed by a real
// handle instead of the pseudo handle.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func OpenCurrent(_ uint32) (*Thread, error) {
	return nil, ErrNoWindows
}

// Open returns a Thread for the thread with the supplied ThreadID, opened
// with the supplied access rights.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func Open(_, _ uint32) (*Thread, error) {
	return nil, ErrNoWindows
}

// Threads returns a Thread for every thread on the system that could be
// opened with the supplied access rights.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func Threads(_ uint32, _ bool) ([]*Thread, error) {
	return nil, ErrNoWindows
}

// EnumThreads walks every thread of the Process with the supplied ProcessID,
// calling the supplied function with an opened Thread for each one.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func EnumThreads(_ uint32, _ func(*Thread) error) error {
	return ErrNoWindows
}

// Sleep suspends execution of the current thread for at least the supplied
// duration, optionally waking early for alerts and user APCs.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func Sleep(_ time.Duration, _ bool) (bool, error) {
	return false, ErrNoWindows
}

// SleepUntil suspends execution of the current thread until the supplied
// (absolute) wall clock time, optionally waking early for alerts and user
// APCs.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func SleepUntil(_ time.Time, _ bool) (bool, error) {
	return false, ErrNoWindows
}

// IsWow64 returns true if the current process is a 32-bit process running
// under WOW64 on a 64-bit system.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func IsWow64() (bool, error) {
	return false, ErrNoWindows
}

// ImpersonateAnonymous swaps the identity of the current thread to the system
// anonymous logon token and returns a scope that reverts it on Release.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func ImpersonateAnonymous() (*ImpersonationScope, error) {
	return nil, ErrNoWindows
}

// Close releases the handle owned by this Thread.
//
// Always returns nil on non-Windows devices.
func (t *Thread) Close() error {
	if t.h == 0 || t.h == pseudoThread {
		return nil
	}
	t.h = 0
	return nil
}

// Handle returns the raw handle value backing this Thread.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) Handle() (uintptr, error) {
	return 0, ErrNoWindows
}

// Duplicate returns a new Thread for the same underlying thread, backed by a
// newly duplicated handle with the supplied access rights.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) Duplicate(_ uint32) (*Thread, error) {
	return nil, ErrNoWindows
}

// TID returns the ThreadID of this Thread.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) TID() (uint32, error) {
	return 0, ErrNoWindows
}

// PID returns the ProcessID of the Process that owns this Thread.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) PID() (uint32, error) {
	return 0, ErrNoWindows
}

// TEB returns the base address of the Thread Environment Block of this
// Thread.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) TEB() (uintptr, error) {
	return 0, ErrNoWindows
}

// Priority returns the dynamic scheduling priority of this Thread.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) Priority() (int32, error) {
	return 0, ErrNoWindows
}

// BasePriority returns the base scheduling priority of this Thread.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) BasePriority() (int32, error) {
	return 0, ErrNoWindows
}

// ExitStatus returns the exit status of this Thread.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) ExitStatus() (uint32, error) {
	return 0, ErrNoWindows
}

// ProcessName returns the image name of the Process that owns this Thread.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) ProcessName() (string, error) {
	return "", ErrNoWindows
}

// Running returns true if this Thread has not exited yet.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) Running() (bool, error) {
	return false, ErrNoWindows
}

// Suspend will attempt to suspend this Thread.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) Suspend() (uint32, error) {
	return 0, ErrNoWindows
}

// Resume will attempt to resume this Thread.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) Resume() (uint32, error) {
	return 0, ErrNoWindows
}

// Terminate will attempt to terminate this Thread with the supplied exit
// status.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) Terminate(_ uint32) error {
	return ErrNoWindows
}

// Alert will attempt to alert this Thread, waking it from an alertable wait
// state.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) Alert() error {
	return ErrNoWindows
}

// AlertResume will attempt to alert this Thread and resume it in a single
// kernel call.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) AlertResume() (uint32, error) {
	return 0, ErrNoWindows
}

// QueueAPC queues a user mode APC with the supplied function address and
// argument on this Thread.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) QueueAPC(_, _ uintptr) error {
	return ErrNoWindows
}

// HideFromDebugger hides this Thread from any attached debugger.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) HideFromDebugger() error {
	return ErrNoWindows
}

// Impersonate causes the current thread to impersonate the security context
// of this Thread and returns a scope that reverts it on Release.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) Impersonate(_ uint32) (*ImpersonationScope, error) {
	return nil, ErrNoWindows
}

// StartAddress returns the address of the function this Thread was started
// with.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) StartAddress() (uintptr, error) {
	return 0, ErrNoWindows
}

// LastSystemCall returns the number and first argument of the system call
// this Thread is currently blocked in.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) LastSystemCall() (uint32, uintptr, error) {
	return 0, 0, ErrNoWindows
}

// Description returns the description string assigned to this Thread.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) Description() (string, error) {
	return "", ErrNoWindows
}

// SetDescription assigns the supplied description string to this Thread.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) SetDescription(_ string) error {
	return ErrNoWindows
}

// IsSuspended returns true if this Thread is currently suspended.
//
// Always returns 'ErrNoWindows' on non-Windows devices.
func (t *Thread) IsSuspended() (bool, error) {
	return false, ErrNoWindows
}

// Release reverts the impersonation identity applied when this scope was
// created and closes the duplicated handle backing it. Nil receivers and
// repeated calls are NOPs.
//
// Always returns nil on non-Windows devices.
func (s *ImpersonationScope) Release() error {
	return s.release(func(_ uintptr) error { return nil }, func(_ uintptr) error { return nil })
}
