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

package winapi

import "syscall"

// IsSuspended will attempt to determine if the current Thread is suspended. If
// the state information was supplied initially during discovery, it will be
// immediately returned, otherwise a Suspend/Resume cycle will be done to get the
// Thread suspension count.
//
// The return result will be true if the Thread is currently suspended and any
// errors that may have occurred.
func (t ThreadEntry) IsSuspended() (bool, error) {
	if t.sus > 0 {
		return t.sus == 2, nil
	}
	// 0x42 - THREAD_QUERY_INFORMATION | THREAD_SUSPEND_RESUME
	h, err := OpenThread(0x42, false, t.TID)
	if err != nil {
		return false, err
	}
	s, err := t.suspended(h)
	if CloseHandle(h); err != nil {
		return false, err
	}
	return s, nil
}

// Handle is a convenience function that calls 'OpenThread' on the Thread with
// the supplied access mask and returns a Thread handle that must be closed
// when you are done using it.
//
// This function does NOT make handles inheritable.
//
// Any errors that occur during the operation will be returned.
func (t ThreadEntry) Handle(a uint32) (uintptr, error) {
	return OpenThread(a, false, t.TID)
}

// Handle is a convenience function that calls 'OpenProcess' on the Process with
// the supplied access mask and returns a Process handle that must be closed
// when you are done using it.
//
// This function does NOT make handles inheritable.
//
// Any errors that occur during the operation will be returned.
func (p ProcessEntry) Handle(a uint32) (uintptr, error) {
	return OpenProcess(a, false, p.PID)
}
func (t ThreadEntry) suspended(h uintptr) (bool, error) {
	if t.sus > 0 {
		return t.sus == 2, nil
	}
	if GetCurrentThreadID() == t.TID {
		// Can't do a suspend/resume cycle on ourselves.
		return false, syscall.EINVAL
	}
	if _, err := SuspendThread(h); err != nil {
		return false, err
	}
	c, err := ResumeThread(h)
	if err != nil {
		return false, err
	}
	return c > 1, nil
}
