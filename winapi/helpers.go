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

import (
	"time"
	"unsafe"
)

const ptrSize = unsafe.Sizeof(uintptr(0))

const debugPriv = "SeDebugPrivilege"

// GetDebugPrivilege is a quick helper function that will attempt to get the
// Windows SeDebugPrivilege. This function will return an error if the privilege
// could not be assigned. Errors or success will be determined by access rights.
func GetDebugPrivilege() error {
	var (
		t   uintptr
		err = OpenProcessToken(CurrentProcess, 0x200E8, &t)
		// 0x200E8 - TOKEN_READ (STANDARD_RIGHTS_READ | TOKEN_QUERY) | TOKEN_WRITE
		//            (TOKEN_ADJUST_PRIVILEGES | TOKEN_ADJUST_GROUPS | TOKEN_ADJUST_DEFAULT)
	)
	if err != nil {
		return err
	}
	var p privileges
	if err = LookupPrivilegeValue("", debugPriv, &p.Privileges[0].Luid); err != nil {
		CloseHandle(t)
		return err
	}
	p.Privileges[0].Attributes, p.PrivilegeCount = 0x2, 1 // SE_PRIVILEGE_ENABLED
	err = AdjustTokenPrivileges(t, false, unsafe.Pointer(&p), uint32(unsafe.Sizeof(p)), nil, nil)
	CloseHandle(t)
	return err
}

// OpenCurrentThread returns a real handle to the current thread by duplicating
// the 'CurrentThread' pseudo handle.
//
// Unlike the pseudo handle, the returned handle may be passed to (and closed
// by) other threads and stays valid after the calling function returns. A zero
// access value duplicates with the same access as the source.
//
// The caller owns the returned handle and must close it.
func OpenCurrentThread(access uint32) (uintptr, error) {
	var (
		h uintptr
		o uint32
	)
	if access == 0 {
		// 0x2 - DUPLICATE_SAME_ACCESS
		o = 0x2
	}
	if err := DuplicateHandle(CurrentProcess, CurrentThread, CurrentProcess, &h, access, false, o); err != nil {
		return 0, err
	}
	return h, nil
}

// GetProcessFileName will attempt to retrieve the basename of the process
// related to the open Process handle provided.
func GetProcessFileName(h uintptr) (string, error) {
	var (
		b       [unsafe.Sizeof(unicodeString{}) + 520]byte
		n       uint32
		r, _, _ = syscallN(
			funcNtQueryInformationProcess.address(), h, infoProcessImageFileName, uintptr(unsafe.Pointer(&b[0])),
			uintptr(len(b)), uintptr(unsafe.Pointer(&n)),
		)
	)
	if r > 0 {
		return "", formatNtError(r)
	}
	v := (*unicodeString)(unsafe.Pointer(&b[0])).value()
	for i := len(v) - 1; i > 0; i-- {
		if v[i] == '\\' {
			return v[i+1:], nil
		}
	}
	return v, nil
}

// GetThreadStartAddress retrieves the Win32 start address of the target thread.
func GetThreadStartAddress(h uintptr) (uintptr, error) {
	var (
		i       uintptr
		r, _, _ = syscallN(funcNtQueryInformationThread.address(), h, infoThreadStartAddress, uintptr(unsafe.Pointer(&i)), unsafe.Sizeof(i), 0)
	)
	if r > 0 {
		return 0, formatNtError(r)
	}
	return i, nil
}

// LastSystemCall retrieves the last system call number made by the target
// thread along with its first argument. The thread must be suspended for the
// query to succeed.
//
// Newer kernel builds return an extended result block, older ones only the
// fixed legacy block. The extended shape is tried first and a size complaint
// triggers a retry with the legacy shape.
func LastSystemCall(h uintptr) (uint32, uintptr, error) {
	n, a, r := lastSystemCall(func(p unsafe.Pointer, s uint32) uintptr {
		o, _, _ := syscallN(funcNtQueryInformationThread.address(), h, infoThreadLastSysCall, uintptr(p), uintptr(s), 0)
		return o
	})
	if r > 0 {
		return 0, 0, formatNtError(r)
	}
	return n, a, nil
}

// GetThreadDescription returns the description (name) assigned to the target
// thread.
//
// Threads without a description return an empty string, not an error.
func GetThreadDescription(h uintptr) (string, error) {
	var (
		n       uint32
		b       = make([]byte, unsafe.Sizeof(unicodeString{})+512)
		r, _, _ = syscallN(
			funcNtQueryInformationThread.address(), h, infoThreadDescription, uintptr(unsafe.Pointer(&b[0])),
			uintptr(len(b)), uintptr(unsafe.Pointer(&n)),
		)
	)
	switch r {
	case 0xC0000004, 0xC0000023:
		// 0xC0000004 - STATUS_INFO_LENGTH_MISMATCH
		// 0xC0000023 - STATUS_BUFFER_TOO_SMALL
		b = make([]byte, n)
		r, _, _ = syscallN(
			funcNtQueryInformationThread.address(), h, infoThreadDescription, uintptr(unsafe.Pointer(&b[0])),
			uintptr(len(b)), uintptr(unsafe.Pointer(&n)),
		)
	}
	if r > 0 {
		return "", formatNtError(r)
	}
	return (*unicodeString)(unsafe.Pointer(&b[0])).value(), nil
}

// SetThreadDescription assigns a description (name) to the target thread.
//
// An empty string clears the current description.
func SetThreadDescription(h uintptr, s string) error {
	v, err := UTF16FromString(s)
	if err != nil {
		return err
	}
	var u unicodeString
	u.set(v)
	if r, _, _ := syscallN(funcNtSetInformationThread.address(), h, infoThreadDescription, uintptr(unsafe.Pointer(&u)), unsafe.Sizeof(u)); r > 0 {
		return formatNtError(r)
	}
	return nil
}

// DelayExecution blocks the calling thread for the supplied raw interval
// value.
//
// Negative values are relative intervals in 100 nanosecond ticks, positive
// values are an absolute wakeup point on the system clock (also in 100
// nanosecond ticks, since January 1, 1601).
//
// The return value is true if the sleep was cut short by an alert or a queued
// APC instead of the interval elapsing. This only happens when alertable is
// true.
func DelayExecution(n int64, alertable bool) (bool, error) {
	var a uint32
	if alertable {
		a = 1
	}
	switch r, _, _ := syscallN(funcNtDelayExecution.address(), uintptr(a), uintptr(unsafe.Pointer(&n))); r {
	case 0:
		return false, nil
	case 0xC0, 0x101:
		// 0xC0  - STATUS_USER_APC
		// 0x101 - STATUS_ALERTED
		return true, nil
	default:
		return false, formatNtError(r)
	}
}

// SleepEx blocks the calling thread for the supplied duration.
//
// The return value is true if the sleep was cut short by an alert or a queued
// APC instead of the duration elapsing.
//
// Calls 'NtDelayExecution' under the hood.
func SleepEx(d time.Duration, alertable bool) (bool, error) {
	return DelayExecution(-(int64(d) / 100), alertable)
}

// IsWow64Process determines if the supplied process handle refers to a 32bit
// process running under WOW64 on a 64bit host.
func IsWow64Process(h uintptr) (bool, error) {
	var v uint32
	r, _, err := syscallN(funcIsWow64Process.address(), h, uintptr(unsafe.Pointer(&v)))
	if r == 0 {
		return false, unboxError(err)
	}
	return v == 1, nil
}

// ForEachThread is a helper function that allows a function to be executed with
// the handle of each current in-process thread.
//
// The handle is closed after the supplied function returns. Returning an error
// from the function stops the walk and the error is passed back, except for
// the 'ErrNoMoreFiles' sentinel which stops the walk cleanly.
func ForEachThread(f func(uintptr) error) error {
	return SnapEnumThreads(GetCurrentProcessID(), func(t ThreadEntry) error {
		// 0xE0 - THREAD_QUERY_INFORMATION | THREAD_SET_INFORMATION | THREAD_SET_THREAD_TOKEN
		v, err := OpenThread(0xE0, false, t.TID)
		if err != nil {
			return err
		}
		err = f(v)
		if CloseHandle(v); err != nil {
			return err
		}
		return nil
	})
}
