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

const (
	// CurrentThread is a pseudo Thread handle to the current Thread that
	// is running this function. This handle is always valid and does not
	// need to be closed. (Closing this handle is a NOP.)
	//
	// To get a real usable handle of the current Thread, use the
	// 'OpenCurrentThread' function instead, which returns a duplicate that
	// may outlive the caller and must be closed.
	CurrentThread = ^uintptr(1)
	// CurrentProcess is a pseudo Process handle to the current Process
	// that is running this function. This handle is always valid and does
	// not need to be closed.
	CurrentProcess = ^uintptr(0)

	invalid = ^uintptr(0)
)

const (
	// ErrNoToken is a error code that is returned when no Token exists for
	// the specified Thread. (The Thread is not impersonating anyone.)
	//
	// This is the Dos mapping of 'STATUS_NO_TOKEN' and is an expected result
	// of 'NtOpenThreadToken' for most Threads.
	ErrNoToken = syscall.Errno(0x3F0)
	// ErrNoMoreFiles is a error code that is returned when a file (or Thread
	// or Process) enumeration function runs out of entries to return.
	//
	// This signals a clean end of the enumeration and is not a failure.
	ErrNoMoreFiles = syscall.Errno(0x12)
	// ErrInsufficientBuffer is a error code that is returned when the buffer
	// supplied to a query function is too small to hold the result.
	ErrInsufficientBuffer = syscall.Errno(0x7A)
)

// Windows API Specific Access Rights
//
//	These values are used to open Thread and Process handles with the
//	minimum amount of privileges needed to do the operation.
const (
	// ThreadTerminate is an access rights flag that allows usage of the
	// 'TerminateThread' function on the opened handle.
	ThreadTerminate = 0x1
	// ThreadSuspendResume is an access rights flag that allows usage of
	// the 'SuspendThread', 'ResumeThread' and alerting functions on the
	// opened handle.
	ThreadSuspendResume = 0x2
	// ThreadGetContext is an access rights flag that allows usage of the
	// 'GetThreadContext' function on the opened handle.
	ThreadGetContext = 0x8
	// ThreadSetContext is an access rights flag that allows usage of the
	// 'SetThreadContext' function on the opened handle.
	ThreadSetContext = 0x10
	// ThreadSetInformation is an access rights flag that allows setting
	// Thread attributes, such as 'HideThreadFromDebug', on the opened
	// handle.
	ThreadSetInformation = 0x20
	// ThreadQueryInformation is an access rights flag that allows reading
	// Thread attributes, such as the basic information block and the last
	// system call, from the opened handle.
	ThreadQueryInformation = 0x40
	// ThreadSetThreadToken is an access rights flag that allows setting
	// the impersonation Token of the Thread the opened handle points to.
	ThreadSetThreadToken = 0x80
	// ThreadImpersonate is an access rights flag that allows usage of the
	// Thread's security context while impersonating a client.
	ThreadImpersonate = 0x100
	// ThreadDirectImpersonation is an access rights flag that allows a
	// server Thread to impersonate the client Thread the opened handle
	// points to via 'NtImpersonateThread'.
	ThreadDirectImpersonation = 0x200
	// ThreadQueryLimitedInformation is an access rights flag that allows
	// reading a limited subset of the Thread attributes from the opened
	// handle. This is the smallest access right that can read the Thread
	// identity.
	ThreadQueryLimitedInformation = 0x800

	// ThreadAllAccess is an access rights flag mask that contains all the
	// valid Thread access rights flags.
	ThreadAllAccess = 0x1FFFFF
)

const (
	// 0x0 - ThreadBasicInformation
	infoThreadBasic = 0x0
	// 0x5 - ThreadImpersonationToken
	infoThreadToken = 0x5
	// 0x9 - ThreadQuerySetWin32StartAddress
	infoThreadStartAddress = 0x9
	// 0x11 - ThreadHideFromDebugger
	infoThreadHideFromDebug = 0x11
	// 0x15 - ThreadLastSystemCall
	infoThreadLastSysCall = 0x15
	// 0x26 - ThreadNameInformation
	infoThreadDescription = 0x26

	// 0x5 - SystemProcessInformation
	infoSystemProcess = 0x5
	// 0x1B - ProcessImageFileName
	infoProcessImageFileName = 0x1B
)
