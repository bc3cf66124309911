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
	"unsafe"

	"github.com/iDigitalFlame/xthread/util/bugtrack"
)

// CloseHandle Windows API Call
//
//	Closes an open object handle.
//
// https://docs.microsoft.com/en-us/windows/win32/api/handleapi/nf-handleapi-closehandle
//
// Re-targeted to use 'NtClose' instead.
// https://learn.microsoft.com/en-us/windows-hardware/drivers/ddi/ntifs/nf-ntifs-ntclose
func CloseHandle(h uintptr) error {
	r, _, _ := syscallN(funcNtClose.address(), h)
	if bugtrack.Enabled { // Trace Bad Handles
		bugtrack.Track("winapi.CloseHandle() h=0x%X, r=0x%X", h, r)
	}
	if r > 0 {
		return formatNtError(r)
	}
	return nil
}

// SuspendThread Windows API Call
//
//	Suspends the specified thread.
//
// https://docs.microsoft.com/en-us/windows/win32/api/processthreadsapi/nf-processthreadsapi-suspendthread
//
// Re-targeted to use 'NtSuspendThread' instead.
// https://docs.rs/ntapi/0.3.1/ntapi/ntpsapi/type.NtSuspendThread.html
func SuspendThread(h uintptr) (uint32, error) {
	var c uint32
	if r, _, _ := syscallN(funcNtSuspendThread.address(), h, uintptr(unsafe.Pointer(&c))); r > 0 {
		return 0, formatNtError(r)
	}
	return c, nil
}

// ResumeThread Windows API Call
//
//	Decrements a thread's suspend count. When the suspend count is decremented
//	to zero, the execution of the thread is resumed.
//
// https://docs.microsoft.com/en-us/windows/win32/api/processthreadsapi/nf-processthreadsapi-resumethread
//
// Re-targeted to use 'NtResumeThread' instead.
// https://docs.rs/ntapi/0.3.1/ntapi/ntpsapi/type.NtResumeThread.html
func ResumeThread(h uintptr) (uint32, error) {
	var c uint32
	if r, _, _ := syscallN(funcNtResumeThread.address(), h, uintptr(unsafe.Pointer(&c))); r > 0 {
		return 0, formatNtError(r)
	}
	return c, nil
}

// TerminateThread Windows API Call
//
//	Terminates a thread.
//
// https://docs.microsoft.com/en-us/windows/win32/api/processthreadsapi/nf-processthreadsapi-terminatethread
//
// Re-targeted to use 'NtTerminateThread' instead.
// http://pinvoke.net/default.aspx/ntdll/NtTerminateThread.html
func TerminateThread(h uintptr, e uint32) error {
	if h == 0 {
		// Helper to prevent deadlocks.
		return nil
	}
	if r, _, _ := syscallN(funcNtTerminateThread.address(), h, uintptr(e)); r > 0 {
		return formatNtError(r)
	}
	return nil
}

// NtAlertThread Windows API Call
//
//	This routine asserts the alerted flag of the target thread, waking it from
//	an alertable wait state.
//
// http://www.codewarrior.cn/ntdoc/winnt/ps/NtAlertThread.htm
func NtAlertThread(h uintptr) error {
	if r, _, _ := syscallN(funcNtAlertThread.address(), h); r > 0 {
		return formatNtError(r)
	}
	return nil
}

// NtAlertResumeThread Windows API Call
//
//	This routine alerts the target thread and resumes it in a single operation,
//	returning the previous suspend count.
//
// http://www.codewarrior.cn/ntdoc/winnt/ps/NtAlertResumeThread.htm
func NtAlertResumeThread(h uintptr) (uint32, error) {
	var c uint32
	if r, _, _ := syscallN(funcNtAlertResumeThread.address(), h, uintptr(unsafe.Pointer(&c))); r > 0 {
		return 0, formatNtError(r)
	}
	return c, nil
}

// OpenThread Windows API Call
//
//	Opens an existing thread object.
//
// https://docs.microsoft.com/en-us/windows/win32/api/processthreadsapi/nf-processthreadsapi-openthread
//
// Re-targeted to use 'NtOpenThread' instead.
// https://learn.microsoft.com/en-us/windows/win32/devnotes/ntopenthread
func OpenThread(access uint32, inherit bool, tid uint32) (uintptr, error) {
	var (
		o objAttrs
		h uintptr
		i clientID
	)
	if i.Thread = uintptr(tid); inherit {
		// 0x2 - OBJ_INHERIT
		o.Attributes = 0x2
	}
	o.Length = uint32(unsafe.Sizeof(o))
	r, _, _ := syscallN(
		funcNtOpenThread.address(), uintptr(unsafe.Pointer(&h)), uintptr(access), uintptr(unsafe.Pointer(&o)),
		uintptr(unsafe.Pointer(&i)),
	)
	if r > 0 {
		return 0, formatNtError(r)
	}
	return h, nil
}

// OpenProcess Windows API Call
//
//	Opens an existing local process object.
//
// https://docs.microsoft.com/en-us/windows/win32/api/processthreadsapi/nf-processthreadsapi-openprocess
//
// Re-targeted to use 'NtOpenProcess' instead.
// https://learn.microsoft.com/en-us/windows-hardware/drivers/ddi/ntddk/nf-ntddk-ntopenprocess
func OpenProcess(access uint32, inherit bool, pid uint32) (uintptr, error) {
	var (
		o objAttrs
		h uintptr
		i clientID
	)
	if i.Process = uintptr(pid); inherit {
		// 0x2 - OBJ_INHERIT
		o.Attributes = 0x2
	}
	o.Length = uint32(unsafe.Sizeof(o))
	r, _, _ := syscallN(
		funcNtOpenProcess.address(), uintptr(unsafe.Pointer(&h)), uintptr(access), uintptr(unsafe.Pointer(&o)),
		uintptr(unsafe.Pointer(&i)),
	)
	if r > 0 {
		return 0, formatNtError(r)
	}
	return h, nil
}

// OpenThreadToken Windows API Call
//
//	The OpenThreadToken function opens the access token associated with a thread.
//
// https://docs.microsoft.com/en-us/windows/win32/api/processthreadsapi/nf-processthreadsapi-openthreadtoken
//
// Re-targeted to use 'NtOpenThreadToken' instead.
// https://learn.microsoft.com/en-us/windows-hardware/drivers/ddi/ntifs/nf-ntifs-ntopenthreadtoken
//
// Threads that are not impersonating fail with 'ErrNoToken'. Callers should
// treat that result as "no Token present" instead of a hard failure.
func OpenThreadToken(h uintptr, access uint32, self bool, t *uintptr) error {
	var s uint32
	if self {
		s = 1
	}
	if r, _, _ := syscallN(funcNtOpenThreadToken.address(), h, uintptr(access), uintptr(s), uintptr(unsafe.Pointer(t))); r > 0 {
		return formatNtError(r)
	}
	return nil
}

// OpenProcessToken Windows API Call
//
//	The OpenProcessToken function opens the access token associated with a process.
//
// https://docs.microsoft.com/en-us/windows/win32/api/processthreadsapi/nf-processthreadsapi-openprocesstoken
//
// Re-targeted to use 'NtOpenProcessToken' instead.
// https://learn.microsoft.com/en-us/windows-hardware/drivers/ddi/ntifs/nf-ntifs-ntopenprocesstoken
func OpenProcessToken(h uintptr, access uint32, res *uintptr) error {
	if r, _, _ := syscallN(funcNtOpenProcessToken.address(), h, uintptr(access), uintptr(unsafe.Pointer(res))); r > 0 {
		return formatNtError(r)
	}
	return nil
}

// SetThreadToken Windows API Call
//
//	The SetThreadToken function assigns an impersonation token to a thread. The
//	function can also cause a thread to stop using an impersonation token.
//
// https://docs.microsoft.com/en-us/windows/win32/api/processthreadsapi/nf-processthreadsapi-setthreadtoken
//
// Calls 'NtSetInformationThread' under the hood.
//
// Passing a zero Token value clears the Thread impersonation Token, which
// reverts the Thread back to its Process identity.
func SetThreadToken(h uintptr, t uintptr) error {
	// 0x5 - ThreadImpersonationToken
	if r, _, _ := syscallN(funcNtSetInformationThread.address(), h, infoThreadToken, uintptr(unsafe.Pointer(&t)), ptrSize); r > 0 {
		return formatNtError(r)
	}
	return nil
}

// HideThreadFromDebugger Windows API Call
//
//	Prevents debugger events generated by the target thread from being seen by
//	an attached debugger. This attribute cannot be removed once set.
//
// Calls 'NtSetInformationThread' with the 'ThreadHideFromDebugger' class.
// https://www.codeproject.com/articles/670193/csharp-detect-if-debugger-is-attached
func HideThreadFromDebugger(h uintptr) error {
	// 0x11 - ThreadHideFromDebugger
	if r, _, _ := syscallN(funcNtSetInformationThread.address(), h, infoThreadHideFromDebug, 0, 0); r > 0 {
		return formatNtError(r)
	}
	return nil
}

// QueueUserAPC Windows API Call
//
//	Adds a user-mode asynchronous procedure call (APC) object to the APC queue
//	of the specified thread. The APC runs the next time the thread enters an
//	alertable wait state.
//
// https://docs.microsoft.com/en-us/windows/win32/api/processthreadsapi/nf-processthreadsapi-queueuserapc
//
// Re-targeted to use 'NtQueueApcThread' instead.
// http://www.codewarrior.cn/ntdoc/winnt/ps/NtQueueApcThread.htm
//
// The function value must remain valid until the target thread has run the
// APC. The kernel holds no reference, keeping it alive is on the caller.
func QueueUserAPC(h, fn, arg uintptr) error {
	if r, _, _ := syscallN(funcNtQueueApcThread.address(), h, fn, arg, 0, 0); r > 0 {
		return formatNtError(r)
	}
	return nil
}

// QueryThreadBasic Windows API Call
//
//	Retrieves the basic information block of the target thread, which carries
//	the thread and owner process IDs, the TEB base address, the exit status and
//	the scheduler priority values.
//
// Calls 'NtQueryInformationThread' with the 'ThreadBasicInformation' class.
// http://www.codewarrior.cn/ntdoc/winnt/ps/NtQueryInformationThread.htm
func QueryThreadBasic(h uintptr) (ThreadBasicInfo, error) {
	var (
		t       threadBasicInfo
		r, _, _ = syscallN(
			funcNtQueryInformationThread.address(), h, infoThreadBasic, uintptr(unsafe.Pointer(&t)),
			unsafe.Sizeof(t), 0,
		)
	)
	if r > 0 {
		return ThreadBasicInfo{}, formatNtError(r)
	}
	return ThreadBasicInfo{
		TEB:          t.TebBaseAddress,
		TID:          uint32(t.ClientID.Thread),
		PID:          uint32(t.ClientID.Process),
		Priority:     t.Priority,
		ExitStatus:   t.ExitStatus,
		BasePriority: t.BasePriority,
	}, nil
}

// NtImpersonateThread Windows API Call
//
//	This routine is used to cause the server thread to impersonate the client
//	thread. The impersonation is done according to the specified quality
//	of service parameters.
//
// http://web.archive.org/web/20190822133735/https://www.codewarrior.cn/ntdoc/winnt/ps/NtImpersonateThread.htm
//
// Thanks to: https://www.tiraniddo.dev/2017/08/the-art-of-becoming-trustedinstaller.html
func NtImpersonateThread(h, client uintptr, s *SecurityQualityOfService) error {
	if r, _, _ := syscallN(funcNtImpersonateThread.address(), h, client, uintptr(unsafe.Pointer(s))); r > 0 {
		return formatNtError(r)
	}
	return nil
}

// NtImpersonateAnonymousToken Windows API Call
//
//	This routine makes the target thread impersonate the system anonymous
//	logon token, which carries no identifying information at all.
//
// https://learn.microsoft.com/en-us/windows/win32/secauthz/anonymous-impersonation
func NtImpersonateAnonymousToken(h uintptr) error {
	if r, _, _ := syscallN(funcNtImpersonateAnonymousToken.address(), h); r > 0 {
		return formatNtError(r)
	}
	return nil
}

// DuplicateTokenEx Windows API Call
//
//	The DuplicateTokenEx function creates a new access token that duplicates an
//	existing token. This function can create either a primary token or an
//	impersonation token.
//
// https://docs.microsoft.com/en-us/windows/win32/api/securitybaseapi/nf-securitybaseapi-duplicatetokenex
//
// Re-targeted to use 'NtDuplicateToken' instead.
// https://learn.microsoft.com/en-us/windows-hardware/drivers/ddi/ntifs/nf-ntifs-ntduplicatetoken
func DuplicateTokenEx(h uintptr, access, level, p uint32, new *uintptr) error {
	var (
		o objAttrs
		q SecurityQualityOfService
	)
	q.ImpersonationLevel = level
	o.Length = uint32(unsafe.Sizeof(o))
	q.Length = uint32(unsafe.Sizeof(q))
	o.SecurityQualityOfService = &q
	r, _, _ := syscallN(
		funcNtDuplicateToken.address(), h, uintptr(access), uintptr(unsafe.Pointer(&o)), 0, uintptr(p), uintptr(unsafe.Pointer(new)),
	)
	if r > 0 {
		return formatNtError(r)
	}
	return nil
}

// DuplicateHandle Windows API Call
//
//	Duplicates an object handle.
//
// https://docs.microsoft.com/en-us/windows/win32/api/handleapi/nf-handleapi-duplicatehandle
//
// Re-targeted to use 'NtDuplicateObject' instead.
// https://learn.microsoft.com/en-us/windows-hardware/drivers/ddi/ntifs/nf-ntifs-zwduplicateobject
//
// The kernel resolves the current Thread and Process pseudo handle values
// natively when the source process is the current one, so duplicating the
// 'CurrentThread' sentinel here yields a real handle.
func DuplicateHandle(srcProc, src, dstProc uintptr, dst *uintptr, access uint32, inherit bool, options uint32) error {
	var i uint32
	if inherit {
		// 0x2 - OBJ_INHERIT
		i = 0x2
	}
	r, _, _ := syscallN(
		funcNtDuplicateObject.address(), srcProc, src, dstProc, uintptr(unsafe.Pointer(dst)), uintptr(access), uintptr(i),
		uintptr(options),
	)
	if r > 0 {
		return formatNtError(r)
	}
	return nil
}

// LookupPrivilegeValue Windows API Call
//
//	The LookupPrivilegeValue function retrieves the locally unique identifier
//	(LUID) used on a specified system to locally represent the specified privilege
//	name.
//
// https://docs.microsoft.com/en-us/windows/win32/api/winbase/nf-winbase-lookupprivilegevaluew
func LookupPrivilegeValue(system, name string, l *LUID) error {
	var (
		s, n *uint16
		err  error
	)
	if len(system) > 0 {
		if s, err = UTF16PtrFromString(system); err != nil {
			return err
		}
	}
	if n, err = UTF16PtrFromString(name); err != nil {
		return err
	}
	r, _, err1 := syscallN(
		funcLookupPrivilegeValue.address(), uintptr(unsafe.Pointer(s)), uintptr(unsafe.Pointer(n)),
		uintptr(unsafe.Pointer(l)),
	)
	if r == 0 {
		return unboxError(err1)
	}
	return nil
}

// AdjustTokenPrivileges Windows API Call
//
//	The AdjustTokenPrivileges function enables or disables privileges in the
//	specified access token. Enabling or disabling privileges in an access token
//	requires TOKEN_ADJUST_PRIVILEGES access.
//
// https://docs.microsoft.com/en-us/windows/win32/api/securitybaseapi/nf-securitybaseapi-adjusttokenprivileges
//
// Re-targeted to use 'NtAdjustPrivilegesToken' instead.
// https://docs.rs/ntapi/0.3.6/aarch64-pc-windows-msvc/ntapi/ntseapi/fn.NtAdjustPrivilegesToken.html
func AdjustTokenPrivileges(h uintptr, disableAll bool, new unsafe.Pointer, newLen uint32, old unsafe.Pointer, oldLen *uint32) error {
	var d uint32
	if disableAll {
		d = 1
	}
	r, _, _ := syscallN(
		funcNtAdjustTokenPrivileges.address(), h, uintptr(d), uintptr(new), uintptr(newLen), uintptr(old),
		uintptr(unsafe.Pointer(oldLen)),
	)
	if r > 0 {
		return formatNtError(r)
	}
	return nil
}

// GetCurrentThreadID Windows API Call
//
//	Retrieves the thread identifier of the calling thread.
//
// https://docs.microsoft.com/en-us/windows/win32/api/processthreadsapi/nf-processthreadsapi-getcurrentthreadid
func GetCurrentThreadID() uint32 {
	r, _, _ := syscallN(funcGetCurrentThreadID.address())
	return uint32(r)
}

// GetCurrentProcessID Windows API Call
//
//	Retrieves the process identifier of the calling process.
//
// https://docs.microsoft.com/en-us/windows/win32/api/processthreadsapi/nf-processthreadsapi-getcurrentprocessid
func GetCurrentProcessID() uint32 {
	r, _, _ := syscallN(funcGetCurrentProcessID.address())
	return uint32(r)
}
