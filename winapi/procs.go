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

var (
	funcNtClose                     = dllNtdll.proc("NtClose")
	funcNtAlertThread               = dllNtdll.proc("NtAlertThread")
	funcNtOpenThread                = dllNtdll.proc("NtOpenThread")
	funcNtOpenProcess               = dllNtdll.proc("NtOpenProcess")
	funcNtResumeThread              = dllNtdll.proc("NtResumeThread")
	funcNtSuspendThread             = dllNtdll.proc("NtSuspendThread")
	funcNtDelayExecution            = dllNtdll.proc("NtDelayExecution")
	funcNtDuplicateToken            = dllNtdll.proc("NtDuplicateToken")
	funcNtQueueApcThread            = dllNtdll.proc("NtQueueApcThread")
	funcNtDuplicateObject           = dllNtdll.proc("NtDuplicateObject")
	funcNtTerminateThread           = dllNtdll.proc("NtTerminateThread")
	funcNtOpenThreadToken           = dllNtdll.proc("NtOpenThreadToken")
	funcNtOpenProcessToken          = dllNtdll.proc("NtOpenProcessToken")
	funcNtGetContextThread          = dllNtdll.proc("NtGetContextThread")
	funcNtSetContextThread          = dllNtdll.proc("NtSetContextThread")
	funcNtImpersonateThread         = dllNtdll.proc("NtImpersonateThread")
	funcNtAlertResumeThread         = dllNtdll.proc("NtAlertResumeThread")
	funcRtlNtStatusToDosError       = dllNtdll.proc("RtlNtStatusToDosError")
	funcNtSetInformationThread      = dllNtdll.proc("NtSetInformationThread")
	funcNtAdjustTokenPrivileges     = dllNtdll.proc("NtAdjustPrivilegesToken")
	funcNtQueryInformationThread    = dllNtdll.proc("NtQueryInformationThread")
	funcNtQuerySystemInformation    = dllNtdll.proc("NtQuerySystemInformation")
	funcNtQueryInformationProcess   = dllNtdll.proc("NtQueryInformationProcess")
	funcNtImpersonateAnonymousToken = dllNtdll.proc("NtImpersonateAnonymousToken")

	funcThread32Next             = dllKernel32.proc("Thread32Next")
	funcThread32First            = dllKernel32.proc("Thread32First")
	funcProcess32Next            = dllKernel32.proc("Process32NextW")
	funcProcess32First           = dllKernel32.proc("Process32FirstW")
	funcIsWow64Process           = dllKernel32.proc("IsWow64Process")
	funcGetCurrentThreadID       = dllKernel32.proc("GetCurrentThreadId")
	funcGetCurrentProcessID      = dllKernel32.proc("GetCurrentProcessId")
	funcCreateToolhelp32Snapshot = dllKernel32.proc("CreateToolhelp32Snapshot")

	funcLookupPrivilegeValue = dllAdvapi32.proc("LookupPrivilegeValueW")
)
