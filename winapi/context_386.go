//go:build windows && 386
// +build windows,386

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

import "unsafe"

// Context flag values for the 32bit CONTEXT layout. These select which
// register groups the kernel reads or writes during a context call.
const (
	// ContextControl selects Ebp, Eip, SegCs, EFlags, Esp and SegSs.
	ContextControl = 0x10001
	// ContextInteger selects Edi, Esi, Ebx, Edx, Ecx and Eax.
	ContextInteger = 0x10002
	// ContextSegments selects SegDs, SegEs, SegFs and SegGs.
	ContextSegments = 0x10004
	// ContextFloatingPoint selects the FloatSave area.
	ContextFloatingPoint = 0x10008
	// ContextDebugRegisters selects Dr0 through Dr3, Dr6 and Dr7.
	ContextDebugRegisters = 0x10010
	// ContextExtended selects the ExtendedRegisters area.
	ContextExtended = 0x10020
	// ContextFull is the standard Control, Integer and Segments selection.
	ContextFull = ContextControl | ContextInteger | ContextSegments
	// ContextAll selects every register group.
	ContextAll = ContextFull | ContextFloatingPoint | ContextDebugRegisters | ContextExtended
)

// FloatSaveArea matches the FLOATING_SAVE_AREA struct
//
//	https://learn.microsoft.com/en-us/windows/win32/api/winnt/ns-winnt-floating_save_area
//
//	typedef struct _FLOATING_SAVE_AREA {
//	  DWORD ControlWord;
//	  DWORD StatusWord;
//	  DWORD TagWord;
//	  DWORD ErrorOffset;
//	  DWORD ErrorSelector;
//	  DWORD DataOffset;
//	  DWORD DataSelector;
//	  BYTE  RegisterArea[80];
//	  DWORD Cr0NpxState;
//	} FLOATING_SAVE_AREA;
//
// DO NOT REORDER
type FloatSaveArea struct {
	ControlWord   uint32
	StatusWord    uint32
	TagWord       uint32
	ErrorOffset   uint32
	ErrorSelector uint32
	DataOffset    uint32
	DataSelector  uint32
	RegisterArea  [80]byte
	Cr0NpxState   uint32
}

// Context matches the 32bit CONTEXT struct
//
//	https://learn.microsoft.com/en-us/windows/win32/api/winnt/ns-winnt-wow64_context
//
// Unlike the 64bit layout this struct has no alignment requirement and is
// passed to the kernel at its exact size.
//
// This layout belongs to 32bit callers. 64bit callers use the (differently
// shaped) 64bit layout regardless of the bit-width of the target thread.
//
// DO NOT REORDER
type Context struct {
	ContextFlags uint32

	Dr0 uint32
	Dr1 uint32
	Dr2 uint32
	Dr3 uint32
	Dr6 uint32
	Dr7 uint32

	FloatSave FloatSaveArea

	SegGs uint32
	SegFs uint32
	SegEs uint32
	SegDs uint32

	Edi uint32
	Esi uint32
	Ebx uint32
	Edx uint32
	Ecx uint32
	Eax uint32

	Ebp    uint32
	Eip    uint32
	SegCs  uint32
	EFlags uint32
	Esp    uint32
	SegSs  uint32

	ExtendedRegisters [512]byte
}

// GetThreadContext Windows API Call
//
//	Retrieves the context of the specified thread. Set the 'ContextFlags'
//	field of the supplied Context to the register groups to be read before
//	calling. The thread should be suspended for the result to be coherent.
//
// https://docs.microsoft.com/en-us/windows/win32/api/processthreadsapi/nf-processthreadsapi-getthreadcontext
//
// Re-targeted to use 'NtGetContextThread' instead.
// https://learn.microsoft.com/en-us/windows-hardware/drivers/ddi/ntddk/nf-ntddk-zwgetcontextthread
func GetThreadContext(h uintptr, c *Context) error {
	if r, _, _ := syscallN(funcNtGetContextThread.address(), h, uintptr(unsafe.Pointer(c))); r > 0 {
		return formatNtError(r)
	}
	return nil
}

// SetThreadContext Windows API Call
//
//	Sets the context for the specified thread. Only the register groups
//	selected by the 'ContextFlags' field are written. The thread should be
//	suspended during the write.
//
// https://docs.microsoft.com/en-us/windows/win32/api/processthreadsapi/nf-processthreadsapi-setthreadcontext
//
// Re-targeted to use 'NtSetContextThread' instead.
// https://learn.microsoft.com/en-us/windows-hardware/drivers/ddi/ntddk/nf-ntddk-zwsetcontextthread
func SetThreadContext(h uintptr, c *Context) error {
	if r, _, _ := syscallN(funcNtSetContextThread.address(), h, uintptr(unsafe.Pointer(c))); r > 0 {
		return formatNtError(r)
	}
	return nil
}
