//go:build windows && amd64
// +build windows,amd64

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
	"runtime"
	"unsafe"
)

// Context flag values for the 64bit CONTEXT layout. These select which
// register groups the kernel reads or writes during a context call.
const (
	// ContextControl selects SegSs, Rsp, SegCs, Rip and EFlags.
	ContextControl = 0x100001
	// ContextInteger selects Rax through R15.
	ContextInteger = 0x100002
	// ContextSegments selects SegDs, SegEs, SegFs and SegGs.
	ContextSegments = 0x100004
	// ContextFloatingPoint selects the FltSave area.
	ContextFloatingPoint = 0x100008
	// ContextDebugRegisters selects Dr0 through Dr3, Dr6 and Dr7.
	ContextDebugRegisters = 0x100010
	// ContextFull is the standard Control, Integer and FloatingPoint
	// selection.
	ContextFull = ContextControl | ContextInteger | ContextFloatingPoint
	// ContextAll selects every register group.
	ContextAll = ContextFull | ContextSegments | ContextDebugRegisters
)

const contextSize = unsafe.Sizeof(Context{})

// M128A matches the M128A struct
//
//	https://learn.microsoft.com/en-us/windows/win32/api/winnt/ns-winnt-m128a
//
//	typedef struct _M128A {
//	  ULONGLONG Low;
//	  LONGLONG  High;
//	} M128A, *PM128A;
//
// DO NOT REORDER
type M128A struct {
	Low  uint64
	High int64
}

// XMMSaveArea32 matches the XMM_SAVE_AREA32 struct
//
//	https://learn.microsoft.com/en-us/windows/win32/api/winnt/ns-winnt-xsave_format
//
// DO NOT REORDER
type XMMSaveArea32 struct {
	ControlWord    uint16
	StatusWord     uint16
	TagWord        byte
	_              byte
	ErrorOpcode    uint16
	ErrorOffset    uint32
	ErrorSelector  uint16
	_              uint16
	DataOffset     uint32
	DataSelector   uint16
	_              uint16
	MxCsr          uint32
	MxCsrMask      uint32
	FloatRegisters [8]M128A
	XmmRegisters   [256]byte
	_              [96]byte
}

// Context matches the 64bit CONTEXT struct
//
//	https://learn.microsoft.com/en-us/windows/win32/api/winnt/ns-winnt-context
//
// The kernel requires instances of this struct to start on a 16 byte aligned
// address. The 'GetThreadContext' and 'SetThreadContext' functions re-home the
// struct inside a padded buffer before the call, so plain Go allocations of
// this type are safe to pass to them.
//
// This layout belongs to 64bit callers. 32bit callers use the (differently
// shaped) 32bit layout regardless of the bit-width of the target thread.
//
// DO NOT REORDER
type Context struct {
	P1Home uint64
	P2Home uint64
	P3Home uint64
	P4Home uint64
	P5Home uint64
	P6Home uint64

	ContextFlags uint32
	MxCsr        uint32

	SegCs  uint16
	SegDs  uint16
	SegEs  uint16
	SegFs  uint16
	SegGs  uint16
	SegSs  uint16
	EFlags uint32

	Dr0 uint64
	Dr1 uint64
	Dr2 uint64
	Dr3 uint64
	Dr6 uint64
	Dr7 uint64

	Rax uint64
	Rcx uint64
	Rdx uint64
	Rbx uint64
	Rsp uint64
	Rbp uint64
	Rsi uint64
	Rdi uint64
	R8  uint64
	R9  uint64
	R10 uint64
	R11 uint64
	R12 uint64
	R13 uint64
	R14 uint64
	R15 uint64

	Rip uint64

	FltSave XMMSaveArea32

	VectorRegister [26]M128A
	VectorControl  uint64

	DebugControl         uint64
	LastBranchToRip      uint64
	LastBranchFromRip    uint64
	LastExceptionToRip   uint64
	LastExceptionFromRip uint64
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
	var (
		b = make([]byte, contextSize+16)
		v = (*Context)(unsafe.Pointer(&b[contextAlign(uintptr(unsafe.Pointer(&b[0])))]))
	)
	*v = *c
	if r, _, _ := syscallN(funcNtGetContextThread.address(), h, uintptr(unsafe.Pointer(v))); r > 0 {
		return formatNtError(r)
	}
	*c = *v
	runtime.KeepAlive(b)
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
	var (
		b = make([]byte, contextSize+16)
		v = (*Context)(unsafe.Pointer(&b[contextAlign(uintptr(unsafe.Pointer(&b[0])))]))
	)
	*v = *c
	if r, _, _ := syscallN(funcNtSetContextThread.address(), h, uintptr(unsafe.Pointer(v))); r > 0 {
		return formatNtError(r)
	}
	runtime.KeepAlive(b)
	return nil
}
