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

// ThreadBasicInfo is the parsed result of a thread basic information query.
//
// All fields are captured by a single kernel call.
type ThreadBasicInfo struct {
	TEB          uintptr
	TID, PID     uint32
	ExitStatus   uint32
	Priority     int32
	BasePriority int32
}

// DO NOT REORDER
//
//	typedef struct _UNICODE_STRING {
//	  USHORT Length;
//	  USHORT MaximumLength;
//	  PWSTR  Buffer;
//	} UNICODE_STRING;
type unicodeString struct {
	Length, MaximumLength uint16
	Buffer                *uint16
}

// DO NOT REORDER
//
//	typedef struct _THREAD_LAST_SYSCALL_INFORMATION {
//	  PVOID   FirstArgument;
//	  USHORT  SystemCallNumber;
//	  USHORT  Pad[3];
//	  ULONG64 WaitTime;
//	} THREAD_LAST_SYSCALL_INFORMATION;
//
// The 'WaitTime' field only exists on newer kernel builds. Older kernels
// reject the wide shape with STATUS_INFO_LENGTH_MISMATCH and are retried
// with 'threadLastCallOld' instead.
type threadLastCall struct {
	Arg    uintptr
	CallID uint16
	_      [3]uint16
	Wait   uint64
}
type threadLastCallOld struct {
	Arg    uintptr
	CallID uint16
	_      [3]uint16
}

func (u *unicodeString) set(v []uint16) {
	// v must carry its terminating NUL, which is excluded from Length.
	u.Length, u.MaximumLength = uint16((len(v)-1)*2), uint16(len(v)*2)
	u.Buffer = &v[0]
}
func (u unicodeString) value() string {
	if u.Buffer == nil || u.Length == 0 {
		return ""
	}
	var s []uint16
	h := (*sliceHeader)(unsafe.Pointer(&s))
	h.Data, h.Len, h.Cap = unsafe.Pointer(u.Buffer), int(u.Length/2), int(u.Length/2)
	return UTF16ToString(s)
}

// lastSystemCall issues the supplied query with the wide syscall-info shape
// first and falls back to the legacy fixed shape when the kernel reports a
// size mismatch. Both shapes must stay in place, older kernels only answer
// the legacy one.
//
// The returned values are the syscall number, its first argument and the
// raw NTSTATUS (zero on success).
func lastSystemCall(q func(p unsafe.Pointer, n uint32) uintptr) (uint32, uintptr, uintptr) {
	var c threadLastCall
	switch r := q(unsafe.Pointer(&c), uint32(unsafe.Sizeof(c))); r {
	case 0:
		return uint32(c.CallID), c.Arg, 0
	case 0xC0000004: // 0xC0000004 - STATUS_INFO_LENGTH_MISMATCH
		var o threadLastCallOld
		if r = q(unsafe.Pointer(&o), uint32(unsafe.Sizeof(o))); r == 0 {
			return uint32(o.CallID), o.Arg, 0
		}
		return 0, 0, r
	default:
		return 0, 0, r
	}
}
