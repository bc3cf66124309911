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
	"testing"
	"unsafe"
)

func TestLastSystemCall(t *testing.T) {
	var c int
	n, a, r := lastSystemCall(func(p unsafe.Pointer, s uint32) uintptr {
		if c++; s != uint32(unsafe.Sizeof(threadLastCall{})) {
			t.Fatalf(`lastSystemCall first query size %d should be the extended size %d!`, s, unsafe.Sizeof(threadLastCall{}))
		}
		v := (*threadLastCall)(p)
		v.Arg, v.CallID = 0xDEAD, 0x1C
		return 0
	})
	if c != 1 {
		t.Fatalf(`lastSystemCall made %d queries when one should be enough!`, c)
	}
	if r > 0 {
		t.Fatalf(`lastSystemCall returned the status 0x%X when it should be zero!`, r)
	}
	if n != 0x1C || a != 0xDEAD {
		t.Fatalf(`lastSystemCall result %d/0x%X does not match 28/0xDEAD!`, n, a)
	}
}
func TestLastSystemCallFallback(t *testing.T) {
	var c int
	n, a, r := lastSystemCall(func(p unsafe.Pointer, s uint32) uintptr {
		if c++; c == 1 {
			// 0xC0000004 - STATUS_INFO_LENGTH_MISMATCH
			return 0xC0000004
		}
		if s != uint32(unsafe.Sizeof(threadLastCallOld{})) {
			t.Fatalf(`lastSystemCall retry query size %d should be the legacy size %d!`, s, unsafe.Sizeof(threadLastCallOld{}))
		}
		v := (*threadLastCallOld)(p)
		v.Arg, v.CallID = 0xBEEF, 0x55
		return 0
	})
	if c != 2 {
		t.Fatalf(`lastSystemCall made %d queries when the legacy retry needs two!`, c)
	}
	if r > 0 {
		t.Fatalf(`lastSystemCall returned the status 0x%X when the legacy retry succeeded!`, r)
	}
	if n != 0x55 || a != 0xBEEF {
		t.Fatalf(`lastSystemCall result %d/0x%X does not match 85/0xBEEF!`, n, a)
	}
}
func TestLastSystemCallError(t *testing.T) {
	if _, _, r := lastSystemCall(func(_ unsafe.Pointer, _ uint32) uintptr {
		// 0xC0000022 - STATUS_ACCESS_DENIED
		return 0xC0000022
	}); r != 0xC0000022 {
		t.Fatalf(`lastSystemCall status 0x%X does not match the query status 0xC0000022!`, r)
	}
	var c int
	if _, _, r := lastSystemCall(func(_ unsafe.Pointer, _ uint32) uintptr {
		if c++; c == 1 {
			// 0xC0000004 - STATUS_INFO_LENGTH_MISMATCH
			return 0xC0000004
		}
		// 0xC0000022 - STATUS_ACCESS_DENIED
		return 0xC0000022
	}); r != 0xC0000022 {
		t.Fatalf(`lastSystemCall status 0x%X after a failed retry does not match 0xC0000022!`, r)
	}
}
func TestThreadName(t *testing.T) {
	v := [...]string{
		"",
		"worker-1",
		"überwacher",
		"main loop thread",
	}
	for i := range v {
		e, err := UTF16FromString(v[i])
		if err != nil {
			t.Fatalf(`UTF16FromString failed for string "%s": %s!`, v[i], err.Error())
		}
		var u unicodeString
		u.set(e)
		if k := u.value(); k != v[i] {
			t.Fatalf(`unicodeString value "%s" does not match "%s"!`, k, v[i])
		}
	}
	var z unicodeString
	if k := z.value(); k != "" {
		t.Fatalf(`unicodeString value "%s" for an empty struct should be empty!`, k)
	}
}
