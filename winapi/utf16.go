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
	"syscall"
	"unsafe"
)

const (
	utfSelf        = 0x10000
	utfSurgA       = 0xD800
	utfSurgB       = 0xDC00
	utfSurgC       = 0xE000
	utfRuneMax     = '\U0010FFFF'
	utfReplacement = '�'
)

type sliceHeader struct {
	Data unsafe.Pointer
	Len  int
	Cap  int
}

// UTF16Decode returns the Unicode code point sequence represented by the
// supplied UTF-16 rune values. Decoding stops at the first zero word.
func UTF16Decode(s []uint16) []rune {
	var (
		b = make([]rune, len(s))
		n int
	)
loop:
	for i := 0; i < len(s); i++ {
		switch r := s[i]; {
		case r == 0:
			break loop
		case r < utfSurgA, utfSurgC <= r:
			b[n] = rune(r)
		case utfSurgA <= r && r < utfSurgB && i+1 < len(s) && utfSurgB <= s[i+1] && s[i+1] < utfSurgC:
			b[n] = (rune(r)-utfSurgA)<<10 | (rune(s[i+1]) - utfSurgB) + utfSelf
			i++
		default:
			b[n] = utfReplacement
		}
		n++
	}
	return b[:n]
}

// UTF16ToString returns the UTF-8 encoding of the UTF-16 sequence s, with a
// terminating NUL and any words after it removed.
func UTF16ToString(s []uint16) string {
	return string(UTF16Decode(s))
}
func utf16Encode(s []rune) ([]uint16, error) {
	n := len(s)
	for i := range s {
		if s[i] == 0 && i+1 < len(s) {
			return nil, syscall.EINVAL
		}
		if s[i] >= utfSelf {
			n++
		}
	}
	var (
		b = make([]uint16, n)
		i int
	)
	for n = 0; i < len(s); i++ {
		switch {
		case 0 <= s[i] && s[i] < utfSurgA, utfSurgC <= s[i] && s[i] < utfSelf:
			b[n] = uint16(s[i])
			n++
		case utfSelf <= s[i] && s[i] <= utfRuneMax:
			r := s[i] - utfSelf
			b[n] = uint16(utfSurgA + (r>>10)&0x3FF)
			b[n+1] = uint16(utfSurgB + r&0x3FF)
			n += 2
		default:
			b[n] = uint16(utfReplacement)
			n++
		}
	}
	return b[:n], nil
}

// UTF16FromString returns the UTF-16 encoding of the UTF-8 string with a
// terminating NUL added.
//
// If the string contains a NUL byte at any location, this function returns
// syscall.EINVAL.
func UTF16FromString(s string) ([]uint16, error) {
	if len(s) == 0 {
		return []uint16{0}, nil
	}
	return utf16Encode([]rune(s + "\x00"))
}

// UTF16PtrToString takes a pointer to a NUL-terminated UTF-16 sequence and
// returns the corresponding UTF-8 encoded string.
//
// If the pointer is nil, it returns the empty string. The sequence must be
// terminated at a zero word, otherwise the program may crash.
func UTF16PtrToString(p *uint16) string {
	if p == nil || *p == 0 {
		return ""
	}
	n := 0
	for ptr := unsafe.Pointer(p); *(*uint16)(ptr) != 0; n++ {
		ptr = unsafe.Pointer(uintptr(ptr) + unsafe.Sizeof(*p))
	}
	var s []uint16
	h := (*sliceHeader)(unsafe.Pointer(&s))
	h.Data, h.Len, h.Cap = unsafe.Pointer(p), n, n
	return string(UTF16Decode(s))
}

// UTF16PtrFromString returns a pointer to the UTF-16 encoding of the UTF-8
// string, with a terminating NUL added.
//
// If the string contains a NUL byte at any location, this function returns
// syscall.EINVAL.
func UTF16PtrFromString(s string) (*uint16, error) {
	a, err := UTF16FromString(s)
	if err != nil {
		return nil, err
	}
	return &a[0], nil
}
