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

package xthread

import (
	"encoding/json"
	"testing"

	"github.com/iDigitalFlame/xthread/util/xerr"
	"github.com/iDigitalFlame/xthread/winapi"
)

func TestCurrent(t *testing.T) {
	v := Current()
	if !v.IsPseudo() {
		t.Fatalf("TestCurrent(): Current did not return a pseudo handle Thread!")
	}
	if s := v.String(); s != "Thread[current]" {
		t.Fatalf("TestCurrent(): String result %q did not match %q!", s, "Thread[current]")
	}
	if err := v.Close(); err != nil {
		t.Fatalf("TestCurrent(): Close returned an unexpected error %q!", err.Error())
	}
	if !v.IsPseudo() {
		t.Fatalf("TestCurrent(): Close invalidated the pseudo handle!")
	}
}
func TestThreadFill(t *testing.T) {
	var (
		c int
		v = &Thread{h: 0xBEEF}
		q = func() (winapi.ThreadBasicInfo, error) {
			c++
			return winapi.ThreadBasicInfo{TEB: 0x7FFE1000, TID: 0x1A2B, PID: 0x3C4D, ExitStatus: 0x103, Priority: 10, BasePriority: 8}, nil
		}
	)
	for i := 0; i < 5; i++ {
		if err := v.fill(q); err != nil {
			t.Fatalf("TestThreadFill(): fill returned an unexpected error %q!", err.Error())
		}
	}
	if c != 1 {
		t.Fatalf("TestThreadFill(): Query ran %d times instead of once!", c)
	}
	if v.i.TID != 0x1A2B || v.i.PID != 0x3C4D || v.i.TEB != 0x7FFE1000 {
		t.Fatalf("TestThreadFill(): Cached identity %d/%d did not match the query result!", v.i.TID, v.i.PID)
	}
	if v.i.Priority != 10 || v.i.BasePriority != 8 {
		t.Fatalf("TestThreadFill(): Cached priorities %d/%d did not match the query result!", v.i.Priority, v.i.BasePriority)
	}
}
func TestThreadFillError(t *testing.T) {
	var (
		c, f int
		e    = xerr.New("query failed")
		v    = &Thread{h: 0xBEEF}
	)
	if err := v.fill(func() (winapi.ThreadBasicInfo, error) { f++; return winapi.ThreadBasicInfo{}, e }); err != e {
		t.Fatalf("TestThreadFillError(): fill did not return the query error!")
	}
	if err := v.fill(func() (winapi.ThreadBasicInfo, error) { c++; return winapi.ThreadBasicInfo{TID: 7}, nil }); err != nil {
		t.Fatalf("TestThreadFillError(): fill returned an unexpected error %q!", err.Error())
	}
	if f != 1 || c != 1 {
		t.Fatalf("TestThreadFillError(): Query counts %d/%d did not match 1/1!", f, c)
	}
	if v.i.TID != 7 {
		t.Fatalf("TestThreadFillError(): Failed query was cached instead of retried!")
	}
}
func TestThreadFillName(t *testing.T) {
	var (
		c int
		v = &Thread{i: winapi.ThreadBasicInfo{PID: 0x10}}
		q = func(p uint32) (string, error) {
			if c++; p != 0x10 {
				t.Fatalf("TestThreadFillName(): Lookup received PID %d instead of %d!", p, 0x10)
			}
			return "svchost.exe", nil
		}
	)
	if n := v.fillName(q); n != "svchost.exe" {
		t.Fatalf("TestThreadFillName(): Name result %q did not match %q!", n, "svchost.exe")
	}
	if n := v.fillName(q); n != "svchost.exe" {
		t.Fatalf("TestThreadFillName(): Cached name result %q did not match %q!", n, "svchost.exe")
	}
	if c != 1 {
		t.Fatalf("TestThreadFillName(): Lookup ran %d times instead of once!", c)
	}
}
func TestThreadFillNameError(t *testing.T) {
	var (
		c int
		e = xerr.New("open failed")
		v = &Thread{i: winapi.ThreadBasicInfo{PID: 0x10}}
	)
	if n := v.fillName(func(_ uint32) (string, error) { c++; return "", e }); len(n) > 0 {
		t.Fatalf("TestThreadFillNameError(): Failed lookup returned the name %q instead of an empty string!", n)
	}
	if n := v.fillName(func(_ uint32) (string, error) { c++; return "late.exe", nil }); len(n) > 0 {
		t.Fatalf("TestThreadFillNameError(): Failed lookup was retried and returned %q!", n)
	}
	if c != 1 {
		t.Fatalf("TestThreadFillNameError(): Lookup ran %d times instead of once!", c)
	}
}
func TestScopeRelease(t *testing.T) {
	var (
		r, c int
		s    = &ImpersonationScope{h: 0x42}
		rev  = func(h uintptr) error {
			if r++; h != 0x42 {
				t.Fatalf("TestScopeRelease(): Revert received handle 0x%X instead of 0x42!", h)
			}
			return nil
		}
		cls = func(h uintptr) error {
			if c++; h != 0x42 {
				t.Fatalf("TestScopeRelease(): Close received handle 0x%X instead of 0x42!", h)
			}
			return nil
		}
	)
	if err := s.release(rev, cls); err != nil {
		t.Fatalf("TestScopeRelease(): release returned an unexpected error %q!", err.Error())
	}
	if err := s.release(rev, cls); err != nil {
		t.Fatalf("TestScopeRelease(): Second release returned an unexpected error %q!", err.Error())
	}
	if r != 1 || c != 1 {
		t.Fatalf("TestScopeRelease(): Revert ran %d times and close ran %d times instead of once each!", r, c)
	}
	var n *ImpersonationScope
	if err := n.release(rev, cls); err != nil {
		t.Fatalf("TestScopeRelease(): Nil receiver release returned an unexpected error %q!", err.Error())
	}
	if r != 1 || c != 1 {
		t.Fatalf("TestScopeRelease(): Nil receiver release was not a NOP!")
	}
}
func TestScopeReleaseError(t *testing.T) {
	var (
		c int
		e = xerr.New("revert failed")
		s = &ImpersonationScope{h: 0x42}
	)
	if err := s.release(func(_ uintptr) error { return e }, func(_ uintptr) error { c++; return nil }); err != e {
		t.Fatalf("TestScopeReleaseError(): release did not return the revert error!")
	}
	if c != 1 {
		t.Fatalf("TestScopeReleaseError(): Handle was not closed after a failed revert!")
	}
	if err := s.release(func(_ uintptr) error { return e }, func(_ uintptr) error { c++; return nil }); err != nil {
		t.Fatalf("TestScopeReleaseError(): Second release returned an unexpected error %q!", err.Error())
	}
	if c != 1 {
		t.Fatalf("TestScopeReleaseError(): Second release was not a NOP!")
	}
}
func TestScopeCreate(t *testing.T) {
	var (
		c      int
		i      = "process"
		s, err = newScope(
			func() (uintptr, error) { return 0x33, nil },
			func(h uintptr) error {
				if h != 0x33 {
					t.Fatalf("TestScopeCreate(): Setter received handle 0x%X instead of 0x33!", h)
				}
				i = "impersonated"
				return nil
			},
			func(_ uintptr) error { c++; return nil },
		)
	)
	if err != nil {
		t.Fatalf("TestScopeCreate(): newScope returned an unexpected error %q!", err.Error())
	}
	if s == nil || s.h != 0x33 {
		t.Fatalf("TestScopeCreate(): Scope does not own the duplicated handle!")
	}
	if i != "impersonated" {
		t.Fatalf("TestScopeCreate(): Identity %q was not switched!", i)
	}
	if c != 0 {
		t.Fatalf("TestScopeCreate(): Duplicate was closed during a successful create!")
	}
	if err = s.release(func(_ uintptr) error { i = "process"; return nil }, func(_ uintptr) error { c++; return nil }); err != nil {
		t.Fatalf("TestScopeCreate(): release returned an unexpected error %q!", err.Error())
	}
	if i != "process" || c != 1 {
		t.Fatalf("TestScopeCreate(): Identity %q was not reverted or the handle leaked!", i)
	}
}
func TestScopeCreateFailure(t *testing.T) {
	var (
		c      int
		e      = xerr.New("setter failed")
		i      = "process"
		s, err = newScope(
			func() (uintptr, error) { return 0x33, nil },
			func(_ uintptr) error { return e },
			func(h uintptr) error {
				if c++; h != 0x33 {
					t.Fatalf("TestScopeCreateFailure(): Close received handle 0x%X instead of 0x33!", h)
				}
				return nil
			},
		)
	)
	if err != e {
		t.Fatalf("TestScopeCreateFailure(): newScope did not return the setter error!")
	}
	if s != nil {
		t.Fatalf("TestScopeCreateFailure(): newScope returned a scope after a failed setter!")
	}
	if c != 1 {
		t.Fatalf("TestScopeCreateFailure(): Duplicate was closed %d times instead of once!", c)
	}
	if i != "process" {
		t.Fatalf("TestScopeCreateFailure(): Identity %q changed during a failed create!", i)
	}
}
func TestScopeCreateDupFailure(t *testing.T) {
	var (
		c, x   int
		e      = xerr.New("duplicate failed")
		s, err = newScope(
			func() (uintptr, error) { return 0, e },
			func(_ uintptr) error { x++; return nil },
			func(_ uintptr) error { c++; return nil },
		)
	)
	if err != e {
		t.Fatalf("TestScopeCreateDupFailure(): newScope did not return the duplicate error!")
	}
	if s != nil {
		t.Fatalf("TestScopeCreateDupFailure(): newScope returned a scope after a failed duplicate!")
	}
	if x != 0 || c != 0 {
		t.Fatalf("TestScopeCreateDupFailure(): Setter or close ran after a failed duplicate!")
	}
}
func TestGather(t *testing.T) {
	var (
		e      []winapi.ThreadEntry
		denied = map[uint32]bool{11: true, 13: true, 22: true, 30: true, 32: true}
	)
	for p := uint32(1); p <= 3; p++ {
		for n := uint32(0); n < 4; n++ {
			e = append(e, winapi.ThreadEntry{TID: (p * 10) + n, PID: p * 100})
		}
	}
	o := gather(e, func(x winapi.ThreadEntry) (uintptr, error) {
		if denied[x.TID] {
			return 0, xerr.New("access denied")
		}
		return uintptr(x.TID) + 0x1000, nil
	})
	if len(o) != len(e)-len(denied) {
		t.Fatalf("TestGather(): Result count %d did not match %d!", len(o), len(e)-len(denied))
	}
	for i := range o {
		if denied[o[i].i.TID] {
			t.Fatalf("TestGather(): Denied Thread %d was not discarded!", o[i].i.TID)
		}
		if o[i].h != uintptr(o[i].i.TID)+0x1000 {
			t.Fatalf("TestGather(): Thread %d handle 0x%X was not the opened handle!", o[i].i.TID, o[i].h)
		}
		if o[i].i.PID != (o[i].i.TID/10)*100 {
			t.Fatalf("TestGather(): Thread %d was seeded with PID %d!", o[i].i.TID, o[i].i.PID)
		}
	}
}
func TestReleaseAll(t *testing.T) {
	var (
		c int
		l = []*Thread{{h: 0x1}, {h: 0x2}, {h: pseudoThread}, {h: 0}, {h: 0x5}}
	)
	releaseAll(l, func(_ uintptr) error { c++; return nil })
	if c != 3 {
		t.Fatalf("TestReleaseAll(): Closed %d handles instead of 3!", c)
	}
	if l[0].h != 0 || l[1].h != 0 || l[4].h != 0 {
		t.Fatalf("TestReleaseAll(): Open handles were not invalidated!")
	}
	if l[2].h != pseudoThread {
		t.Fatalf("TestReleaseAll(): Pseudo handle was closed!")
	}
}
func TestThreadString(t *testing.T) {
	v := &Thread{h: 0xA0, i: winapi.ThreadBasicInfo{TID: 4100, PID: 88}}
	if s := v.String(); s != "Thread[4100, 0xa0]" {
		t.Fatalf("TestThreadString(): String result %q did not match %q!", s, "Thread[4100, 0xa0]")
	}
	if s := (&Thread{h: 0xB1}).String(); s != "Thread[0xb1]" {
		t.Fatalf("TestThreadString(): Unseeded String result %q did not match %q!", s, "Thread[0xb1]")
	}
}
func TestThreadJSON(t *testing.T) {
	v := &Thread{h: 0xA0, i: winapi.ThreadBasicInfo{TID: 4100, PID: 88}}
	b, err := v.MarshalJSON()
	if err != nil {
		t.Fatalf("TestThreadJSON(): MarshalJSON returned an unexpected error %q!", err.Error())
	}
	if s := string(b); s != `{"handle":"0xa0","tid":4100,"pid":88}` {
		t.Fatalf("TestThreadJSON(): Seeded JSON %q did not match the expected output!", s)
	}
	v = &Thread{
		h:    0xA0,
		f:    flagInfo | flagName,
		i:    winapi.ThreadBasicInfo{TEB: 0x7FFE1000, TID: 4100, PID: 88, Priority: 10, BasePriority: 8},
		name: "winlogon.exe",
		desc: "worker",
	}
	if b, err = v.MarshalJSON(); err != nil {
		t.Fatalf("TestThreadJSON(): MarshalJSON returned an unexpected error %q!", err.Error())
	}
	x := `{"handle":"0xa0","tid":4100,"pid":88,"teb":"0x7ffe1000","priority":10,"base_priority":8,` +
		`"name":"winlogon.exe","description":"worker"}`
	if s := string(b); s != x {
		t.Fatalf("TestThreadJSON(): Full JSON %q did not match the expected output!", s)
	}
	v.name = `C:\Windows\"odd" name.exe`
	if b, err = v.MarshalJSON(); err != nil {
		t.Fatalf("TestThreadJSON(): MarshalJSON returned an unexpected error %q!", err.Error())
	}
	if !json.Valid(b) {
		t.Fatalf("TestThreadJSON(): Escaped JSON %q is not valid JSON!", string(b))
	}
}
