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
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	_ "unsafe"

	"github.com/iDigitalFlame/xthread/util/xerr"
)

const errPending = syscall.Errno(997)

var (
	dllNtdll    = &lazyDLL{Name: "ntdll.dll"}
	dllKernel32 = &lazyDLL{Name: "kernel32.dll"}
	dllAdvapi32 = &lazyDLL{Name: "advapi32.dll"}
)

type lazyDLL struct {
	_    [0]func()
	Name string
	lock sync.Mutex
	addr uintptr
}
type lazyProc struct {
	_    [0]func()
	lock sync.Mutex
	dll  *lazyDLL
	Name string
	addr uintptr
}

func (d *lazyDLL) load() error {
	if atomic.LoadUintptr(&d.addr) > 0 {
		return nil
	}
	if d.lock.Lock(); d.addr > 0 {
		d.lock.Unlock()
		return nil
	}
	h, err := loadDLL(d.Name)
	if err == nil {
		atomic.StoreUintptr(&d.addr, h)
	}
	d.lock.Unlock()
	return err
}
func (p *lazyProc) find() error {
	if atomic.LoadUintptr(&p.addr) > 0 {
		return nil
	}
	var err error
	if p.lock.Lock(); p.addr == 0 {
		if err = p.dll.load(); err == nil {
			var h uintptr
			if h, err = findProc(p.dll.addr, p.Name, p.dll.Name); err == nil {
				atomic.StoreUintptr(&p.addr, h)
			}
		}
	}
	p.lock.Unlock()
	return err
}
func (p *lazyProc) address() uintptr {
	if err := p.find(); err != nil {
		panic(err.Error())
	}
	return p.addr
}
func unboxError(e syscall.Errno) error {
	switch e {
	case 0:
		return syscall.EINVAL
	case 997:
		return errPending
	}
	return e
}
func loadDLL(s string) (uintptr, error) {
	n, err := UTF16PtrFromString(s)
	if err != nil {
		return 0, err
	}
	h, e := syscallLoadLibrary(n)
	if e != 0 {
		if xerr.ExtendedInfo {
			return 0, xerr.Wrap(`cannot load DLL "`+s+`"`, e)
		}
		return 0, xerr.Wrap("cannot load DLL", e)
	}
	return h, nil
}
func byteSlicePtr(s string) (*byte, error) {
	if strings.IndexByte(s, 0) != -1 {
		return nil, syscall.EINVAL
	}
	a := make([]byte, len(s)+1)
	copy(a, s)
	return &a[0], nil
}
func (d *lazyDLL) proc(n string) *lazyProc {
	return &lazyProc{Name: n, dll: d}
}
func findProc(h uintptr, s, n string) (uintptr, error) {
	p, err := byteSlicePtr(s)
	if err != nil {
		return 0, err
	}
	a, e := syscallGetProcAddress(h, p)
	if e != 0 {
		if xerr.ExtendedInfo {
			return 0, xerr.Wrap(`cannot load DLL "`+n+`" function "`+s+`"`, e)
		}
		return 0, xerr.Wrap("cannot load DLL function", e)
	}
	return a, nil
}

//go:linkname syscallLoadLibrary syscall.loadlibrary
func syscallLoadLibrary(n *uint16) (uintptr, syscall.Errno)

//go:linkname syscallGetProcAddress syscall.getprocaddress
func syscallGetProcAddress(h uintptr, n *uint8) (uintptr, syscall.Errno)
