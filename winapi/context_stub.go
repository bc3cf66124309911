//go:build windows && !amd64 && !386
// +build windows,!amd64,!386

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

import "github.com/iDigitalFlame/xthread/util/xerr"

// Context flag values are zero on architectures without a register layout
// here. Context calls fail with 'ErrNoContext' instead of selecting a wrong
// shape silently.
const (
	ContextControl        = 0
	ContextInteger        = 0
	ContextSegments       = 0
	ContextFloatingPoint  = 0
	ContextDebugRegisters = 0
	ContextFull           = 0
	ContextAll            = 0
)

// ErrNoContext is returned by 'GetThreadContext' and 'SetThreadContext' on
// architectures that have no CONTEXT layout defined here yet (arm64 for
// example). A new layout file can slot in without changing any call sites.
var ErrNoContext = xerr.Sub("unsupported architecture", 0x1)

// Context is a placeholder for the register layout of architectures that do
// not have one defined here yet.
//
// DO NOT REORDER
type Context struct {
	ContextFlags uint32
}

// GetThreadContext Windows API Call
//
//	Retrieves the context of the specified thread.
//
// Always fails with 'ErrNoContext' on this architecture.
func GetThreadContext(_ uintptr, _ *Context) error {
	return ErrNoContext
}

// SetThreadContext Windows API Call
//
//	Sets the context for the specified thread.
//
// Always fails with 'ErrNoContext' on this architecture.
func SetThreadContext(_ uintptr, _ *Context) error {
	return ErrNoContext
}
