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
	"strconv"
	"syscall"
)

// ntStatus is a raw kernel status code that has no Dos error mapping.
//
// These are returned as-is so callers can still compare the underlying
// status value.
type ntStatus uintptr

func (e ntStatus) Error() string {
	return "NTSTATUS 0x" + strconv.FormatUint(uint64(e), 16)
}

// formatNtError converts a NTSTATUS code into a standard Go error.
//
// Codes that have a Dos mapping are converted into their 'syscall.Errno'
// equivalent (which keeps comparisons against the 'Err*' constants working),
// anything else is wrapped as a raw status value.
func formatNtError(e uintptr) error {
	if r, _, _ := syscallN(funcRtlNtStatusToDosError.address(), e); r != 0x13D {
		// 0x13D - ERROR_MR_MID_NOT_FOUND
		return syscall.Errno(r)
	}
	return ntStatus(e)
}
