//go:build implant
// +build implant

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

package xerr

const (
	// Concat is a compile time constant that indicates if error strings may
	// be built up using inline string concatenation.
	//
	// False under the "implant" build tag, where strings are stripped.
	Concat = false
	// ExtendedInfo is a compile time constant that indicates if error values
	// may carry extra context, such as file paths or names.
	//
	// False under the "implant" build tag, where strings are stripped.
	ExtendedInfo = false

	table = "0123456789ABCDEF"
)

type numErr uint8

// New creates a new error value and returns it.
//
// Under the "implant" build tag the string is dropped at compile time and
// every error from this function shares the zero code. Use 'Sub' when the
// resulting error must stay distinguishable.
func New(_ string) error {
	return numErr(0)
}
func (e numErr) Error() string {
	if e < 0x10 {
		return "0x" + table[e&0xF:(e&0xF)+1]
	}
	return "0x" + table[e>>4:(e>>4)+1] + table[e&0xF:(e&0xF)+1]
}
func (e numErr) String() string {
	return e.Error()
}

// Sub creates a new error value from the supplied error code and returns it.
//
// When the "implant" build tag is used, the string argument is dropped at
// compile time and only the code survives.
//
// Errors created by this function are directly comparable.
func Sub(_ string, c uint8) error {
	return numErr(c)
}

// Wrap creates a new error that wraps the supplied error.
//
// Under the "implant" build tag the message is dropped at compile time and
// the wrapped error is returned directly.
func Wrap(_ string, e error) error {
	return e
}
