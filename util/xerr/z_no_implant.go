//go:build !implant
// +build !implant

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
	Concat = true
	// ExtendedInfo is a compile time constant that indicates if error values
	// may carry extra context, such as file paths or names.
	//
	// False under the "implant" build tag, where strings are stripped.
	ExtendedInfo = true
)

type strErr string
type wrapErr struct {
	e error
	s string
}

// New creates a new string backed error value and returns it.
//
// Errors created by this function do not support unwrapping and are directly
// comparable.
func New(s string) error {
	return strErr(s)
}
func (e strErr) Error() string {
	return string(e)
}
func (e strErr) String() string {
	return string(e)
}
func (e wrapErr) Error() string {
	return e.s
}
func (e wrapErr) Unwrap() error {
	return e.e
}
func (e wrapErr) String() string {
	return e.s
}

// Sub creates a new string backed error value and returns it.
//
// When the "implant" build tag is used, the second argument, the error code,
// is used instead of the string, which is dropped. Without the tag the code
// is ignored.
//
// Errors created by this function are directly comparable.
func Sub(s string, _ uint8) error {
	return strErr(s)
}

// Wrap creates a new error that wraps the supplied error.
//
// If not nil, the wrapped error's 'Error()' value is appended to the new
// message after ": " and is kept for 'errors.Unwrap'.
//
// When the "implant" build tag is used, the wrapped error is returned as-is
// and the message is dropped.
func Wrap(s string, e error) error {
	if e != nil {
		return &wrapErr{s: s + ": " + e.Error(), e: e}
	}
	return &wrapErr{s: s}
}
