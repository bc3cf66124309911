//go:build !bugs
// +build !bugs

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

package bugtrack

// Enabled indicates if debug tracing was compiled in.
//
// This is true only when the "bugs" build tag is used.
const Enabled = false

// Track writes a trace entry to the bug log. Arguments follow the
// 'fmt.Sprintf' convention.
//
// Without the "bugs" build tag this is an empty stub.
func Track(_ string, _ ...interface{}) {}

// Recover is a deferred guard that logs a panic with its stack trace before
// letting execution continue.
//
// Without the "bugs" build tag this is an empty stub.
func Recover(_ string) {}
