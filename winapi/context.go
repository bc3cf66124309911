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

// The register snapshot wire layout is fixed by the bit width of the calling
// process, NOT the target Thread. A 32-bit build always speaks the 32-bit
// layout, even to 64-bit targets, which is the kernel contract for this
// information class. Each supported architecture supplies its own 'Context'
// struct and flag constants in a per-arch file, additional families slot in
// the same way instead of falling through to a default.

// contextAlign returns the byte offset that must be added to the supplied
// address so the 64-bit Context layout starts on a 16 byte boundary. Zero is
// returned for addresses already aligned, everything else lands in 1..15 and
// always fits inside the 16 bytes of slack allocated with the struct.
func contextAlign(p uintptr) uintptr {
	if r := p & 0xF; r != 0 {
		return 16 - r
	}
	return 0
}
