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

import "testing"

func TestContextAlign(t *testing.T) {
	for i := uintptr(0); i < 64; i++ {
		var (
			a = uintptr(0x7FF4A000) + i
			o = contextAlign(a)
		)
		if o > 15 {
			t.Fatalf(`contextAlign offset %d for address 0x%X should not be larger than 15!`, o, a)
		}
		if (a+o)%16 != 0 {
			t.Fatalf(`contextAlign address 0x%X for address 0x%X is not 16 byte aligned!`, a+o, a)
		}
		if a%16 == 0 && o != 0 {
			t.Fatalf(`contextAlign offset %d for the aligned address 0x%X should be zero!`, o, a)
		}
	}
}
