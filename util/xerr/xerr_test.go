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

import (
	"errors"
	"io"
	"testing"
)

func TestNew(t *testing.T) {
	if v := New("error value 1").Error(); v != "error value 1" {
		t.Fatalf(`TestNew(): Error() result "%s" did not match the supplied string!`, v)
	}
	if New("same") != New("same") {
		t.Fatalf("TestNew(): Errors with the same string should be comparable!")
	}
}
func TestSub(t *testing.T) {
	if v := Sub("sub error", 0x40).Error(); v != "sub error" {
		t.Fatalf(`TestSub(): Error() result "%s" did not match the supplied string!`, v)
	}
	if Sub("sub error", 0x40) != Sub("sub error", 0x41) {
		t.Fatalf("TestSub(): Errors with the same string should be comparable without the implant tag!")
	}
}
func TestWrap(t *testing.T) {
	e := Wrap("outer", io.EOF)
	if v := e.Error(); v != "outer: EOF" {
		t.Fatalf(`TestWrap(): Error() result "%s" should be "outer: EOF"!`, v)
	}
	if !errors.Is(e, io.EOF) {
		t.Fatalf("TestWrap(): Wrapped error should unwrap to io.EOF!")
	}
	if v := Wrap("alone", nil).Error(); v != "alone" {
		t.Fatalf(`TestWrap(): Error() result "%s" should be "alone"!`, v)
	}
}
