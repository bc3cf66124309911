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

// ThreadEntry is the per-Thread struct passed to the user supplied callback
// during thread enumeration. It identifies the Thread and its owning Process
// and can be used to open a full Thread handle.
type ThreadEntry struct {
	_   [0]func()
	TID uint32
	PID uint32
	sus uint8
}

// ProcessEntry is the per-Process struct passed to the user supplied callback
// during process enumeration. It carries the image name and the Thread count
// captured at walk time.
type ProcessEntry struct {
	_       [0]func()
	Name    string
	PID     uint32
	PPID    uint32
	Threads uint32
}
