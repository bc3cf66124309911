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

// Package bugtrack is the debug tracing sink for the rest of the module. When
// built with the "bugs" tag it opens a trace-level logger writing both to
// Standard Error and to "xthread-<PID>.log" in the OS temporary directory.
//
// Without the tag every function is an empty stub and the 'Enabled' constant
// folds all call sites away at compile time.
package bugtrack
