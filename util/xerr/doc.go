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

// Package xerr is a smaller, comparable-by-default replacement for the
// builtin "errors" package.
//
// Errors created here are plain values that can be compared directly and
// (when wrapping) support the standard 'errors.Unwrap' chain.
//
// When the "implant" build tag is used, error strings are dropped from the
// binary and only the numeric codes given to 'Sub' survive. Code that needs
// stable comparisons across both build modes should always use 'Sub'.
package xerr
