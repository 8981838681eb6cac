// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package disassembly produces a static listing of a CHIP-8 program.
//
// Because code and sprite data share the same address space and cannot be
// distinguished statically, every word in the program is decoded. Words that
// fail to decode are presented as raw data in the listing. Users of the
// package (the debugger in particular) should treat entries as advisory
// rather than authoritative.
package disassembly
