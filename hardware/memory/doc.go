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

// Package memory implements the 4096 bytes of addressable memory in the
// CHIP-8 machine.
//
// The memory map is simple. Addresses below OriginAddr (0x200) are reserved:
// on the original hardware the interpreter lived there and on this emulation
// the area holds only the built-in font set, at FontOriginAddr. The program
// is copied to OriginAddr at load time and everything from there up is plain
// working storage, mutated only by the store class of instructions.
//
// All access is bounds checked. Addresses never wrap; an out of range access
// is returned as an error because it can only mean a malformed program or a
// bug in the execution engine.
package memory
