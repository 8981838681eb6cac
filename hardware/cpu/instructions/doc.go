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

// Package instructions defines every operation understood by the CHIP-8 and
// the Decode() function that maps a raw 16 bit opcode onto one of them.
//
// Decoding is pure and total. Every possible 16 bit value either decodes to
// an Instruction or results in an error created from the UnknownOpcode
// pattern. Decode() never panics and operand fields (register indices,
// addresses, immediate values) are extracted and validated here, meaning the
// execution engine in the cpu package can use them without further checks.
//
// Instruction timing is part of the definition. The Cost field of each
// Definition is the nominal execution time of that instruction class in
// microseconds, following the timings documented for the original COSMAC VIP
// interpreter. The hardware package uses these costs to pace the emulation.
package instructions
