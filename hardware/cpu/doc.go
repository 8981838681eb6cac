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

// Package cpu implements the register file and the execution engine of the
// CHIP-8. Decoding of opcodes is handled by the instructions sub-package;
// this package applies the decoded operation to the machine state.
//
// The ExecuteInstruction() function performs one complete
// fetch-decode-execute pass and returns the time consumed by the
// instruction. It is the only place the machine state is mutated during
// emulation. Non-flow instructions advance PC by one instruction width;
// jumps, calls, returns and skips set it explicitly.
//
// Flag conventions for the VF register follow the original COSMAC VIP
// interpreter: VF is 1 after addition that carries, 1 after subtraction that
// does NOT borrow, holds the shifted-out bit after shifts, and is 1 after a
// draw that unset at least one pixel. VF is written after the operation's
// result so the flag survives an instruction that targets VF itself.
package cpu
