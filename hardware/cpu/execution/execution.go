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

// Package execution records the result of a single pass through the CPU's
// fetch-decode-execute cycle. Used by the debugger and the disassembler;
// nothing in the emulation itself depends on it.
package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Result records a single execution of the CPU.
type Result struct {
	// the address the instruction was fetched from
	Address uint16

	// the decoded instruction
	Instruction instructions.Instruction

	// the time consumed by the instruction, in microseconds
	Cost int

	// whether the result describes a real execution. false immediately after
	// a reset, before any instruction has run
	Valid bool
}

func (r Result) String() string {
	if !r.Valid {
		return "no execution"
	}
	return fmt.Sprintf("$%03x %04x %s", r.Address, r.Instruction.Opcode, r.Instruction.Mnemonic())
}

// Reset the result to the invalid state.
func (r *Result) Reset() {
	*r = Result{}
}
