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

package cpu

import (
	"github.com/jetsetilly/gopher8/curated"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// VF is the index of the flag register. It receives the carry, borrow,
// shifted-out and collision outcomes of the instructions that produce one.
const VF = 0x0f

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// error patterns returned by the cpu package.
const (
	StackOverflow  = "cpu: stack overflow (%d calls without return)"
	StackUnderflow = "cpu: stack underflow (return with no caller)"
)

// push the current value of PC onto the call stack.
func (mc *CPU) push() error {
	if mc.SP >= StackDepth {
		return curated.Errorf(StackOverflow, StackDepth)
	}
	mc.Stack[mc.SP] = mc.PC
	mc.SP++
	return nil
}

// pop the call stack into PC.
func (mc *CPU) pop() error {
	if mc.SP == 0 {
		return curated.Errorf(StackUnderflow)
	}
	mc.SP--
	mc.PC = mc.Stack[mc.SP]
	return nil
}
