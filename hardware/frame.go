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

package hardware

import (
	"github.com/jetsetilly/gopher8/hardware/keypad"
)

// FrameBudget is the length of one frame in microseconds, assuming a 60Hz
// display.
const FrameBudget = 16667

// Frame advances the machine by one frame's worth of emulation. The delay
// and sound timers tick exactly once per call, before any instructions are
// executed.
//
// Each instruction has a time cost. Instructions execute until the frame's
// time budget is exhausted; any overspend is carried into the next frame,
// so a slow instruction near the end of a frame shortens the frame that
// follows.
//
// Execution errors end the frame immediately and are returned to the
// caller. The remaining budget is preserved.
func (c8 *Chip8) Frame(keys keypad.State) error {
	return c8.FrameWithHook(keys, nil)
}

// FrameWithHook is like Frame() but calls the hook function after every
// completed instruction. A hook return value of false ends the frame early
// with the remaining budget preserved; the debugger uses this to stop at
// breakpoints mid-frame. A nil hook is allowed.
func (c8 *Chip8) FrameWithHook(keys keypad.State, hook func() (bool, error)) error {
	c8.frameNum++
	c8.Timer.Step()

	c8.budget += FrameBudget

	for c8.budget > 0 {
		cost, err := c8.CPU.ExecuteInstruction(keys)
		if err != nil {
			return err
		}
		c8.instructionCt++
		c8.budget -= cost

		if hook != nil {
			cont, err := hook()
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
	}

	return nil
}

// Step advances the machine by a single instruction, charging its cost
// against the frame budget. Timers are not affected. Useful for a debugging
// loop that wants finer granularity than Frame().
func (c8 *Chip8) Step(keys keypad.State) error {
	cost, err := c8.CPU.ExecuteInstruction(keys)
	if err != nil {
		return err
	}
	c8.instructionCt++
	c8.budget -= cost
	return nil
}
