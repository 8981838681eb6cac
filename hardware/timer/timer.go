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

// Package timer implements the two 8 bit timers of the CHIP-8. Both count
// down towards zero at the frame rate (60Hz), independently of how many
// instructions execute in that time. The sound timer drives the beeper: a
// tone plays for as long as it is non-zero.
package timer

// Timer holds the delay and sound timers. Values are set and read by the
// timer instructions; the countdown is driven by the frame scheduler in the
// hardware package, which calls Step() exactly once per frame.
type Timer struct {
	Delay uint8
	Sound uint8
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	return &Timer{}
}

// Reset both timers to zero.
func (tmr *Timer) Reset() {
	tmr.Delay = 0
	tmr.Sound = 0
}

// Step decrements both timers by one, clamped at zero. Called once per frame
// regardless of how many instructions executed within it.
func (tmr *Timer) Step() {
	if tmr.Delay > 0 {
		tmr.Delay--
	}
	if tmr.Sound > 0 {
		tmr.Sound--
	}
}

// Beep returns true while the sound timer is non-zero.
func (tmr *Timer) Beep() bool {
	return tmr.Sound > 0
}
