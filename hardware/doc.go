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

// Package hardware is the top-level package for the emulated components of
// the machine. The sub-packages emulate the individual components (cpu,
// memory, video, timer, keypad) while this package assembles them into a
// whole and provides the means of driving the emulation forward.
//
// The emulation is paced by a time budget rather than a cycle count. Every
// instruction has a cost in microseconds and the Frame() function executes
// instructions until one frame's worth of time (at 60Hz) has been spent.
// Overspend carries over so that average speed remains correct.
package hardware
