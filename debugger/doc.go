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

// Package debugger is a terminal based debugging frontend for the emulation.
// It supports single stepping, breakpoints and inspection of the machine
// state (registers, memory, display buffer and program disassembly).
//
// The debugger runs the machine headless. The keypad is presented to the
// running program as having no keys pressed; a program waiting on a
// keypress will spin in place, which is visible with the STEP command.
package debugger
