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

// Package keypad describes the state of the CHIP-8's 16 key keypad.
//
// The emulation core never polls input itself. The frontend builds a State
// value once per frame and passes it to the Frame() function of the hardware
// package; the core reads it during that frame and retains nothing.
package keypad

// NumKeys is the number of keys on the keypad, labelled 0 to F.
const NumKeys = 16

// State is the set of currently pressed keys, one bit per key.
type State uint16

// Press the numbered key. Keys outside the keypad are ignored.
func (s *State) Press(key uint8) {
	if key < NumKeys {
		*s |= 1 << key
	}
}

// Release the numbered key. Keys outside the keypad are ignored.
func (s *State) Release(key uint8) {
	if key < NumKeys {
		*s &^= 1 << key
	}
}

// IsPressed returns true if the numbered key is currently down.
func (s State) IsPressed(key uint8) bool {
	return key < NumKeys && s&(1<<key) != 0
}

// AnyPressed returns the lowest numbered key currently down, if any.
func (s State) AnyPressed() (uint8, bool) {
	for k := uint8(0); k < NumKeys; k++ {
		if s.IsPressed(k) {
			return k, true
		}
	}
	return 0, false
}
