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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/gui"

	"github.com/veandco/go-sdl2/sdl"
)

// keyMap translates host scancodes to keypad digits. The 4x4 keypad is
// mapped onto the left side of a QWERTY keyboard:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   ->   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var keyMap = map[sdl.Scancode]uint8{
	sdl.SCANCODE_1: 0x01, sdl.SCANCODE_2: 0x02, sdl.SCANCODE_3: 0x03, sdl.SCANCODE_4: 0x0c,
	sdl.SCANCODE_Q: 0x04, sdl.SCANCODE_W: 0x05, sdl.SCANCODE_E: 0x06, sdl.SCANCODE_R: 0x0d,
	sdl.SCANCODE_A: 0x07, sdl.SCANCODE_S: 0x08, sdl.SCANCODE_D: 0x09, sdl.SCANCODE_F: 0x0e,
	sdl.SCANCODE_Z: 0x0a, sdl.SCANCODE_X: 0x00, sdl.SCANCODE_C: 0x0b, sdl.SCANCODE_V: 0x0f,
}

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread.
func (scr *SdlPlay) Service() {
	if scr.eventChannel == nil {
		return
	}

	// loop until there are no more events to retrieve
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.eventChannel <- gui.Event{ID: gui.EventQuit}

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			if ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				if ev.Type == sdl.KEYDOWN {
					scr.eventChannel <- gui.Event{ID: gui.EventQuit}
				}
				continue
			}

			if key, ok := keyMap[ev.Keysym.Scancode]; ok {
				scr.eventChannel <- gui.Event{
					ID: gui.EventKeypad,
					Data: gui.EventDataKeypad{
						Key:  key,
						Down: ev.Type == sdl.KEYDOWN,
					},
				}
			}
		}
	}
}
