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

// Package gui defines the operations required of a graphical display for
// the emulation. The one concrete implementation is in the sdlplay
// sub-package.
package gui

import (
	"github.com/jetsetilly/gopher8/hardware/video"
)

// GUI defines the operations required of a graphical display.
type GUI interface {
	// Draw the contents of the display buffer to the screen.
	Draw(vid *video.Video) error

	// Beep turns the audible tone on or off. Called once per frame with
	// the current state of the sound timer.
	Beep(on bool)

	// Service the GUI event queue, forwarding events to the registered
	// event channel. Some platforms require that this is only ever called
	// from the main thread.
	Service()

	// SetEventChannel registers the channel to which user input events are
	// forwarded.
	SetEventChannel(chan Event)

	// Destroy releases all resources held by the GUI.
	Destroy()
}
