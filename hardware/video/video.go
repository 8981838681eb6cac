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

package video

import "strings"

// Dimensions of the display in pixels.
const (
	Width  = 64
	Height = 32
)

// Video is the display buffer: a fixed grid of monochrome pixels. The only
// mutators are Clear() and DrawSprite(), matching the two instructions that
// can affect the display. Everything else, the renderer included, treats the
// buffer as read-only.
type Video struct {
	buffer [Height][Width]bool
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Clear unsets every pixel in the buffer.
func (vid *Video) Clear() {
	vid.buffer = [Height][Width]bool{}
}

// DrawSprite XORs the sprite into the buffer at coordinates x/y. Each byte
// of the sprite is one row of eight pixels, most significant bit leftmost.
// Coordinates wrap at the display edges, they are never clipped.
//
// Returns true if any previously lit pixel was unlit by the XOR - the
// collision condition.
func (vid *Video) DrawSprite(x uint8, y uint8, sprite []uint8) bool {
	collision := false

	for r, b := range sprite {
		py := (int(y) + r) % Height
		for c := 0; c < 8; c++ {
			if b&(0x80>>c) == 0 {
				continue
			}
			px := (int(x) + c) % Width
			if vid.buffer[py][px] {
				collision = true
			}
			vid.buffer[py][px] = !vid.buffer[py][px]
		}
	}

	return collision
}

// Pixel returns the state of the pixel at x/y: true is lit. Coordinates
// outside the grid are reported as unlit.
func (vid *Video) Pixel(x int, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return vid.buffer[y][x]
}

// String returns the buffer as line-oriented ascii art. Used by the
// debugger's DISPLAY command.
func (vid *Video) String() string {
	s := strings.Builder{}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if vid.buffer[y][x] {
				s.WriteRune('█')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}
