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

package video_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/test"
)

func TestDrawSprite(t *testing.T) {
	vid := video.NewVideo()

	// a single row of eight lit pixels
	collision := vid.DrawSprite(0, 0, []uint8{0xff})
	test.Equate(t, collision, false)
	for x := 0; x < 8; x++ {
		test.Equate(t, vid.Pixel(x, 0), true)
	}
	test.Equate(t, vid.Pixel(8, 0), false)
}

func TestDoubleDrawRestores(t *testing.T) {
	vid := video.NewVideo()

	sprite := []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0}

	collision := vid.DrawSprite(10, 5, sprite)
	test.Equate(t, collision, false)

	// drawing the identical sprite at the identical location reports a
	// collision and restores the pre-draw state
	collision = vid.DrawSprite(10, 5, sprite)
	test.Equate(t, collision, true)

	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			test.Equate(t, vid.Pixel(x, y), false)
		}
	}
}

func TestCoordinateWrap(t *testing.T) {
	vid := video.NewVideo()

	// a sprite drawn at the right edge wraps to the left, never clips
	collision := vid.DrawSprite(video.Width-2, video.Height-1, []uint8{0xc3, 0xc3})
	test.Equate(t, collision, false)

	test.Equate(t, vid.Pixel(video.Width-2, video.Height-1), true)
	test.Equate(t, vid.Pixel(video.Width-1, video.Height-1), true)
	test.Equate(t, vid.Pixel(4, video.Height-1), true)
	test.Equate(t, vid.Pixel(5, video.Height-1), true)

	// second row has wrapped to the top of the display
	test.Equate(t, vid.Pixel(video.Width-2, 0), true)
	test.Equate(t, vid.Pixel(4, 0), true)
}

func TestClear(t *testing.T) {
	vid := video.NewVideo()

	vid.DrawSprite(0, 0, []uint8{0xff, 0xff})
	vid.Clear()
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			test.Equate(t, vid.Pixel(x, y), false)
		}
	}
}

func TestPartialCollision(t *testing.T) {
	vid := video.NewVideo()

	vid.DrawSprite(0, 0, []uint8{0x80}) // single pixel at 0,0

	// overlaps only at 0,0. the pixel there is turned off, the rest on
	collision := vid.DrawSprite(0, 0, []uint8{0xc0})
	test.Equate(t, collision, true)
	test.Equate(t, vid.Pixel(0, 0), false)
	test.Equate(t, vid.Pixel(1, 0), true)
}
