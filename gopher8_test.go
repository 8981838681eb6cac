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

package main_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/keypad"
)

func BenchmarkFrame(b *testing.B) {
	// a busy little program: count in V0 and redraw the corresponding font
	// glyph forever
	cartload := cartridgeloader.Loader{
		Filename: "benchmark.ch8",
		Data: []uint8{
			0x70, 0x01, // ADD V0, $01
			0xf0, 0x29, // LD F, V0
			0xd1, 0x25, // DRW V1, V2, $5
			0x12, 0x00, // JP $200
		},
	}

	c8 := hardware.NewChip8()
	c8.Random.ZeroSeed = true

	if err := c8.AttachCartridge(cartload); err != nil {
		b.Fatal(err)
	}

	var keys keypad.State

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if err := c8.Frame(keys); err != nil {
			b.Fatal(err)
		}
	}
}
