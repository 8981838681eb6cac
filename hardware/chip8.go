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
	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/random"
)

// Chip8 is the main container for the emulated components of the machine.
type Chip8 struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Video  *video.Video
	Timer  *timer.Timer
	Random *random.Random

	// the cartridge most recently attached with AttachCartridge()
	cartload cartridgeloader.Loader

	// the accumulated time budget, in microseconds. see frame.go
	budget int

	// frame and instruction counts since the last reset
	frameNum      int
	instructionCt int64
}

// NewChip8 creates a new machine and everything associated with it. The
// machine is ready to use once a cartridge has been attached.
func NewChip8() *Chip8 {
	c8 := &Chip8{
		Mem:   memory.NewMemory(),
		Video: video.NewVideo(),
		Timer: timer.NewTimer(),
	}

	c8.Random = random.NewRandom(c8)
	c8.CPU = cpu.NewCPU(c8.Mem, c8.Video, c8.Timer, c8.Random)

	return c8
}

// Tick implements the random.Tick interface: the count of instructions
// executed since the last reset.
func (c8 *Chip8) Tick() int64 {
	return c8.instructionCt
}

// FrameNum returns the number of frames since the last reset.
func (c8 *Chip8) FrameNum() int {
	return c8.frameNum
}

// InstructionCt returns the number of instructions executed since the last
// reset.
func (c8 *Chip8) InstructionCt() int64 {
	return c8.instructionCt
}

// AttachCartridge loads the cartridge into the machine's memory and resets
// the machine. Loader errors (missing file, empty file, program too large)
// are returned as is; the machine is unusable until a good cartridge is
// attached.
func (c8 *Chip8) AttachCartridge(cartload cartridgeloader.Loader) error {
	if cartload.Data == nil {
		if err := cartload.Load(); err != nil {
			return err
		}
	}

	c8.cartload = cartload

	logger.Logf("cartridge", "%s (SHA1 %s)", cartload.ShortName(), cartload.Hash)

	return c8.Reset()
}

// Reset the machine: registers to their initial state, memory above the
// reserved area cleared, the attached cartridge reloaded into memory and the
// display cleared.
func (c8 *Chip8) Reset() error {
	c8.Mem.Reset()

	if c8.cartload.Data != nil {
		if err := c8.Mem.LoadProgram(c8.cartload.Data); err != nil {
			return err
		}
	}

	c8.CPU.Reset()
	c8.Video.Clear()
	c8.Timer.Reset()

	c8.budget = 0
	c8.frameNum = 0
	c8.instructionCt = 0

	return nil
}
