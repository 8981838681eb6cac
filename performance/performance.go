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

// Package performance contains helper functions relating to performance.
//
// Check() runs the emulation headless and uncapped for a fixed duration of
// time, reporting the frame and instruction rates achieved and, optionally,
// generating CPU and memory profiles for use with pprof.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/keypad"
)

// PerfError is the error pattern for all errors originating in the
// performance package.
const PerfError = "performance: %v"

// frames of emulation between checks of the deadline. checking the clock
// after every frame is measurably expensive
const checkBrake = 100

// Check the performance of the emulator using the supplied cartridge.
//
// The machine runs headless, with no keypad input and with no frame rate
// cap, for the given duration. The resulting frame and instruction rates
// are written to output.
func Check(output io.Writer, cartload cartridgeloader.Loader, duration string, profileCPU bool, profileMem bool) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerfError, err)
	}

	if err := cartload.Load(); err != nil {
		return curated.Errorf(PerfError, err)
	}

	c8 := hardware.NewChip8()
	if err := c8.AttachCartridge(cartload); err != nil {
		return curated.Errorf(PerfError, err)
	}

	var elapsed time.Duration

	runner := func() error {
		var keys keypad.State

		start := time.Now()
		deadline := start.Add(dur)

		for {
			for i := 0; i < checkBrake; i++ {
				if err := c8.Frame(keys); err != nil {
					return err
				}
			}
			if time.Now().After(deadline) {
				elapsed = time.Since(start)
				return nil
			}
		}
	}

	err = profile(profileCPU, profileMem, runner)
	if err != nil {
		return curated.Errorf(PerfError, err)
	}

	secs := elapsed.Seconds()
	fmt.Fprintf(output, "%d frames in %.2fs (%.1f fps)\n",
		c8.FrameNum(), secs, float64(c8.FrameNum())/secs)
	fmt.Fprintf(output, "%d instructions (%.0f per second)\n",
		c8.InstructionCt(), float64(c8.InstructionCt())/secs)

	return nil
}
