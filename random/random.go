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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Tick is how the random package measures time within the emulation. The
// hardware package implements it as the count of executed instructions.
type Tick interface {
	Tick() int64
}

// Random is a random number generator that is sensitive to time within the
// emulation, rather than to the host clock alone. Two machines at the same
// emulation tick with the same seed policy draw the same numbers.
type Random struct {
	tick Tick

	// use the zero seed rather than the random base seed. only really useful
	// for tests, where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(tick Tick) *Random {
	return &Random{
		tick: tick,
	}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(rnd.tick.Tick()))
	}
	return rand.New(rand.NewSource(baseSeed + rnd.tick.Tick()))
}

// Intn returns a uniformly distributed value in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}
