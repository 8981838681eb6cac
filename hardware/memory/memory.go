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

package memory

import (
	"github.com/jetsetilly/gopher8/curated"
)

// MemorySize is the amount of addressable memory in the machine.
const MemorySize = 4096

// OriginAddr is the address at which program execution begins. Memory below
// this point is reserved; on the original hardware it held the interpreter
// itself.
const OriginAddr = 0x0200

// error patterns returned by the memory package.
const (
	AddressError    = "memory: illegal address (%#04x)"
	ProgramTooLarge = "memory: program too large (%d bytes, %d available)"
)

// Memory is the flat byte-addressable memory of the machine. It holds the
// font set, the loaded program and the program's working storage.
type Memory struct {
	internal [MemorySize]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The font set is written into the reserved area immediately.
func NewMemory() *Memory {
	mem := &Memory{}
	copy(mem.internal[FontOriginAddr:], fontData[:])
	return mem
}

// Reset clears all memory above the reserved area. The font set is
// untouched.
func (mem *Memory) Reset() {
	for i := OriginAddr; i < MemorySize; i++ {
		mem.internal[i] = 0
	}
}

// Read a single byte.
//
// An out of range address can never be the result of a correctly decoded
// instruction. If it occurs it indicates a malformed program or an engine
// bug, and is reported loudly rather than masked.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= len(mem.internal) {
		return 0, curated.Errorf(AddressError, address)
	}
	return mem.internal[address], nil
}

// Write a single byte.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= len(mem.internal) {
		return curated.Errorf(AddressError, address)
	}
	mem.internal[address] = data
	return nil
}

// ReadWord reads the 16 bit value at address. CHIP-8 words are big-endian:
// the high byte is at address and the low byte at address+1. Used for
// instruction fetch.
func (mem *Memory) ReadWord(address uint16) (uint16, error) {
	if int(address)+1 >= len(mem.internal) {
		return 0, curated.Errorf(AddressError, address)
	}
	return uint16(mem.internal[address])<<8 | uint16(mem.internal[address+1]), nil
}

// LoadProgram copies program data into memory at OriginAddr. The copy is
// bounds checked; a program that would extend past the end of memory is
// rejected with an error created from the ProgramTooLarge pattern.
func (mem *Memory) LoadProgram(data []byte) error {
	if len(data) > MemorySize-OriginAddr {
		return curated.Errorf(ProgramTooLarge, len(data), MemorySize-OriginAddr)
	}
	copy(mem.internal[OriginAddr:], data)
	return nil
}
