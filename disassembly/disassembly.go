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

package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// NoEntry is returned by Disassembly.Entry() when the requested address has
// no disassembled instruction.
const NoEntry = "disassembly: no entry at address (%#04x)"

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint16
	Opcode  uint16

	// whether the opcode decoded to a known instruction. when false the
	// entry is likely sprite or other data and Mnemonic is rendered as a
	// raw word
	Valid bool

	Instruction instructions.Instruction
	Mnemonic    string
}

// String returns the Entry in a single line, in the form used by the
// disassembly listing.
func (e Entry) String() string {
	return fmt.Sprintf("$%03x  %04x  %s", e.Address, e.Opcode, e.Mnemonic)
}

// Disassembly is a static decoding of every 16 bit word in a program.
//
// CHIP-8 programs freely mix code and sprite data and there is no reliable
// static method of telling them apart. Every word pair is therefore decoded;
// words that do not decode are listed as raw data.
type Disassembly struct {
	entries []Entry
}

// FromCartridge disassembles the program in the supplied cartridge. The
// cartridge is loaded if it has not been already.
func FromCartridge(cartload cartridgeloader.Loader) (*Disassembly, error) {
	if cartload.Data == nil {
		if err := cartload.Load(); err != nil {
			return nil, err
		}
	}
	return FromData(cartload.Data), nil
}

// FromData disassembles raw program data, as it would appear in memory from
// OriginAddr.
func FromData(data []byte) *Disassembly {
	dsm := &Disassembly{
		entries: make([]Entry, 0, len(data)/2+1),
	}

	for i := 0; i < len(data); i += 2 {
		var opcode uint16
		opcode = uint16(data[i]) << 8
		if i+1 < len(data) {
			opcode |= uint16(data[i+1])
		}

		e := Entry{
			Address: uint16(memory.OriginAddr + i),
			Opcode:  opcode,
		}

		ins, err := instructions.Decode(opcode)
		if err != nil {
			e.Mnemonic = fmt.Sprintf("dw $%04x", opcode)
		} else {
			e.Valid = true
			e.Instruction = ins
			e.Mnemonic = ins.Mnemonic()
		}

		dsm.entries = append(dsm.entries, e)
	}

	return dsm
}

// Entry returns the disassembled instruction at the given address.
func (dsm *Disassembly) Entry(address uint16) (Entry, error) {
	i := (int(address) - memory.OriginAddr) / 2
	if address < memory.OriginAddr || address&0x01 == 0x01 || i >= len(dsm.entries) {
		return Entry{}, curated.Errorf(NoEntry, address)
	}
	return dsm.entries[i], nil
}

// Write the entire disassembly to the io.Writer.
func (dsm *Disassembly) Write(output io.Writer) {
	for _, e := range dsm.entries {
		io.WriteString(output, e.String())
		io.WriteString(output, "\n")
	}
}
