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

package instructions

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// UnknownOpcode is the error pattern returned by Decode() for encodings that
// match no defined operation.
const UnknownOpcode = "decode: unknown opcode (%#04x)"

// Instruction is the result of decoding a raw opcode: the definition of the
// operation plus the operand fields extracted from the encoding.
//
// Operand fields are always populated, whether or not the operation makes use
// of them. Register indices are by construction in the range 0 to 15 so the
// execution engine can use them without bounds checks.
type Instruction struct {
	Def    Definition
	Opcode uint16

	// register indices from the second and third nibbles
	X uint8
	Y uint8

	// the 12 bit address field
	NNN uint16

	// the immediate byte from the lower 8 bits
	KK uint8

	// the nibble count from the lowest 4 bits
	N uint8
}

func (ins Instruction) String() string {
	return fmt.Sprintf("%04x %s", ins.Opcode, ins.Mnemonic())
}

// Decode a raw 16 bit opcode. The leading nibble selects the instruction
// family; the 0x0, 0x8, 0xE and 0xF families dispatch further on the trailing
// nibble or byte.
//
// An encoding that matches no operation results in an error created from the
// UnknownOpcode pattern. Decode never panics.
func Decode(opcode uint16) (Instruction, error) {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(opcode >> 8 & 0x0f),
		Y:      uint8(opcode >> 4 & 0x0f),
		NNN:    opcode & 0x0fff,
		KK:     uint8(opcode & 0x00ff),
		N:      uint8(opcode & 0x000f),
	}

	var op Operation

	switch opcode & 0xf000 {
	case 0x0000:
		switch opcode {
		case 0x0000:
			op = Sys
		case 0x00e0:
			op = ClearScreen
		case 0x00ee:
			op = Return
		default:
			// 0nnn would call a machine language routine on the original
			// hardware. no program that runs on an interpreter can use it
			return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
		}
	case 0x1000:
		op = Jump
	case 0x2000:
		op = Call
	case 0x3000:
		op = SkipEqualValue
	case 0x4000:
		op = SkipNotEqualValue
	case 0x5000:
		if opcode&0x000f != 0x0000 {
			return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
		}
		op = SkipEqualRegister
	case 0x6000:
		op = LoadValue
	case 0x7000:
		op = AddValue
	case 0x8000:
		switch opcode & 0x000f {
		case 0x0000:
			op = LoadRegister
		case 0x0001:
			op = Or
		case 0x0002:
			op = And
		case 0x0003:
			op = Xor
		case 0x0004:
			op = AddRegister
		case 0x0005:
			op = SubRegister
		case 0x0006:
			op = ShiftRight
		case 0x0007:
			op = SubRegisterReverse
		case 0x000e:
			op = ShiftLeft
		default:
			return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
		}
	case 0x9000:
		if opcode&0x000f != 0x0000 {
			return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
		}
		op = SkipNotEqualRegister
	case 0xa000:
		op = LoadIndex
	case 0xb000:
		op = JumpOffset
	case 0xc000:
		op = Random
	case 0xd000:
		op = Draw
	case 0xe000:
		switch opcode & 0x00ff {
		case 0x009e:
			op = SkipKeyPressed
		case 0x00a1:
			op = SkipKeyNotPressed
		default:
			return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
		}
	case 0xf000:
		switch opcode & 0x00ff {
		case 0x0007:
			op = LoadFromDelayTimer
		case 0x000a:
			op = WaitKey
		case 0x0015:
			op = LoadDelayTimer
		case 0x0018:
			op = LoadSoundTimer
		case 0x001e:
			op = AddIndex
		case 0x0029:
			op = LoadFontAddress
		case 0x0033:
			op = StoreBCD
		case 0x0055:
			op = StoreRegisters
		case 0x0065:
			op = LoadRegisters
		default:
			return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
		}
	}

	ins.Def = definitions[op]

	return ins, nil
}
