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

import "fmt"

// Mnemonic returns the instruction in assembly form, with operands rendered
// in the conventional CHIP-8 style (Vx registers, $ prefixed hex values).
func (ins Instruction) Mnemonic() string {
	m := ins.Def.Mnemonic

	switch ins.Def.Operation {
	case Sys, ClearScreen, Return:
		return m
	case Jump, Call:
		return fmt.Sprintf("%s $%03x", m, ins.NNN)
	case SkipEqualValue, SkipNotEqualValue, LoadValue, AddValue, Random:
		return fmt.Sprintf("%s V%X, $%02x", m, ins.X, ins.KK)
	case SkipEqualRegister, SkipNotEqualRegister, LoadRegister, Or, And, Xor,
		AddRegister, SubRegister, SubRegisterReverse:
		return fmt.Sprintf("%s V%X, V%X", m, ins.X, ins.Y)
	case ShiftRight, ShiftLeft:
		return fmt.Sprintf("%s V%X", m, ins.X)
	case LoadIndex:
		return fmt.Sprintf("%s I, $%03x", m, ins.NNN)
	case JumpOffset:
		return fmt.Sprintf("%s V0, $%03x", m, ins.NNN)
	case Draw:
		return fmt.Sprintf("%s V%X, V%X, $%x", m, ins.X, ins.Y, ins.N)
	case SkipKeyPressed, SkipKeyNotPressed:
		return fmt.Sprintf("%s V%X", m, ins.X)
	case LoadFromDelayTimer:
		return fmt.Sprintf("%s V%X, DT", m, ins.X)
	case WaitKey:
		return fmt.Sprintf("%s V%X, K", m, ins.X)
	case LoadDelayTimer:
		return fmt.Sprintf("%s DT, V%X", m, ins.X)
	case LoadSoundTimer:
		return fmt.Sprintf("%s ST, V%X", m, ins.X)
	case AddIndex:
		return fmt.Sprintf("%s I, V%X", m, ins.X)
	case LoadFontAddress:
		return fmt.Sprintf("%s F, V%X", m, ins.X)
	case StoreBCD:
		return fmt.Sprintf("%s B, V%X", m, ins.X)
	case StoreRegisters:
		return fmt.Sprintf("%s [I], V%X", m, ins.X)
	case LoadRegisters:
		return fmt.Sprintf("%s V%X, [I]", m, ins.X)
	}

	return m
}
